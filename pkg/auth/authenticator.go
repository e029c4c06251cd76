package auth

import (
	"log/slog"
	"slices"
)

type authenticator struct {
	authorizedUserIDs []int64
}

// NewAuthenticator restricts the bot to the given Telegram user IDs. An empty list lets everyone in.
func NewAuthenticator(authorizedUserIDs []int64) *authenticator {
	if len(authorizedUserIDs) == 0 {
		slog.Info("telegram user allow-list disabled")
	} else {
		slog.Info("telegram authorized user IDs", "user_ids", authorizedUserIDs)
	}

	return &authenticator{
		authorizedUserIDs: authorizedUserIDs,
	}
}

func (a *authenticator) IsAuthorized(userID int64) bool {
	return len(a.authorizedUserIDs) == 0 || slices.Contains(a.authorizedUserIDs, userID)
}

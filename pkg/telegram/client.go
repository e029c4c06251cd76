package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/telemage/pkg/domain"
)

type client struct {
	bot *bot.Bot
}

// NewClient creates an outbound Telegram client. getMe is skipped so that
// placeholder tokens still let the service boot and report SETUP_ENVS.
func NewClient(token, serverURL string) (*client, error) {
	opts := []bot.Option{bot.WithSkipGetMe()}
	if serverURL != "" {
		opts = append(opts, bot.WithServerURL(serverURL))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating bot instance: %w", err)
	}

	return &client{bot: b}, nil
}

func (c *client) SendText(ctx context.Context, chatID int64, text string) error {
	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: recipient(chatID),
		Text:   text,
	}); err != nil {
		return fmt.Errorf("sending message: %w", rejected(err))
	}
	return nil
}

func (c *client) SendPhoto(ctx context.Context, chatID int64, caption, filename string, data []byte) error {
	if _, err := c.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  recipient(chatID),
		Caption: caption,
		Photo: &models.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader(data),
		},
	}); err != nil {
		return fmt.Errorf("sending photo: %w", rejected(err))
	}
	return nil
}

// WebhookURL returns the URL Telegram currently delivers updates to, empty when none is set.
func (c *client) WebhookURL(ctx context.Context) (string, error) {
	info, err := c.bot.GetWebhookInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("getting webhook info: %w", err)
	}
	if info == nil {
		return "", fmt.Errorf("getting webhook info: empty result")
	}
	return info.URL, nil
}

func (c *client) SetWebhook(ctx context.Context, url, secretToken string) (bool, error) {
	ok, err := c.bot.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:         url,
		SecretToken: secretToken,
	})
	if err != nil {
		return false, fmt.Errorf("setting webhook: %w", err)
	}
	return ok, nil
}

func recipient(chatID int64) any {
	if chatID == domain.NoRecipient {
		return nil
	}
	return chatID
}

// rejected tags errors Telegram returned in an ok:false answer with
// domain.ErrDeliveryRejected. Transport errors are returned as is.
func rejected(err error) error {
	var (
		tooMany *bot.TooManyRequestsError
		migrate *bot.MigrateError
	)
	switch {
	case errors.Is(err, bot.ErrorForbidden),
		errors.Is(err, bot.ErrorBadRequest),
		errors.Is(err, bot.ErrorUnauthorized),
		errors.Is(err, bot.ErrorNotFound),
		errors.Is(err, bot.ErrorConflict),
		errors.As(err, &tooMany),
		errors.As(err, &migrate):
		return fmt.Errorf("%w: %w", domain.ErrDeliveryRejected, err)
	}
	return err
}

package domain

// NoRecipient marks a message that has no chat to go to. Telegram never uses 0 as a chat id.
const NoRecipient int64 = 0

const (
	StartCommand = "/start"
	HelpCommand  = "/help"
)

const (
	WelcomeText = "Welcome to Telemage. To generate an image with AI, simply" +
		" send me a prompt or phrase and I'll create something amazing!"
	HelpText = "To generate an image, simply send me a prompt or phrase and I'll do my" +
		" best to create something amazing!"
	UnknownErrorText  = "Unknown error, lol, handling coming soon"
	NotAuthorizedText = "❌ Not authorized"
	PongText          = "pong"
)

type CommandText string

// Reply returns the canned answer for a known command.
func (c CommandText) Reply() (string, bool) {
	switch string(c) {
	case StartCommand:
		return WelcomeText, true
	case HelpCommand:
		return HelpText, true
	}
	return "", false
}

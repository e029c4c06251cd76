package domain

type ResultKind string

const (
	ResultSent          ResultKind = "sent"
	ResultStoredAndSent ResultKind = "stored_and_sent"
	ResultError         ResultKind = "error"
)

// Result reports what the webhook did with one update.
type Result struct {
	Kind     ResultKind `json:"result"`
	ChatID   int64      `json:"chat_id,omitempty"`
	Caption  string     `json:"caption,omitempty"`
	Filename string     `json:"filename,omitempty"`
	Message  string     `json:"message,omitempty"`
}

func Sent(chatID int64) Result {
	return Result{Kind: ResultSent, ChatID: chatID}
}

func StoredAndSent(chatID int64, caption, filename string) Result {
	return Result{Kind: ResultStoredAndSent, ChatID: chatID, Caption: caption, Filename: filename}
}

func Failed(chatID int64, message string) Result {
	return Result{Kind: ResultError, ChatID: chatID, Message: message}
}

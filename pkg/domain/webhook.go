package domain

import "fmt"

// WebhookPath is where Telegram delivers updates to this service.
const WebhookPath = "/open"

// Registration is the answer of a setWebhook call.
type Registration struct {
	OK          bool   `json:"ok"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

func WebhookURL(hostname string) string {
	return fmt.Sprintf("https://%s%s", hostname, WebhookPath)
}

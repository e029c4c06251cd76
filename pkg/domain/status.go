package domain

type Status string

const (
	StatusSetupEnvs    Status = "SETUP_ENVS"
	StatusSetupWebhook Status = "SETUP_WEBHOOK"
	StatusReady        Status = "READY"
	StatusError        Status = "ERROR"
)

// PlaceholderKey is the value secrets carry until the operator fills them in.
const PlaceholderKey = "enter your key"

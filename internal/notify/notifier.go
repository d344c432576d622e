package notify

import (
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"sentwatch/internal/providers"
	"sentwatch/internal/structures"
)

const sendTimeout = 10 * time.Second

// NotifierInterface delivers one message to the configured channel.
// Failures are reported via the return value and logged by the caller;
// sends are never retried and never rolled back.
type NotifierInterface interface {
	Send(message string) bool
}

type WebhookNotifier struct {
	http   *resty.Client
	url    string
	token  string
	dryRun bool
	logger providers.Logger
}

func NewNotifier(conf *structures.Config, logger providers.Logger) NotifierInterface {
	if !conf.Notifier.Enabled {
		logger.Infof(providers.TypeNotify, "Notifications disabled")
		return &noopNotifier{logger: logger}
	}
	return &WebhookNotifier{
		http:   resty.New().SetTimeout(sendTimeout),
		url:    conf.Notifier.WebhookURL,
		token:  os.Getenv("SENTWATCH_WEBHOOK_TOKEN"),
		dryRun: conf.Notifier.DryRun,
		logger: logger,
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

func (n *WebhookNotifier) Send(message string) bool {
	if n.dryRun {
		n.logger.Infof(providers.TypeNotify, "[dry-run] %s", message)
		return true
	}

	req := n.http.R().SetBody(webhookPayload{Text: message})
	if n.token != "" {
		req.SetAuthToken(n.token)
	}
	resp, err := req.Post(n.url)
	if err != nil {
		n.logger.Errorf(providers.TypeNotify, "Delivery failed: %s", err)
		return false
	}
	if resp.IsError() {
		n.logger.Errorf(providers.TypeNotify, "Delivery returned status %d", resp.StatusCode())
		return false
	}
	return true
}

type noopNotifier struct {
	logger providers.Logger
}

func (n *noopNotifier) Send(message string) bool {
	n.logger.Debugf(providers.TypeNotify, "Suppressed: %s", message)
	return true
}

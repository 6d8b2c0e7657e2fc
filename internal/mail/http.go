package mail

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/GoFolio/GoFolio/internal/config"
)

// HTTPNotifier posts notification messages as JSON to a mail service
// endpoint, authenticated with a bearer API key.
type HTTPNotifier struct {
	client *resty.Client
}

var _ Notifier = (*HTTPNotifier)(nil)

// NewHTTPNotifier creates an HTTPNotifier for the configured mail service.
func NewHTTPNotifier(cfg config.Mail) *HTTPNotifier {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &HTTPNotifier{client: client}
}

// Notify implements Notifier. Non-2xx responses are reported as errors.
func (n *HTTPNotifier) Notify(ctx context.Context, msg Message) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post("")
	if err != nil {
		return fmt.Errorf("mail service request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("mail service returned status %d", resp.StatusCode())
	}

	return nil
}

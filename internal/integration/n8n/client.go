package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agenciaflow/backoffice/internal/config"
)

// ReportTrigger is the payload posted to the n8n webhook for one
// scheduled report run. n8n owns rendering and delivery.
type ReportTrigger struct {
	ScheduleID     string `json:"schedule_id"`
	AccountID      string `json:"account_id"`
	AccountName    string `json:"account_name"`
	Frequency      string `json:"frequency"`
	RecipientEmail string `json:"recipient_email"`
	TriggeredAt    string `json:"triggered_at"`
}

// Client posts report triggers to the configured n8n webhook.
type Client struct {
	webhookURL string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client from config. An empty webhook URL yields a
// client whose TriggerReport fails fast; callers check Configured.
func NewClient(cfg config.N8NConfig) *Client {
	return &Client{
		webhookURL: cfg.WebhookURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Configured reports whether a webhook URL is set.
func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

// TriggerReport posts the trigger payload. Non-2xx responses are
// returned as errors; there is no retry at this layer.
func (c *Client) TriggerReport(ctx context.Context, trigger ReportTrigger) error {
	if !c.Configured() {
		return fmt.Errorf("n8n webhook not configured")
	}
	if trigger.TriggeredAt == "" {
		trigger.TriggeredAt = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(trigger)
	if err != nil {
		return fmt.Errorf("marshal trigger: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-N8N-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("n8n webhook returned %d: %s", resp.StatusCode, string(payload))
	}
	return nil
}

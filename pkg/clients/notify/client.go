package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/config"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
)

// Client posts export notifications to a webhook.
type Client interface {
	NotifyExport(ctx context.Context, resp models.ExportResponse) error
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

type exportEvent struct {
	Event            string `json:"event"`
	Path             string `json:"path"`
	Mode             string `json:"mode"`
	Rows             int    `json:"rows"`
	MissingStopovers int    `json:"missing_stopovers"`
}

// NotifyExport posts an export.completed event describing resp.
func (c *WebhookClient) NotifyExport(ctx context.Context, resp models.ExportResponse) error {
	payload := exportEvent{
		Event:            "export.completed",
		Path:             resp.Path,
		Mode:             resp.Mode,
		Rows:             resp.Rows,
		MissingStopovers: resp.MissingStopovers,
	}

	res, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post export notification: %w", err)
	}

	if res.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("notification webhook error: code=%d, body=%s", res.StatusCode(), res.String())
	}

	return nil
}

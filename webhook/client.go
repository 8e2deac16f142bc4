package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/log.go/v2/log"
)

const service = "webhook"

// Client is the client for notifying a webhook receiver of script errors
type Client struct {
	hcCli *health.Client
}

// NewClient returns a new Client for the receiver at the given url
func NewClient(url string) *Client {
	return &Client{
		hcCli: health.NewClient(service, url),
	}
}

// NewClientWithClienter returns a new Client for the receiver at the given
// url, calling it through the provided Clienter
func NewClientWithClienter(url string, clienter dphttp.Clienter) *Client {
	return &Client{
		hcCli: health.NewClientWithClienter(service, url, clienter),
	}
}

// Notify posts the record to the configured webhook receiver as JSON.
func (c *Client) Notify(ctx context.Context, e *event.ErrorEvent) error {
	b, err := json.Marshal(e)
	if err != nil {
		return &Error{
			err:        fmt.Errorf("failed to marshal error event: %w", err),
			statusCode: http.StatusInternalServerError,
		}
	}

	log.Info(ctx, "notifying webhook of script error", log.Data{
		"url":        c.hcCli.URL,
		"event_type": e.Type(),
	})

	res, err := c.hcCli.Client.Post(ctx, c.hcCli.URL, "application/json", bytes.NewReader(b))
	if err != nil {
		return &Error{
			err:        fmt.Errorf("failed to call webhook: %w", err),
			statusCode: http.StatusInternalServerError,
		}
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return c.errorResponse(res)
	}

	return nil
}

// errorResponse handles dealing with an error response from the webhook receiver
func (c *Client) errorResponse(res *http.Response) error {
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return &Error{
			err:        fmt.Errorf("failed to read error response body: %s", err),
			statusCode: res.StatusCode,
		}
	}

	if len(b) == 0 {
		b = []byte("[response body empty]")
	}

	return &Error{
		err:        fmt.Errorf("error response from webhook receiver: %v", string(b)),
		statusCode: res.StatusCode,
	}
}

// Checker calls the webhook receiver's health endpoint and updates the
// provided CheckState accordingly
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, state)
}

package handler

import (
	"context"
	"fmt"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"

	"github.com/ONSdigital/log.go/v2/log"
)

// ErrorReported is the handler for the ErrorReported event
type ErrorReported struct {
	cfg     config.Config
	store   Store
	webhook Webhook
}

func NewErrorReported(cfg config.Config, s Store, w Webhook) *ErrorReported {
	return &ErrorReported{
		cfg:     cfg,
		store:   s,
		webhook: w,
	}
}

// Handle takes a single event. The record is persisted first; the webhook
// receiver is then notified if notifications are enabled. A notification
// failure does not undo the stored record.
func (h *ErrorReported) Handle(ctx context.Context, e *event.ErrorEvent) error {
	ld := log.Data{
		"event_type": e.Type(),
		"filename":   e.Filename(),
		"lineno":     e.Lineno(),
		"colno":      e.Colno(),
	}

	id, err := h.store.SaveErrorEvent(ctx, e)
	if err != nil {
		return &Error{
			err:     fmt.Errorf("failed to store script error: %w", err),
			logData: ld,
		}
	}

	ld["id"] = id
	log.Info(ctx, "Successfully stored script error", ld)

	if !h.cfg.WebhookEnabled {
		return nil
	}

	if err := h.webhook.Notify(ctx, e); err != nil {
		if data := logData(err); data != nil {
			ld["data"] = data
		}

		return &Error{
			err:        fmt.Errorf("failed to notify webhook: %w", err),
			statusCode: statusCode(err),
			logData:    ld,
		}
	}

	log.Info(ctx, "Successfully notified webhook", ld)

	return nil
}

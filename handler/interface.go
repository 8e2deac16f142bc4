package handler

import (
	"context"

	"github.com/ONSdigital/dp-script-error-collector/event"
)

//go:generate moq -out mock/store.go -pkg mock . Store
//go:generate moq -out mock/webhook.go -pkg mock . Webhook

// Store persists error-event records
type Store interface {
	SaveErrorEvent(ctx context.Context, errorEvent *event.ErrorEvent) (int64, error)
}

// Webhook notifies a receiver of error-event records
type Webhook interface {
	Notify(ctx context.Context, errorEvent *event.ErrorEvent) error
}

type coder interface {
	Code() int
}

type dataLogger interface {
	LogData() map[string]interface{}
}

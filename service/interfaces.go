package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"

	"github.com/ONSdigital/dp-script-error-collector/event"
)

//go:generate moq -out mock/server.go -pkg mock . HTTPServer
//go:generate moq -out mock/healthcheck.go -pkg mock . HealthChecker
//go:generate moq -out mock/store.go -pkg mock . ErrorEventStore
//go:generate moq -out mock/webhook.go -pkg mock . WebhookClient
//go:generate moq -out mock/processor.go -pkg mock . Processor

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HealthChecker defines the required methods from Healthcheck
type HealthChecker interface {
	Handler(w http.ResponseWriter, req *http.Request)
	Start(ctx context.Context)
	Stop()
	AddCheck(name string, checker healthcheck.Checker) (err error)
}

// ErrorEventStore defines the required methods from the script error store
type ErrorEventStore interface {
	SaveErrorEvent(ctx context.Context, errorEvent *event.ErrorEvent) (int64, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
	Close(ctx context.Context) error
}

// WebhookClient defines the required methods from the webhook notification client
type WebhookClient interface {
	Notify(ctx context.Context, errorEvent *event.ErrorEvent) error
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// Processor defines the required methods from the event processor
type Processor interface {
	Handle(ctx context.Context, workerID int, msg kafka.Message) error
}

package event

import (
	"context"
	"fmt"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/schema"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"
)

// Processor converts kafka messages to error-event records and passes them
// to the provided handler.
type Processor struct {
	cfg     config.Config
	handler Handler
}

func NewProcessor(cfg config.Config, h Handler) *Processor {
	return &Processor{
		cfg:     cfg,
		handler: h,
	}
}

// Handle unmarshals the provided kafka message into an event, rebuilds the
// record and calls the handler. The message is committed by the consumer
// group after handling, by default even on error to prevent reconsumption
// of dead messages.
func (p *Processor) Handle(ctx context.Context, workerID int, msg kafka.Message) error {
	var e ErrorReported
	s := schema.ErrorReported

	if err := s.Unmarshal(msg.GetData(), &e); err != nil {
		return &Error{
			err: fmt.Errorf("failed to unmarshal event: %w", err),
			logData: map[string]interface{}{
				"msg_data": msg.GetData(),
			},
		}
	}

	ld := log.Data{"event": e, "worker_id": workerID}
	log.Info(ctx, "event received", ld)

	if err := p.handler.Handle(ctx, e.ErrorEvent()); err != nil {
		ld["status_code"] = statusCode(err)
		if data := unwrapLogData(err); data != nil {
			ld["log_data"] = data
		}

		return &Error{
			err:     fmt.Errorf("failed to handle event: %w", err),
			logData: ld,
		}
	}

	log.Info(ctx, "event successfully processed", ld)
	return nil
}

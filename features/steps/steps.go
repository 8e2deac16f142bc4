package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/schema"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/rdumont/assistdog"
)

// WaitEventTimeout is the maximum time the assertion steps wait for an
// event to work through the pipeline.
const WaitEventTimeout = 5 * time.Second

func (c *Component) RegisterSteps(ctx *godog.ScenarioContext) {
	c.apiFeature.RegisterSteps(ctx)

	ctx.Step(`^the webhook receiver accepts notifications$`, c.theWebhookReceiverAcceptsNotifications)
	ctx.Step(`^the webhook receiver rejects notifications$`, c.theWebhookReceiverRejectsNotifications)

	ctx.Step(`^this error-reported event is queued, to be consumed:$`, c.thisErrorReportedEventIsQueued)
	ctx.Step(`^these script errors should be stored:$`, c.theseScriptErrorsShouldBeStored)
	ctx.Step(`^no script errors should be stored$`, c.noScriptErrorsShouldBeStored)
}

// theWebhookReceiverAcceptsNotifications generates a mocked 200 response for
// notifications posted to the webhook receiver
func (c *Component) theWebhookReceiverAcceptsNotifications() error {
	c.WebhookSrv.NewHandler().
		Post("/").
		Reply(http.StatusOK)
	return nil
}

// theWebhookReceiverRejectsNotifications generates a mocked 500 response for
// notifications posted to the webhook receiver
func (c *Component) theWebhookReceiverRejectsNotifications() error {
	const res = `{"message": "notification rejected"}`
	c.WebhookSrv.NewHandler().
		Post("/").
		Reply(http.StatusInternalServerError).
		BodyString(res)
	return nil
}

func (c *Component) thisErrorReportedEventIsQueued(input *godog.DocString) error {
	ctx := context.Background()

	var testEvent event.ErrorReported
	if err := json.Unmarshal([]byte(input.Content), &testEvent); err != nil {
		return fmt.Errorf("error unmarshaling input to event: %w body: %s", err, input.Content)
	}

	log.Info(ctx, "queuing error-reported event", log.Data{
		"event": testEvent,
	})

	b, err := schema.ErrorReported.Marshal(testEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal event from schema: %w", err)
	}

	c.producer.Channels().Output <- b

	return nil
}

func (c *Component) theseScriptErrorsShouldBeStored(events *godog.Table) error {
	assist := assistdog.NewDefault()
	assist.RegisterParser(int64(0), func(raw string) (interface{}, error) {
		return strconv.ParseInt(raw, 10, 64)
	})

	expected, err := assist.CreateSlice(new(event.ErrorReported), events)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	want := expected.([]*event.ErrorReported)

	timeout := time.After(WaitEventTimeout)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for len(c.store.SaveErrorEventCalls()) < len(want) {
		select {
		case <-timeout:
			return fmt.Errorf("timed out waiting for %d script errors to be stored, got %d",
				len(want), len(c.store.SaveErrorEventCalls()))
		case <-tick.C:
		}
	}

	var got []*event.ErrorReported
	for _, call := range c.store.SaveErrorEventCalls() {
		r := event.NewErrorReported(call.ErrorEvent)
		// reported timestamps vary per run, so they are not compared
		r.ReportedAt = ""
		got = append(got, r)
	}

	if diff := cmp.Diff(got, want); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

func (c *Component) noScriptErrorsShouldBeStored() error {
	timeout := time.After(WaitEventTimeout)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		if n := len(c.store.SaveErrorEventCalls()); n > 0 {
			return fmt.Errorf("unexpected script errors stored: %d", n)
		}

		select {
		case <-timeout:
			return nil
		case <-tick.C:
		}
	}
}

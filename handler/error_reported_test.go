package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/handler"
	"github.com/ONSdigital/dp-script-error-collector/handler/mock"

	. "github.com/smartystreets/goconvey/convey"
)

var ctx = context.Background()

type testError struct {
	statusCode int
}

func (e *testError) Error() string {
	return "I am a test error"
}

func (e *testError) Code() int {
	return e.statusCode
}

type statusCoder interface {
	Code() int
}

func TestErrorReportedHandler_HandleHappy(t *testing.T) {
	cfg := config.Config{WebhookEnabled: true}

	Convey("Given a handler with a working store and webhook", t, func() {
		store := storeHappy()
		webhook := webhookHappy()

		h := handler.NewErrorReported(cfg, store, webhook)

		Convey("When Handle is triggered", func() {
			e := testErrorEvent()
			err := h.Handle(ctx, e)

			Convey("Then no error is returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the script error is stored", func() {
				So(store.SaveErrorEventCalls(), ShouldHaveLength, 1)
				So(store.SaveErrorEventCalls()[0].ErrorEvent, ShouldEqual, e)
			})

			Convey("Then the webhook is notified with the same record", func() {
				So(webhook.NotifyCalls(), ShouldHaveLength, 1)
				So(webhook.NotifyCalls()[0].ErrorEvent, ShouldEqual, e)
			})
		})
	})
}

func TestErrorReportedHandler_HandleUnhappy(t *testing.T) {
	Convey("Given a handler with a store that fails to save", t, func() {
		cfg := config.Config{WebhookEnabled: true}
		store := &mock.StoreMock{
			SaveErrorEventFunc: func(ctx context.Context, errorEvent *event.ErrorEvent) (int64, error) {
				return 0, errors.New("connection refused")
			},
		}
		webhook := webhookHappy()

		h := handler.NewErrorReported(cfg, store, webhook)

		Convey("When Handle is triggered", func() {
			err := h.Handle(ctx, testErrorEvent())

			Convey("Then the expected error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "failed to store script error")
			})

			Convey("Then the webhook is never notified", func() {
				So(webhook.NotifyCalls(), ShouldHaveLength, 0)
			})
		})
	})

	Convey("Given a handler with a webhook that rejects the notification", t, func() {
		cfg := config.Config{WebhookEnabled: true}
		store := storeHappy()
		webhook := &mock.WebhookMock{
			NotifyFunc: func(ctx context.Context, errorEvent *event.ErrorEvent) error {
				return &testError{http.StatusForbidden}
			},
		}

		h := handler.NewErrorReported(cfg, store, webhook)

		Convey("When Handle is triggered", func() {
			err := h.Handle(ctx, testErrorEvent())

			Convey("Then the expected error is returned, with Status Forbidden", func() {
				So(err, ShouldNotBeNil)
				var cerr statusCoder
				So(errors.As(err, &cerr), ShouldBeTrue)
				So(cerr.Code(), ShouldEqual, http.StatusForbidden)
			})

			Convey("Then the script error is still stored", func() {
				So(store.SaveErrorEventCalls(), ShouldHaveLength, 1)
			})
		})
	})
}

func TestErrorReportedHandler_WebhookDisabled(t *testing.T) {
	cfg := config.Config{WebhookEnabled: false}

	Convey("Given a handler with webhook notifications disabled", t, func() {
		store := storeHappy()
		webhook := webhookHappy()

		h := handler.NewErrorReported(cfg, store, webhook)

		Convey("When Handle is triggered", func() {
			err := h.Handle(ctx, testErrorEvent())

			Convey("Then no error is returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the script error is stored but the webhook is never called", func() {
				So(store.SaveErrorEventCalls(), ShouldHaveLength, 1)
				So(webhook.NotifyCalls(), ShouldHaveLength, 0)
			})
		})
	})
}

func testErrorEvent() *event.ErrorEvent {
	return event.NewErrorEvent(event.TypeError, &event.ErrorEventInit{
		Message:  "Uncaught TypeError: x is not a function",
		Filename: "https://cdn.example.com/app.js",
		Lineno:   42,
		Colno:    7,
		Error:    "x is not a function",
	})
}

func storeHappy() *mock.StoreMock {
	return &mock.StoreMock{
		SaveErrorEventFunc: func(ctx context.Context, errorEvent *event.ErrorEvent) (int64, error) {
			return 7, nil
		},
	}
}

func webhookHappy() *mock.WebhookMock {
	return &mock.WebhookMock{
		NotifyFunc: func(ctx context.Context, errorEvent *event.ErrorEvent) error {
			return nil
		},
	}
}

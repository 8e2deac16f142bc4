package webhook_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/dp-script-error-collector/webhook"

	"github.com/maxcnunes/httpfake"
	. "github.com/smartystreets/goconvey/convey"
)

var testCtx = context.Background()

func TestNotify(t *testing.T) {
	Convey("Given a webhook receiver accepting notifications", t, func() {
		receiver := httpfake.New()
		defer receiver.Close()
		receiver.NewHandler().
			Post("/").
			Reply(http.StatusOK)

		client := webhook.NewClient(receiver.ResolveURL(""))

		Convey("When Notify is called with a record", func() {
			e := event.NewErrorEvent(event.TypeError, &event.ErrorEventInit{
				Message:  "boom",
				Filename: "app.js",
				Lineno:   42,
				Colno:    7,
			})

			err := client.Notify(testCtx, e)

			Convey("Then no error is returned", func() {
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a webhook receiver rejecting notifications", t, func() {
		receiver := httpfake.New()
		defer receiver.Close()
		receiver.NewHandler().
			Post("/").
			Reply(http.StatusForbidden).
			BodyString(`not today`)

		client := webhook.NewClient(receiver.ResolveURL(""))

		Convey("When Notify is called", func() {
			err := client.Notify(testCtx, event.NewErrorEvent(event.TypeError, nil))

			Convey("Then the status code is recoverable from the returned error", func() {
				So(err, ShouldNotBeNil)
				So(webhook.StatusCode(err), ShouldEqual, http.StatusForbidden)
				So(err.Error(), ShouldContainSubstring, "not today")
			})
		})
	})

	Convey("Given no webhook receiver is listening", t, func() {
		client := webhook.NewClient("http://localhost:1")

		Convey("When Notify is called", func() {
			err := client.Notify(testCtx, event.NewErrorEvent(event.TypeError, nil))

			Convey("Then the error defaults to internal server error", func() {
				So(err, ShouldNotBeNil)
				So(webhook.StatusCode(err), ShouldEqual, http.StatusInternalServerError)
			})
		})
	})
}

func TestNotifyBody(t *testing.T) {
	Convey("Given a client with a mocked Clienter", t, func() {
		var gotURL, gotContentType string
		var gotBody []byte

		clienter := &dphttp.ClienterMock{
			SetPathsWithNoRetriesFunc: func(paths []string) {},
			GetPathsWithNoRetriesFunc: func() []string {
				return []string{}
			},
			PostFunc: func(ctx context.Context, url string, contentType string, body io.Reader) (*http.Response, error) {
				gotURL = url
				gotContentType = contentType
				b, err := io.ReadAll(body)
				if err != nil {
					return nil, err
				}
				gotBody = b
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}, nil
			},
		}

		client := webhook.NewClientWithClienter("http://webhook.receiver", clienter)

		Convey("When Notify is called with a record", func() {
			e := event.NewErrorEvent(event.TypeError, &event.ErrorEventInit{
				Message:  "boom",
				Filename: "app.js",
				Lineno:   42,
				Colno:    7,
				Error:    "x is not a function",
			})

			err := client.Notify(testCtx, e)
			So(err, ShouldBeNil)

			Convey("Then the record is posted as json to the receiver", func() {
				So(gotURL, ShouldEqual, "http://webhook.receiver")
				So(gotContentType, ShouldEqual, "application/json")

				var got map[string]interface{}
				So(json.Unmarshal(gotBody, &got), ShouldBeNil)
				So(got["type"], ShouldEqual, "error")
				So(got["message"], ShouldEqual, "boom")
				So(got["filename"], ShouldEqual, "app.js")
				So(got["lineno"], ShouldEqual, 42)
				So(got["colno"], ShouldEqual, 7)
				So(got["error"], ShouldEqual, "x is not a function")
			})
		})
	})
}

func TestChecker(t *testing.T) {
	Convey("Given a healthy webhook receiver", t, func() {
		receiver := httpfake.New()
		defer receiver.Close()
		receiver.NewHandler().
			Get("/health").
			Reply(http.StatusOK).
			BodyString(`{"status": "OK"}`)

		client := webhook.NewClient(receiver.ResolveURL(""))

		Convey("When Checker is called", func() {
			state := healthcheck.NewCheckState("webhook")
			err := client.Checker(testCtx, state)

			Convey("Then the check state is updated to OK", func() {
				So(err, ShouldBeNil)
				So(state.Status(), ShouldEqual, healthcheck.StatusOK)
				So(state.StatusCode(), ShouldEqual, http.StatusOK)
			})
		})
	})
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ONSdigital/log.go/v2/log"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCallbackHappy(t *testing.T) {

	Convey("Given an error with embedded logData", t, func() {
		err := &Error{
			logData: log.Data{
				"log": "data",
			},
		}

		Convey("When logData(err) is called", func() {
			ld := logData(err)
			So(ld, ShouldResemble, log.Data{"log": "data"})
		})
	})

	Convey("Given an error with an embedded status code", t, func() {
		err := &Error{
			statusCode: http.StatusBadGateway,
		}

		Convey("When statusCode(err) is called", func() {
			So(statusCode(err), ShouldEqual, http.StatusBadGateway)
		})

		Convey("When the error is wrapped and statusCode(err) is called", func() {
			wrapped := fmt.Errorf("failed to notify webhook: %w", err)
			So(statusCode(wrapped), ShouldEqual, http.StatusBadGateway)
		})
	})

	Convey("Given a plain error with no embedded data", t, func() {
		err := errors.New("generic error")

		Convey("When the callbacks are called no values are extracted", func() {
			So(logData(err), ShouldBeNil)
			So(statusCode(err), ShouldEqual, 0)
		})
	})
}

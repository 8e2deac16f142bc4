package store

import (
	"errors"
	"testing"

	"github.com/ONSdigital/dp-script-error-collector/event"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNullableErrorValue(t *testing.T) {
	Convey("Given a record carrying no thrown value", t, func() {
		r := event.NewErrorReported(event.NewErrorEvent(event.TypeError, nil))

		Convey("Then the column value is nil", func() {
			So(nullableErrorValue(r), ShouldBeNil)
		})
	})

	Convey("Given a record carrying a thrown value", t, func() {
		r := event.NewErrorReported(event.NewErrorEvent(event.TypeError, &event.ErrorEventInit{
			Error: errors.New("deliberate failure"),
		}))

		Convey("Then the column value is the wire's JSON payload", func() {
			So(nullableErrorValue(r), ShouldEqual, `"deliberate failure"`)
		})
	})
}

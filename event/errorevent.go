package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// TypeError is the event type name browsers use when reporting an uncaught
// script error.
const TypeError = "error"

// ErrorEvent is an immutable record of a script error: what was thrown,
// where, and the message describing it. It is built once by NewErrorEvent
// and never modified afterwards.
type ErrorEvent struct {
	Base
	message  string
	filename string
	lineno   uint32
	colno    uint32
	err      any
}

// ErrorEventInit holds the optional members used to construct an ErrorEvent.
// Omitted members take their zero value: empty strings, zero positions and a
// nil error value.
type ErrorEventInit struct {
	BaseInit
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Lineno   uint32 `json:"lineno"`
	Colno    uint32 `json:"colno"`
	Error    any    `json:"error"`
}

// NewErrorEvent constructs an ErrorEvent of the given type from init,
// stamped with the current time. A nil init behaves as an empty one. The
// constructed record keeps no reference to init, so later changes to init do
// not affect it.
func NewErrorEvent(typ string, init *ErrorEventInit) *ErrorEvent {
	return newErrorEventAt(typ, init, time.Now())
}

func newErrorEventAt(typ string, init *ErrorEventInit, at time.Time) *ErrorEvent {
	if init == nil {
		init = &ErrorEventInit{}
	}

	return &ErrorEvent{
		Base:     newBaseAt(typ, &init.BaseInit, at),
		message:  init.Message,
		filename: init.Filename,
		lineno:   init.Lineno,
		colno:    init.Colno,
		err:      init.Error,
	}
}

// Message returns the human readable description of the error.
func (e ErrorEvent) Message() string {
	return e.message
}

// Filename returns the name of the script the error was raised in.
func (e ErrorEvent) Filename() string {
	return e.filename
}

// Lineno returns the 1-based line the error was raised at, 0 if unknown.
func (e ErrorEvent) Lineno() uint32 {
	return e.lineno
}

// Colno returns the 1-based column the error was raised at, 0 if unknown.
func (e ErrorEvent) Colno() uint32 {
	return e.colno
}

// ErrorValue returns the value that was thrown, or nil if none was
// supplied. It is named ErrorValue rather than Error so it cannot be
// mistaken for the standard error interface.
func (e ErrorEvent) ErrorValue() any {
	return e.err
}

// MarshalJSON renders the full record. Values implementing error are
// rendered as their message. There is no UnmarshalJSON: construction is the
// only way to make a record.
func (e ErrorEvent) MarshalJSON() ([]byte, error) {
	v := e.err
	if err, ok := v.(error); ok {
		v = err.Error()
	}

	return json.Marshal(struct {
		Type       string    `json:"type"`
		Bubbles    bool      `json:"bubbles"`
		Cancelable bool      `json:"cancelable"`
		Timestamp  time.Time `json:"timestamp"`
		Message    string    `json:"message"`
		Filename   string    `json:"filename"`
		Lineno     uint32    `json:"lineno"`
		Colno      uint32    `json:"colno"`
		Error      any       `json:"error"`
	}{
		Type:       e.Type(),
		Bubbles:    e.Bubbles(),
		Cancelable: e.Cancelable(),
		Timestamp:  e.Timestamp(),
		Message:    e.message,
		Filename:   e.filename,
		Lineno:     e.lineno,
		Colno:      e.colno,
		Error:      v,
	})
}

// String returns a string containing the main properties of the ErrorEvent
func (e ErrorEvent) String() string {
	return fmt.Sprintf("[ErrorEvent type=%s message=%q filename=%s lineno=%d colno=%d error=%v]",
		e.Type(), e.message, e.filename, e.lineno, e.colno, e.err)
}

package event

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ErrorReported provides an avro structure for an Error Reported event. It
// is the wire form of an ErrorEvent record: positions widen to long, the
// thrown value travels as JSON text and the record timestamp as RFC3339.
type ErrorReported struct {
	EventType  string `avro:"event_type"`
	Bubbles    bool   `avro:"bubbles"`
	Cancelable bool   `avro:"cancelable"`
	Message    string `avro:"message"`
	Filename   string `avro:"filename"`
	Lineno     int64  `avro:"lineno"`
	Colno      int64  `avro:"colno"`
	Error      string `avro:"error"`
	ReportedAt string `avro:"reported_at"`
}

// NewErrorReported returns the wire form of the given record.
func NewErrorReported(e *ErrorEvent) *ErrorReported {
	return &ErrorReported{
		EventType:  e.Type(),
		Bubbles:    e.Bubbles(),
		Cancelable: e.Cancelable(),
		Message:    e.Message(),
		Filename:   e.Filename(),
		Lineno:     int64(e.Lineno()),
		Colno:      int64(e.Colno()),
		Error:      marshalErrorValue(e.ErrorValue()),
		ReportedAt: e.Timestamp().UTC().Format(time.RFC3339Nano),
	}
}

// ErrorEvent rebuilds the record carried by the wire event, keeping its
// original timestamp. Out of range positions are clamped rather than
// rejected, so a malformed message still yields a usable record.
func (e *ErrorReported) ErrorEvent() *ErrorEvent {
	at, err := time.Parse(time.RFC3339Nano, e.ReportedAt)
	if err != nil {
		at = time.Now()
	}

	return newErrorEventAt(e.EventType, &ErrorEventInit{
		BaseInit: BaseInit{
			Bubbles:    e.Bubbles,
			Cancelable: e.Cancelable,
		},
		Message:  e.Message,
		Filename: e.Filename,
		Lineno:   clampUint32(e.Lineno),
		Colno:    clampUint32(e.Colno),
		Error:    unmarshalErrorValue(e.Error),
	}, at)
}

// clampUint32 forces an avro long into uint32 range: negative values
// collapse to 0 and overflowing values saturate at MaxUint32.
func clampUint32(n int64) uint32 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

// marshalErrorValue renders a thrown value as JSON text for the wire. A nil
// value becomes the empty string, which unmarshalErrorValue maps back to
// nil. Values implementing error are carried as their message. Values that
// cannot be marshalled are carried as their fmt.Sprint rendering.
func marshalErrorValue(v any) string {
	if v == nil {
		return ""
	}

	if err, ok := v.(error); ok {
		v = err.Error()
	}

	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(fmt.Sprint(v))
	}

	return string(b)
}

// unmarshalErrorValue reverses marshalErrorValue. Payloads that do not parse
// as JSON survive as raw strings.
func unmarshalErrorValue(s string) any {
	if s == "" {
		return nil
	}

	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	return v
}

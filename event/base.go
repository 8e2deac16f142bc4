package event

import (
	"time"
)

// Base carries the members common to all platform events: the event type
// name, the bubbles and cancelable flags, and the time the event was
// created. Members are fixed at construction and read through accessors.
type Base struct {
	typ        string
	bubbles    bool
	cancelable bool
	timestamp  time.Time
}

// BaseInit holds the optional members shared by every event initialiser.
// The zero value gives the platform defaults: non-bubbling, non-cancelable.
type BaseInit struct {
	Bubbles    bool `json:"bubbles"`
	Cancelable bool `json:"cancelable"`
}

// NewBase returns a base event of the given type, stamped with the current
// time. A nil init behaves as an empty one. The type name is not validated.
func NewBase(typ string, init *BaseInit) Base {
	return newBaseAt(typ, init, time.Now())
}

func newBaseAt(typ string, init *BaseInit, at time.Time) Base {
	if init == nil {
		init = &BaseInit{}
	}

	return Base{
		typ:        typ,
		bubbles:    init.Bubbles,
		cancelable: init.Cancelable,
		timestamp:  at,
	}
}

// Type returns the event type name supplied at construction.
func (b Base) Type() string {
	return b.typ
}

// Bubbles reports whether the event was flagged as bubbling.
func (b Base) Bubbles() bool {
	return b.bubbles
}

// Cancelable reports whether the event was flagged as cancelable.
func (b Base) Cancelable() bool {
	return b.cancelable
}

// Timestamp returns the time the event was created.
func (b Base) Timestamp() time.Time {
	return b.timestamp
}

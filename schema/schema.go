package schema

import (
	"github.com/ONSdigital/dp-kafka/v3/avro"
)

var errorReported = `{
  "type": "record",
  "name": "script-error-reported",
  "fields": [
    {"name": "event_type",  "type": "string",  "default": "error"},
    {"name": "bubbles",     "type": "boolean", "default": false},
    {"name": "cancelable",  "type": "boolean", "default": false},
    {"name": "message",     "type": "string",  "default": ""},
    {"name": "filename",    "type": "string",  "default": ""},
    {"name": "lineno",      "type": "long",    "default": 0},
    {"name": "colno",       "type": "long",    "default": 0},
    {"name": "error",       "type": "string",  "default": ""},
    {"name": "reported_at", "type": "string",  "default": ""}
  ]
}`

// ErrorReported is the avro schema for Error Reported messages.
var ErrorReported = &avro.Schema{
	Definition: errorReported,
}

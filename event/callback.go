package event

import (
	"errors"
)

// statusCode extracts a status code from an error if it implements the
// coder interface, 0 otherwise.
func statusCode(err error) int {
	var cerr coder
	if errors.As(err, &cerr) {
		return cerr.Code()
	}

	return 0
}

// unwrapLogData extracts log data embedded in an error if it implements the
// dataLogger interface.
func unwrapLogData(err error) map[string]interface{} {
	var lderr dataLogger
	if errors.As(err, &lderr) {
		return lderr.LogData()
	}

	return nil
}

package handler

// Error is the handler package's error type. Information should be
// extracted via the interfaces it implements with callback functions.
type Error struct {
	err        error
	statusCode int
	logData    map[string]interface{}
}

// Error implements the Go standard error interface
func (e *Error) Error() string {
	return e.err.Error()
}

// Code returns the status code embedded in the error, if any
func (e *Error) Code() int {
	return e.statusCode
}

// LogData implements the dataLogger interface which allows you to extract
// embedded log.Data from an error
func (e *Error) LogData() map[string]interface{} {
	return e.logData
}

// Unwrap implements Go's error wrapping interface
func (e *Error) Unwrap() error {
	return e.err
}

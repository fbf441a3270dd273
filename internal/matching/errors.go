package matching

import "fmt"

// RequestError represents an invalid analysis request that never reaches the
// matching service.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid matching request: %s", e.Message)
}

// TransportError represents a network or service failure, or a response that
// could not be obtained at all. It is fatal to the analysis run that caused
// it; no partial state survives.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("matching service call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("matching service call failed: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

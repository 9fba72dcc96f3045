package dto

import "time"

// ErrorResponse is the standard JSON error envelope returned by every
// endpoint on failure.
//
// Fields:
//   - Success: always false; present so clients can branch on one flag.
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: underlying error text, when available.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"error" example:"could not find ticker for input: 'Foo'"`
	ErrorDetails string    `json:"details,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel as a
// regular error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// ABOUTME: ErrorLogRecord is an append-only audit row for security and execution failures
// ABOUTME: Written by the pipeline, never read back by it
package models

import "time"

// Audit record error types
const (
	ErrorTypeSecurityViolation = "SECURITY_VIOLATION"
	ErrorTypePromptRejected    = "PROMPT_REJECTED"
	ErrorTypeExecutionFailure  = "EXECUTION_FAILURE"
)

// ErrorLogRecord is one persisted audit entry
type ErrorLogRecord struct {
	ID        string    `json:"id"`
	ErrorType string    `json:"error_type"`
	Query     string    `json:"query"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ABOUTME: ExecutionOutcome captures the result of running a validated statement
// ABOUTME: Ephemeral, one per request, rendered as pre-formatted text
package models

import "time"

// ExecutionOutcome is what the sandbox returns after running a statement.
// On failure FormattedText carries the error message, ExecutionTime and
// RowCount are zero, and Error is set.
type ExecutionOutcome struct {
	FormattedText string        `json:"formatted_text"`
	ExecutionTime time.Duration `json:"execution_time"`
	RowCount      int           `json:"row_count"`
	Error         string        `json:"error,omitempty"`
}

// Failed reports whether execution ended in an error
func (o ExecutionOutcome) Failed() bool {
	return o.Error != ""
}

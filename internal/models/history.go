// ABOUTME: QueryHistoryRecord maps a past natural-language query to its generated SQL
// ABOUTME: Append-only rows read back by substring similarity for query reuse
package models

import "time"

// QueryHistoryRecord is one persisted natural-query/SQL pair
type QueryHistoryRecord struct {
	ID              string    `json:"id"`
	NaturalQuery    string    `json:"natural_query"`
	GeneratedSQL    string    `json:"generated_sql"`
	ExecutionResult string    `json:"execution_result"`
	CreatedAt       time.Time `json:"created_at"`
}

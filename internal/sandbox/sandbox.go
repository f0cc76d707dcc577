// ABOUTME: Execution Sandbox running validated statements against the store
// ABOUTME: Captures timing and row counts, renders fixed-width tabular output
package sandbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/storage/sqlite"
)

// NoResultsMessage is returned for empty result sets instead of a bare table
const NoResultsMessage = "No results found."

// Sandbox executes statements the guard has already validated. It does not
// re-validate; validation is the guard's sole responsibility.
type Sandbox struct {
	store *sqlite.Storage
	log   *zap.Logger
}

// New creates a Sandbox over the given store
func New(store *sqlite.Storage, log *zap.Logger) *Sandbox {
	return &Sandbox{store: store, log: log}
}

// Execute runs the statement and formats the rows. Execution failures are
// reported in the outcome with zero rows and time, and audited; they never
// propagate as errors.
func (s *Sandbox) Execute(ctx context.Context, statement string) models.ExecutionOutcome {
	start := time.Now()

	rows, err := s.store.DB().QueryContext(ctx, statement)
	if err != nil {
		return s.failure(statement, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return s.failure(statement, err)
	}

	var table [][]string
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return s.failure(statement, err)
		}

		cells := make([]string, len(columns))
		for i, v := range values {
			cells[i] = renderValue(v)
		}
		table = append(table, cells)
	}
	if err := rows.Err(); err != nil {
		return s.failure(statement, err)
	}

	elapsed := time.Since(start)

	if len(table) == 0 {
		return models.ExecutionOutcome{
			FormattedText: NoResultsMessage,
			ExecutionTime: elapsed,
			RowCount:      0,
		}
	}

	return models.ExecutionOutcome{
		FormattedText: renderTable(columns, table),
		ExecutionTime: elapsed,
		RowCount:      len(table),
	}
}

func (s *Sandbox) failure(statement string, err error) models.ExecutionOutcome {
	s.log.Error("statement execution failed",
		zap.String("statement", statement),
		zap.Error(err))

	if auditErr := s.store.RecordAudit(models.ErrorTypeExecutionFailure, statement, err.Error()); auditErr != nil {
		s.log.Warn("failed to write audit record", zap.Error(auditErr))
	}

	return models.ExecutionOutcome{
		FormattedText: fmt.Sprintf("Query execution error: %s", err),
		Error:         err.Error(),
	}
}

func renderValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", val), "0"), ".")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderTable produces a fixed-width text block: rule, headers, rule, one
// line per row, closing rule.
func renderTable(columns []string, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w + 3
	}
	rule := strings.Repeat("=", total)
	thin := strings.Repeat("-", total)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(renderRow(columns, widths) + "\n")
	b.WriteString(thin + "\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths) + "\n")
	}
	b.WriteString(rule)
	return b.String()
}

func renderRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, " | "), " ")
}

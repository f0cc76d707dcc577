// ABOUTME: Query history persistence and similarity lookup
// ABOUTME: Fuzzy substring reuse cache, a hint rather than a trust boundary
package sqlite

import (
	"database/sql"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

// errorMarker excludes failed executions from reuse
const errorMarker = "ERROR"

// numberLiterals extracts the numeric literals of a natural query. Reuse
// requires them to match exactly, so "price below 100" never answers
// "price below 50".
var numberLiterals = regexp.MustCompile(`\d+(?:\.\d+)?`)

// HistoryStore handles query history persistence
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Record appends a natural-query/SQL pair. Rows are never updated or deleted.
func (s *HistoryStore) Record(naturalQuery, generatedSQL, executionResult string) error {
	_, err := s.db.Exec(`
		INSERT INTO query_history (id, natural_query, generated_sql, execution_result, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), naturalQuery, generatedSQL, executionResult, time.Now())
	return err
}

// FindSimilar returns the generated SQL of the most recent record whose
// natural query contains the given query as a substring, skipping records
// with error results and records whose numeric literals differ. Returns nil
// when there is no match; callers must re-validate whatever comes back.
func (s *HistoryStore) FindSimilar(naturalQuery string) (*models.QueryHistoryRecord, error) {
	trimmed := strings.TrimSpace(naturalQuery)
	if trimmed == "" {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, natural_query, generated_sql, execution_result, created_at
		FROM query_history
		WHERE instr(lower(natural_query), lower(?)) > 0
		  AND instr(upper(execution_result), ?) = 0
		ORDER BY created_at DESC
		LIMIT 20
	`, trimmed, errorMarker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wantLiterals := numberLiterals.FindAllString(trimmed, -1)

	for rows.Next() {
		var rec models.QueryHistoryRecord
		if err := rows.Scan(&rec.ID, &rec.NaturalQuery, &rec.GeneratedSQL,
			&rec.ExecutionResult, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if literalsEqual(wantLiterals, numberLiterals.FindAllString(rec.NaturalQuery, -1)) {
			return &rec, nil
		}
	}

	return nil, rows.Err()
}

// Recent returns up to limit history records, newest first
func (s *HistoryStore) Recent(limit int) ([]models.QueryHistoryRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, natural_query, generated_sql, execution_result, created_at
		FROM query_history
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistory(rows)
}

func scanHistory(rows *sql.Rows) ([]models.QueryHistoryRecord, error) {
	var records []models.QueryHistoryRecord
	for rows.Next() {
		var rec models.QueryHistoryRecord
		if err := rows.Scan(&rec.ID, &rec.NaturalQuery, &rec.GeneratedSQL,
			&rec.ExecutionResult, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func literalsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ABOUTME: Audit trail persistence for security violations and execution failures
// ABOUTME: Write-only from the pipeline's point of view
package sqlite

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

// AuditStore handles error_stats persistence
type AuditStore struct {
	db *DB
}

// NewAuditStore creates a new AuditStore
func NewAuditStore(db *DB) *AuditStore {
	return &AuditStore{db: db}
}

// Record appends an audit entry
func (s *AuditStore) Record(errorType, query, message string) error {
	_, err := s.db.Exec(`
		INSERT INTO error_stats (id, error_type, query, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), errorType, query, message, time.Now())
	return err
}

// ByType returns audit entries of the given type, newest first (for tests
// and operational inspection; the pipeline itself never reads these back)
func (s *AuditStore) ByType(errorType string) ([]models.ErrorLogRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, error_type, query, message, created_at
		FROM error_stats
		WHERE error_type = ?
		ORDER BY created_at DESC
	`, errorType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ErrorLogRecord
	for rows.Next() {
		var rec models.ErrorLogRecord
		if err := rows.Scan(&rec.ID, &rec.ErrorType, &rec.Query, &rec.Message, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the total number of audit entries
func (s *AuditStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM error_stats`).Scan(&n)
	return n, err
}

// ABOUTME: Unified Storage facade over the per-table SQLite stores
// ABOUTME: One shared handle serves every concurrent pipeline request
package sqlite

import (
	"fmt"
	"sync"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

// Storage bundles the individual stores behind one handle. Writes to the
// append-only tables are serialized with a mutex; reads go straight through.
type Storage struct {
	db       *DB
	history  *HistoryStore
	audit    *AuditStore
	products *ProductStore
	schema   *SchemaStore
	mu       sync.Mutex
}

// NewStorage opens (or creates) the store at the given path
func NewStorage(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db), nil
}

// NewStorageInMemory creates an in-memory store (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db), nil
}

func newStorage(db *DB) *Storage {
	return &Storage{
		db:       db,
		history:  NewHistoryStore(db),
		audit:    NewAuditStore(db),
		products: NewProductStore(db),
		schema:   NewSchemaStore(db),
	}
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying connection wrapper for the execution sandbox
func (s *Storage) DB() *DB {
	return s.db
}

// DescribeSchema renders the tables_info metadata for prompt construction
func (s *Storage) DescribeSchema() (string, error) {
	return s.schema.Describe()
}

// FindSimilarQuery looks up a reusable history record for the given query
func (s *Storage) FindSimilarQuery(naturalQuery string) (*models.QueryHistoryRecord, error) {
	return s.history.FindSimilar(naturalQuery)
}

// RecordQuery appends a natural-query/SQL pair to the history
func (s *Storage) RecordQuery(naturalQuery, generatedSQL, executionResult string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Record(naturalQuery, generatedSQL, executionResult)
}

// RecentQueries returns up to limit history records, newest first
func (s *Storage) RecentQueries(limit int) ([]models.QueryHistoryRecord, error) {
	return s.history.Recent(limit)
}

// RecordAudit appends an audit entry
func (s *Storage) RecordAudit(errorType, query, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audit.Record(errorType, query, message)
}

// AuditByType returns audit entries of the given type, newest first
func (s *Storage) AuditByType(errorType string) ([]models.ErrorLogRecord, error) {
	return s.audit.ByType(errorType)
}

// AuditCount returns the total number of audit entries
func (s *Storage) AuditCount() (int, error) {
	return s.audit.Count()
}

// SeedProducts inserts the demo catalog if the products table is empty
func (s *Storage) SeedProducts() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Seed()
}

// ProductCount returns the number of products
func (s *Storage) ProductCount() (int, error) {
	return s.products.Count()
}

// ABOUTME: Schema metadata lookups for prompt construction
// ABOUTME: Renders tables_info rows into the synthesizer's schema block
package sqlite

import (
	"fmt"
	"strings"
)

// SchemaStore reads the static tables_info metadata
type SchemaStore struct {
	db *DB
}

// NewSchemaStore creates a new SchemaStore
func NewSchemaStore(db *DB) *SchemaStore {
	return &SchemaStore{db: db}
}

// Describe renders all table metadata as one text block suitable for
// embedding in a generation prompt, one "table: columns" line per table.
func (s *SchemaStore) Describe() (string, error) {
	rows, err := s.db.Query(`
		SELECT table_name, columns_info
		FROM tables_info
		ORDER BY table_name
	`)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var name, columns string
		if err := rows.Scan(&name, &columns); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "Table %s: %s\n", name, columns)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no schema metadata recorded")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

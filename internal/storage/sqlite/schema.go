// ABOUTME: SQLite schema for the SQL agent store
// ABOUTME: Product catalog, query history, audit trail, and schema metadata
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- The sole queryable table
CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    stock INTEGER NOT NULL DEFAULT 0
);

-- Static schema metadata consulted by the synthesizer
CREATE TABLE IF NOT EXISTS tables_info (
    table_name TEXT PRIMARY KEY,
    columns_info TEXT NOT NULL
);

-- Append-only mapping from natural queries to previously validated SQL
CREATE TABLE IF NOT EXISTS query_history (
    id TEXT PRIMARY KEY,
    natural_query TEXT NOT NULL,
    generated_sql TEXT NOT NULL,
    execution_result TEXT NOT NULL DEFAULT '',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Append-only audit trail for security violations and execution failures
CREATE TABLE IF NOT EXISTS error_stats (
    id TEXT PRIMARY KEY,
    error_type TEXT NOT NULL,
    query TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL DEFAULT '',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_history_created ON query_history(created_at);
CREATE INDEX IF NOT EXISTS idx_errors_type ON error_stats(error_type);
`

// SeedTablesInfo records the catalog's metadata so the synthesizer can build
// schema-grounded prompts without introspecting the live table.
const SeedTablesInfo = `
INSERT INTO tables_info (table_name, columns_info)
VALUES ('products', 'id (INTEGER), name (TEXT), price (REAL), stock (INTEGER)')
ON CONFLICT(table_name) DO NOTHING;
`

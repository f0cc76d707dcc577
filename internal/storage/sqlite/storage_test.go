// ABOUTME: Tests for the Storage facade, product seeding, and schema metadata
// ABOUTME: Uses in-memory SQLite throughout
package sqlite

import (
	"strings"
	"testing"
)

func TestStorageLifecycle(t *testing.T) {
	store, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}

	if store.DB() == nil {
		t.Error("DB() returned nil")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSeedProducts(t *testing.T) {
	store, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	inserted, err := store.SeedProducts()
	if err != nil {
		t.Fatalf("SeedProducts() error = %v", err)
	}
	if inserted == 0 {
		t.Fatal("SeedProducts() inserted no rows into an empty table")
	}

	count, err := store.ProductCount()
	if err != nil {
		t.Fatalf("ProductCount() error = %v", err)
	}
	if count != inserted {
		t.Errorf("ProductCount() = %d, want %d", count, inserted)
	}

	// Seeding again must be a no-op
	again, err := store.SeedProducts()
	if err != nil {
		t.Fatalf("SeedProducts() second call error = %v", err)
	}
	if again != 0 {
		t.Errorf("SeedProducts() second call inserted %d rows, want 0", again)
	}
}

func TestDescribeSchema(t *testing.T) {
	store, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	desc, err := store.DescribeSchema()
	if err != nil {
		t.Fatalf("DescribeSchema() error = %v", err)
	}

	if !strings.Contains(desc, "products") {
		t.Errorf("DescribeSchema() = %q, should mention products", desc)
	}
	for _, col := range []string{"id", "name", "price", "stock"} {
		if !strings.Contains(desc, col) {
			t.Errorf("DescribeSchema() should mention column %s", col)
		}
	}
}

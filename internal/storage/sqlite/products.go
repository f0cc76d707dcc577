// ABOUTME: Product catalog seeding and lookups
// ABOUTME: The demo dataset the agent answers questions about
package sqlite

import (
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

// ProductStore handles the products table
type ProductStore struct {
	db *DB
}

// NewProductStore creates a new ProductStore
func NewProductStore(db *DB) *ProductStore {
	return &ProductStore{db: db}
}

// sampleProducts is the demo catalog inserted by Seed
var sampleProducts = []models.Product{
	{Name: "Laptop", Price: 1299.99, Stock: 14},
	{Name: "Keyboard", Price: 49.90, Stock: 120},
	{Name: "Mouse", Price: 24.50, Stock: 200},
	{Name: "Monitor", Price: 349.00, Stock: 35},
	{Name: "Headphones", Price: 89.99, Stock: 60},
	{Name: "Webcam", Price: 59.00, Stock: 48},
	{Name: "USB Hub", Price: 19.99, Stock: 150},
	{Name: "Desk Lamp", Price: 32.75, Stock: 80},
}

// Seed inserts the sample catalog if the table is empty. Returns the number
// of rows inserted (zero when data already exists).
func (s *ProductStore) Seed() (int, error) {
	count, err := s.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, p := range sampleProducts {
		if _, err := s.db.Exec(`
			INSERT INTO products (name, price, stock) VALUES (?, ?, ?)
		`, p.Name, p.Price, p.Stock); err != nil {
			return 0, err
		}
	}
	return len(sampleProducts), nil
}

// Count returns the number of products
func (s *ProductStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

// ABOUTME: Product is a row in the sole queryable table
// ABOUTME: The catalog the agent is allowed to answer questions about
package models

// Product is one catalog entry
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product record held by the store.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       float64
	Stock       int
	Rating      float64
	Image       string
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying collection; the catalog ships with an in-memory
// implementation whose contents live and die with the process.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCategory returns products whose category contains the given
	// substring, compared case-insensitively. An empty result is not an error.
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	// Insert adds a new product to the collection, assigning it a fresh
	// unique ID. The stored product is returned.
	Insert(ctx context.Context, product Product) (*Product, error)

	// Replace overwrites the product with the given ID in place, keeping its
	// position in the collection. Returns ErrProductNotFound if the ID is absent.
	Replace(ctx context.Context, id string, product Product) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

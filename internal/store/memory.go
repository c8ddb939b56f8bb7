package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	catalogerrors "github.com/omlco/catalog/internal/errors"
)

// memory implements ProductStore using an insertion-ordered in-memory slice.
// The slice preserves listing order; the index map keeps lookups O(1).
type memory struct {
	mu       sync.RWMutex
	products []Product
	index    map[string]int
}

// NewMemoryStore creates a ProductStore seeded with the given products.
// Seed products keep their IDs; products inserted later get generated ones.
func NewMemoryStore(seed []Product) ProductStore {
	m := &memory{
		products: make([]Product, 0, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		m.index[p.ID] = len(m.products)
		m.products = append(m.products, p)
	}
	return m
}

// FindAll retrieves all products in insertion order.
func (s *memory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// FindByID retrieves a product by its ID.
func (s *memory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// FindByCategory retrieves products whose category contains the given
// substring, case-insensitively.
func (s *memory) FindByCategory(_ context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(category)
	list := make([]Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Category), needle) {
			list = append(list, p)
		}
	}
	return list, nil
}

// Insert adds a new product with a freshly generated unique ID.
func (s *memory) Insert(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// uuid collisions are theoretical, but the ID must be unique against the
	// seed data as well, so check before use.
	id := uuid.NewString()
	for {
		if _, exists := s.index[id]; !exists {
			break
		}
		id = uuid.NewString()
	}
	product.ID = id

	s.index[product.ID] = len(s.products)
	s.products = append(s.products, product)
	return &product, nil
}

// Replace overwrites the product with the given ID, keeping its position.
func (s *memory) Replace(_ context.Context, id string, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	product.ID = id
	s.products[i] = product
	return &product, nil
}

// DeleteByID removes a product by its ID.
func (s *memory) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return catalogerrors.ErrProductNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.products); j++ {
		s.index[s.products[j].ID] = j
	}
	return nil
}

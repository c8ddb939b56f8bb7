// Package service provides the implementation of product-related business logic:
// validation, category normalization and defaulting on create, and
// partial-update semantics.
package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	catalogerrors "github.com/omlco/catalog/internal/errors"
	"github.com/omlco/catalog/internal/store"
)

// brandMarker is the token guaranteed to be present in every stored category.
const brandMarker = "OML"

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindAll returns all products in insertion order.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// FindByCategory returns products whose category contains the given
	// substring, compared case-insensitively. An empty result is not an error.
	FindByCategory(ctx context.Context, category string) ([]ProductDto, error)

	// Create validates and adds a new product, assigning it a fresh ID.
	// Returns validator.ValidationErrors if a field is missing or invalid.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update applies a partial update to an existing product. Fields absent
	// from the patch are left untouched. Returns ErrEmptyUpdate when the patch
	// carries no fields and ErrProductNotFound when the ID is absent.
	Update(ctx context.Context, id string, patch ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	validate   *validator.Validate
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Price and stock are pointers so that an absent field is distinguishable from
// a legitimate zero; rating and image are optional and defaulted when absent.
type ProductCreateDto struct {
	Name        string   `json:"name"        validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gt=0"`
	Stock       *int     `json:"stock"       validate:"required,min=0"`
	Rating      *float64 `json:"rating"      validate:"omitnil,min=0,max=5"`
	Image       *string  `json:"image"`
}

// ProductUpdateDto represents a partial update. Only non-nil fields are
// applied; price and stock are revalidated, rating and image are assigned as
// given with no extra validation.
type ProductUpdateDto struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0"`
	Stock       *int     `json:"stock" validate:"omitnil,min=0"`
	Rating      *float64 `json:"rating"`
	Image       *string  `json:"image"`
}

// isEmpty reports whether the patch carries no fields at all.
func (p *ProductUpdateDto) isEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Description == nil &&
		p.Price == nil && p.Stock == nil && p.Rating == nil && p.Image == nil
}

// FindAll retrieves all products and returns them as ProductDtos.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return toDtos(products), nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toDto(product), nil
}

// FindByCategory retrieves products matching the category substring.
func (s *Service) FindByCategory(ctx context.Context, category string) ([]ProductDto, error) {
	products, err := s.repository.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by category %q: %w", category, err)
	}
	return toDtos(products), nil
}

// Create validates the input, applies creation-time normalization and
// defaults, and stores the new product.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)
	product.Description = strings.TrimSpace(product.Description)

	if err := s.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	record := store.Product{
		Name:        product.Name,
		Category:    NormalizeCategory(product.Category),
		Description: product.Description,
		Price:       *product.Price,
		Stock:       *product.Stock,
	}
	// Explicit presence checks: a provided zero rating or empty image string
	// is kept, only an absent field falls back to the default.
	if product.Rating != nil {
		record.Rating = *product.Rating
	}
	if product.Image != nil {
		record.Image = *product.Image
	} else {
		record.Image = PlaceholderImage(product.Name)
	}

	created, err := s.repository.Insert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(created), nil
}

// Update applies a partial update to the product with the given ID.
// Creation-time defaults and category normalization do not apply here: an
// absent field means "do not touch", not "use the default".
func (s *Service) Update(ctx context.Context, id string, patch ProductUpdateDto) (*ProductDto, error) {
	if patch.isEmpty() {
		return nil, catalogerrors.ErrEmptyUpdate
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("invalid product update: %w", err)
	}

	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	record := *current
	if patch.Name != nil {
		record.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		record.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Description != nil {
		record.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		record.Price = *patch.Price
	}
	if patch.Stock != nil {
		record.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		record.Rating = *patch.Rating
	}
	if patch.Image != nil {
		record.Image = *patch.Image
	}

	updated, err := s.repository.Replace(ctx, id, record)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	return s.repository.DeleteByID(ctx, id)
}

// NormalizeCategory guarantees the brand marker is present in the category.
// Already-marked categories pass through unchanged, so the normalization is
// idempotent.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.Contains(category, brandMarker) {
		return category
	}
	return category + " " + brandMarker
}

// PlaceholderImage builds the default image URL embedding the product name.
func PlaceholderImage(name string) string {
	return "https://via.placeholder.com/300x200?text=" + brandMarker + "+" + url.QueryEscape(name)
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Rating:      product.Rating,
		Image:       product.Image,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, item := range products {
		dtos[i] = *toDto(&item)
	}
	return dtos
}

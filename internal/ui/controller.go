// Package ui holds the client-side catalog state: the held product list, the
// search and category filters, and the modal form state machine. Local state
// only ever changes after server confirmation; failures surface as notices and
// leave the held state untouched.
package ui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/omlco/catalog/internal/client"
)

// CategoryAll is the passthrough category filter value.
const CategoryAll = "all"

// ModalMode enumerates the modal form states.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
)

// ProductAPI is the slice of the catalog client the controller needs.
// Satisfied by *client.Client.
type ProductAPI interface {
	GetProducts(ctx context.Context) ([]client.Product, error)
	CreateProduct(ctx context.Context, req client.CreateProduct) (*client.Product, error)
	UpdateProduct(ctx context.Context, id string, req client.UpdateProduct) (*client.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Controller orchestrates the catalog UI state.
type Controller struct {
	api    ProductAPI
	notify func(message string)

	products       []client.Product
	searchTerm     string
	categoryFilter string

	modalMode ModalMode
	editing   *client.Product
}

// NewController creates a controller over the given API. notify receives
// user-visible notices (load/save/delete failures) and may be nil.
func NewController(api ProductAPI, notify func(string)) *Controller {
	if notify == nil {
		notify = func(string) {}
	}
	return &Controller{
		api:            api,
		notify:         notify,
		categoryFilter: CategoryAll,
	}
}

// Load fetches the full product list once and stores it. On failure the held
// list stays empty and a notice is surfaced.
func (c *Controller) Load(ctx context.Context) error {
	list, err := c.api.GetProducts(ctx)
	if err != nil {
		c.notify("Failed to load products: " + err.Error())
		return err
	}
	c.products = list
	return nil
}

// Products returns the held list as last confirmed by the server.
func (c *Controller) Products() []client.Product {
	return c.products
}

// SetSearchTerm updates the free-text search term.
func (c *Controller) SetSearchTerm(term string) {
	c.searchTerm = term
}

// SetCategoryFilter updates the selected category filter; CategoryAll disables it.
func (c *Controller) SetCategoryFilter(category string) {
	if category == "" {
		category = CategoryAll
	}
	c.categoryFilter = category
}

// Visible derives the filtered view from the current held list and filters.
// It is recomputed on every call; no filtered copy is stored.
func (c *Controller) Visible() []client.Product {
	return FilterProducts(c.products, c.searchTerm, c.categoryFilter)
}

// FilterProducts is the pure derivation behind Visible: case-insensitive
// substring match on name or description, and exact category match unless the
// filter is CategoryAll.
func FilterProducts(products []client.Product, searchTerm, categoryFilter string) []client.Product {
	needle := strings.ToLower(searchTerm)
	visible := make([]client.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
		matchesCategory := categoryFilter == CategoryAll || p.Category == categoryFilter
		if matchesSearch && matchesCategory {
			visible = append(visible, p)
		}
	}
	return visible
}

// Categories returns the distinct categories of the held list, sorted, for
// the category filter options.
func (c *Controller) Categories() []string {
	seen := make(map[string]struct{}, len(c.products))
	categories := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

// ModalMode reports the current modal state.
func (c *Controller) ModalMode() ModalMode {
	return c.modalMode
}

// Editing returns the product currently being edited, or nil.
func (c *Controller) Editing() *client.Product {
	return c.editing
}

// OpenCreate opens the modal in create mode.
func (c *Controller) OpenCreate() {
	c.modalMode = ModalCreate
	c.editing = nil
}

// OpenEdit opens the modal in edit mode for the given product.
func (c *Controller) OpenEdit(product client.Product) {
	c.modalMode = ModalEdit
	c.editing = &product
}

// Cancel closes the modal, discarding in-progress form edits.
func (c *Controller) Cancel() {
	c.modalMode = ModalClosed
	c.editing = nil
}

// Submit validates the form and sends it to the server. The held list is
// reconciled with the server-returned product only on success, then the modal
// closes. On any failure the held list and modal state are unchanged.
func (c *Controller) Submit(ctx context.Context, form ProductForm) error {
	fields, err := form.parse()
	if err != nil {
		return err
	}

	switch c.modalMode {
	case ModalCreate:
		created, err := c.api.CreateProduct(ctx, fields.toCreate())
		if err != nil {
			c.notify("Failed to save product: " + err.Error())
			return err
		}
		c.products = append(c.products, *created)
	case ModalEdit:
		updated, err := c.api.UpdateProduct(ctx, c.editing.ID, fields.toUpdate())
		if err != nil {
			c.notify("Failed to save product: " + err.Error())
			return err
		}
		for i, p := range c.products {
			if p.ID == updated.ID {
				c.products[i] = *updated
				break
			}
		}
	default:
		return fmt.Errorf("no form is open")
	}

	c.Cancel()
	return nil
}

// Delete asks for explicit confirmation, then removes the product on the
// server and reconciles the held list by id.
func (c *Controller) Delete(ctx context.Context, id string, confirm func(client.Product) bool) error {
	var target *client.Product
	for i := range c.products {
		if c.products[i].ID == id {
			target = &c.products[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("product %s is not in the list", id)
	}
	if confirm != nil && !confirm(*target) {
		return nil
	}

	if err := c.api.DeleteProduct(ctx, id); err != nil {
		c.notify("Failed to delete product: " + err.Error())
		return err
	}

	kept := make([]client.Product, 0, len(c.products))
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	return nil
}

// ProductForm carries raw form input, everything as text, the way a form
// widget holds it.
type ProductForm struct {
	Name        string
	Category    string
	Description string
	Price       string
	Stock       string
	Rating      string
	Image       string
}

// FormFromProduct prefills a form for editing an existing product.
func FormFromProduct(p client.Product) ProductForm {
	return ProductForm{
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock:       strconv.Itoa(p.Stock),
		Rating:      strconv.FormatFloat(p.Rating, 'f', -1, 64),
		Image:       p.Image,
	}
}

// FormError reports per-field validation failures of a submitted form.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range [...]string{"name", "category", "description", "price", "stock", "rating"} {
		if msg, ok := e.Fields[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// parsedForm is a validated form with numeric fields converted.
type parsedForm struct {
	name        string
	category    string
	description string
	price       float64
	stock       int
	rating      *float64
	image       *string
}

// parse validates the raw form input and converts the numeric fields.
func (f ProductForm) parse() (*parsedForm, error) {
	fields := make(map[string]string)
	parsed := &parsedForm{
		name:        strings.TrimSpace(f.Name),
		category:    strings.TrimSpace(f.Category),
		description: strings.TrimSpace(f.Description),
	}

	if parsed.name == "" {
		fields["name"] = "name is required"
	}
	if parsed.category == "" {
		fields["category"] = "category is required"
	}
	if parsed.description == "" {
		fields["description"] = "description is required"
	}

	if strings.TrimSpace(f.Price) == "" {
		fields["price"] = "price is required"
	} else if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
		fields["price"] = "price must be a positive number"
	} else {
		parsed.price = price
	}

	if strings.TrimSpace(f.Stock) == "" {
		fields["stock"] = "stock is required"
	} else if stock, err := strconv.Atoi(f.Stock); err != nil || stock < 0 {
		fields["stock"] = "stock must be a non-negative integer"
	} else {
		parsed.stock = stock
	}

	if strings.TrimSpace(f.Rating) != "" {
		rating, err := strconv.ParseFloat(f.Rating, 64)
		if err != nil {
			fields["rating"] = "rating must be a number"
		} else {
			parsed.rating = &rating
		}
	}
	if f.Image != "" {
		image := f.Image
		parsed.image = &image
	}

	if len(fields) > 0 {
		return nil, &FormError{Fields: fields}
	}
	return parsed, nil
}

// toCreate builds the create payload; absent rating/image stay nil so the
// server applies its defaults.
func (p *parsedForm) toCreate() client.CreateProduct {
	return client.CreateProduct{
		Name:        p.name,
		Category:    p.category,
		Description: p.description,
		Price:       p.price,
		Stock:       p.stock,
		Rating:      p.rating,
		Image:       p.image,
	}
}

// toUpdate builds the edit payload. The form is prefilled from the product
// being edited, so every populated field is sent; an emptied rating or image
// is simply not touched.
func (p *parsedForm) toUpdate() client.UpdateProduct {
	return client.UpdateProduct{
		Name:        &p.name,
		Category:    &p.category,
		Description: &p.description,
		Price:       &p.price,
		Stock:       &p.stock,
		Rating:      p.rating,
		Image:       p.image,
	}
}

package ui

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/omlco/catalog/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory stand-in for the catalog client. Any method with a
// non-nil error configured fails without touching the fake's state.
type fakeAPI struct {
	products []client.Product
	error    error
	nextID   int

	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeAPI) GetProducts(_ context.Context) ([]client.Product, error) {
	if f.error != nil {
		return nil, f.error
	}
	return append([]client.Product(nil), f.products...), nil
}

func (f *fakeAPI) CreateProduct(_ context.Context, req client.CreateProduct) (*client.Product, error) {
	f.createCalls++
	if f.error != nil {
		return nil, f.error
	}
	f.nextID++
	p := client.Product{
		ID:          "srv-" + strconv.Itoa(f.nextID),
		Name:        req.Name,
		Category:    req.Category + " OML",
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       "https://via.placeholder.com/300x200?text=OML+" + req.Name,
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, id string, req client.UpdateProduct) (*client.Product, error) {
	f.updateCalls++
	if f.error != nil {
		return nil, f.error
	}
	for i := range f.products {
		if f.products[i].ID != id {
			continue
		}
		p := &f.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Rating != nil {
			p.Rating = *req.Rating
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		result := *p
		return &result, nil
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Product with ID " + id + " not found"}
}

func (f *fakeAPI) DeleteProduct(_ context.Context, id string) error {
	f.deleteCalls++
	if f.error != nil {
		return f.error
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return &client.APIError{StatusCode: 404, Message: "Product with ID " + id + " not found"}
}

func heldProducts() []client.Product {
	return []client.Product{
		{ID: "1", Name: "Зелье правды", Category: "Зелья OML", Description: "говорит правду", Price: 499, Stock: 56, Rating: 4.6},
		{ID: "2", Name: "Метла", Category: "Транспорт OML", Description: "быстрая и тихая", Price: 3999, Stock: 11, Rating: 4.9},
		{ID: "3", Name: "Шапка-невидимка", Category: "Одежда OML", Description: "скрывает полностью", Price: 899, Stock: 27, Rating: 4.5},
	}
}

func loadedController(t *testing.T, api *fakeAPI) *Controller {
	t.Helper()
	ctrl := NewController(api, nil)
	require.NoError(t, ctrl.Load(context.Background()))
	return ctrl
}

func Test_Controller_Load(t *testing.T) {
	t.Run("Success - held list mirrors the server", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		var notices []string
		ctrl := NewController(api, func(msg string) { notices = append(notices, msg) })

		// when
		err := ctrl.Load(context.Background())

		// then
		require.NoError(t, err)
		assert.Len(t, ctrl.Products(), 3)
		assert.Empty(t, notices)
	})

	t.Run("Error - notice surfaced, list stays empty", func(t *testing.T) {
		// given
		api := &fakeAPI{error: errors.New("connection refused")}
		var notices []string
		ctrl := NewController(api, func(msg string) { notices = append(notices, msg) })

		// when
		err := ctrl.Load(context.Background())

		// then
		require.Error(t, err)
		assert.Empty(t, ctrl.Products())
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0], "Failed to load products")
	})
}

func Test_FilterProducts(t *testing.T) {
	products := heldProducts()

	testCases := []struct {
		name        string
		searchTerm  string
		category    string
		expectedIDs []string
	}{
		{name: "no filters", searchTerm: "", category: CategoryAll, expectedIDs: []string{"1", "2", "3"}},
		{name: "search matches name", searchTerm: "метла", category: CategoryAll, expectedIDs: []string{"2"}},
		{name: "search matches description", searchTerm: "правду", category: CategoryAll, expectedIDs: []string{"1"}},
		{name: "search is case-insensitive", searchTerm: "МЕТЛА", category: CategoryAll, expectedIDs: []string{"2"}},
		{name: "exact category", searchTerm: "", category: "Одежда OML", expectedIDs: []string{"3"}},
		{name: "category must match exactly", searchTerm: "", category: "Одежда", expectedIDs: []string{}},
		{name: "search and category combine", searchTerm: "тихая", category: "Транспорт OML", expectedIDs: []string{"2"}},
		{name: "no match yields empty view", searchTerm: "дракон", category: CategoryAll, expectedIDs: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			visible := FilterProducts(products, tc.searchTerm, tc.category)
			// then
			ids := make([]string, 0, len(visible))
			for _, p := range visible {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func Test_Controller_Visible_DoesNotMutateHeldList(t *testing.T) {
	// given
	api := &fakeAPI{products: heldProducts()}
	ctrl := loadedController(t, api)

	// when: a search with no matches
	ctrl.SetSearchTerm("дракон")

	// then: the view is empty but the held list is intact
	assert.Empty(t, ctrl.Visible())
	assert.Len(t, ctrl.Products(), 3)

	// and clearing the term restores the full view without a reload
	ctrl.SetSearchTerm("")
	assert.Len(t, ctrl.Visible(), 3)
}

func Test_Controller_Categories(t *testing.T) {
	// given
	api := &fakeAPI{products: append(heldProducts(), client.Product{ID: "4", Name: "Эликсир", Category: "Зелья OML"})}
	ctrl := loadedController(t, api)

	// when
	categories := ctrl.Categories()

	// then: distinct and sorted
	assert.Equal(t, []string{"Зелья OML", "Одежда OML", "Транспорт OML"}, categories)
}

func Test_Controller_SetCategoryFilter_EmptyMeansAll(t *testing.T) {
	api := &fakeAPI{products: heldProducts()}
	ctrl := loadedController(t, api)

	ctrl.SetCategoryFilter("Зелья OML")
	require.Len(t, ctrl.Visible(), 1)

	ctrl.SetCategoryFilter("")
	assert.Len(t, ctrl.Visible(), 3)
}

func Test_Controller_Submit_Create(t *testing.T) {
	t.Run("Success - server record appended, modal closed", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		ctrl := loadedController(t, api)
		ctrl.OpenCreate()

		// when
		err := ctrl.Submit(context.Background(), ProductForm{
			Name: "Котелок", Category: "Посуда", Description: "антипригарный",
			Price: "2499", Stock: "8",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, ModalClosed, ctrl.ModalMode())
		require.Len(t, ctrl.Products(), 4)
		added := ctrl.Products()[3]
		assert.Equal(t, "srv-1", added.ID, "the server-confirmed record is held, not the local form")
		assert.Equal(t, "Посуда OML", added.Category)
	})

	t.Run("Error - invalid form never reaches the API", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		ctrl := loadedController(t, api)
		ctrl.OpenCreate()

		// when
		err := ctrl.Submit(context.Background(), ProductForm{
			Name: "Котелок", Price: "-1", Stock: "x",
		})

		// then
		var formErr *FormError
		require.ErrorAs(t, err, &formErr)
		assert.Contains(t, formErr.Fields, "category")
		assert.Contains(t, formErr.Fields, "description")
		assert.Contains(t, formErr.Fields, "price")
		assert.Contains(t, formErr.Fields, "stock")
		assert.Zero(t, api.createCalls)
		assert.Equal(t, ModalCreate, ctrl.ModalMode(), "modal stays open for another attempt")
		assert.Len(t, ctrl.Products(), 3)
	})

	t.Run("Error - API failure leaves list and modal untouched", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		var notices []string
		ctrl := NewController(api, func(msg string) { notices = append(notices, msg) })
		require.NoError(t, ctrl.Load(context.Background()))
		ctrl.OpenCreate()
		api.error = errors.New("server down")

		// when
		err := ctrl.Submit(context.Background(), ProductForm{
			Name: "Котелок", Category: "Посуда", Description: "антипригарный",
			Price: "2499", Stock: "8",
		})

		// then
		require.Error(t, err)
		assert.Len(t, ctrl.Products(), 3)
		assert.Equal(t, ModalCreate, ctrl.ModalMode())
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0], "Failed to save product")
	})
}

func Test_Controller_Submit_Edit(t *testing.T) {
	// given
	api := &fakeAPI{products: heldProducts()}
	ctrl := loadedController(t, api)
	ctrl.OpenEdit(ctrl.Products()[1])

	form := FormFromProduct(ctrl.Products()[1])
	form.Price = "4500"

	// when
	err := ctrl.Submit(context.Background(), form)

	// then: the held entry is replaced in place by the server record
	require.NoError(t, err)
	assert.Equal(t, ModalClosed, ctrl.ModalMode())
	assert.Nil(t, ctrl.Editing())
	require.Len(t, ctrl.Products(), 3)
	assert.Equal(t, "2", ctrl.Products()[1].ID)
	assert.Equal(t, float64(4500), ctrl.Products()[1].Price)
	assert.Equal(t, "Метла", ctrl.Products()[1].Name)
}

func Test_Controller_Submit_NoModalOpen(t *testing.T) {
	api := &fakeAPI{products: heldProducts()}
	ctrl := loadedController(t, api)

	err := ctrl.Submit(context.Background(), FormFromProduct(ctrl.Products()[0]))

	require.Error(t, err)
	assert.Zero(t, api.createCalls)
	assert.Zero(t, api.updateCalls)
}

func Test_Controller_Cancel(t *testing.T) {
	api := &fakeAPI{products: heldProducts()}
	ctrl := loadedController(t, api)

	ctrl.OpenEdit(ctrl.Products()[0])
	require.Equal(t, ModalEdit, ctrl.ModalMode())

	ctrl.Cancel()

	assert.Equal(t, ModalClosed, ctrl.ModalMode())
	assert.Nil(t, ctrl.Editing())
	assert.Len(t, ctrl.Products(), 3, "cancel discards the form, not the data")
}

func Test_Controller_Delete(t *testing.T) {
	t.Run("Success - confirmed delete reconciles the held list", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		ctrl := loadedController(t, api)
		var asked client.Product

		// when
		err := ctrl.Delete(context.Background(), "2", func(p client.Product) bool {
			asked = p
			return true
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "Метла", asked.Name, "confirmation shows the target product")
		assert.Equal(t, 1, api.deleteCalls)
		ids := make([]string, 0, 2)
		for _, p := range ctrl.Products() {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"1", "3"}, ids)
	})

	t.Run("Success - declined confirmation is a no-op", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		ctrl := loadedController(t, api)

		// when
		err := ctrl.Delete(context.Background(), "2", func(client.Product) bool { return false })

		// then
		require.NoError(t, err)
		assert.Zero(t, api.deleteCalls)
		assert.Len(t, ctrl.Products(), 3)
	})

	t.Run("Error - API failure keeps the product in the list", func(t *testing.T) {
		// given
		api := &fakeAPI{products: heldProducts()}
		var notices []string
		ctrl := NewController(api, func(msg string) { notices = append(notices, msg) })
		require.NoError(t, ctrl.Load(context.Background()))
		api.error = errors.New("server down")

		// when
		err := ctrl.Delete(context.Background(), "2", func(client.Product) bool { return true })

		// then
		require.Error(t, err)
		assert.Len(t, ctrl.Products(), 3)
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0], "Failed to delete product")
	})

	t.Run("Error - unknown id", func(t *testing.T) {
		api := &fakeAPI{products: heldProducts()}
		ctrl := loadedController(t, api)

		err := ctrl.Delete(context.Background(), "missing", nil)

		require.Error(t, err)
		assert.Zero(t, api.deleteCalls)
	})
}

func Test_FormFromProduct_RoundTrip(t *testing.T) {
	// given
	p := heldProducts()[0]

	// when
	form := FormFromProduct(p)

	// then
	assert.Equal(t, "499", form.Price)
	assert.Equal(t, "56", form.Stock)
	assert.Equal(t, "4.6", form.Rating)
}

package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omlco/catalog/internal/client"
	"github.com/omlco/catalog/internal/service"
	"github.com/omlco/catalog/internal/store"
	"github.com/omlco/catalog/internal/transport/rest"
	"github.com/omlco/catalog/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the real handler stack over a seeded in-memory store so
// the client is tested against the actual wire behavior.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	mux := server.NewChiRouter(logger)
	rest.NewHandler(service.NewService(store.NewMemoryStore(store.DefaultCatalog())), logger).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func fptr(v float64) *float64 { return &v }

func Test_Client_GetProducts(t *testing.T) {
	// given
	api := client.New(newTestServer(t).URL)

	// when
	list, err := api.GetProducts(context.Background())

	// then
	require.NoError(t, err)
	require.Len(t, list, 12)
	assert.Equal(t, "1", list[0].ID)
	assert.NotEmpty(t, list[0].Name)
}

func Test_Client_GetProduct(t *testing.T) {
	api := client.New(newTestServer(t).URL)

	t.Run("Success - product found", func(t *testing.T) {
		product, err := api.GetProduct(context.Background(), "3")
		require.NoError(t, err)
		assert.Equal(t, "3", product.ID)
	})

	t.Run("Error - not found becomes APIError", func(t *testing.T) {
		product, err := api.GetProduct(context.Background(), "missing")
		assert.Nil(t, product)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Product with ID missing not found", apiErr.Message)
	})
}

func Test_Client_GetProductsByCategory(t *testing.T) {
	// given
	api := client.New(newTestServer(t).URL)

	// when: cyrillic category goes through path escaping
	list, err := api.GetProductsByCategory(context.Background(), "зелья")

	// then
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, p := range list {
		assert.Contains(t, p.Category, "Зелья")
	}
}

func Test_Client_CreateProduct(t *testing.T) {
	t.Run("Success - server defaults applied when rating and image omitted", func(t *testing.T) {
		// given
		api := client.New(newTestServer(t).URL)

		// when
		created, err := api.CreateProduct(context.Background(), client.CreateProduct{
			Name:        "Котелок",
			Category:    "Посуда",
			Description: "антипригарный",
			Price:       2499,
			Stock:       8,
		})

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Посуда OML", created.Category)
		assert.Zero(t, created.Rating)
		assert.NotEmpty(t, created.Image)
	})

	t.Run("Error - validation failure carries the server message", func(t *testing.T) {
		api := client.New(newTestServer(t).URL)

		created, err := api.CreateProduct(context.Background(), client.CreateProduct{
			Name:        "Котелок",
			Category:    "Посуда",
			Description: "антипригарный",
			Price:       -1,
			Stock:       8,
		})

		assert.Nil(t, created)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.NotEmpty(t, apiErr.Message)
	})
}

func Test_Client_UpdateProduct(t *testing.T) {
	t.Run("Success - only the sent field changes", func(t *testing.T) {
		// given
		api := client.New(newTestServer(t).URL)
		before, err := api.GetProduct(context.Background(), "1")
		require.NoError(t, err)

		// when
		updated, err := api.UpdateProduct(context.Background(), "1", client.UpdateProduct{
			Price: fptr(100),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, float64(100), updated.Price)
		assert.Equal(t, before.Name, updated.Name)
		assert.Equal(t, before.Stock, updated.Stock)
	})

	t.Run("Error - empty patch", func(t *testing.T) {
		api := client.New(newTestServer(t).URL)

		updated, err := api.UpdateProduct(context.Background(), "1", client.UpdateProduct{})

		assert.Nil(t, updated)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "No fields to update", apiErr.Message)
	})
}

func Test_Client_DeleteProduct(t *testing.T) {
	// given
	api := client.New(newTestServer(t).URL)

	// when / then: delete succeeds once, then reports not found
	require.NoError(t, api.DeleteProduct(context.Background(), "1"))

	err := api.DeleteProduct(context.Background(), "1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	list, err := api.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 11)
}

func Test_Client_ConnectionError(t *testing.T) {
	// given: a server that is already gone
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	api := client.New(srv.URL)

	// when
	_, err := api.GetProducts(context.Background())

	// then: transport failures are plain errors, not APIError
	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}

package store

import (
	"context"
	"testing"

	catalogerrors "github.com/omlco/catalog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []Product {
	return []Product{
		{ID: "1", Name: "Зелье правды", Category: "Зелья OML", Description: "говорит правду", Price: 499, Stock: 56, Rating: 4.6, Image: "img-1"},
		{ID: "2", Name: "Метла", Category: "Транспорт OML", Description: "быстрая", Price: 3999, Stock: 11, Rating: 4.9, Image: "img-2"},
		{ID: "3", Name: "Шапка", Category: "Одежда OML", Description: "невидимая", Price: 899, Stock: 27, Rating: 4.5, Image: "img-3"},
	}
}

func Test_MemoryStore_FindAll_PreservesInsertionOrder(t *testing.T) {
	// given
	s := NewMemoryStore(testSeed())

	// when
	list, err := s.FindAll(context.Background())

	// then
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func Test_MemoryStore_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		id          string
		expectError error
	}{
		{name: "Success - product found", id: "2", expectError: nil},
		{name: "Error - product not found", id: "missing", expectError: catalogerrors.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := NewMemoryStore(testSeed())
			// when
			found, err := s.FindByID(context.Background(), tc.id)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, found.ID)
		})
	}
}

func Test_MemoryStore_FindByCategory(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		expectedIDs []string
	}{
		{name: "exact match", category: "Зелья OML", expectedIDs: []string{"1"}},
		{name: "case-insensitive cyrillic substring", category: "зелья", expectedIDs: []string{"1"}},
		{name: "upper-case substring", category: "ТРАНСПОРТ", expectedIDs: []string{"2"}},
		{name: "marker substring matches everything", category: "oml", expectedIDs: []string{"1", "2", "3"}},
		{name: "no match is empty, not an error", category: "посуда", expectedIDs: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := NewMemoryStore(testSeed())
			// when
			list, err := s.FindByCategory(context.Background(), tc.category)
			// then
			require.NoError(t, err)
			ids := make([]string, 0, len(list))
			for _, p := range list {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func Test_MemoryStore_Insert_AssignsUniqueIDs(t *testing.T) {
	// given
	s := NewMemoryStore(testSeed())
	seen := map[string]bool{"1": true, "2": true, "3": true}

	// when
	for i := 0; i < 100; i++ {
		created, err := s.Insert(context.Background(), Product{Name: "Котелок", Category: "Посуда OML"})
		require.NoError(t, err)
		// then
		assert.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID], "ID %s was assigned twice", created.ID)
		seen[created.ID] = true
	}

	list, err := s.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 103)
	assert.Equal(t, "1", list[0].ID, "seed products stay in front")
}

func Test_MemoryStore_Replace(t *testing.T) {
	t.Run("Success - product replaced in place", func(t *testing.T) {
		// given
		s := NewMemoryStore(testSeed())
		// when
		updated, err := s.Replace(context.Background(), "2", Product{Name: "Метла Pro", Category: "Транспорт OML", Price: 4999})
		// then
		require.NoError(t, err)
		assert.Equal(t, "2", updated.ID, "ID is immutable")
		list, err := s.FindAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Метла Pro", list[1].Name, "position in the collection is kept")
	})

	t.Run("Error - product not found", func(t *testing.T) {
		// given
		s := NewMemoryStore(testSeed())
		// when
		updated, err := s.Replace(context.Background(), "missing", Product{Name: "x"})
		// then
		assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)
		assert.Nil(t, updated)
	})
}

func Test_MemoryStore_DeleteByID(t *testing.T) {
	// given
	s := NewMemoryStore(testSeed())

	// when: first delete succeeds
	err := s.DeleteByID(context.Background(), "2")

	// then
	require.NoError(t, err)
	list, listErr := s.FindAll(context.Background())
	require.NoError(t, listErr)
	assert.Equal(t, []string{"1", "3"}, []string{list[0].ID, list[1].ID}, "exactly one entry removed, order kept")

	_, findErr := s.FindByID(context.Background(), "2")
	assert.ErrorIs(t, findErr, catalogerrors.ErrProductNotFound)

	// when: second delete of the same id
	err = s.DeleteByID(context.Background(), "2")

	// then
	assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)

	// later lookups still work against the reindexed collection
	found, err := s.FindByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Шапка", found.Name)
}

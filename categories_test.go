package main

import (
	"context"
	"net/http"
	"testing"

	"pocketbook/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCategories tests the GET /api/categories endpoint
func TestGetCategories(t *testing.T) {
	require.NoError(t, cleanupTestData())

	t.Run("should return only Uncategorized on a fresh store", func(t *testing.T) {
		resp := makeRequest("GET", "/api/categories", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		var categories []Category
		require.NoError(t, parseJSONResponse(resp, &categories))
		require.Len(t, categories, 1)
		assert.Equal(t, store.UncategorizedCategoryID.String(), categories[0].ID)
		assert.Equal(t, "Uncategorized", categories[0].Name)
	})

	t.Run("should order by sort order then name", func(t *testing.T) {
		_, err := createTestCategory("Salary", "income", 2)
		require.NoError(t, err)
		_, err = createTestCategory("Rent", "expense", 1)
		require.NoError(t, err)
		_, err = createTestCategory("Food", "expense", 1)
		require.NoError(t, err)

		resp := makeRequest("GET", "/api/categories", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var categories []Category
		require.NoError(t, parseJSONResponse(resp, &categories))
		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, category.Name)
		}
		assert.Equal(t, []string{"Uncategorized", "Food", "Rent", "Salary"}, names)
	})
}

// TestCreateCategory tests the POST /api/categories endpoint
func TestCreateCategory(t *testing.T) {
	require.NoError(t, cleanupTestData())

	t.Run("should create category", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/categories", map[string]interface{}{
			"name":      "Salary",
			"type":      "Income",
			"sortOrder": 3,
		})

		assertStatusCode(t, http.StatusCreated, resp.Code)
		var created Category
		require.NoError(t, parseJSONResponse(resp, &created))
		assert.Equal(t, "Salary", created.Name)
		assert.Equal(t, "income", created.Type)
		assert.Equal(t, 3, created.SortOrder)
		assert.False(t, created.IsArchived)
	})

	t.Run("should default type to expense", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/categories", map[string]interface{}{"name": "Misc"})

		assertStatusCode(t, http.StatusCreated, resp.Code)
		var created Category
		require.NoError(t, parseJSONResponse(resp, &created))
		assert.Equal(t, "expense", created.Type)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/categories", map[string]interface{}{"name": "", "type": "expense"})

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should fail with unknown type", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/categories", map[string]interface{}{"name": "Gifts", "type": "transfer"})

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestGetCategory tests the GET /api/categories/:id endpoint
func TestGetCategory(t *testing.T) {
	require.NoError(t, cleanupTestData())

	t.Run("should return 404 for unknown id", func(t *testing.T) {
		resp := makeRequest("GET", "/api/categories/"+uuid.NewString(), nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should always return Uncategorized as active", func(t *testing.T) {
		resp := makeRequest("GET", "/api/categories/"+store.UncategorizedCategoryID.String(), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		var category Category
		require.NoError(t, parseJSONResponse(resp, &category))
		assert.False(t, category.IsArchived)
	})
}

// TestUpdateCategory tests the PUT /api/categories/:id endpoint
func TestUpdateCategory(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "0")
	require.NoError(t, err)

	t.Run("should replace name, type and sort order", func(t *testing.T) {
		category, err := createTestCategory("Food", "expense", 1)
		require.NoError(t, err)

		resp := makeJSONRequest("PUT", "/api/categories/"+category.ID.String(), map[string]interface{}{
			"name":      "Groceries",
			"type":      "expense",
			"sortOrder": 5,
		})
		assertStatusCode(t, http.StatusNoContent, resp.Code)

		got, err := repo.GetCategory(context.Background(), category.ID)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", got.Name)
		assert.Equal(t, 5, got.SortOrder)
	})

	t.Run("should reassign transactions when archived through update", func(t *testing.T) {
		category, err := createTestCategory("Travel", "expense", 2)
		require.NoError(t, err)
		transaction, err := createTestTransaction(account.ID, category.ID, "2024-05-01", "-300", "Flight")
		require.NoError(t, err)

		resp := makeJSONRequest("PUT", "/api/categories/"+category.ID.String(), map[string]interface{}{
			"name":       "Travel",
			"type":       "expense",
			"isArchived": true,
		})
		assertStatusCode(t, http.StatusNoContent, resp.Code)

		resp = makeRequest("GET", "/api/categories/"+category.ID.String(), nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)

		got, err := repo.GetTransaction(context.Background(), transaction.ID)
		require.NoError(t, err)
		assert.Equal(t, store.UncategorizedCategoryID, got.CategoryID)
	})

	t.Run("should never archive Uncategorized", func(t *testing.T) {
		resp := makeJSONRequest("PUT", "/api/categories/"+store.UncategorizedCategoryID.String(), map[string]interface{}{
			"name":       "Uncategorized",
			"type":       "expense",
			"isArchived": true,
		})
		assertStatusCode(t, http.StatusNoContent, resp.Code)

		resp = makeRequest("GET", "/api/categories/"+store.UncategorizedCategoryID.String(), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)
	})

	t.Run("should return 404 for unknown category", func(t *testing.T) {
		resp := makeJSONRequest("PUT", "/api/categories/"+uuid.NewString(), map[string]interface{}{"name": "Ghost"})

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 400 for invalid id", func(t *testing.T) {
		resp := makeJSONRequest("PUT", "/api/categories/invalid-uuid", map[string]interface{}{"name": "Ghost"})

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		var errorResp map[string]interface{}
		assertNoError(t, parseJSONResponse(resp, &errorResp))
		assert.Equal(t, "Invalid category ID", errorResp["error"])
	})
}

// TestDeleteCategory tests the DELETE /api/categories/:id endpoint
func TestDeleteCategory(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "0")
	require.NoError(t, err)
	category, err := createTestCategory("Food", "expense", 1)
	require.NoError(t, err)
	transaction, err := createTestTransaction(account.ID, category.ID, "2024-05-01", "-10", "Lunch")
	require.NoError(t, err)

	t.Run("should archive category and move transactions to Uncategorized", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/categories/"+category.ID.String(), nil)
		assertStatusCode(t, http.StatusNoContent, resp.Code)

		got, err := repo.GetTransaction(context.Background(), transaction.ID)
		require.NoError(t, err)
		assert.Equal(t, store.UncategorizedCategoryID, got.CategoryID)
		assert.False(t, got.IsArchived)
	})

	t.Run("should return 404 for archived category", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/categories/"+category.ID.String(), nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should accept deleting Uncategorized without archiving it", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/categories/"+store.UncategorizedCategoryID.String(), nil)
		assertStatusCode(t, http.StatusNoContent, resp.Code)

		got, err := repo.GetCategory(context.Background(), store.UncategorizedCategoryID)
		require.NoError(t, err)
		assert.False(t, got.IsArchived)
	})
}

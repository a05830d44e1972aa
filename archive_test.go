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

func TestArchiveAccounts(t *testing.T) {
	require.NoError(t, cleanupTestData())

	checking, err := createTestAccount("Checking", "0")
	require.NoError(t, err)
	wallet, err := createTestAccount("Wallet", "0")
	require.NoError(t, err)
	savings, err := createTestAccount("Savings", "0")
	require.NoError(t, err)
	category, err := createTestCategory("Food", "expense", 1)
	require.NoError(t, err)

	first, err := createTestTransaction(checking.ID, category.ID, "2024-01-01", "-1", "a")
	require.NoError(t, err)
	second, err := createTestTransaction(wallet.ID, category.ID, "2024-01-02", "-2", "b")
	require.NoError(t, err)
	kept, err := createTestTransaction(savings.ID, category.ID, "2024-01-03", "-3", "c")
	require.NoError(t, err)

	t.Run("successfully archives accounts and cascades to their transactions", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts/archive", ArchiveManyRequest{
			IDs: []string{checking.ID.String(), wallet.ID.String(), checking.ID.String(), uuid.NewString()},
		})
		assert.Equal(t, http.StatusNoContent, resp.Code)

		accounts, err := repo.ListAccounts(context.Background())
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, savings.ID, accounts[0].ID)

		for _, id := range []uuid.UUID{first.ID, second.ID} {
			transaction, err := repo.GetTransactionIncludingArchived(context.Background(), id)
			require.NoError(t, err)
			assert.True(t, transaction.IsArchived)
		}

		transaction, err := repo.GetTransaction(context.Background(), kept.ID)
		require.NoError(t, err)
		assert.False(t, transaction.IsArchived)
	})

	t.Run("archiving again is a no-op", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts/archive", ArchiveManyRequest{IDs: []string{checking.ID.String()}})

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts/archive", ArchiveManyRequest{IDs: []string{}})

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts/archive", ArchiveManyRequest{IDs: []string{"not-a-uuid"}})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		var errorResp map[string]interface{}
		require.NoError(t, parseJSONResponse(resp, &errorResp))
		assert.Contains(t, errorResp["error"], "invalid UUID format")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts/archive", map[string]interface{}{"ids": "all"})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestArchiveCategories(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "0")
	require.NoError(t, err)
	food, err := createTestCategory("Food", "expense", 1)
	require.NoError(t, err)
	fun, err := createTestCategory("Fun", "expense", 2)
	require.NoError(t, err)

	first, err := createTestTransaction(account.ID, food.ID, "2024-01-01", "-1", "a")
	require.NoError(t, err)
	second, err := createTestTransaction(account.ID, fun.ID, "2024-01-02", "-2", "b")
	require.NoError(t, err)

	t.Run("moves transactions to Uncategorized and archives the categories", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/categories/archive", ArchiveManyRequest{
			IDs: []string{food.ID.String(), fun.ID.String(), store.UncategorizedCategoryID.String()},
		})
		assert.Equal(t, http.StatusNoContent, resp.Code)

		for _, id := range []uuid.UUID{first.ID, second.ID} {
			transaction, err := repo.GetTransaction(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, store.UncategorizedCategoryID, transaction.CategoryID)
		}

		categories, err := repo.ListCategories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, store.UncategorizedCategoryID, categories[0].ID)
		assert.False(t, categories[0].IsArchived)
	})

	t.Run("archived categories are filtered from the transaction list", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions?categoryId="+store.UncategorizedCategoryID.String(), nil)
		assert.Equal(t, http.StatusOK, resp.Code)

		var page TransactionPage
		require.NoError(t, parseJSONResponse(resp, &page))
		assert.Equal(t, int64(2), page.TotalCount)
	})
}

func TestArchiveTransactions(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "0")
	require.NoError(t, err)
	category, err := createTestCategory("Food", "expense", 1)
	require.NoError(t, err)
	first, err := createTestTransaction(account.ID, category.ID, "2024-01-01", "-1", "a")
	require.NoError(t, err)
	second, err := createTestTransaction(account.ID, category.ID, "2024-01-02", "-2", "b")
	require.NoError(t, err)

	t.Run("archived transactions are no longer visible", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/transactions/archive", ArchiveManyRequest{IDs: []string{first.ID.String()}})
		assert.Equal(t, http.StatusNoContent, resp.Code)

		resp = makeRequest("GET", "/api/transactions", nil)
		var page TransactionPage
		require.NoError(t, parseJSONResponse(resp, &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, second.ID.String(), page.Items[0].ID)
	})

	t.Run("the account is left untouched", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts/"+account.ID.String(), nil)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

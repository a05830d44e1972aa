package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccounts(t *testing.T) {
	require.NoError(t, cleanupTestData())

	t.Run("should return empty list when no accounts exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, "[]", resp.Body.String())
	})

	t.Run("should return active accounts ordered by name", func(t *testing.T) {
		_, err := createTestAccount("Wallet", "20.00")
		require.NoError(t, err)
		_, err = createTestAccount("Checking", "1500.50")
		require.NoError(t, err)
		archived, err := createTestAccount("Old savings", "0")
		require.NoError(t, err)
		require.NoError(t, repo.DeleteAccount(context.Background(), archived.ID))

		resp := makeRequest("GET", "/api/accounts", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var accounts []Account
		require.NoError(t, parseJSONResponse(resp, &accounts))
		require.Len(t, accounts, 2)
		assert.Equal(t, "Checking", accounts[0].Name)
		assert.True(t, decimal.RequireFromString("1500.50").Equal(accounts[0].Balance))
		assert.Equal(t, "Wallet", accounts[1].Name)
	})

	t.Run("should encode balances as JSON numbers", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts", nil)

		assert.Contains(t, resp.Body.String(), `"balance":1500.5`)
	})
}

func TestGetAccount(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "10")
	require.NoError(t, err)

	t.Run("should return the account", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts/"+account.ID.String(), nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		var got Account
		require.NoError(t, parseJSONResponse(resp, &got))
		assert.Equal(t, account.ID.String(), got.ID)
		assert.False(t, got.IsArchived)
	})

	t.Run("should return 404 for unknown id", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts/"+uuid.NewString(), nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 400 for malformed id", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts/not-a-uuid", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

func TestCreateAccount(t *testing.T) {
	require.NoError(t, cleanupTestData())

	t.Run("should create account with rounded balance", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts", map[string]interface{}{
			"name":    "  Checking  ",
			"balance": 12.345,
		})

		assertStatusCode(t, http.StatusCreated, resp.Code)
		var created Account
		require.NoError(t, parseJSONResponse(resp, &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Checking", created.Name)
		assert.True(t, decimal.RequireFromString("12.35").Equal(created.Balance), created.Balance.String())
		assert.NotZero(t, created.CreatedAt)
		assert.Equal(t, "/api/accounts/"+created.ID, resp.Header().Get("Location"))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts", map[string]interface{}{"name": "   "})

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		var errorResp map[string]interface{}
		assertNoError(t, parseJSONResponse(resp, &errorResp))
		assert.Equal(t, "name cannot be empty", errorResp["error"])
	})

	t.Run("should fail with malformed body", func(t *testing.T) {
		resp := makeJSONRequest("POST", "/api/accounts", map[string]interface{}{"name": 42})

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

func TestUpdateAccount(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "10")
	require.NoError(t, err)

	t.Run("should replace name and balance", func(t *testing.T) {
		resp := makeJSONRequest("PUT", "/api/accounts/"+account.ID.String(), map[string]interface{}{
			"name":    "Main account",
			"balance": "99.90",
		})

		assertStatusCode(t, http.StatusNoContent, resp.Code)

		got, err := repo.GetAccount(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Main account", got.Name)
		assert.True(t, decimal.RequireFromString("99.9").Equal(got.Balance))
	})

	t.Run("should return 404 for unknown account", func(t *testing.T) {
		resp := makeJSONRequest("PUT", "/api/accounts/"+uuid.NewString(), map[string]interface{}{"name": "x"})

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 404 for archived account", func(t *testing.T) {
		archived, err := createTestAccount("Closed", "0")
		require.NoError(t, err)
		require.NoError(t, repo.DeleteAccount(context.Background(), archived.ID))

		resp := makeJSONRequest("PUT", "/api/accounts/"+archived.ID.String(), map[string]interface{}{"name": "Reopened"})

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Checking", "10")
	require.NoError(t, err)
	category, err := createTestCategory("Food", "expense", 1)
	require.NoError(t, err)
	transaction, err := createTestTransaction(account.ID, category.ID, "2024-03-01", "-12.50", "Lunch")
	require.NoError(t, err)

	t.Run("should archive account and its transactions", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/accounts/"+account.ID.String(), nil)
		assertStatusCode(t, http.StatusNoContent, resp.Code)

		resp = makeRequest("GET", "/api/accounts/"+account.ID.String(), nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)

		resp = makeRequest("GET", "/api/transactions/"+transaction.ID.String(), nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)

		archived, err := repo.GetTransactionIncludingArchived(context.Background(), transaction.ID)
		require.NoError(t, err)
		assert.True(t, archived.IsArchived)
	})

	t.Run("should return 404 when deleting again", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/accounts/"+account.ID.String(), nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

func TestGetAccountTransactions(t *testing.T) {
	require.NoError(t, cleanupTestData())

	checking, err := createTestAccount("Checking", "0")
	require.NoError(t, err)
	wallet, err := createTestAccount("Wallet", "0")
	require.NoError(t, err)
	category, err := createTestCategory("Food", "expense", 1)
	require.NoError(t, err)

	older, err := createTestTransaction(checking.ID, category.ID, "2024-01-10", "-5", "Coffee")
	require.NoError(t, err)
	newer, err := createTestTransaction(checking.ID, category.ID, "2024-02-10", "-7", "Lunch")
	require.NoError(t, err)
	_, err = createTestTransaction(wallet.ID, category.ID, "2024-02-11", "-3", "Snack")
	require.NoError(t, err)

	t.Run("should list only the account's transactions newest first", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts/"+checking.ID.String()+"/transactions", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var transactions []Transaction
		require.NoError(t, parseJSONResponse(resp, &transactions))
		require.Len(t, transactions, 2)
		assert.Equal(t, newer.ID.String(), transactions[0].ID)
		assert.Equal(t, older.ID.String(), transactions[1].ID)
		assert.Equal(t, "2024-02-10", transactions[0].BookedOn)
	})

	t.Run("should return 404 for unknown account", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounts/"+uuid.NewString()+"/transactions", nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

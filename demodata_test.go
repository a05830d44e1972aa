package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pocketbook/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoData(t *testing.T) {
	require.NoError(t, cleanupTestData())

	status := func(t *testing.T) DemoDataStatus {
		t.Helper()
		resp := makeRequest("GET", "/api/demo-data/seed", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var result DemoDataStatus
		require.NoError(t, parseJSONResponse(resp, &result))
		return result
	}

	t.Run("no demo data on a fresh store", func(t *testing.T) {
		assert.False(t, status(t).Exists)
	})

	t.Run("clearing without demo data returns 404", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/demo-data/seed", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.JSONEq(t, `{"error":"No demo data to remove."}`, resp.Body.String())
	})

	t.Run("seeding creates accounts, categories and transactions", func(t *testing.T) {
		resp := makeRequest("POST", "/api/demo-data/seed", nil)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.True(t, status(t).Exists)

		var accounts []Account
		require.NoError(t, parseJSONResponse(makeRequest("GET", "/api/accounts", nil), &accounts))
		assert.Len(t, accounts, 2)

		var page TransactionPage
		require.NoError(t, parseJSONResponse(makeRequest("GET", "/api/transactions?pageSize=100", nil), &page))
		assert.Equal(t, int64(11), page.TotalCount)
	})

	t.Run("seeding twice returns 409", func(t *testing.T) {
		resp := makeRequest("POST", "/api/demo-data/seed", nil)

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.JSONEq(t, `{"error":"Demo data has already been created."}`, resp.Body.String())
	})

	t.Run("clearing keeps user rows and moves them off demo categories", func(t *testing.T) {
		account, err := createTestAccount("Mine", "0")
		require.NoError(t, err)

		var categories []Category
		require.NoError(t, parseJSONResponse(makeRequest("GET", "/api/categories", nil), &categories))
		var groceries Category
		for _, c := range categories {
			if c.Name == "Groceries" {
				groceries = c
			}
		}
		require.NotEmpty(t, groceries.ID)

		resp := makeJSONRequest("POST", "/api/transactions", map[string]interface{}{
			"accountId":  account.ID.String(),
			"categoryId": groceries.ID,
			"bookedOn":   "2024-02-01",
			"amount":     -20,
		})
		require.Equal(t, http.StatusCreated, resp.Code)
		var created Transaction
		require.NoError(t, parseJSONResponse(resp, &created))

		resp = makeRequest("DELETE", "/api/demo-data/seed", nil)
		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.False(t, status(t).Exists)

		var accounts []Account
		require.NoError(t, parseJSONResponse(makeRequest("GET", "/api/accounts", nil), &accounts))
		require.Len(t, accounts, 1)
		assert.Equal(t, "Mine", accounts[0].Name)

		var moved Transaction
		require.NoError(t, parseJSONResponse(makeRequest("GET", "/api/transactions/"+created.ID, nil), &moved))
		assert.Equal(t, "00000000-0000-0000-0000-000000000002", moved.CategoryID)
	})

	t.Run("seeding again after clearing succeeds", func(t *testing.T) {
		resp := makeRequest("POST", "/api/demo-data/seed", nil)

		assert.Equal(t, http.StatusCreated, resp.Code)
	})
}

func TestDemoDataRoutesOutsideDevelopment(t *testing.T) {
	cfg := *testConfig
	cfg.Environment = config.EnvProduction
	router := setupRouter(&cfg, zerolog.Nop())

	for _, method := range []string{"GET", "POST", "DELETE"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/demo-data/seed", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusNotFound, recorder.Code)
		})
	}
}

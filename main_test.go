package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"pocketbook/db/memory"
	"pocketbook/internal/config"
	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	testConfig *config.Config
	testRouter *gin.Engine
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true

	testConfig = &config.Config{
		Port:           "8080",
		Environment:    config.EnvDevelopment,
		AllowedOrigins: []string{"http://localhost:5173"},
		RequestTimeout: 5 * time.Second,
		DataBackend:    config.BackendMemory,
	}

	if err := cleanupTestData(); err != nil {
		panic(err)
	}
	testRouter = setupRouter(testConfig, zerolog.Nop())

	os.Exit(m.Run())
}

// cleanupTestData swaps in an empty in-memory store
func cleanupTestData() error {
	repo = store.New(memory.New())
	return nil
}

// createTestAccount creates a test account
func createTestAccount(name, balance string) (store.Account, error) {
	return repo.CreateAccount(context.Background(), store.AccountInput{
		Name:    name,
		Balance: decimal.RequireFromString(balance),
	})
}

// createTestCategory creates a test category
func createTestCategory(name string, entryType store.EntryType, sortOrder int) (store.Category, error) {
	return repo.CreateCategory(context.Background(), store.CategoryInput{
		Name:      name,
		Type:      entryType,
		SortOrder: sortOrder,
	})
}

// createTestTransaction creates a test transaction booked on a YYYY-MM-DD date
func createTestTransaction(accountID, categoryID uuid.UUID, bookedOn, amount, note string) (store.Transaction, error) {
	date, err := time.Parse(dateLayout, bookedOn)
	if err != nil {
		return store.Transaction{}, err
	}
	return repo.CreateTransaction(context.Background(), store.TransactionInput{
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       store.EntryTypeExpense,
		BookedOn:   date,
		Amount:     decimal.RequireFromString(amount),
		Note:       note,
	})
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeJSONRequest marshals payload and sends it as the request body
func makeJSONRequest(method, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return makeRequest(method, url, bytes.NewBuffer(body))
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

package main

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pocketbook/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createCSVFile creates a multipart form with CSV content
func createCSVFile(content string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	// Create form file
	fileWriter, err := writer.CreateFormFile("file", filename)
	if err != nil {
		panic(err)
	}

	// Write CSV content
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		panic(err)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func uploadStatement(accountID, content string) *httptest.ResponseRecorder {
	body, contentType := createCSVFile(content, "statement.csv")

	req := httptest.NewRequest("POST", "/api/accounts/"+accountID+"/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// TestImportStatement tests the POST /api/accounts/:id/import endpoint
func TestImportStatement(t *testing.T) {
	require.NoError(t, cleanupTestData())

	account, err := createTestAccount("Credit Card", "0")
	require.NoError(t, err)
	gas, err := createTestCategory("Gas/Automotive", store.EntryTypeExpense, 1)
	require.NoError(t, err)

	statement := `Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit
2025-10-17,2025-10-20,1111,VALERO GAS STATION,gas/automotive,26.45,
2025-10-20,2025-10-20,2222,REI CLASSES & EVENTS,Other Travel,25.00,
10/18/2025,10/19/2025,2222,PAYMENT THANK YOU,Payment,,500.00
2025-10-21,2025-10-21,2222,NO AMOUNT,Merchandise,,
not-a-date,also-not,2222,BROKEN,Merchandise,5.00,`

	t.Run("should import valid rows and skip the rest", func(t *testing.T) {
		w := uploadStatement(account.ID.String(), statement)

		assert.Equal(t, http.StatusOK, w.Code)
		var result ImportResult
		require.NoError(t, parseJSONResponse(w, &result))
		assert.Equal(t, "CSV imported successfully", result.Message)
		assert.Equal(t, 2, result.SkippedRows)
		require.Len(t, result.Transactions, 3)

		byNote := map[string]Transaction{}
		for _, transaction := range result.Transactions {
			byNote[transaction.Note] = transaction
		}

		gasRow := byNote["VALERO GAS STATION"]
		assert.Equal(t, gas.ID.String(), gasRow.CategoryID)
		assert.Equal(t, "expense", gasRow.Type)
		assert.Equal(t, "-26.45", gasRow.Amount.StringFixed(2))
		assert.Equal(t, "2025-10-17", gasRow.BookedOn)
		require.NotNil(t, gasRow.Merchant)
		assert.Equal(t, "Card 1111", *gasRow.Merchant)

		assert.Equal(t, store.UncategorizedCategoryID.String(), byNote["REI CLASSES & EVENTS"].CategoryID)

		payment := byNote["PAYMENT THANK YOU"]
		assert.Equal(t, "income", payment.Type)
		assert.Equal(t, "500.00", payment.Amount.StringFixed(2))
		assert.Equal(t, "2025-10-18", payment.BookedOn)
	})

	t.Run("should skip duplicates on a second upload", func(t *testing.T) {
		w := uploadStatement(account.ID.String(), statement)

		assert.Equal(t, http.StatusOK, w.Code)
		var result ImportResult
		require.NoError(t, parseJSONResponse(w, &result))
		assert.Empty(t, result.Transactions)
		assert.Equal(t, 5, result.SkippedRows)

		transactions, err := repo.GetByAccountID(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Len(t, transactions, 3)
	})

	t.Run("should fail with no file uploaded", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/accounts/"+account.ID.String()+"/import", nil)
		w := httptest.NewRecorder()
		testRouter.ServeHTTP(w, req)

		assertStatusCode(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should fail with malformed CSV", func(t *testing.T) {
		w := uploadStatement(account.ID.String(), "a,\"unterminated\n")

		assertStatusCode(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should return 404 for unknown account", func(t *testing.T) {
		w := uploadStatement(uuid.NewString(), statement)

		assertStatusCode(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 400 for invalid account ID", func(t *testing.T) {
		w := uploadStatement("nope", statement)

		assertStatusCode(t, http.StatusBadRequest, w.Code)
	})
}

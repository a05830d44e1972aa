package main

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bank statement columns: Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit
const (
	csvColTransactionDate = iota
	csvColPostedDate
	csvColCardNumber
	csvColDescription
	csvColCategory
	csvColDebit
	csvColCredit
	csvColumns
)

var statementDateLayouts = []string{dateLayout, "01/02/2006"}

// ImportResult is returned by the statement import
type ImportResult struct {
	Message      string        `json:"message"`
	Transactions []Transaction `json:"transactions"`
	SkippedRows  int           `json:"skippedRows"`
}

func parseStatementDate(value string) (time.Time, bool) {
	for _, layout := range statementDateLayouts {
		if parsed, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// parseStatementRow maps one CSV record to a transaction. Debits become
// negative expenses, credits positive income. Categories are matched by
// name, unknown names fall back to Uncategorized.
func parseStatementRow(record []string, categories map[string]uuid.UUID) (store.TransactionInput, bool) {
	if len(record) < csvColumns {
		return store.TransactionInput{}, false
	}

	bookedOn, ok := parseStatementDate(record[csvColTransactionDate])
	if !ok {
		if bookedOn, ok = parseStatementDate(record[csvColPostedDate]); !ok {
			return store.TransactionInput{}, false
		}
	}

	var (
		raw       string
		entryType store.EntryType
	)
	switch {
	case strings.TrimSpace(record[csvColDebit]) != "":
		raw, entryType = record[csvColDebit], store.EntryTypeExpense
	case strings.TrimSpace(record[csvColCredit]) != "":
		raw, entryType = record[csvColCredit], store.EntryTypeIncome
	default:
		return store.TransactionInput{}, false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || amount.Round(2).IsZero() {
		return store.TransactionInput{}, false
	}
	amount = amount.Abs()
	if entryType == store.EntryTypeExpense {
		amount = amount.Neg()
	}

	categoryID, ok := categories[strings.ToLower(strings.TrimSpace(record[csvColCategory]))]
	if !ok {
		categoryID = store.UncategorizedCategoryID
	}

	input := store.TransactionInput{
		CategoryID: categoryID,
		Type:       entryType,
		BookedOn:   bookedOn,
		Amount:     amount,
		Note:       strings.TrimSpace(record[csvColDescription]),
	}
	if card := strings.TrimSpace(record[csvColCardNumber]); card != "" {
		merchant := "Card " + card
		input.Merchant = &merchant
	}
	return input, true
}

// @Summary Import bank statement
// @Description Upload a CSV bank statement (Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit) and book its rows on the account. Invalid and duplicate rows are skipped.
// @Tags accounts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Account ID"
// @Param file formData file true "CSV file to upload"
// @Success 200 {object} ImportResult "Imported transactions and count of skipped rows"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts/{id}/import [post]
func importStatement(c *gin.Context) {
	id, ok := parseIDParam(c, "Account")
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	ctx := c.Request.Context()
	categories, err := repo.ListCategories(ctx)
	if err != nil {
		respondWithError(c, err, "Category", "Error fetching categories")
		return
	}
	byName := make(map[string]uuid.UUID, len(categories))
	for _, category := range categories {
		byName[strings.ToLower(category.Name)] = category.ID
	}

	rows := make([]store.TransactionInput, 0)
	skippedRows := 0
	for line := 0; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading CSV file"})
			return
		}
		// Skip header row if present
		if line == 0 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "Transaction Date") {
			continue
		}

		input, ok := parseStatementRow(record, byName)
		if !ok {
			skippedRows++
			continue
		}
		rows = append(rows, input)
	}

	created, duplicates, err := repo.ImportTransactions(ctx, id, rows)
	if err != nil {
		respondWithError(c, err, "Account", "Error importing statement")
		return
	}

	c.JSON(http.StatusOK, ImportResult{
		Message:      "CSV imported successfully",
		Transactions: convertTransactions(created),
		SkippedRows:  skippedRows + duplicates,
	})
}

package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPage     = 1
	defaultPageSize = 25
	maxPageSize     = 100
)

// parsePaging reads page and pageSize with their defaults
func parsePaging(c *gin.Context) (page, pageSize int, message string) {
	page, pageSize = defaultPage, defaultPageSize

	if raw := c.Query("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, "Query parameter 'page' must be an integer."
		}
		page = value
	}
	if raw := c.Query("pageSize"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, "Query parameter 'pageSize' must be an integer."
		}
		pageSize = value
	}

	if page < 1 {
		return 0, 0, "Query parameter 'page' must be greater than or equal to 1."
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, "Query parameter 'pageSize' must be between 1 and 100."
	}
	return page, pageSize, ""
}

// parseTransactionFilter reads the optional list filters from the query string
func parseTransactionFilter(c *gin.Context) (*store.TransactionFilter, string) {
	filter := &store.TransactionFilter{
		SearchTerm: strings.TrimSpace(c.Query("searchTerm")),
	}

	if raw := c.Query("accountId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, "Query parameter 'accountId' must be a valid UUID."
		}
		filter.AccountID = &id
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, "Query parameter 'categoryId' must be a valid UUID."
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("type"); raw != "" {
		entryType, err := store.ParseEntryType(raw)
		if err != nil {
			return nil, "Query parameter 'type' must be 'expense' or 'income'."
		}
		filter.Type = &entryType
	}
	if raw := c.Query("bookedFrom"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, "Query parameter 'bookedFrom' must be a date in YYYY-MM-DD format."
		}
		filter.BookedFrom = &date
	}
	if raw := c.Query("bookedTo"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, "Query parameter 'bookedTo' must be a date in YYYY-MM-DD format."
		}
		filter.BookedTo = &date
	}
	if raw := c.Query("minAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, "Query parameter 'minAmount' must be a number."
		}
		filter.MinAmount = &amount
	}
	if raw := c.Query("maxAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, "Query parameter 'maxAmount' must be a number."
		}
		filter.MaxAmount = &amount
	}

	if filter.BookedFrom != nil && filter.BookedTo != nil && filter.BookedFrom.After(*filter.BookedTo) {
		return nil, "Query parameter 'bookedFrom' must not be after 'bookedTo'."
	}
	if filter.MinAmount != nil && filter.MaxAmount != nil && filter.MinAmount.GreaterThan(*filter.MaxAmount) {
		return nil, "Query parameter 'minAmount' must not be greater than 'maxAmount'."
	}
	return filter, ""
}

// Transaction handler functions

// @Summary Get transactions
// @Description Retrieve one page of active transactions, newest booking first, with optional filters
// @Tags transactions
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param pageSize query int false "Page size between 1 and 100" default(25)
// @Param accountId query string false "Account ID"
// @Param categoryId query string false "Category ID"
// @Param type query string false "expense or income"
// @Param bookedFrom query string false "Earliest booking date (YYYY-MM-DD)"
// @Param bookedTo query string false "Latest booking date (YYYY-MM-DD)"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param searchTerm query string false "Case-insensitive text in note or merchant"
// @Success 200 {object} TransactionPage "Page of transactions"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	page, pageSize, message := parsePaging(c)
	if message != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	filter, message := parseTransactionFilter(c)
	if message != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	transactions, totalCount, err := repo.GetPaged(c.Request.Context(), page, pageSize, filter)
	if err != nil {
		respondWithError(c, err, "Transaction", "Error fetching transactions")
		return
	}

	c.JSON(http.StatusOK, TransactionPage{
		Items:      convertTransactions(transactions),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(totalCount, pageSize),
	})
}

// @Summary Get transaction
// @Description Retrieve an active transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Transaction"
// @Failure 400 {object} map[string]interface{} "Invalid transaction ID"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [get]
func getTransaction(c *gin.Context) {
	id, ok := parseIDParam(c, "Transaction")
	if !ok {
		return
	}

	transaction, err := repo.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Transaction", "Error fetching transaction")
		return
	}

	c.JSON(http.StatusOK, convertTransaction(transaction))
}

// validateTransactionRequest checks the body and that the referenced
// account and category exist and are active.
func validateTransactionRequest(ctx context.Context, request TransactionRequest) (store.TransactionInput, validationErrors, error) {
	errs := validationErrors{}
	var input store.TransactionInput

	var category *store.Category
	if strings.TrimSpace(request.AccountID) == "" {
		errs.add("accountId", "Account is required.")
	} else if id, err := uuid.Parse(request.AccountID); err != nil {
		errs.add("accountId", "Account must be a valid UUID.")
	} else if _, err := repo.GetAccount(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return input, nil, err
		}
		errs.add("accountId", "Account does not exist.")
	} else {
		input.AccountID = id
	}

	if strings.TrimSpace(request.CategoryID) == "" {
		errs.add("categoryId", "Category is required.")
	} else if id, err := uuid.Parse(request.CategoryID); err != nil {
		errs.add("categoryId", "Category must be a valid UUID.")
	} else if found, err := repo.GetCategory(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return input, nil, err
		}
		errs.add("categoryId", "Category does not exist.")
	} else {
		input.CategoryID = id
		category = &found
	}

	if strings.TrimSpace(request.BookedOn) == "" {
		errs.add("bookedOn", "Booked on date is required.")
	} else if bookedOn, err := time.Parse(dateLayout, strings.TrimSpace(request.BookedOn)); err != nil {
		errs.add("bookedOn", "Booked on must be a date in YYYY-MM-DD format.")
	} else {
		input.BookedOn = bookedOn
	}

	if request.Amount == nil {
		errs.add("amount", "Amount is required.")
	} else if request.Amount.Round(2).IsZero() {
		errs.add("amount", "Amount must not be zero.")
	} else {
		input.Amount = *request.Amount
	}

	if strings.TrimSpace(request.Type) != "" {
		entryType, err := store.ParseEntryType(request.Type)
		if err != nil {
			errs.add("type", "Type must be 'expense' or 'income'.")
		}
		input.Type = entryType
	} else if category != nil {
		input.Type = category.Type
	}

	input.Note = strings.TrimSpace(request.Note)
	if request.Merchant != nil {
		if merchant := strings.TrimSpace(*request.Merchant); merchant != "" {
			input.Merchant = &merchant
		}
	}

	return input, errs, nil
}

// referenceErrors reports a reference that disappeared between validation
// and the write in the same shape validateTransactionRequest uses.
func referenceErrors(err error) (validationErrors, bool) {
	switch {
	case errors.Is(err, store.ErrAccountUnavailable):
		return validationErrors{"accountId": {"Account does not exist."}}, true
	case errors.Is(err, store.ErrCategoryUnavailable):
		return validationErrors{"categoryId": {"Category does not exist."}}, true
	}
	return nil, false
}

// @Summary Create transaction
// @Description Create a new transaction. The account and category must exist and be active.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body TransactionRequest true "Transaction data"
// @Success 201 {object} Transaction "Created transaction"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	var request TransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	input, errs, err := validateTransactionRequest(ctx, request)
	if err != nil {
		respondWithError(c, err, "Transaction", "Error validating transaction references")
		return
	}
	if errs.any() {
		respondValidationErrors(c, errs)
		return
	}

	transaction, err := repo.CreateTransaction(ctx, input)
	if errs, ok := referenceErrors(err); ok {
		respondValidationErrors(c, errs)
		return
	}
	if err != nil {
		respondWithError(c, err, "Transaction", "Error creating transaction")
		return
	}

	c.Header("Location", "/api/transactions/"+transaction.ID.String())
	c.JSON(http.StatusCreated, convertTransaction(transaction))
}

// @Summary Update transaction
// @Description Replace an active transaction. The account and category must exist and be active.
// @Tags transactions
// @Accept json
// @Param id path string true "Transaction ID"
// @Param transaction body TransactionRequest true "Updated transaction data"
// @Success 204 "Transaction updated"
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [put]
func updateTransaction(c *gin.Context) {
	id, ok := parseIDParam(c, "Transaction")
	if !ok {
		return
	}

	var request TransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if _, err := repo.GetTransaction(ctx, id); err != nil {
		respondWithError(c, err, "Transaction", "Error fetching transaction")
		return
	}

	input, errs, err := validateTransactionRequest(ctx, request)
	if err != nil {
		respondWithError(c, err, "Transaction", "Error validating transaction references")
		return
	}
	if errs.any() {
		respondValidationErrors(c, errs)
		return
	}

	_, err = repo.UpdateTransaction(ctx, id, input)
	if errs, ok := referenceErrors(err); ok {
		respondValidationErrors(c, errs)
		return
	}
	if err != nil {
		respondWithError(c, err, "Transaction", "Error updating transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete transaction
// @Description Archive a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "Transaction archived"
// @Failure 400 {object} map[string]interface{} "Invalid transaction ID"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	id, ok := parseIDParam(c, "Transaction")
	if !ok {
		return
	}

	if err := repo.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Transaction", "Error archiving transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

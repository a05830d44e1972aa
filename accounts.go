package main

import (
	"net/http"
	"strings"

	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
)

// Account handler functions

// @Summary Get all accounts
// @Description Retrieve all active accounts ordered by name
// @Tags accounts
// @Produce json
// @Success 200 {array} Account "List of accounts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts [get]
func getAccounts(c *gin.Context) {
	accounts, err := repo.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Account", "Error fetching accounts")
		return
	}

	result := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, convertAccount(account))
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get account
// @Description Retrieve an active account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Account "Account"
// @Failure 400 {object} map[string]interface{} "Invalid account ID"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts/{id} [get]
func getAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "Account")
	if !ok {
		return
	}

	account, err := repo.GetAccount(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Account", "Error fetching account")
		return
	}

	c.JSON(http.StatusOK, convertAccount(account))
}

// @Summary Get account transactions
// @Description Retrieve the active transactions of an account, newest booking first
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {array} Transaction "List of transactions"
// @Failure 400 {object} map[string]interface{} "Invalid account ID"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts/{id}/transactions [get]
func getAccountTransactions(c *gin.Context) {
	id, ok := parseIDParam(c, "Account")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := repo.GetAccount(ctx, id); err != nil {
		respondWithError(c, err, "Account", "Error fetching account")
		return
	}

	transactions, err := repo.GetByAccountID(ctx, id)
	if err != nil {
		respondWithError(c, err, "Transaction", "Error fetching account transactions")
		return
	}

	c.JSON(http.StatusOK, convertTransactions(transactions))
}

// @Summary Create account
// @Description Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body AccountRequest true "Account data (name required)"
// @Success 201 {object} Account "Created account"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts [post]
func createAccount(c *gin.Context) {
	var request AccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := repo.CreateAccount(c.Request.Context(), store.AccountInput{
		Name:    strings.TrimSpace(request.Name),
		Balance: request.Balance,
	})
	if err != nil {
		respondWithError(c, err, "Account", "Error creating account")
		return
	}

	c.Header("Location", "/api/accounts/"+account.ID.String())
	c.JSON(http.StatusCreated, convertAccount(account))
}

// @Summary Update account
// @Description Replace the name and balance of an active account
// @Tags accounts
// @Accept json
// @Param id path string true "Account ID"
// @Param account body AccountRequest true "Updated account data"
// @Success 204 "Account updated"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts/{id} [put]
func updateAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "Account")
	if !ok {
		return
	}

	var request AccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := repo.UpdateAccount(c.Request.Context(), id, store.AccountInput{
		Name:    strings.TrimSpace(request.Name),
		Balance: request.Balance,
	})
	if err != nil {
		respondWithError(c, err, "Account", "Error updating account")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete account
// @Description Archive an account together with all of its transactions
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204 "Account archived"
// @Failure 400 {object} map[string]interface{} "Invalid account ID"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts/{id} [delete]
func deleteAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "Account")
	if !ok {
		return
	}

	if err := repo.DeleteAccount(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Account", "Error archiving account")
		return
	}

	c.Status(http.StatusNoContent)
}

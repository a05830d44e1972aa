package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Archive handler functions. Archiving is the only way rows leave the
// default views: accounts cascade to their transactions and categories hand
// their transactions over to Uncategorized.

// bindArchiveMany reads an ArchiveManyRequest body. It writes a 400
// response and returns false when the body or an id is malformed.
func bindArchiveMany(c *gin.Context) ([]uuid.UUID, bool) {
	var request ArchiveManyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return nil, false
	}

	ids, err := convertUUIDStrings(request.IDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return ids, true
}

// @Summary Archive accounts
// @Description Archive several accounts and cascade to their transactions. Unknown IDs are ignored.
// @Tags accounts
// @Accept json
// @Param request body ArchiveManyRequest true "Account IDs"
// @Success 204 "Accounts archived"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounts/archive [post]
func archiveAccounts(c *gin.Context) {
	ids, ok := bindArchiveMany(c)
	if !ok {
		return
	}

	if err := repo.ArchiveAccounts(c.Request.Context(), ids); err != nil {
		respondWithError(c, err, "Account", "Error archiving accounts")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Archive categories
// @Description Archive several categories, moving their transactions to Uncategorized. Unknown IDs and the Uncategorized ID are ignored.
// @Tags categories
// @Accept json
// @Param request body ArchiveManyRequest true "Category IDs"
// @Success 204 "Categories archived"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/archive [post]
func archiveCategories(c *gin.Context) {
	ids, ok := bindArchiveMany(c)
	if !ok {
		return
	}

	if err := repo.ArchiveCategories(c.Request.Context(), ids); err != nil {
		respondWithError(c, err, "Category", "Error archiving categories")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Archive transactions
// @Description Archive several transactions. Unknown IDs are ignored.
// @Tags transactions
// @Accept json
// @Param request body ArchiveManyRequest true "Transaction IDs"
// @Success 204 "Transactions archived"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/archive [post]
func archiveTransactions(c *gin.Context) {
	ids, ok := bindArchiveMany(c)
	if !ok {
		return
	}

	if err := repo.ArchiveTransactions(c.Request.Context(), ids); err != nil {
		respondWithError(c, err, "Transaction", "Error archiving transactions")
		return
	}

	c.Status(http.StatusNoContent)
}

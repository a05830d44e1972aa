package main

import (
	"errors"
	"net/http"

	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
)

// Demo data handler functions, registered in development only

// @Summary Demo data status
// @Description Report whether demo data is present
// @Tags demo-data
// @Produce json
// @Success 200 {object} DemoDataStatus "Demo data status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/demo-data/seed [get]
func getDemoDataStatus(c *gin.Context) {
	exists, err := repo.DemoDataExists(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Demo data", "Error checking demo data")
		return
	}

	c.JSON(http.StatusOK, DemoDataStatus{Exists: exists})
}

// @Summary Seed demo data
// @Description Create demo accounts, categories and transactions
// @Tags demo-data
// @Produce json
// @Success 201 {object} map[string]interface{} "Demo data created"
// @Failure 409 {object} map[string]interface{} "Demo data already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/demo-data/seed [post]
func seedDemoData(c *gin.Context) {
	if err := repo.SeedDemoData(c.Request.Context()); err != nil {
		respondWithError(c, err, "Demo data", "Error seeding demo data")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Demo data created."})
}

// @Summary Clear demo data
// @Description Remove demo accounts, categories and transactions
// @Tags demo-data
// @Success 204 "Demo data removed"
// @Failure 404 {object} map[string]interface{} "No demo data to remove"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/demo-data/seed [delete]
func clearDemoData(c *gin.Context) {
	err := repo.ClearDemoData(c.Request.Context())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No demo data to remove."})
		return
	}
	if err != nil {
		respondWithError(c, err, "Demo data", "Error clearing demo data")
		return
	}

	c.Status(http.StatusNoContent)
}

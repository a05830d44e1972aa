package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Settings handler functions

// @Summary Get settings
// @Description Retrieve the user settings, creating them with the default currency on first access
// @Tags settings
// @Produce json
// @Success 200 {object} Settings "Current settings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settings [get]
func getSettings(c *gin.Context) {
	settings, err := repo.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Settings", "Error fetching settings")
		return
	}

	c.JSON(http.StatusOK, Settings{CurrencyCode: settings.CurrencyCode})
}

// @Summary Update settings
// @Description Set the currency code. The value is trimmed and upper-cased.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body Settings true "Settings with a 3-letter currency code"
// @Success 200 {object} Settings "Updated settings"
// @Failure 400 {object} map[string]interface{} "Invalid currency code"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settings [put]
func updateSettings(c *gin.Context) {
	var request Settings
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	code, err := normalizeCurrencyCode(request.CurrencyCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := repo.SetCurrencyCode(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, err, "Settings", "Error updating settings")
		return
	}

	c.JSON(http.StatusOK, Settings{CurrencyCode: settings.CurrencyCode})
}

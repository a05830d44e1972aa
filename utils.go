package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"pocketbook/internal/logger"
	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// normalizeCurrencyCode trims and upper-cases a currency code and checks
// that it looks like an ISO 4217 code.
func normalizeCurrencyCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", fmt.Errorf("Currency code must not be empty.")
	}
	if len(normalized) != 3 {
		return "", fmt.Errorf("Currency code must be a 3-letter ISO value.")
	}
	for _, r := range normalized {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", fmt.Errorf("Currency code must be a 3-letter ISO value.")
		}
	}
	return normalized, nil
}

// validationErrors collects messages per request field
type validationErrors map[string][]string

func (v validationErrors) add(field, message string) {
	v[field] = append(v[field], message)
}

func (v validationErrors) any() bool {
	return len(v) > 0
}

func respondValidationErrors(c *gin.Context, errs validationErrors) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Validation failed",
		Errors: errs,
	})
}

// handleDatabaseError converts store errors to appropriate HTTP responses
func handleDatabaseError(err error, resource string) (statusCode int, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, resource + " not found"
	case errors.Is(err, store.ErrDemoDataExists):
		return http.StatusConflict, "Demo data has already been created."
	case store.IsUniqueViolation(err):
		return http.StatusConflict, resource + " already exists"
	case store.IsForeignKeyViolation(err):
		return http.StatusBadRequest, "Referenced resource does not exist"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Request timed out"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}

// respondWithError logs server side failures and writes the mapped status
func respondWithError(c *gin.Context, err error, resource, logMessage string) {
	statusCode, message := handleDatabaseError(err, resource)
	if statusCode >= http.StatusInternalServerError {
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg(logMessage)
	}
	c.JSON(statusCode, gin.H{"error": message})
}

// UUID utility functions

// parseIDParam reads and parses the :id path parameter. It writes a 400
// response and returns false when the id is malformed.
func parseIDParam(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + strings.ToLower(resource) + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// convertUUIDStrings converts string UUIDs to uuid.UUID values
func convertUUIDStrings(uuidStrings []string) ([]uuid.UUID, error) {
	if len(uuidStrings) == 0 {
		return []uuid.UUID{}, nil
	}

	uuids := make([]uuid.UUID, 0, len(uuidStrings))
	for _, uuidStr := range uuidStrings {
		parsedUUID, err := uuid.Parse(uuidStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UUID format: %s", uuidStr)
		}
		uuids = append(uuids, parsedUUID)
	}
	return uuids, nil
}

// totalPages returns ceil(totalCount / pageSize), 0 for an empty result
func totalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalCount + size - 1) / size)
}

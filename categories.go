package main

import (
	"net/http"
	"strings"

	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
)

// Category handler functions

// @Summary Get all categories
// @Description Retrieve all active categories ordered by sort order and name
// @Tags categories
// @Produce json
// @Success 200 {array} Category "List of categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	categories, err := repo.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Category", "Error fetching categories")
		return
	}

	result := make([]Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, convertCategory(category))
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get category
// @Description Retrieve an active category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} Category "Category"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [get]
func getCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "Category")
	if !ok {
		return
	}

	category, err := repo.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Category", "Error fetching category")
		return
	}

	c.JSON(http.StatusOK, convertCategory(category))
}

// bindCategoryRequest reads and validates a category body
func bindCategoryRequest(c *gin.Context) (store.CategoryInput, bool) {
	var request CategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return store.CategoryInput{}, false
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return store.CategoryInput{}, false
	}

	entryType := store.EntryTypeExpense
	if strings.TrimSpace(request.Type) != "" {
		parsed, err := store.ParseEntryType(request.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return store.CategoryInput{}, false
		}
		entryType = parsed
	}

	return store.CategoryInput{
		Name:       strings.TrimSpace(request.Name),
		Type:       entryType,
		SortOrder:  request.SortOrder,
		IsArchived: request.IsArchived,
	}, true
}

// @Summary Create category
// @Description Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category data (name required, type expense or income)"
// @Success 201 {object} Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	input, ok := bindCategoryRequest(c)
	if !ok {
		return
	}

	category, err := repo.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondWithError(c, err, "Category", "Error creating category")
		return
	}

	c.Header("Location", "/api/categories/"+category.ID.String())
	c.JSON(http.StatusCreated, convertCategory(category))
}

// @Summary Update category
// @Description Replace an active category. Setting isArchived moves its transactions to Uncategorized and archives it.
// @Tags categories
// @Accept json
// @Param id path string true "Category ID"
// @Param category body CategoryRequest true "Updated category data"
// @Success 204 "Category updated"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [put]
func updateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "Category")
	if !ok {
		return
	}

	input, ok := bindCategoryRequest(c)
	if !ok {
		return
	}

	if _, err := repo.UpdateCategory(c.Request.Context(), id, input); err != nil {
		respondWithError(c, err, "Category", "Error updating category")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete category
// @Description Archive a category after moving its transactions to Uncategorized
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204 "Category archived"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [delete]
func deleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "Category")
	if !ok {
		return
	}

	if err := repo.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Category", "Error archiving category")
		return
	}

	c.Status(http.StatusNoContent)
}

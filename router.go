package main

import (
	"net/http"

	"pocketbook/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRouter builds the gin engine with middleware and all routes
func setupRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(log), recovery(), requestTimeout(cfg.RequestTimeout))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", requestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", healthCheck)

	api := r.Group("/api")
	{
		api.GET("/accounts", getAccounts)
		api.POST("/accounts", createAccount)
		api.POST("/accounts/archive", archiveAccounts)
		api.GET("/accounts/:id", getAccount)
		api.GET("/accounts/:id/transactions", getAccountTransactions)
		api.POST("/accounts/:id/import", importStatement)
		api.PUT("/accounts/:id", updateAccount)
		api.DELETE("/accounts/:id", deleteAccount)

		api.GET("/categories", getCategories)
		api.POST("/categories", createCategory)
		api.POST("/categories/archive", archiveCategories)
		api.GET("/categories/:id", getCategory)
		api.PUT("/categories/:id", updateCategory)
		api.DELETE("/categories/:id", deleteCategory)

		api.GET("/transactions", getTransactions)
		api.POST("/transactions", createTransaction)
		api.POST("/transactions/archive", archiveTransactions)
		api.GET("/transactions/:id", getTransaction)
		api.PUT("/transactions/:id", updateTransaction)
		api.DELETE("/transactions/:id", deleteTransaction)

		api.GET("/settings", getSettings)
		api.PUT("/settings", updateSettings)

		if cfg.IsDevelopment() {
			api.GET("/demo-data/seed", getDemoDataStatus)
			api.POST("/demo-data/seed", seedDemoData)
			api.DELETE("/demo-data/seed", clearDemoData)
		}
	}

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// @Summary Health check
// @Description Report that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

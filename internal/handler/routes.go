package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, dashboardHandler *DashboardHandler, analyticsHandler *AnalyticsHandler, transactionHandler *TransactionHandler, categoryHandler *CategoryHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	api.POST("/dashboard", dashboardHandler.Build)

	analytics := api.Group("/analytics")
	analytics.POST("/monthly", analyticsHandler.Monthly)
	analytics.POST("/categories", analyticsHandler.Categories)

	transactions := api.Group("/transactions")
	transactions.POST("/filter", transactionHandler.Filter)
	transactions.POST("/page", transactionHandler.Page)

	categories := api.Group("/categories")
	categories.GET("/styles", categoryHandler.GetStyles)

	// Live dashboard sessions
	e.GET("/ws", wsHandler.HandleWS)
}

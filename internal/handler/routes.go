package handler

import (
	"github.com/foyerapp/foyer-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, bankLimiter *middleware.RateLimiter, holderHandler *HolderHandler, savingHandler *SavingHandler, elementHandler *BudgetElementHandler, dashboardHandler *DashboardHandler, bankHandler *BankHandler, wsHandler *WebSocketHandler) {
	// Provider redirect target (outside the API prefix, must match the
	// registered redirect URI)
	e.GET("/callback", bankHandler.Callback)

	// WebSocket change events
	e.GET("/ws", wsHandler.HandleWS)

	// API version 1
	api := e.Group("/api/v1")

	// Holder routes
	holders := api.Group("/holders")
	holders.POST("", holderHandler.CreateHolder)
	holders.GET("", holderHandler.GetHolders)
	holders.PUT("/:id", holderHandler.UpdateHolder)
	holders.DELETE("/:id", holderHandler.DeleteHolder)

	// Saving routes, ledger included
	savings := api.Group("/savings")
	savings.POST("", savingHandler.CreateSaving)
	savings.GET("", savingHandler.GetSavings)
	savings.PUT("/:id", savingHandler.UpdateSaving)
	savings.DELETE("/:id", savingHandler.DeleteSaving)
	savings.POST("/:id/operations", savingHandler.AppendOperation)
	savings.GET("/:id/operations", savingHandler.GetOperations)
	savings.GET("/:id/trend", savingHandler.GetTrend)

	// Budget element routes
	elements := api.Group("/budget-elements")
	elements.POST("", elementHandler.CreateElement)
	elements.GET("", elementHandler.GetElements)
	elements.PUT("/:id", elementHandler.UpdateElement)
	elements.DELETE("/:id", elementHandler.DeleteElement)
	elements.POST("/:id/contribute", elementHandler.RecordContribution)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	// Bank routes (rate limited, they trigger outbound provider calls)
	bank := e.Group("/api/bank")
	bank.Use(middleware.RateLimitMiddleware(bankLimiter))
	bank.POST("/callback", bankHandler.CallbackPost)
	bank.GET("/transactions", bankHandler.Transactions)
}

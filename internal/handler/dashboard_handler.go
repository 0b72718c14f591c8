package handler

import (
	"net/http"

	"github.com/foyerapp/foyer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	MonthlyIncome   string `json:"monthlyIncome"`
	MonthlyExpenses string `json:"monthlyExpenses"`
	MonthlyNet      string `json:"monthlyNet"`
	TotalSavings    string `json:"totalSavings"`
	SavingCount     int    `json:"savingCount"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get dashboard summary")
		return NewInternalError(c, "Failed to get dashboard summary")
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		MonthlyIncome:   summary.MonthlyIncome.StringFixed(2),
		MonthlyExpenses: summary.MonthlyExpenses.StringFixed(2),
		MonthlyNet:      summary.MonthlyNet.StringFixed(2),
		TotalSavings:    summary.TotalSavings.StringFixed(2),
		SavingCount:     summary.SavingCount,
	})
}

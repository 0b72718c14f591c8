package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SavingHandler handles saving and ledger-related HTTP requests
type SavingHandler struct {
	savingService *service.SavingService
}

// NewSavingHandler creates a new SavingHandler
func NewSavingHandler(savingService *service.SavingService) *SavingHandler {
	return &SavingHandler{savingService: savingService}
}

// CreateSavingRequest represents the create saving request body
type CreateSavingRequest struct {
	Label          string `json:"label"`
	InitialBalance string `json:"initialBalance,omitempty"`
}

// UpdateSavingRequest represents the update saving request body
type UpdateSavingRequest struct {
	Label string `json:"label"`
}

// AppendOperationRequest represents the append operation request body
type AppendOperationRequest struct {
	Type            string  `json:"type"`
	Amount          string  `json:"amount"`
	Date            string  `json:"date"`
	BudgetElementID *string `json:"budgetElementId,omitempty"`
}

// SavingResponse represents a saving in API responses
type SavingResponse struct {
	ID             string              `json:"id"`
	Label          string              `json:"label"`
	Balance        string              `json:"balance"`
	OperationCount int                 `json:"operationCount"`
	Operations     []OperationResponse `json:"operations"`
	CreatedAt      string              `json:"createdAt"`
	UpdatedAt      string              `json:"updatedAt"`
}

// OperationResponse represents a ledger operation in API responses
type OperationResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Amount          string  `json:"amount"`
	Date            string  `json:"date"`
	BalanceAfter    string  `json:"balanceAfter"`
	BudgetElementID *string `json:"budgetElementId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// TrendResponse represents the balance trend in API responses
type TrendResponse struct {
	IsPositive       bool   `json:"isPositive"`
	PercentageChange string `json:"percentageChange"`
}

// CreateSaving handles POST /api/v1/savings
func (h *SavingHandler) CreateSaving(c echo.Context) error {
	var req CreateSavingRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		var err error
		initialBalance, err = decimal.NewFromString(req.InitialBalance)
		if err != nil {
			return NewValidationError(c, "Invalid initial balance", []ValidationError{
				{Field: "initialBalance", Message: "Must be a valid decimal number"},
			})
		}
	}

	saving, err := h.savingService.CreateSaving(service.CreateSavingInput{
		Label:          req.Label,
		InitialBalance: initialBalance,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLabelRequired) || errors.Is(err, domain.ErrLabelTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "label", Message: "Label is required and must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Msg("Failed to create saving")
		return NewInternalError(c, "Failed to create saving")
	}

	log.Info().Str("saving_id", saving.ID).Str("label", saving.Label).Msg("Saving created")
	return c.JSON(http.StatusCreated, toSavingResponse(saving))
}

// GetSavings handles GET /api/v1/savings
func (h *SavingHandler) GetSavings(c echo.Context) error {
	savings, err := h.savingService.GetSavings()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get savings")
		return NewInternalError(c, "Failed to get savings")
	}

	response := make([]SavingResponse, len(savings))
	for i, saving := range savings {
		response[i] = toSavingResponse(saving)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateSaving handles PUT /api/v1/savings/:id
func (h *SavingHandler) UpdateSaving(c echo.Context) error {
	id := c.Param("id")

	var req UpdateSavingRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	saving, err := h.savingService.UpdateSaving(id, req.Label)
	if err != nil {
		if errors.Is(err, domain.ErrSavingNotFound) {
			return NewNotFoundError(c, "Saving not found")
		}
		if errors.Is(err, domain.ErrLabelRequired) || errors.Is(err, domain.ErrLabelTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "label", Message: "Label is required and must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Str("saving_id", id).Msg("Failed to update saving")
		return NewInternalError(c, "Failed to update saving")
	}

	log.Info().Str("saving_id", saving.ID).Msg("Saving updated")
	return c.JSON(http.StatusOK, toSavingResponse(saving))
}

// DeleteSaving handles DELETE /api/v1/savings/:id
func (h *SavingHandler) DeleteSaving(c echo.Context) error {
	id := c.Param("id")

	if err := h.savingService.DeleteSaving(id); err != nil {
		if errors.Is(err, domain.ErrSavingNotFound) {
			return NewNotFoundError(c, "Saving not found")
		}
		log.Error().Err(err).Str("saving_id", id).Msg("Failed to delete saving")
		return NewInternalError(c, "Failed to delete saving")
	}

	log.Info().Str("saving_id", id).Msg("Saving deleted")
	return c.NoContent(http.StatusNoContent)
}

// AppendOperation handles POST /api/v1/savings/:id/operations
func (h *SavingHandler) AppendOperation(c echo.Context) error {
	id := c.Param("id")

	var req AppendOperationRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			date, err = time.Parse(time.RFC3339, req.Date)
			if err != nil {
				return NewValidationError(c, "Invalid date", []ValidationError{
					{Field: "date", Message: "Must be YYYY-MM-DD or RFC 3339"},
				})
			}
		}
	}

	op, err := h.savingService.AppendOperation(id, service.AppendOperationInput{
		Type:            domain.OperationType(req.Type),
		Amount:          amount,
		Date:            date,
		BudgetElementID: req.BudgetElementID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSavingNotFound):
			return NewNotFoundError(c, "Saving not found")
		case errors.Is(err, domain.ErrInvalidOperationType):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: deposit, withdrawal, monthly"},
			})
		case errors.Is(err, domain.ErrAmountNotPositive):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be positive"},
			})
		case errors.Is(err, domain.ErrBudgetElementRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "budgetElementId", Message: "Monthly operations require a budget element reference"},
			})
		case errors.Is(err, domain.ErrBudgetElementNotAllowed):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "budgetElementId", Message: "Only monthly operations may reference a budget element"},
			})
		}
		log.Error().Err(err).Str("saving_id", id).Msg("Failed to append operation")
		return NewInternalError(c, "Failed to append operation")
	}

	return c.JSON(http.StatusCreated, toOperationResponse(*op))
}

// GetOperations handles GET /api/v1/savings/:id/operations
func (h *SavingHandler) GetOperations(c echo.Context) error {
	id := c.Param("id")

	operations, err := h.savingService.GetOperationHistory(id)
	if err != nil {
		if errors.Is(err, domain.ErrSavingNotFound) {
			return NewNotFoundError(c, "Saving not found")
		}
		log.Error().Err(err).Str("saving_id", id).Msg("Failed to get operations")
		return NewInternalError(c, "Failed to get operations")
	}

	response := make([]OperationResponse, len(operations))
	for i, op := range operations {
		response[i] = toOperationResponse(op)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTrend handles GET /api/v1/savings/:id/trend
func (h *SavingHandler) GetTrend(c echo.Context) error {
	id := c.Param("id")

	trend, err := h.savingService.GetBalanceTrend(id)
	if err != nil {
		if errors.Is(err, domain.ErrSavingNotFound) {
			return NewNotFoundError(c, "Saving not found")
		}
		log.Error().Err(err).Str("saving_id", id).Msg("Failed to compute trend")
		return NewInternalError(c, "Failed to compute trend")
	}
	if trend == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, TrendResponse{
		IsPositive:       trend.IsPositive,
		PercentageChange: trend.PercentageChange.String(),
	})
}

func toSavingResponse(saving *domain.Saving) SavingResponse {
	operations := make([]OperationResponse, len(saving.Operations))
	for i, op := range saving.Operations {
		operations[i] = toOperationResponse(op)
	}
	return SavingResponse{
		ID:             saving.ID,
		Label:          saving.Label,
		Balance:        saving.Balance.StringFixed(2),
		OperationCount: len(saving.Operations),
		Operations:     operations,
		CreatedAt:      saving.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      saving.UpdatedAt.Format(time.RFC3339),
	}
}

func toOperationResponse(op domain.Operation) OperationResponse {
	return OperationResponse{
		ID:              op.ID,
		Type:            string(op.Type),
		Amount:          op.Amount.StringFixed(2),
		Date:            op.Date.Format("2006-01-02"),
		BalanceAfter:    op.BalanceAfter.StringFixed(2),
		BudgetElementID: op.BudgetElementID,
		CreatedAt:       op.CreatedAt.Format(time.RFC3339),
	}
}

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

// BudgetElementHandler handles budget element HTTP requests
type BudgetElementHandler struct {
	elementService *service.BudgetElementService
}

// NewBudgetElementHandler creates a new BudgetElementHandler
func NewBudgetElementHandler(elementService *service.BudgetElementService) *BudgetElementHandler {
	return &BudgetElementHandler{elementService: elementService}
}

// BudgetElementRequest represents the create/update budget element request body
type BudgetElementRequest struct {
	Type         string  `json:"type"`
	Label        string  `json:"label"`
	MonthlyValue string  `json:"monthlyValue"`
	HolderID     string  `json:"holderId"`
	SavingsID    *string `json:"savingsId,omitempty"`
}

// ContributionRequest represents the record contribution request body
type ContributionRequest struct {
	Date string `json:"date,omitempty"`
}

// BudgetElementResponse represents a budget element in API responses
type BudgetElementResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Label        string  `json:"label"`
	MonthlyValue string  `json:"monthlyValue"`
	HolderID     string  `json:"holderId"`
	SavingsID    *string `json:"savingsId,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func (h *BudgetElementHandler) bindInput(c echo.Context) (*service.BudgetElementInput, error) {
	var req BudgetElementRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewValidationError(c, "Invalid request body", nil)
	}

	monthlyValue := decimal.Zero
	if req.MonthlyValue != "" {
		var err error
		monthlyValue, err = decimal.NewFromString(req.MonthlyValue)
		if err != nil {
			return nil, NewValidationError(c, "Invalid monthly value", []ValidationError{
				{Field: "monthlyValue", Message: "Must be a valid decimal number"},
			})
		}
	}

	return &service.BudgetElementInput{
		Type:         domain.BudgetElementType(req.Type),
		Label:        req.Label,
		MonthlyValue: monthlyValue,
		HolderID:     req.HolderID,
		SavingsID:    req.SavingsID,
	}, nil
}

func (h *BudgetElementHandler) mapServiceError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrBudgetElementNotFound):
		return NewNotFoundError(c, "Budget element not found")
	case errors.Is(err, domain.ErrHolderNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "holderId", Message: "Holder does not exist"},
		})
	case errors.Is(err, domain.ErrLabelRequired), errors.Is(err, domain.ErrLabelTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "label", Message: "Label is required and must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidElementType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be one of: debit, credit, monthly"},
		})
	case errors.Is(err, domain.ErrNegativeMonthlyValue):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "monthlyValue", Message: "Monthly value must not be negative"},
		})
	case errors.Is(err, domain.ErrHolderRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "holderId", Message: "Holder reference is required"},
		})
	}
	log.Error().Err(err).Msg(action)
	return NewInternalError(c, action)
}

// CreateElement handles POST /api/v1/budget-elements
func (h *BudgetElementHandler) CreateElement(c echo.Context) error {
	input, errResp := h.bindInput(c)
	if errResp != nil {
		return errResp
	}

	element, err := h.elementService.CreateElement(*input)
	if err != nil {
		return h.mapServiceError(c, err, "Failed to create budget element")
	}

	log.Info().Str("element_id", element.ID).Str("label", element.Label).Msg("Budget element created")
	return c.JSON(http.StatusCreated, toElementResponse(element))
}

// GetElements handles GET /api/v1/budget-elements
func (h *BudgetElementHandler) GetElements(c echo.Context) error {
	elements, err := h.elementService.GetElements()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get budget elements")
		return NewInternalError(c, "Failed to get budget elements")
	}

	response := make([]BudgetElementResponse, len(elements))
	for i, element := range elements {
		response[i] = toElementResponse(element)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateElement handles PUT /api/v1/budget-elements/:id
func (h *BudgetElementHandler) UpdateElement(c echo.Context) error {
	id := c.Param("id")

	input, errResp := h.bindInput(c)
	if errResp != nil {
		return errResp
	}

	element, err := h.elementService.UpdateElement(id, *input)
	if err != nil {
		return h.mapServiceError(c, err, "Failed to update budget element")
	}

	log.Info().Str("element_id", element.ID).Msg("Budget element updated")
	return c.JSON(http.StatusOK, toElementResponse(element))
}

// DeleteElement handles DELETE /api/v1/budget-elements/:id
func (h *BudgetElementHandler) DeleteElement(c echo.Context) error {
	id := c.Param("id")

	if err := h.elementService.DeleteElement(id); err != nil {
		if errors.Is(err, domain.ErrBudgetElementNotFound) {
			return NewNotFoundError(c, "Budget element not found")
		}
		log.Error().Err(err).Str("element_id", id).Msg("Failed to delete budget element")
		return NewInternalError(c, "Failed to delete budget element")
	}

	log.Info().Str("element_id", id).Msg("Budget element deleted")
	return c.NoContent(http.StatusNoContent)
}

// RecordContribution handles POST /api/v1/budget-elements/:id/contribute
func (h *BudgetElementHandler) RecordContribution(c echo.Context) error {
	id := c.Param("id")

	var req ContributionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be YYYY-MM-DD"},
			})
		}
	}

	op, err := h.elementService.RecordMonthlyContribution(id, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBudgetElementNotFound):
			return NewNotFoundError(c, "Budget element not found")
		case errors.Is(err, domain.ErrSavingNotFound):
			return NewNotFoundError(c, "Linked saving not found")
		case errors.Is(err, domain.ErrNotMonthlyElement):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Only monthly elements can record contributions"},
			})
		case errors.Is(err, domain.ErrSavingNotLinked):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "savingsId", Message: "Element is not linked to a saving"},
			})
		case errors.Is(err, domain.ErrAmountNotPositive):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "monthlyValue", Message: "Element monthly value must be positive"},
			})
		}
		log.Error().Err(err).Str("element_id", id).Msg("Failed to record contribution")
		return NewInternalError(c, "Failed to record contribution")
	}

	return c.JSON(http.StatusCreated, toOperationResponse(*op))
}

func toElementResponse(element *domain.BudgetElement) BudgetElementResponse {
	return BudgetElementResponse{
		ID:           element.ID,
		Type:         string(element.Type),
		Label:        element.Label,
		MonthlyValue: element.MonthlyValue.StringFixed(2),
		HolderID:     element.HolderID,
		SavingsID:    element.SavingsID,
		CreatedAt:    element.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    element.UpdatedAt.Format(time.RFC3339),
	}
}

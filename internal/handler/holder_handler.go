package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// HolderHandler handles holder-related HTTP requests
type HolderHandler struct {
	holderService *service.HolderService
}

// NewHolderHandler creates a new HolderHandler
func NewHolderHandler(holderService *service.HolderService) *HolderHandler {
	return &HolderHandler{holderService: holderService}
}

// HolderRequest represents the create/update holder request body
type HolderRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// HolderResponse represents a holder in API responses
type HolderResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
}

// CreateHolder handles POST /api/v1/holders
func (h *HolderHandler) CreateHolder(c echo.Context) error {
	var req HolderRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	holder, err := h.holderService.CreateHolder(req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "firstName", Message: "First and last name are required"},
			})
		}
		log.Error().Err(err).Msg("Failed to create holder")
		return NewInternalError(c, "Failed to create holder")
	}

	log.Info().Str("holder_id", holder.ID).Msg("Holder created")
	return c.JSON(http.StatusCreated, toHolderResponse(holder))
}

// GetHolders handles GET /api/v1/holders
func (h *HolderHandler) GetHolders(c echo.Context) error {
	holders, err := h.holderService.GetHolders()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get holders")
		return NewInternalError(c, "Failed to get holders")
	}

	response := make([]HolderResponse, len(holders))
	for i, holder := range holders {
		response[i] = toHolderResponse(holder)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateHolder handles PUT /api/v1/holders/:id
func (h *HolderHandler) UpdateHolder(c echo.Context) error {
	id := c.Param("id")

	var req HolderRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	holder, err := h.holderService.UpdateHolder(id, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrHolderNotFound) {
			return NewNotFoundError(c, "Holder not found")
		}
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "firstName", Message: "First and last name are required"},
			})
		}
		log.Error().Err(err).Str("holder_id", id).Msg("Failed to update holder")
		return NewInternalError(c, "Failed to update holder")
	}

	log.Info().Str("holder_id", holder.ID).Msg("Holder updated")
	return c.JSON(http.StatusOK, toHolderResponse(holder))
}

// DeleteHolder handles DELETE /api/v1/holders/:id
func (h *HolderHandler) DeleteHolder(c echo.Context) error {
	id := c.Param("id")

	if err := h.holderService.DeleteHolder(id); err != nil {
		if errors.Is(err, domain.ErrHolderNotFound) {
			return NewNotFoundError(c, "Holder not found")
		}
		log.Error().Err(err).Str("holder_id", id).Msg("Failed to delete holder")
		return NewInternalError(c, "Failed to delete holder")
	}

	log.Info().Str("holder_id", id).Msg("Holder deleted")
	return c.NoContent(http.StatusNoContent)
}

func toHolderResponse(holder *domain.Holder) HolderResponse {
	return HolderResponse{
		ID:        holder.ID,
		FirstName: holder.FirstName,
		LastName:  holder.LastName,
		CreatedAt: holder.CreatedAt.Format(time.RFC3339),
	}
}

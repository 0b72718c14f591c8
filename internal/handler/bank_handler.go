package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/service"
	"github.com/foyerapp/foyer-backend/internal/truelayer"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BankHandler handles the open-banking callback and data endpoints
type BankHandler struct {
	bankService  *service.BankService
	clientOrigin string
}

// NewBankHandler creates a new BankHandler
func NewBankHandler(bankService *service.BankService, clientOrigin string) *BankHandler {
	return &BankHandler{bankService: bankService, clientOrigin: clientOrigin}
}

// BankCallbackRequest represents the POST callback request body
type BankCallbackRequest struct {
	Code string `json:"code"`
}

// BankTransactionsResponse wraps a transaction list
type BankTransactionsResponse struct {
	Transactions []domain.BankTransaction `json:"transactions"`
}

// Callback handles GET /callback, the provider's redirect target. On success
// the browser is redirected to the client origin with an opaque session
// handle; the bearer token itself never appears in a URL.
func (h *BankHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		log.Warn().Msg("Bank callback without authorization code")
		return NewValidationError(c, "Authorization code is missing", []ValidationError{
			{Field: "code", Message: "Query parameter 'code' is required"},
		})
	}
	log.Info().Str("scope", c.QueryParam("scope")).Msg("Bank callback received")

	sessionID, err := h.bankService.HandleCallback(c.Request().Context(), code)
	if err != nil {
		return h.mapBankError(c, err, "Token exchange failed")
	}

	redirect := fmt.Sprintf("%s?session=%s", h.clientOrigin, url.QueryEscape(sessionID))
	return c.Redirect(http.StatusFound, redirect)
}

// CallbackPost handles POST /api/bank/callback: exchanges the code and
// returns the concatenated per-account transactions directly.
func (h *BankHandler) CallbackPost(c echo.Context) error {
	var req BankCallbackRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Code == "" {
		return NewValidationError(c, "Authorization code is missing", []ValidationError{
			{Field: "code", Message: "Field 'code' is required"},
		})
	}

	transactions, err := h.bankService.SyncTransactions(c.Request().Context(), req.Code)
	if err != nil {
		return h.mapBankError(c, err, "Bank synchronization failed")
	}
	if transactions == nil {
		transactions = []domain.BankTransaction{}
	}

	return c.JSON(http.StatusOK, BankTransactionsResponse{Transactions: transactions})
}

// Transactions handles GET /api/bank/transactions?session=
func (h *BankHandler) Transactions(c echo.Context) error {
	sessionID := c.QueryParam("session")
	if sessionID == "" {
		return NewValidationError(c, "Session handle is missing", []ValidationError{
			{Field: "session", Message: "Query parameter 'session' is required"},
		})
	}

	transactions, err := h.bankService.SessionTransactions(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return NewNotFoundError(c, "Bank session not found or expired")
		}
		return h.mapBankError(c, err, "Failed to fetch bank transactions")
	}
	if transactions == nil {
		transactions = []domain.BankTransaction{}
	}

	return c.JSON(http.StatusOK, transactions)
}

// mapBankError translates provider failures into sanitized responses. The
// provider's error body is logged server-side only; credentials never reach
// either the log or the response.
func (h *BankHandler) mapBankError(c echo.Context, err error, action string) error {
	var apiErr *truelayer.APIError
	if errors.As(err, &apiErr) {
		log.Error().
			Int("upstream_status", apiErr.StatusCode).
			Str("upstream_body", apiErr.Body).
			Msg(action)
		return NewUpstreamError(c, fmt.Sprintf("Provider returned status %d", apiErr.StatusCode))
	}
	if errors.Is(err, domain.ErrMissingToken) {
		log.Error().Msg("Provider response carried no access token")
		return NewUpstreamError(c, "Provider response carried no access token")
	}
	log.Error().Err(err).Msg(action)
	return NewInternalError(c, action)
}

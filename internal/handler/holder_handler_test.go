package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/service"
	"github.com/foyerapp/foyer-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func TestCreateHolder_Handler_Success(t *testing.T) {
	e := echo.New()
	holderRepo := testutil.NewMockHolderRepository()
	handler := NewHolderHandler(service.NewHolderService(holderRepo, nil))

	reqBody := `{"firstName": "Ada", "lastName": "Martin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/holders", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateHolder(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response HolderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.FirstName != "Ada" || response.LastName != "Martin" {
		t.Errorf("Unexpected holder: %+v", response)
	}
}

func TestCreateHolder_Handler_MissingName(t *testing.T) {
	e := echo.New()
	holderRepo := testutil.NewMockHolderRepository()
	handler := NewHolderHandler(service.NewHolderService(holderRepo, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/holders", strings.NewReader(`{"firstName": "Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateHolder(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetHolders_Handler_Ordering(t *testing.T) {
	e := echo.New()
	holderRepo := testutil.NewMockHolderRepository()
	handler := NewHolderHandler(service.NewHolderService(holderRepo, nil))

	holderRepo.AddHolder(&domain.Holder{ID: "h1", FirstName: "Ada", LastName: "Zimmer"})
	holderRepo.AddHolder(&domain.Holder{ID: "h2", FirstName: "Ben", LastName: "Abbot"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/holders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetHolders(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []HolderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 holders, got %d", len(response))
	}
	if response[0].LastName != "Abbot" || response[1].LastName != "Zimmer" {
		t.Errorf("Expected holders ordered by last name, got %s then %s", response[0].LastName, response[1].LastName)
	}
}

func TestDeleteHolder_Handler_NotFound(t *testing.T) {
	e := echo.New()
	holderRepo := testutil.NewMockHolderRepository()
	handler := NewHolderHandler(service.NewHolderService(holderRepo, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/holders/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.DeleteHolder(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

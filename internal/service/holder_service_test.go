package service

import (
	"errors"
	"testing"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/testutil"
)

func TestCreateHolder_Success(t *testing.T) {
	holderRepo := testutil.NewMockHolderRepository()
	holderService := NewHolderService(holderRepo, nil)

	holder, err := holderService.CreateHolder("  Ada ", "Martin")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if holder.FirstName != "Ada" {
		t.Errorf("Expected trimmed first name 'Ada', got %q", holder.FirstName)
	}
	if holder.LastName != "Martin" {
		t.Errorf("Expected last name 'Martin', got %q", holder.LastName)
	}
	if holder.ID == "" {
		t.Error("Expected a generated id")
	}
}

func TestCreateHolder_MissingName(t *testing.T) {
	holderRepo := testutil.NewMockHolderRepository()
	holderService := NewHolderService(holderRepo, nil)

	if _, err := holderService.CreateHolder("", "Martin"); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired for empty first name, got %v", err)
	}
	if _, err := holderService.CreateHolder("Ada", "   "); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired for blank last name, got %v", err)
	}
}

func TestGetHolders_OrderedByLastName(t *testing.T) {
	holderRepo := testutil.NewMockHolderRepository()
	holderService := NewHolderService(holderRepo, nil)

	holderRepo.AddHolder(&domain.Holder{ID: "h1", FirstName: "Ada", LastName: "Zimmer"})
	holderRepo.AddHolder(&domain.Holder{ID: "h2", FirstName: "Ben", LastName: "Abbot"})

	holders, err := holderService.GetHolders()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(holders) != 2 {
		t.Fatalf("Expected 2 holders, got %d", len(holders))
	}
	if holders[0].LastName != "Abbot" || holders[1].LastName != "Zimmer" {
		t.Errorf("Expected holders ordered by last name, got %s then %s", holders[0].LastName, holders[1].LastName)
	}
}

func TestUpdateHolder_NotFound(t *testing.T) {
	holderRepo := testutil.NewMockHolderRepository()
	holderService := NewHolderService(holderRepo, nil)

	_, err := holderService.UpdateHolder("missing", "Ada", "Martin")
	if !errors.Is(err, domain.ErrHolderNotFound) {
		t.Errorf("Expected ErrHolderNotFound, got %v", err)
	}
}

func TestDeleteHolder_PublishesEvent(t *testing.T) {
	holderRepo := testutil.NewMockHolderRepository()
	recorder := &testutil.EventRecorder{}
	holderService := NewHolderService(holderRepo, recorder)

	holderRepo.AddHolder(&domain.Holder{ID: "h1", FirstName: "Ada", LastName: "Martin"})

	if err := holderService.DeleteHolder("h1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	types := recorder.Types()
	if len(types) != 1 || types[0] != "holder.deleted" {
		t.Errorf("Expected one holder.deleted event, got %v", types)
	}
}

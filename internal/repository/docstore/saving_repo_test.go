package docstore

import (
	"errors"
	"testing"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func TestSavingRepository_CreateAndGet(t *testing.T) {
	repo := NewSavingRepository(NewMemoryStore())

	created, err := repo.Create(&domain.Saving{
		Label:   "Vacation",
		Balance: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a generated id")
	}

	saving, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if saving.Label != "Vacation" {
		t.Errorf("Expected label 'Vacation', got %s", saving.Label)
	}
	if !saving.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected balance 100, got %s", saving.Balance.String())
	}
	if saving.Operations == nil {
		t.Error("Expected non-nil operations slice")
	}
}

func TestSavingRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSavingRepository(NewMemoryStore())

	_, err := repo.GetByID("missing")
	if !errors.Is(err, domain.ErrSavingNotFound) {
		t.Errorf("Expected ErrSavingNotFound, got %v", err)
	}
}

func TestSavingRepository_GetAll_OrderedByLabel(t *testing.T) {
	repo := NewSavingRepository(NewMemoryStore())

	for _, label := range []string{"Zanzibar", "Alps", "Madrid"} {
		if _, err := repo.Create(&domain.Saving{Label: label}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	savings, err := repo.GetAll()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(savings) != 3 {
		t.Fatalf("Expected 3 savings, got %d", len(savings))
	}
	want := []string{"Alps", "Madrid", "Zanzibar"}
	for i, label := range want {
		if savings[i].Label != label {
			t.Errorf("Expected saving %d to be %s, got %s", i, label, savings[i].Label)
		}
	}
}

func TestSavingRepository_UpdateLedger(t *testing.T) {
	repo := NewSavingRepository(NewMemoryStore())

	created, err := repo.Create(&domain.Saving{
		Label:   "Vacation",
		Balance: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	operations := []domain.Operation{{
		ID:           "op-1",
		Type:         domain.OperationTypeDeposit,
		Amount:       decimal.NewFromInt(50),
		Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		BalanceAfter: decimal.NewFromInt(150),
		CreatedAt:    time.Now().UTC(),
	}}
	if err := repo.UpdateLedger(created.ID, decimal.NewFromInt(150), operations); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	saving, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !saving.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Expected balance 150, got %s", saving.Balance.String())
	}
	if len(saving.Operations) != 1 {
		t.Fatalf("Expected 1 operation, got %d", len(saving.Operations))
	}
	if saving.Operations[0].ID != "op-1" {
		t.Errorf("Expected operation 'op-1', got %s", saving.Operations[0].ID)
	}
	// The label is not part of the ledger patch and must survive it.
	if saving.Label != "Vacation" {
		t.Errorf("Expected label untouched, got %s", saving.Label)
	}
}

func TestSavingRepository_UpdateLedger_NotFound(t *testing.T) {
	repo := NewSavingRepository(NewMemoryStore())

	err := repo.UpdateLedger("missing", decimal.NewFromInt(10), nil)
	if !errors.Is(err, domain.ErrSavingNotFound) {
		t.Errorf("Expected ErrSavingNotFound, got %v", err)
	}
}

func TestSavingRepository_Delete(t *testing.T) {
	repo := NewSavingRepository(NewMemoryStore())

	created, _ := repo.Create(&domain.Saving{Label: "Vacation"})
	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := repo.GetByID(created.ID); !errors.Is(err, domain.ErrSavingNotFound) {
		t.Errorf("Expected ErrSavingNotFound after delete, got %v", err)
	}
}

func TestHolderRepository_OrderedByLastName(t *testing.T) {
	repo := NewHolderRepository(NewMemoryStore())

	for _, name := range []string{"Zimmer", "Abbot", "Martin"} {
		if _, err := repo.Create(&domain.Holder{FirstName: "X", LastName: name}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	holders, err := repo.GetAll()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []string{"Abbot", "Martin", "Zimmer"}
	for i, name := range want {
		if holders[i].LastName != name {
			t.Errorf("Expected holder %d to be %s, got %s", i, name, holders[i].LastName)
		}
	}
}

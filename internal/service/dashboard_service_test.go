package service

import (
	"testing"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestGetSummary(t *testing.T) {
	elementRepo := testutil.NewMockBudgetElementRepository()
	holderRepo := testutil.NewMockHolderRepository()
	savingRepo := testutil.NewMockSavingRepository()
	savingService := NewSavingService(savingRepo, nil)
	elementService := NewBudgetElementService(elementRepo, holderRepo, savingService, nil)
	dashboardService := NewDashboardService(elementService, savingService)

	elementRepo.AddElement(&domain.BudgetElement{ID: "e1", Type: domain.ElementTypeCredit, Label: "Salary", MonthlyValue: decimal.NewFromInt(2500), HolderID: "h1"})
	elementRepo.AddElement(&domain.BudgetElement{ID: "e2", Type: domain.ElementTypeDebit, Label: "Rent", MonthlyValue: decimal.NewFromInt(900), HolderID: "h1"})
	savingRepo.AddSaving(&domain.Saving{ID: "s1", Label: "Vacation", Balance: decimal.NewFromInt(300)})
	savingRepo.AddSaving(&domain.Saving{ID: "s2", Label: "Emergency", Balance: decimal.NewFromInt(700)})

	summary, err := dashboardService.GetSummary()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !summary.MonthlyIncome.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("Expected income 2500, got %s", summary.MonthlyIncome.String())
	}
	if !summary.MonthlyExpenses.Equal(decimal.NewFromInt(900)) {
		t.Errorf("Expected expenses 900, got %s", summary.MonthlyExpenses.String())
	}
	if !summary.MonthlyNet.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("Expected net 1600, got %s", summary.MonthlyNet.String())
	}
	if !summary.TotalSavings.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected total savings 1000, got %s", summary.TotalSavings.String())
	}
	if summary.SavingCount != 2 {
		t.Errorf("Expected 2 savings, got %d", summary.SavingCount)
	}
}

func TestGetSummary_Empty(t *testing.T) {
	elementRepo := testutil.NewMockBudgetElementRepository()
	holderRepo := testutil.NewMockHolderRepository()
	savingRepo := testutil.NewMockSavingRepository()
	savingService := NewSavingService(savingRepo, nil)
	elementService := NewBudgetElementService(elementRepo, holderRepo, savingService, nil)
	dashboardService := NewDashboardService(elementService, savingService)

	summary, err := dashboardService.GetSummary()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !summary.MonthlyNet.IsZero() || !summary.TotalSavings.IsZero() || summary.SavingCount != 0 {
		t.Errorf("Expected zeroed summary, got %+v", summary)
	}
}

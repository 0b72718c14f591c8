package service

import (
	"github.com/shopspring/decimal"
)

// DashboardService aggregates monthly budget figures and savings totals
type DashboardService struct {
	elementService *BudgetElementService
	savingService  *SavingService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(elementService *BudgetElementService, savingService *SavingService) *DashboardService {
	return &DashboardService{
		elementService: elementService,
		savingService:  savingService,
	}
}

// DashboardSummary holds the aggregated dashboard figures
type DashboardSummary struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	MonthlyNet      decimal.Decimal
	TotalSavings    decimal.Decimal
	SavingCount     int
}

// GetSummary computes the dashboard summary. All figures are pure folds over
// current state, recomputed per call.
func (s *DashboardService) GetSummary() (*DashboardSummary, error) {
	income, err := s.elementService.MonthlyIncome()
	if err != nil {
		return nil, err
	}
	expenses, err := s.elementService.MonthlyExpenses()
	if err != nil {
		return nil, err
	}

	savings, err := s.savingService.GetSavings()
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, saving := range savings {
		total = total.Add(saving.Balance)
	}

	return &DashboardSummary{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		MonthlyNet:      income.Sub(expenses),
		TotalSavings:    total,
		SavingCount:     len(savings),
	}, nil
}

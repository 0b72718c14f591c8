package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetElementType string

const (
	ElementTypeDebit   BudgetElementType = "debit"
	ElementTypeCredit  BudgetElementType = "credit"
	ElementTypeMonthly BudgetElementType = "monthly"
)

// IsValid reports whether t is one of the enumerated element types.
func (t BudgetElementType) IsValid() bool {
	switch t {
	case ElementTypeDebit, ElementTypeCredit, ElementTypeMonthly:
		return true
	}
	return false
}

// BudgetElement is a recurring monthly income/expense line, optionally
// linked to a savings pocket for monthly contribution bookkeeping.
type BudgetElement struct {
	ID           string            `json:"id"`
	Type         BudgetElementType `json:"type"`
	Label        string            `json:"label"`
	MonthlyValue decimal.Decimal   `json:"monthlyValue"`
	HolderID     string            `json:"holderId"`
	SavingsID    *string           `json:"savingsId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type BudgetElementRepository interface {
	Create(element *BudgetElement) (*BudgetElement, error)
	GetByID(id string) (*BudgetElement, error)
	GetAll() ([]*BudgetElement, error)
	Update(id string, element *BudgetElement) (*BudgetElement, error)
	Delete(id string) error
}

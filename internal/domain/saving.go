package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationType string

const (
	OperationTypeDeposit    OperationType = "deposit"
	OperationTypeWithdrawal OperationType = "withdrawal"
	OperationTypeMonthly    OperationType = "monthly"
)

// IsValid reports whether t is one of the enumerated operation types.
func (t OperationType) IsValid() bool {
	switch t {
	case OperationTypeDeposit, OperationTypeWithdrawal, OperationTypeMonthly:
		return true
	}
	return false
}

// Operation is a single ledger entry of a savings pocket. Operations are
// immutable once appended; BalanceAfter snapshots the pocket balance at
// append time, independent of the user-supplied Date.
type Operation struct {
	ID              string          `json:"id"`
	Type            OperationType   `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	BudgetElementID *string         `json:"budgetElementId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SignedAmount is the delta an operation contributes to the balance:
// deposits and monthly contributions credit, withdrawals debit.
func (o Operation) SignedAmount() decimal.Decimal {
	if o.Type == OperationTypeWithdrawal {
		return o.Amount.Neg()
	}
	return o.Amount
}

// Saving is a named savings pocket. Balance is a cached value that always
// equals the BalanceAfter of the most recently appended operation (or the
// initial balance while the ledger is empty). Operations are kept in append
// order, which is not necessarily date order.
type Saving struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	Balance    decimal.Decimal `json:"balance"`
	Operations []Operation     `json:"operations"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// BalanceTrend compares the two most recent operations by date.
type BalanceTrend struct {
	IsPositive       bool            `json:"isPositive"`
	PercentageChange decimal.Decimal `json:"percentageChange"`
}

type SavingRepository interface {
	Create(saving *Saving) (*Saving, error)
	GetByID(id string) (*Saving, error)
	GetAll() ([]*Saving, error)
	UpdateLabel(id string, label string) (*Saving, error)
	// UpdateLedger persists a new balance together with the full operation
	// sequence as a single write.
	UpdateLedger(id string, balance decimal.Decimal, operations []Operation) error
	Delete(id string) error
}

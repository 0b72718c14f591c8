package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOperationTypeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		opType   OperationType
		expected bool
	}{
		{"deposit", OperationTypeDeposit, true},
		{"withdrawal", OperationTypeWithdrawal, true},
		{"monthly", OperationTypeMonthly, true},
		{"unknown", OperationType("transfer"), false},
		{"empty", OperationType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opType.IsValid() != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.opType, tt.opType.IsValid(), tt.expected)
			}
		})
	}
}

func TestOperationSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(50)

	tests := []struct {
		name     string
		opType   OperationType
		expected decimal.Decimal
	}{
		{"deposit credits", OperationTypeDeposit, amount},
		{"monthly credits", OperationTypeMonthly, amount},
		{"withdrawal debits", OperationTypeWithdrawal, amount.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := Operation{Type: tt.opType, Amount: amount}
			if !op.SignedAmount().Equal(tt.expected) {
				t.Errorf("SignedAmount() = %s, want %s", op.SignedAmount().String(), tt.expected.String())
			}
		})
	}
}

func TestBudgetElementTypeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		elemType BudgetElementType
		expected bool
	}{
		{"debit", ElementTypeDebit, true},
		{"credit", ElementTypeCredit, true},
		{"monthly", ElementTypeMonthly, true},
		{"unknown", BudgetElementType("yearly"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.elemType.IsValid() != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.elemType, tt.elemType.IsValid(), tt.expected)
			}
		})
	}
}

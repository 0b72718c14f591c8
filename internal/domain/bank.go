package domain

import "context"

// BankAccount is an account as reported by the open-banking provider.
type BankAccount struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Currency    string `json:"currency"`
}

// BankTransaction is a single transaction pulled from the provider.
type BankTransaction struct {
	TransactionID   string  `json:"transaction_id"`
	Timestamp       string  `json:"timestamp"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	TransactionType string  `json:"transaction_type"`
}

// BankClient talks to the open-banking provider. The client secret involved
// in ExchangeCode is held server-side and never surfaces in results or errors.
type BankClient interface {
	ExchangeCode(ctx context.Context, code string) (accessToken string, err error)
	Accounts(ctx context.Context, accessToken string) ([]BankAccount, error)
	AccountTransactions(ctx context.Context, accessToken, accountID string) ([]BankTransaction, error)
	Transactions(ctx context.Context, accessToken string) ([]BankTransaction, error)
}

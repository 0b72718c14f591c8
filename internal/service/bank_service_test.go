package service

import (
	"context"
	"errors"
	"testing"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/testutil"
)

func TestSyncTransactions_ConcatenatesInAccountOrder(t *testing.T) {
	client := &testutil.MockBankClient{
		AccountsFn: func(ctx context.Context, token string) ([]domain.BankAccount, error) {
			return []domain.BankAccount{
				{AccountID: "acc-1", DisplayName: "Current", Currency: "EUR"},
				{AccountID: "acc-2", DisplayName: "Joint", Currency: "EUR"},
			}, nil
		},
		AccountTransactionsFn: func(ctx context.Context, token, accountID string) ([]domain.BankTransaction, error) {
			switch accountID {
			case "acc-1":
				return []domain.BankTransaction{{TransactionID: "t1"}, {TransactionID: "t2"}}, nil
			case "acc-2":
				return []domain.BankTransaction{{TransactionID: "t3"}}, nil
			}
			return nil, nil
		},
	}
	bankService := NewBankService(client, NewSessionStore())

	transactions, err := bankService.SyncTransactions(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(transactions) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(transactions))
	}
	want := []string{"t1", "t2", "t3"}
	for i, id := range want {
		if transactions[i].TransactionID != id {
			t.Errorf("Expected transaction %d to be %s, got %s", i, id, transactions[i].TransactionID)
		}
	}
}

func TestSyncTransactions_MissingCode(t *testing.T) {
	client := &testutil.MockBankClient{}
	bankService := NewBankService(client, NewSessionStore())

	_, err := bankService.SyncTransactions(context.Background(), "")
	if !errors.Is(err, domain.ErrMissingCode) {
		t.Errorf("Expected ErrMissingCode, got %v", err)
	}
	if len(client.ExchangeCalls) != 0 {
		t.Errorf("Expected no exchange attempt, got %d", len(client.ExchangeCalls))
	}
}

func TestSyncTransactions_ExchangeFailureIsTerminal(t *testing.T) {
	upstream := errors.New("invalid_grant")
	client := &testutil.MockBankClient{
		ExchangeCodeFn: func(ctx context.Context, code string) (string, error) {
			return "", upstream
		},
	}
	bankService := NewBankService(client, NewSessionStore())

	_, err := bankService.SyncTransactions(context.Background(), "auth-code")
	if !errors.Is(err, upstream) {
		t.Errorf("Expected upstream error, got %v", err)
	}
	// No retry: a single exchange attempt per call.
	if len(client.ExchangeCalls) != 1 {
		t.Errorf("Expected exactly 1 exchange attempt, got %d", len(client.ExchangeCalls))
	}
}

func TestSyncTransactions_AccountFetchFailure(t *testing.T) {
	upstream := errors.New("upstream 500")
	client := &testutil.MockBankClient{
		AccountsFn: func(ctx context.Context, token string) ([]domain.BankAccount, error) {
			return []domain.BankAccount{{AccountID: "acc-1"}, {AccountID: "acc-2"}}, nil
		},
		AccountTransactionsFn: func(ctx context.Context, token, accountID string) ([]domain.BankTransaction, error) {
			if accountID == "acc-2" {
				return nil, upstream
			}
			return []domain.BankTransaction{{TransactionID: "t1"}}, nil
		},
	}
	bankService := NewBankService(client, NewSessionStore())

	_, err := bankService.SyncTransactions(context.Background(), "auth-code")
	if !errors.Is(err, upstream) {
		t.Errorf("Expected upstream error, got %v", err)
	}
}

func TestSyncTransactions_NoAccounts(t *testing.T) {
	client := &testutil.MockBankClient{
		AccountsFn: func(ctx context.Context, token string) ([]domain.BankAccount, error) {
			return []domain.BankAccount{}, nil
		},
	}
	bankService := NewBankService(client, NewSessionStore())

	transactions, err := bankService.SyncTransactions(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("Expected no transactions, got %d", len(transactions))
	}
}

func TestHandleCallback_ParksTokenBehindSessionHandle(t *testing.T) {
	client := &testutil.MockBankClient{
		ExchangeCodeFn: func(ctx context.Context, code string) (string, error) {
			return "secret-token", nil
		},
	}
	sessions := NewSessionStore()
	bankService := NewBankService(client, sessions)

	sessionID, err := bankService.HandleCallback(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sessionID == "" {
		t.Fatal("Expected a session handle")
	}
	if sessionID == "secret-token" {
		t.Fatal("Session handle must not be the token itself")
	}

	token, err := sessions.Get(sessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token != "secret-token" {
		t.Errorf("Expected parked token to resolve, got %q", token)
	}
}

func TestHandleCallback_MissingCode(t *testing.T) {
	bankService := NewBankService(&testutil.MockBankClient{}, NewSessionStore())

	_, err := bankService.HandleCallback(context.Background(), "")
	if !errors.Is(err, domain.ErrMissingCode) {
		t.Errorf("Expected ErrMissingCode, got %v", err)
	}
}

func TestSessionTransactions_UnknownSession(t *testing.T) {
	bankService := NewBankService(&testutil.MockBankClient{}, NewSessionStore())

	_, err := bankService.SessionTransactions(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionTransactions_ResolvesTokenForFeed(t *testing.T) {
	var usedToken string
	client := &testutil.MockBankClient{
		TransactionsFn: func(ctx context.Context, token string) ([]domain.BankTransaction, error) {
			usedToken = token
			return []domain.BankTransaction{{TransactionID: "t1"}}, nil
		},
	}
	sessions := NewSessionStore()
	bankService := NewBankService(client, sessions)

	sessionID := sessions.Put("secret-token")
	transactions, err := bankService.SessionTransactions(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if usedToken != "secret-token" {
		t.Errorf("Expected feed fetched with parked token, got %q", usedToken)
	}
	if len(transactions) != 1 {
		t.Errorf("Expected 1 transaction, got %d", len(transactions))
	}
}

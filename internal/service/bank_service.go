package service

import (
	"context"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BankService drives the authorization-code exchange and the downstream data
// fetches. Each attempt is request-scoped and terminal on failure; a new
// consent redirect is the only retry path.
type BankService struct {
	client   domain.BankClient
	sessions *SessionStore
}

// NewBankService creates a new BankService
func NewBankService(client domain.BankClient, sessions *SessionStore) *BankService {
	return &BankService{client: client, sessions: sessions}
}

// SyncTransactions exchanges the code and pulls transactions for every
// account. Per-account fetches fan out concurrently; results are
// concatenated in accounts-list order.
func (s *BankService) SyncTransactions(ctx context.Context, code string) ([]domain.BankTransaction, error) {
	if code == "" {
		return nil, domain.ErrMissingCode
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	accounts, err := s.client.Accounts(ctx, token)
	if err != nil {
		return nil, err
	}

	// Fan out one fetch per account; each goroutine writes its own slot so
	// concatenation below preserves accounts-list order.
	perAccount := make([][]domain.BankTransaction, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			txs, err := s.client.AccountTransactions(gctx, token, account.AccountID)
			if err != nil {
				return err
			}
			perAccount[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var transactions []domain.BankTransaction
	for _, txs := range perAccount {
		transactions = append(transactions, txs...)
	}

	log.Info().
		Int("account_count", len(accounts)).
		Int("transaction_count", len(transactions)).
		Msg("Bank transactions synchronized")

	return transactions, nil
}

// HandleCallback exchanges the code and parks the resulting token, returning
// the opaque session handle to embed in the client redirect.
func (s *BankService) HandleCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", domain.ErrMissingCode
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return "", err
	}
	return s.sessions.Put(token), nil
}

// SessionTransactions resolves a session handle and pulls the cross-account
// transaction feed with its token.
func (s *BankService) SessionTransactions(ctx context.Context, sessionID string) ([]domain.BankTransaction, error) {
	token, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.client.Transactions(ctx, token)
}

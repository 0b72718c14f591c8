package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SavingService handles savings pockets and their operation ledgers. The
// ledger is append-only: each operation snapshots the balance after its own
// signed amount is folded into the pocket's balance, and the stored balance
// always equals the last operation's balanceAfter.
type SavingService struct {
	savingRepo domain.SavingRepository
	publisher  websocket.EventPublisher

	// locks serializes appends per pocket; appends against different
	// pockets proceed in parallel.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewSavingService creates a new SavingService
func NewSavingService(savingRepo domain.SavingRepository, publisher websocket.EventPublisher) *SavingService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &SavingService{
		savingRepo: savingRepo,
		publisher:  publisher,
		locks:      make(map[string]*sync.Mutex),
	}
}

// CreateSavingInput holds the input for creating a saving
type CreateSavingInput struct {
	Label          string
	InitialBalance decimal.Decimal
}

// CreateSaving creates a new savings pocket with an empty ledger
func (s *SavingService) CreateSaving(input CreateSavingInput) (*domain.Saving, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, domain.ErrLabelRequired
	}
	if len(label) > domain.MaxLabelLength {
		return nil, domain.ErrLabelTooLong
	}

	saving := &domain.Saving{
		Label:      label,
		Balance:    input.InitialBalance,
		Operations: []domain.Operation{},
	}

	created, err := s.savingRepo.Create(saving)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(websocket.SavingCreated(created))
	return created, nil
}

// GetSavings retrieves all savings ordered by label
func (s *SavingService) GetSavings() ([]*domain.Saving, error) {
	return s.savingRepo.GetAll()
}

// GetSavingByID retrieves a saving by ID
func (s *SavingService) GetSavingByID(id string) (*domain.Saving, error) {
	return s.savingRepo.GetByID(id)
}

// UpdateSaving updates a saving's label (the ledger itself is immutable)
func (s *SavingService) UpdateSaving(id string, label string) (*domain.Saving, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.ErrLabelRequired
	}
	if len(label) > domain.MaxLabelLength {
		return nil, domain.ErrLabelTooLong
	}

	updated, err := s.savingRepo.UpdateLabel(id, label)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(websocket.SavingUpdated(updated))
	return updated, nil
}

// DeleteSaving removes a saving and its ledger
func (s *SavingService) DeleteSaving(id string) error {
	if err := s.savingRepo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(websocket.SavingDeleted(map[string]string{"id": id}))
	return nil
}

// AppendOperationInput holds the input for appending a ledger operation
type AppendOperationInput struct {
	Type            domain.OperationType
	Amount          decimal.Decimal
	Date            time.Time
	BudgetElementID *string
}

// AppendOperation appends an operation to a pocket's ledger and updates the
// cached balance in the same write. Withdrawals may drive the balance
// negative; there is no floor.
func (s *SavingService) AppendOperation(savingID string, input AppendOperationInput) (*domain.Operation, error) {
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidOperationType
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrAmountNotPositive
	}
	if input.Type == domain.OperationTypeMonthly && input.BudgetElementID == nil {
		return nil, domain.ErrBudgetElementRequired
	}
	if input.Type != domain.OperationTypeMonthly && input.BudgetElementID != nil {
		return nil, domain.ErrBudgetElementNotAllowed
	}

	// The read-modify-write below is the atomic unit: no two appends to the
	// same pocket may both read the same pre-update balance.
	lock := s.pocketLock(savingID)
	lock.Lock()
	defer lock.Unlock()

	saving, err := s.savingRepo.GetByID(savingID)
	if err != nil {
		return nil, err
	}

	op := domain.Operation{
		ID:              uuid.NewString(),
		Type:            input.Type,
		Amount:          input.Amount,
		Date:            input.Date,
		BudgetElementID: input.BudgetElementID,
		CreatedAt:       time.Now().UTC(),
	}
	op.BalanceAfter = saving.Balance.Add(op.SignedAmount())

	operations := append(saving.Operations, op)
	if err := s.savingRepo.UpdateLedger(savingID, op.BalanceAfter, operations); err != nil {
		// Store failure: nothing was mutated, prior state stands.
		return nil, err
	}

	log.Info().
		Str("saving_id", savingID).
		Str("operation_id", op.ID).
		Str("type", string(op.Type)).
		Str("amount", op.Amount.String()).
		Str("balance_after", op.BalanceAfter.String()).
		Msg("Operation appended")

	s.publisher.Publish(websocket.OperationAppended(op))
	return &op, nil
}

// GetOperationHistory returns a pocket's operations in append order. A pocket
// with no operations yields an empty slice; an unknown pocket id fails with
// ErrSavingNotFound.
func (s *SavingService) GetOperationHistory(savingID string) ([]domain.Operation, error) {
	saving, err := s.savingRepo.GetByID(savingID)
	if err != nil {
		return nil, err
	}
	return saving.Operations, nil
}

// GetBalanceTrend compares the balanceAfter of the two most recent operations
// by date (not append order). It returns nil when the ledger has fewer than
// two operations or when the previous balance is zero.
func (s *SavingService) GetBalanceTrend(savingID string) (*domain.BalanceTrend, error) {
	saving, err := s.savingRepo.GetByID(savingID)
	if err != nil {
		return nil, err
	}
	if len(saving.Operations) < 2 {
		return nil, nil
	}

	sorted := make([]domain.Operation, len(saving.Operations))
	copy(sorted, saving.Operations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	last := sorted[len(sorted)-1].BalanceAfter
	previous := sorted[len(sorted)-2].BalanceAfter
	if previous.IsZero() {
		return nil, nil
	}

	change := last.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Abs()
	return &domain.BalanceTrend{
		IsPositive:       last.GreaterThan(previous),
		PercentageChange: change.Round(1),
	}, nil
}

func (s *SavingService) pocketLock(savingID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[savingID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[savingID] = lock
	}
	return lock
}

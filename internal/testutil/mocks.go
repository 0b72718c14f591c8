package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockHolderRepository is a mock implementation of domain.HolderRepository
type MockHolderRepository struct {
	mu      sync.Mutex
	Holders map[string]*domain.Holder
}

// NewMockHolderRepository creates a new MockHolderRepository
func NewMockHolderRepository() *MockHolderRepository {
	return &MockHolderRepository{Holders: make(map[string]*domain.Holder)}
}

// Create creates a new holder
func (m *MockHolderRepository) Create(holder *domain.Holder) (*domain.Holder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	holder.ID = uuid.NewString()
	holder.CreatedAt = time.Now().UTC()
	m.Holders[holder.ID] = holder
	return holder, nil
}

// GetByID retrieves a holder by ID
func (m *MockHolderRepository) GetByID(id string) (*domain.Holder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if holder, ok := m.Holders[id]; ok {
		copied := *holder
		return &copied, nil
	}
	return nil, domain.ErrHolderNotFound
}

// GetAll retrieves all holders ordered by last name
func (m *MockHolderRepository) GetAll() ([]*domain.Holder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	holders := make([]*domain.Holder, 0, len(m.Holders))
	for _, holder := range m.Holders {
		copied := *holder
		holders = append(holders, &copied)
	}
	sort.Slice(holders, func(i, j int) bool { return holders[i].LastName < holders[j].LastName })
	return holders, nil
}

// Update updates a holder's names
func (m *MockHolderRepository) Update(id string, firstName, lastName string) (*domain.Holder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	holder, ok := m.Holders[id]
	if !ok {
		return nil, domain.ErrHolderNotFound
	}
	holder.FirstName = firstName
	holder.LastName = lastName
	copied := *holder
	return &copied, nil
}

// Delete removes a holder
func (m *MockHolderRepository) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Holders[id]; !ok {
		return domain.ErrHolderNotFound
	}
	delete(m.Holders, id)
	return nil
}

// AddHolder adds a holder to the mock repository (helper for tests)
func (m *MockHolderRepository) AddHolder(holder *domain.Holder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Holders[holder.ID] = holder
}

// MockSavingRepository is a mock implementation of domain.SavingRepository
type MockSavingRepository struct {
	mu      sync.Mutex
	Savings map[string]*domain.Saving
	// UpdateLedgerErr, when set, is returned by UpdateLedger without
	// mutating stored state (store-failure injection)
	UpdateLedgerErr error
}

// NewMockSavingRepository creates a new MockSavingRepository
func NewMockSavingRepository() *MockSavingRepository {
	return &MockSavingRepository{Savings: make(map[string]*domain.Saving)}
}

func copySaving(s *domain.Saving) *domain.Saving {
	copied := *s
	copied.Operations = make([]domain.Operation, len(s.Operations))
	copy(copied.Operations, s.Operations)
	return &copied
}

// Create creates a new saving
func (m *MockSavingRepository) Create(saving *domain.Saving) (*domain.Saving, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	saving.ID = uuid.NewString()
	now := time.Now().UTC()
	saving.CreatedAt = now
	saving.UpdatedAt = now
	if saving.Operations == nil {
		saving.Operations = []domain.Operation{}
	}
	m.Savings[saving.ID] = copySaving(saving)
	return saving, nil
}

// GetByID retrieves a saving by ID
func (m *MockSavingRepository) GetByID(id string) (*domain.Saving, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if saving, ok := m.Savings[id]; ok {
		return copySaving(saving), nil
	}
	return nil, domain.ErrSavingNotFound
}

// GetAll retrieves all savings ordered by label
func (m *MockSavingRepository) GetAll() ([]*domain.Saving, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	savings := make([]*domain.Saving, 0, len(m.Savings))
	for _, saving := range m.Savings {
		savings = append(savings, copySaving(saving))
	}
	sort.Slice(savings, func(i, j int) bool { return savings[i].Label < savings[j].Label })
	return savings, nil
}

// UpdateLabel updates a saving's label
func (m *MockSavingRepository) UpdateLabel(id string, label string) (*domain.Saving, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	saving, ok := m.Savings[id]
	if !ok {
		return nil, domain.ErrSavingNotFound
	}
	saving.Label = label
	saving.UpdatedAt = time.Now().UTC()
	return copySaving(saving), nil
}

// UpdateLedger persists a new balance together with the operation sequence
func (m *MockSavingRepository) UpdateLedger(id string, balance decimal.Decimal, operations []domain.Operation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateLedgerErr != nil {
		return m.UpdateLedgerErr
	}
	saving, ok := m.Savings[id]
	if !ok {
		return domain.ErrSavingNotFound
	}
	saving.Balance = balance
	saving.Operations = make([]domain.Operation, len(operations))
	copy(saving.Operations, operations)
	saving.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes a saving
func (m *MockSavingRepository) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Savings[id]; !ok {
		return domain.ErrSavingNotFound
	}
	delete(m.Savings, id)
	return nil
}

// AddSaving adds a saving to the mock repository (helper for tests)
func (m *MockSavingRepository) AddSaving(saving *domain.Saving) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if saving.Operations == nil {
		saving.Operations = []domain.Operation{}
	}
	m.Savings[saving.ID] = copySaving(saving)
}

// MockBudgetElementRepository is a mock implementation of
// domain.BudgetElementRepository
type MockBudgetElementRepository struct {
	mu       sync.Mutex
	Elements map[string]*domain.BudgetElement
}

// NewMockBudgetElementRepository creates a new MockBudgetElementRepository
func NewMockBudgetElementRepository() *MockBudgetElementRepository {
	return &MockBudgetElementRepository{Elements: make(map[string]*domain.BudgetElement)}
}

// Create creates a new budget element
func (m *MockBudgetElementRepository) Create(element *domain.BudgetElement) (*domain.BudgetElement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	element.ID = uuid.NewString()
	now := time.Now().UTC()
	element.CreatedAt = now
	element.UpdatedAt = now
	m.Elements[element.ID] = element
	return element, nil
}

// GetByID retrieves a budget element by ID
func (m *MockBudgetElementRepository) GetByID(id string) (*domain.BudgetElement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if element, ok := m.Elements[id]; ok {
		copied := *element
		return &copied, nil
	}
	return nil, domain.ErrBudgetElementNotFound
}

// GetAll retrieves all budget elements ordered by label
func (m *MockBudgetElementRepository) GetAll() ([]*domain.BudgetElement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	elements := make([]*domain.BudgetElement, 0, len(m.Elements))
	for _, element := range m.Elements {
		copied := *element
		elements = append(elements, &copied)
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i].Label < elements[j].Label })
	return elements, nil
}

// Update replaces the mutable fields of a budget element
func (m *MockBudgetElementRepository) Update(id string, element *domain.BudgetElement) (*domain.BudgetElement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Elements[id]
	if !ok {
		return nil, domain.ErrBudgetElementNotFound
	}
	existing.Type = element.Type
	existing.Label = element.Label
	existing.MonthlyValue = element.MonthlyValue
	existing.HolderID = element.HolderID
	existing.SavingsID = element.SavingsID
	existing.UpdatedAt = time.Now().UTC()
	copied := *existing
	return &copied, nil
}

// Delete removes a budget element
func (m *MockBudgetElementRepository) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Elements[id]; !ok {
		return domain.ErrBudgetElementNotFound
	}
	delete(m.Elements, id)
	return nil
}

// AddElement adds a budget element to the mock repository (helper for tests)
func (m *MockBudgetElementRepository) AddElement(element *domain.BudgetElement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Elements[element.ID] = element
}

// MockBankClient is a mock implementation of domain.BankClient
type MockBankClient struct {
	ExchangeCodeFn        func(ctx context.Context, code string) (string, error)
	AccountsFn            func(ctx context.Context, accessToken string) ([]domain.BankAccount, error)
	AccountTransactionsFn func(ctx context.Context, accessToken, accountID string) ([]domain.BankTransaction, error)
	TransactionsFn        func(ctx context.Context, accessToken string) ([]domain.BankTransaction, error)

	mu            sync.Mutex
	ExchangeCalls []string
}

// ExchangeCode exchanges an authorization code for an access token
func (m *MockBankClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	m.mu.Lock()
	m.ExchangeCalls = append(m.ExchangeCalls, code)
	m.mu.Unlock()
	if m.ExchangeCodeFn != nil {
		return m.ExchangeCodeFn(ctx, code)
	}
	return "test-token", nil
}

// Accounts lists accounts
func (m *MockBankClient) Accounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error) {
	if m.AccountsFn != nil {
		return m.AccountsFn(ctx, accessToken)
	}
	return nil, nil
}

// AccountTransactions lists transactions for one account
func (m *MockBankClient) AccountTransactions(ctx context.Context, accessToken, accountID string) ([]domain.BankTransaction, error) {
	if m.AccountTransactionsFn != nil {
		return m.AccountTransactionsFn(ctx, accessToken, accountID)
	}
	return nil, nil
}

// Transactions lists transactions across all accounts
func (m *MockBankClient) Transactions(ctx context.Context, accessToken string) ([]domain.BankTransaction, error) {
	if m.TransactionsFn != nil {
		return m.TransactionsFn(ctx, accessToken)
	}
	return nil, nil
}

// EventRecorder records published events for assertions
type EventRecorder struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// Publish records the event
func (r *EventRecorder) Publish(event websocket.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

// Types returns the recorded event type strings in order
func (r *EventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}

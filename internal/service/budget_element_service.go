package service

import (
	"strings"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// BudgetElementService handles recurring income/expense lines and the
// monthly-contribution bookkeeping against linked savings pockets.
type BudgetElementService struct {
	elementRepo   domain.BudgetElementRepository
	holderRepo    domain.HolderRepository
	savingService *SavingService
	publisher     websocket.EventPublisher
}

// NewBudgetElementService creates a new BudgetElementService
func NewBudgetElementService(elementRepo domain.BudgetElementRepository, holderRepo domain.HolderRepository, savingService *SavingService, publisher websocket.EventPublisher) *BudgetElementService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &BudgetElementService{
		elementRepo:   elementRepo,
		holderRepo:    holderRepo,
		savingService: savingService,
		publisher:     publisher,
	}
}

// BudgetElementInput holds the input for creating or updating a budget element
type BudgetElementInput struct {
	Type         domain.BudgetElementType
	Label        string
	MonthlyValue decimal.Decimal
	HolderID     string
	SavingsID    *string
}

func (s *BudgetElementService) validate(input *BudgetElementInput) error {
	input.Label = strings.TrimSpace(input.Label)
	if input.Label == "" {
		return domain.ErrLabelRequired
	}
	if len(input.Label) > domain.MaxLabelLength {
		return domain.ErrLabelTooLong
	}
	if !input.Type.IsValid() {
		return domain.ErrInvalidElementType
	}
	if input.MonthlyValue.IsNegative() {
		return domain.ErrNegativeMonthlyValue
	}
	if input.HolderID == "" {
		return domain.ErrHolderRequired
	}
	if _, err := s.holderRepo.GetByID(input.HolderID); err != nil {
		return err
	}
	return nil
}

// CreateElement creates a new budget element
func (s *BudgetElementService) CreateElement(input BudgetElementInput) (*domain.BudgetElement, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	element := &domain.BudgetElement{
		Type:         input.Type,
		Label:        input.Label,
		MonthlyValue: input.MonthlyValue,
		HolderID:     input.HolderID,
		SavingsID:    input.SavingsID,
	}

	created, err := s.elementRepo.Create(element)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(websocket.BudgetElementCreated(created))
	return created, nil
}

// GetElements retrieves all budget elements ordered by label
func (s *BudgetElementService) GetElements() ([]*domain.BudgetElement, error) {
	return s.elementRepo.GetAll()
}

// GetElementByID retrieves a budget element by ID
func (s *BudgetElementService) GetElementByID(id string) (*domain.BudgetElement, error) {
	return s.elementRepo.GetByID(id)
}

// UpdateElement updates a budget element
func (s *BudgetElementService) UpdateElement(id string, input BudgetElementInput) (*domain.BudgetElement, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	element := &domain.BudgetElement{
		Type:         input.Type,
		Label:        input.Label,
		MonthlyValue: input.MonthlyValue,
		HolderID:     input.HolderID,
		SavingsID:    input.SavingsID,
	}

	updated, err := s.elementRepo.Update(id, element)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(websocket.BudgetElementUpdated(updated))
	return updated, nil
}

// DeleteElement removes a budget element
func (s *BudgetElementService) DeleteElement(id string) error {
	if err := s.elementRepo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(websocket.BudgetElementDeleted(map[string]string{"id": id}))
	return nil
}

// MonthlyIncome sums the monthly value of all credit elements. Recomputed on
// demand, never cached.
func (s *BudgetElementService) MonthlyIncome() (decimal.Decimal, error) {
	return s.sumByType(domain.ElementTypeCredit)
}

// MonthlyExpenses sums the monthly value of all debit elements
func (s *BudgetElementService) MonthlyExpenses() (decimal.Decimal, error) {
	return s.sumByType(domain.ElementTypeDebit)
}

func (s *BudgetElementService) sumByType(t domain.BudgetElementType) (decimal.Decimal, error) {
	elements, err := s.elementRepo.GetAll()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range elements {
		if e.Type == t {
			total = total.Add(e.MonthlyValue)
		}
	}
	return total, nil
}

// RecordMonthlyContribution appends a monthly operation against the saving a
// monthly-type element is linked to. The operation amount mirrors the
// element's monthly value.
func (s *BudgetElementService) RecordMonthlyContribution(elementID string, date time.Time) (*domain.Operation, error) {
	element, err := s.elementRepo.GetByID(elementID)
	if err != nil {
		return nil, err
	}
	if element.Type != domain.ElementTypeMonthly {
		return nil, domain.ErrNotMonthlyElement
	}
	if element.SavingsID == nil {
		return nil, domain.ErrSavingNotLinked
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return s.savingService.AppendOperation(*element.SavingsID, AppendOperationInput{
		Type:            domain.OperationTypeMonthly,
		Amount:          element.MonthlyValue,
		Date:            date,
		BudgetElementID: &element.ID,
	})
}

package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
)

// BudgetElementRepository implements domain.BudgetElementRepository on the
// document store
type BudgetElementRepository struct {
	store Store
}

// NewBudgetElementRepository creates a new BudgetElementRepository
func NewBudgetElementRepository(store Store) *BudgetElementRepository {
	return &BudgetElementRepository{store: store}
}

var _ domain.BudgetElementRepository = (*BudgetElementRepository)(nil)

// Create creates a new budget element
func (r *BudgetElementRepository) Create(element *domain.BudgetElement) (*domain.BudgetElement, error) {
	ctx := context.Background()
	now := time.Now().UTC()
	element.CreatedAt = now
	element.UpdatedAt = now
	id, err := r.store.Create(ctx, CollectionBudgetElements, element)
	if err != nil {
		return nil, err
	}
	element.ID = id
	return element, nil
}

// GetByID retrieves a budget element by its ID
func (r *BudgetElementRepository) GetByID(id string) (*domain.BudgetElement, error) {
	ctx := context.Background()
	var element domain.BudgetElement
	if err := r.store.Get(ctx, CollectionBudgetElements, id, &element); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, domain.ErrBudgetElementNotFound
		}
		return nil, err
	}
	return &element, nil
}

// GetAll retrieves all budget elements ordered by label
func (r *BudgetElementRepository) GetAll() ([]*domain.BudgetElement, error) {
	ctx := context.Background()
	var elements []*domain.BudgetElement
	if err := r.store.List(ctx, CollectionBudgetElements, "label", &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// Update replaces the mutable fields of a budget element
func (r *BudgetElementRepository) Update(id string, element *domain.BudgetElement) (*domain.BudgetElement, error) {
	ctx := context.Background()
	patch := map[string]any{
		"type":         element.Type,
		"label":        element.Label,
		"monthlyValue": element.MonthlyValue,
		"holderId":     element.HolderID,
		"savingsId":    element.SavingsID,
		"updatedAt":    time.Now().UTC(),
	}
	if err := r.store.Update(ctx, CollectionBudgetElements, id, patch); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, domain.ErrBudgetElementNotFound
		}
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes a budget element
func (r *BudgetElementRepository) Delete(id string) error {
	ctx := context.Background()
	if err := r.store.Delete(ctx, CollectionBudgetElements, id); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return domain.ErrBudgetElementNotFound
		}
		return err
	}
	return nil
}

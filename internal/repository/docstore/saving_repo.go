package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SavingRepository implements domain.SavingRepository on the document store
type SavingRepository struct {
	store Store
}

// NewSavingRepository creates a new SavingRepository
func NewSavingRepository(store Store) *SavingRepository {
	return &SavingRepository{store: store}
}

var _ domain.SavingRepository = (*SavingRepository)(nil)

// Create creates a new saving with an empty ledger
func (r *SavingRepository) Create(saving *domain.Saving) (*domain.Saving, error) {
	ctx := context.Background()
	now := time.Now().UTC()
	saving.CreatedAt = now
	saving.UpdatedAt = now
	if saving.Operations == nil {
		saving.Operations = []domain.Operation{}
	}
	id, err := r.store.Create(ctx, CollectionSavings, saving)
	if err != nil {
		return nil, err
	}
	saving.ID = id
	return saving, nil
}

// GetByID retrieves a saving by its ID
func (r *SavingRepository) GetByID(id string) (*domain.Saving, error) {
	ctx := context.Background()
	var saving domain.Saving
	if err := r.store.Get(ctx, CollectionSavings, id, &saving); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, domain.ErrSavingNotFound
		}
		return nil, err
	}
	if saving.Operations == nil {
		saving.Operations = []domain.Operation{}
	}
	return &saving, nil
}

// GetAll retrieves all savings ordered by label
func (r *SavingRepository) GetAll() ([]*domain.Saving, error) {
	ctx := context.Background()
	var savings []*domain.Saving
	if err := r.store.List(ctx, CollectionSavings, "label", &savings); err != nil {
		return nil, err
	}
	for _, s := range savings {
		if s.Operations == nil {
			s.Operations = []domain.Operation{}
		}
	}
	return savings, nil
}

// UpdateLabel updates a saving's label
func (r *SavingRepository) UpdateLabel(id string, label string) (*domain.Saving, error) {
	ctx := context.Background()
	patch := map[string]any{
		"label":     label,
		"updatedAt": time.Now().UTC(),
	}
	if err := r.store.Update(ctx, CollectionSavings, id, patch); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, domain.ErrSavingNotFound
		}
		return nil, err
	}
	return r.GetByID(id)
}

// UpdateLedger persists a new balance together with the full operation
// sequence as a single write.
func (r *SavingRepository) UpdateLedger(id string, balance decimal.Decimal, operations []domain.Operation) error {
	ctx := context.Background()
	patch := map[string]any{
		"balance":    balance,
		"operations": operations,
		"updatedAt":  time.Now().UTC(),
	}
	if err := r.store.Update(ctx, CollectionSavings, id, patch); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return domain.ErrSavingNotFound
		}
		return err
	}
	return nil
}

// Delete removes a saving and its ledger
func (r *SavingRepository) Delete(id string) error {
	ctx := context.Background()
	if err := r.store.Delete(ctx, CollectionSavings, id); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return domain.ErrSavingNotFound
		}
		return err
	}
	return nil
}

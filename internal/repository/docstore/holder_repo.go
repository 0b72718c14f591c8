package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
)

// HolderRepository implements domain.HolderRepository on the document store
type HolderRepository struct {
	store Store
}

// NewHolderRepository creates a new HolderRepository
func NewHolderRepository(store Store) *HolderRepository {
	return &HolderRepository{store: store}
}

var _ domain.HolderRepository = (*HolderRepository)(nil)

// Create creates a new holder
func (r *HolderRepository) Create(holder *domain.Holder) (*domain.Holder, error) {
	ctx := context.Background()
	holder.CreatedAt = time.Now().UTC()
	id, err := r.store.Create(ctx, CollectionHolders, holder)
	if err != nil {
		return nil, err
	}
	holder.ID = id
	return holder, nil
}

// GetByID retrieves a holder by its ID
func (r *HolderRepository) GetByID(id string) (*domain.Holder, error) {
	ctx := context.Background()
	var holder domain.Holder
	if err := r.store.Get(ctx, CollectionHolders, id, &holder); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, domain.ErrHolderNotFound
		}
		return nil, err
	}
	return &holder, nil
}

// GetAll retrieves all holders ordered by last name
func (r *HolderRepository) GetAll() ([]*domain.Holder, error) {
	ctx := context.Background()
	var holders []*domain.Holder
	if err := r.store.List(ctx, CollectionHolders, "lastName", &holders); err != nil {
		return nil, err
	}
	return holders, nil
}

// Update updates a holder's names
func (r *HolderRepository) Update(id string, firstName, lastName string) (*domain.Holder, error) {
	ctx := context.Background()
	patch := map[string]any{
		"firstName": firstName,
		"lastName":  lastName,
	}
	if err := r.store.Update(ctx, CollectionHolders, id, patch); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, domain.ErrHolderNotFound
		}
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes a holder
func (r *HolderRepository) Delete(id string) error {
	ctx := context.Background()
	if err := r.store.Delete(ctx, CollectionHolders, id); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return domain.ErrHolderNotFound
		}
		return err
	}
	return nil
}

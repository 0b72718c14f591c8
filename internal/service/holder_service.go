package service

import (
	"strings"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/foyerapp/foyer-backend/internal/websocket"
)

// HolderService handles holder-related business logic
type HolderService struct {
	holderRepo domain.HolderRepository
	publisher  websocket.EventPublisher
}

// NewHolderService creates a new HolderService
func NewHolderService(holderRepo domain.HolderRepository, publisher websocket.EventPublisher) *HolderService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &HolderService{holderRepo: holderRepo, publisher: publisher}
}

// CreateHolder creates a new holder
func (s *HolderService) CreateHolder(firstName, lastName string) (*domain.Holder, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrNameRequired
	}

	created, err := s.holderRepo.Create(&domain.Holder{
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(websocket.HolderCreated(created))
	return created, nil
}

// GetHolders retrieves all holders ordered by last name
func (s *HolderService) GetHolders() ([]*domain.Holder, error) {
	return s.holderRepo.GetAll()
}

// UpdateHolder updates a holder's names
func (s *HolderService) UpdateHolder(id, firstName, lastName string) (*domain.Holder, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrNameRequired
	}

	updated, err := s.holderRepo.Update(id, firstName, lastName)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(websocket.HolderUpdated(updated))
	return updated, nil
}

// DeleteHolder removes a holder. Budget elements referencing the holder are
// left in place; no cascading delete is defined.
func (s *HolderService) DeleteHolder(id string) error {
	if err := s.holderRepo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(websocket.HolderDeleted(map[string]string{"id": id}))
	return nil
}

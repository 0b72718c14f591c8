package domain

import "time"

// Holder identifies a person who owns budget elements.
type Holder struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type HolderRepository interface {
	Create(holder *Holder) (*Holder, error)
	GetByID(id string) (*Holder, error)
	GetAll() ([]*Holder, error)
	Update(id string, firstName, lastName string) (*Holder, error)
	Delete(id string) error
}

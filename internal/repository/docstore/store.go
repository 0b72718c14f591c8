// Package docstore provides the document-store facade the application
// persists through: JSON documents addressed by collection and id, with
// ordered listing by a top-level field. A Postgres-backed implementation is
// used in production and an in-memory one in tests.
package docstore

import (
	"context"
	"errors"
)

// Collection names
const (
	CollectionHolders        = "holders"
	CollectionSavings        = "savings"
	CollectionBudgetElements = "budgetElements"
)

// ErrDocumentNotFound is returned when no document matches a collection/id pair.
var ErrDocumentNotFound = errors.New("document not found")

// Store is the generic CRUD facade over the document database.
type Store interface {
	// Create stores fields as a new document and returns its generated id.
	// The id is also injected into the stored document under the "id" key.
	Create(ctx context.Context, collection string, fields any) (string, error)

	// Get unmarshals the document identified by collection/id into out.
	Get(ctx context.Context, collection, id string, out any) error

	// Update merges fields into the existing document. Fields not present in
	// the patch are left untouched. The merge is a single write.
	Update(ctx context.Context, collection, id string, fields any) error

	// Delete removes the document.
	Delete(ctx context.Context, collection, id string) error

	// List unmarshals all documents of the collection into out (a pointer to
	// a slice), ordered ascending by the given top-level field.
	List(ctx context.Context, collection, orderByField string, out any) error
}

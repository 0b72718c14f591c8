package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store with in-process maps. Used in tests and as a
// stand-in when no database is configured.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]json.RawMessage)}
}

var _ Store = (*MemoryStore)(nil)

// Create stores fields as a new document and returns its generated id
func (s *MemoryStore) Create(ctx context.Context, collection string, fields any) (string, error) {
	id := uuid.NewString()
	data, err := marshalWithID(fields, id)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]json.RawMessage)
		s.collections[collection] = docs
	}
	docs[id] = data
	return id, nil
}

// Get unmarshals the document identified by collection/id into out
func (s *MemoryStore) Get(ctx context.Context, collection, id string, out any) error {
	s.mu.RLock()
	data, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return ErrDocumentNotFound
	}
	return json.Unmarshal(data, out)
}

// Update merges fields into the existing document
func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}
	var patchMap map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return fmt.Errorf("patch must be a JSON object: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.collections[collection][id]
	if !ok {
		return ErrDocumentNotFound
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	for k, v := range patchMap {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.collections[collection][id] = merged
	return nil
}

// Delete removes the document
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection][id]; !ok {
		return ErrDocumentNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

// List unmarshals all documents of the collection into out, ordered
// ascending by the given top-level field
func (s *MemoryStore) List(ctx context.Context, collection, orderByField string, out any) error {
	s.mu.RLock()
	docs := make([]json.RawMessage, 0, len(s.collections[collection]))
	for _, data := range s.collections[collection] {
		docs = append(docs, data)
	}
	s.mu.RUnlock()

	sort.SliceStable(docs, func(i, j int) bool {
		return lessByField(docs[i], docs[j], orderByField)
	})
	return unmarshalSlice(docs, out)
}

// lessByField compares two documents by a top-level field, numerically when
// both values parse as numbers and lexically otherwise.
func lessByField(a, b json.RawMessage, field string) bool {
	av := fieldString(a, field)
	bv := fieldString(b, field)
	af, aerr := strconv.ParseFloat(av, 64)
	bf, berr := strconv.ParseFloat(bv, 64)
	if aerr == nil && berr == nil {
		return af < bf
	}
	return av < bv
}

func fieldString(doc json.RawMessage, field string) string {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return ""
	}
	v, ok := m[field]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

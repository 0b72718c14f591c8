package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a single JSONB documents table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

var _ Store = (*PostgresStore)(nil)

// EnsureSchema creates the documents table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection text NOT NULL,
			id         text NOT NULL,
			data       jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`)
	if err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	return nil
}

// Create stores fields as a new document and returns its generated id
func (s *PostgresStore) Create(ctx context.Context, collection string, fields any) (string, error) {
	id := uuid.NewString()
	data, err := marshalWithID(fields, id)
	if err != nil {
		return "", err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, data)
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}
	return id, nil
}

// Get unmarshals the document identified by collection/id into out
func (s *PostgresStore) Get(ctx context.Context, collection, id string, out any) error {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("get document: %w", err)
	}
	return json.Unmarshal(data, out)
}

// Update merges fields into the existing document as a single write
func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		collection, id, patch)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// Delete removes the document
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// List unmarshals all documents of the collection into out, ordered
// ascending by the given top-level field
func (s *PostgresStore) List(ctx context.Context, collection, orderByField string, out any) error {
	rows, err := s.pool.Query(ctx,
		`SELECT data FROM documents WHERE collection = $1 ORDER BY data->>$2`,
		collection, orderByField)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	return unmarshalSlice(docs, out)
}

// marshalWithID marshals fields and injects the generated id under "id".
func marshalWithID(fields any, id string) ([]byte, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	doc["id"] = json.RawMessage(`"` + id + `"`)
	return json.Marshal(doc)
}

// unmarshalSlice assembles raw documents into a JSON array and decodes it
// into out, which must be a pointer to a slice.
func unmarshalSlice(docs []json.RawMessage, out any) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, d := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(d)
	}
	buf.WriteByte(']')
	return json.Unmarshal(buf.Bytes(), out)
}

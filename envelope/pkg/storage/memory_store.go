package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps envelopes in memory.
type MemoryStore struct {
	mu      sync.Mutex
	texts   map[string]string
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{texts: make(map[string]string)}
}

func (m *MemoryStore) Save(ctx context.Context, text string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	id := uuid.New().String()
	rec := Record{ID: id, Path: "memory://" + FileName(id), Size: len(text)}

	m.mu.Lock()
	m.texts[id] = text
	m.records = append(m.records, rec)
	m.mu.Unlock()

	return rec, nil
}

func (m *MemoryStore) Load(id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	text, ok := m.texts[id]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

// Records returns the saved records in save order.
func (m *MemoryStore) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

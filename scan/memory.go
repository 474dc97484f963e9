package scan

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps scan definitions in memory as encoded blobs, so
// callers never share formula trees with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	codec *Codec
	scans map[uuid.UUID]*stored
}

// NewMemoryStore creates an empty store that encodes formulas with codec.
func NewMemoryStore(codec *Codec) *MemoryStore {
	return &MemoryStore{
		codec: codec,
		scans: make(map[uuid.UUID]*stored),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, def *Definition) error {
	s, err := encode(m.codec, def)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s.version = 1
	if existing, ok := m.scans[s.id]; ok {
		s.version = existing.version + 1
	}
	s.modified = now()
	m.scans[s.id] = s

	s.apply(def)
	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Definition, error) {
	m.mu.RLock()
	s, ok := m.scans[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return s.decode(m.codec)
}

// List implements Store.
func (m *MemoryStore) List(ctx context.Context) ([]*Definition, error) {
	m.mu.RLock()
	all := make([]*stored, 0, len(m.scans))
	for _, s := range m.scans {
		all = append(all, s)
	}
	m.mu.RUnlock()

	slices.SortFunc(all, func(a, b *stored) int {
		if c := cmp.Compare(a.name, b.name); c != 0 {
			return c
		}
		return cmp.Compare(a.id.String(), b.id.String())
	})

	defs := make([]*Definition, 0, len(all))
	for _, s := range all {
		def, err := s.decode(m.codec)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.scans[id]; !ok {
		return ErrNotFound
	}
	delete(m.scans, id)
	return nil
}

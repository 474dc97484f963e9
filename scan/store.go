package scan

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists scan definitions.
// Implementations MUST be goroutine-safe.
type Store interface {
	// Save inserts or updates def. It assigns an ID when def.ID is uuid.Nil
	// and sets def.Version and def.Modified to the stored values.
	Save(ctx context.Context, def *Definition) error

	// Get returns the definition with the given ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Definition, error)

	// List returns all definitions ordered by name, then ID.
	List(ctx context.Context) ([]*Definition, error)

	// Delete removes the definition with the given ID, or returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// stored is a definition with its formulas encoded as blobs.
type stored struct {
	id          uuid.UUID
	name        string
	description string
	criteria    []byte
	rank        []byte
	version     int
	modified    time.Time
}

// encode validates def and encodes its formulas. The version and
// modification time are left for the store to set.
func encode(codec *Codec, def *Definition) (*stored, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}

	criteria, err := codec.MarshalCriteria(def.Criteria)
	if err != nil {
		return nil, err
	}
	rank, err := codec.MarshalRank(def.Rank)
	if err != nil {
		return nil, err
	}

	id := def.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &stored{
		id:          id,
		name:        def.Name,
		description: def.Description,
		criteria:    criteria,
		rank:        rank,
	}, nil
}

func (s *stored) decode(codec *Codec) (*Definition, error) {
	criteria, err := codec.UnmarshalCriteria(s.criteria)
	if err != nil {
		return nil, err
	}
	rank, err := codec.UnmarshalRank(s.rank)
	if err != nil {
		return nil, err
	}

	return &Definition{
		ID:          s.id,
		Name:        s.name,
		Description: s.description,
		Criteria:    criteria,
		Rank:        rank,
		Version:     s.version,
		Modified:    s.modified,
	}, nil
}

// apply copies the stored identity and bookkeeping back to def.
func (s *stored) apply(def *Definition) {
	def.ID = s.id
	def.Version = s.version
	def.Modified = s.modified
}

// now returns the current time at the precision of a DuckDB TIMESTAMPTZ.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

package scan

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hugr-lab/zenith-scan/formula"
)

// Sentinel errors returned by scan stores and codecs.
var (
	// ErrNotFound is returned when a definition doesn't exist.
	ErrNotFound = errors.New("scan not found")

	// ErrInvalidFormula is returned when a stored formula cannot be
	// encoded or decoded. Decode failures also match *zenith.DecodeError.
	ErrInvalidFormula = errors.New("invalid scan formula")

	// ErrInvalidDefinition is returned by Save for definitions without a
	// name or criteria.
	ErrInvalidDefinition = errors.New("invalid scan definition")
)

// Definition is a named scan: criteria selecting symbols and an optional
// rank formula ordering the matches.
type Definition struct {
	// ID identifies the definition. Save assigns a new ID when it is uuid.Nil.
	ID uuid.UUID

	Name        string
	Description string

	// Criteria selects the matching symbols.
	// REQUIRED: MUST NOT be nil.
	Criteria formula.BooleanNode

	// Rank orders the matches, highest first.
	// OPTIONAL: If nil, matches keep record order.
	Rank formula.NumericNode

	// Version is set by Save: 1 on insert, incremented on each update.
	Version int

	// Modified is set by Save to the time of the last write, in UTC.
	Modified time.Time
}

func (d *Definition) validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if d.Criteria == nil {
		return fmt.Errorf("%w: criteria is required", ErrInvalidDefinition)
	}
	return nil
}

// Hit is one matching row of a scan run.
type Hit struct {
	// Row is the index of the row in the evaluated record.
	Row int

	// Rank is the rank formula value. Meaningful only when Ranked is true.
	Rank float64

	// Ranked reports whether the rank formula produced a value for the row.
	Ranked bool
}

package scan

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/zenith-scan/eval"
	"github.com/hugr-lab/zenith-scan/internal/recovery"
)

// Runner evaluates scan definitions over Arrow records of symbols.
type Runner struct {
	// Columns maps the default column names to the record's field names.
	// OPTIONAL: If nil, default column names are used.
	Columns *eval.Options

	// Logger for recovered panics.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger
}

// Run evaluates def over rec with default column names.
func Run(def *Definition, rec arrow.Record) ([]Hit, error) {
	var r Runner
	return r.Run(def, rec)
}

// Run selects the rows of rec matching def.Criteria. With a rank formula
// the hits are ordered by rank, highest first, with unranked rows last;
// ties and unranked rows keep record order.
func (r *Runner) Run(def *Definition, rec arrow.Record) ([]Hit, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return recovery.RecoverToValue(logger, "Run", func() ([]Hit, error) {
		ev, err := eval.New(rec, r.Columns)
		if err != nil {
			return nil, err
		}

		rows, err := ev.Select(def.Criteria)
		if err != nil {
			return nil, err
		}

		hits := make([]Hit, len(rows))
		for i, row := range rows {
			hits[i] = Hit{Row: row}
		}
		if def.Rank == nil {
			return hits, nil
		}

		values, valid, err := ev.Value(def.Rank)
		if err != nil {
			return nil, err
		}
		for i := range hits {
			row := hits[i].Row
			hits[i].Rank, hits[i].Ranked = values[row], valid[row]
		}

		slices.SortStableFunc(hits, func(a, b Hit) int {
			switch {
			case a.Ranked && b.Ranked:
				return cmp.Compare(b.Rank, a.Rank)
			case a.Ranked:
				return -1
			case b.Ranked:
				return 1
			default:
				return 0
			}
		})
		return hits, nil
	})
}

package eval

import (
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/hugr-lab/zenith-scan/formula"
)

// Column accessors report a row's value and whether it is present.
type (
	numericColumn func(i int) (float64, bool)
	dateColumn    func(i int) (time.Time, bool)
	textColumn    func(i int) (string, bool)
	booleanColumn func(i int) (bool, bool)
)

// lookup returns the array holding the named default column.
func (e *Evaluator) lookup(name string) (arrow.Array, arrow.DataType, error) {
	if mapped, ok := e.opts.ColumnMapping[name]; ok {
		name = mapped
	}
	indices := e.rec.Schema().FieldIndices(name)
	if len(indices) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	i := indices[0]
	return e.rec.Column(i), e.rec.Schema().Field(i).Type, nil
}

func columnTypeError(name string, dt arrow.DataType, want formula.DataTypeID) error {
	return fmt.Errorf("%w: column %s has type %s, expected %s", ErrColumnType, name, dt, want)
}

// present reports whether each row of the column has a value.
func (e *Evaluator) present(name string) ([]bool, error) {
	arr, _, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]bool, e.rows)
	for i := range out {
		out[i] = arr.IsValid(i)
	}
	return out, nil
}

func (e *Evaluator) numeric(name string) (numericColumn, error) {
	arr, dt, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	switch a := arr.(type) {
	case *array.Float64:
		return func(i int) (float64, bool) { return a.Value(i), a.IsValid(i) }, nil
	case *array.Float32:
		return func(i int) (float64, bool) { return float64(a.Value(i)), a.IsValid(i) }, nil
	case *array.Int64:
		return func(i int) (float64, bool) { return float64(a.Value(i)), a.IsValid(i) }, nil
	case *array.Int32:
		return func(i int) (float64, bool) { return float64(a.Value(i)), a.IsValid(i) }, nil
	case *array.Uint64:
		return func(i int) (float64, bool) { return float64(a.Value(i)), a.IsValid(i) }, nil
	default:
		return nil, columnTypeError(name, dt, formula.DataTypeNumeric)
	}
}

func (e *Evaluator) date(name string) (dateColumn, error) {
	arr, dt, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	switch a := arr.(type) {
	case *array.Timestamp:
		unit := dt.(*arrow.TimestampType).Unit
		return func(i int) (time.Time, bool) { return a.Value(i).ToTime(unit), a.IsValid(i) }, nil
	case *array.Date32:
		return func(i int) (time.Time, bool) { return a.Value(i).ToTime(), a.IsValid(i) }, nil
	default:
		return nil, columnTypeError(name, dt, formula.DataTypeDate)
	}
}

func (e *Evaluator) text(name string) (textColumn, error) {
	arr, dt, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	switch a := arr.(type) {
	case *array.String:
		return func(i int) (string, bool) { return a.Value(i), a.IsValid(i) }, nil
	case *array.LargeString:
		return func(i int) (string, bool) { return a.Value(i), a.IsValid(i) }, nil
	default:
		return nil, columnTypeError(name, dt, formula.DataTypeText)
	}
}

func (e *Evaluator) boolean(name string) (booleanColumn, error) {
	arr, dt, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	a, ok := arr.(*array.Boolean)
	if !ok {
		return nil, columnTypeError(name, dt, formula.DataTypeBoolean)
	}
	return func(i int) (bool, bool) { return a.Value(i), a.IsValid(i) }, nil
}

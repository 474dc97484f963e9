package eval

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/zenith-scan/formula"
	"github.com/hugr-lab/zenith-scan/internal/columns"
)

var (
	// ErrColumnNotFound is returned when a formula references a column
	// the record does not have.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnType is returned when a column's Arrow type cannot hold
	// the field's data type.
	ErrColumnType = errors.New("unsupported column type")

	// ErrUnsupportedNode is returned for nil nodes and invalid field ids.
	ErrUnsupportedNode = errors.New("unsupported formula node")
)

// Options configures an Evaluator.
type Options struct {
	// ColumnMapping maps default column names (see internal/columns)
	// to the record's field names.
	ColumnMapping map[string]string
}

// Evaluator evaluates formulas over the rows of one Arrow record.
// It is not safe for concurrent use.
type Evaluator struct {
	rec  arrow.Record
	rows int
	opts *Options
}

// New creates an evaluator over rec. If opts is nil, default column names
// are used. The record must stay alive while the evaluator is used.
func New(rec arrow.Record, opts *Options) (*Evaluator, error) {
	if rec == nil {
		return nil, errors.New("eval: nil record")
	}
	if opts == nil {
		opts = &Options{}
	}
	return &Evaluator{rec: rec, rows: int(rec.NumRows()), opts: opts}, nil
}

// Rows returns the number of rows in the record.
func (e *Evaluator) Rows() int { return e.rows }

// Match evaluates a boolean formula for every row. A predicate over a
// missing value is false.
func (e *Evaluator) Match(node formula.BooleanNode) ([]bool, error) {
	return e.match(node)
}

// Select returns the indices of the rows matching node, in row order.
func (e *Evaluator) Select(node formula.BooleanNode) ([]int, error) {
	matched, err := e.match(node)
	if err != nil {
		return nil, err
	}
	var rows []int
	for i, ok := range matched {
		if ok {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

// Value evaluates a numeric formula for every row. The second result
// reports which rows have a value; missing inputs and division or
// modulo by zero leave a row without one.
func (e *Evaluator) Value(node formula.NumericNode) ([]float64, []bool, error) {
	return e.value(node)
}

func (e *Evaluator) match(node formula.BooleanNode) ([]bool, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil boolean node", ErrUnsupportedNode)
	}

	switch n := node.(type) {
	case *formula.ZeroOperandBooleanNode:
		return e.fill(n.TypeID() == formula.NodeAll), nil
	case *formula.NotNode:
		out, err := e.match(n.Operand)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = !out[i]
		}
		return out, nil
	case *formula.XorNode:
		left, err := e.match(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.match(n.Right)
		if err != nil {
			return nil, err
		}
		for i := range left {
			left[i] = left[i] != right[i]
		}
		return left, nil
	case *formula.MultiOperandBooleanNode:
		return e.conjunction(n)
	case *formula.NumericComparisonNode:
		return e.comparison(n)
	case *formula.FieldHasValueNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		return e.present(name)
	case *formula.BooleanFieldEqualsNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		col, err := e.boolean(name)
		if err != nil {
			return nil, err
		}
		return e.rowsWhere(func(i int) bool {
			v, ok := col(i)
			return ok && v == n.Target
		}), nil
	case *formula.NumericFieldEqualsNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		return e.numericEquals(name, n.Value)
	case *formula.NumericFieldInRangeNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		return e.numericInRange(name, n.Min, n.Max)
	case *formula.DateFieldEqualsNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		return e.dateEquals(name, n.Value)
	case *formula.DateFieldInRangeNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		return e.dateInRange(name, n.Min, n.Max)
	case *formula.TextFieldContainsNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, err
		}
		return e.contains(name, n.TextContains)
	case *formula.PriceSubFieldHasValueNode:
		return e.present(columns.Price(n.SubFieldID))
	case *formula.PriceSubFieldEqualsNode:
		return e.numericEquals(columns.Price(n.SubFieldID), n.Value)
	case *formula.PriceSubFieldInRangeNode:
		return e.numericInRange(columns.Price(n.SubFieldID), n.Min, n.Max)
	case *formula.DateSubFieldHasValueNode:
		return e.present(columns.Date(n.SubFieldID))
	case *formula.DateSubFieldEqualsNode:
		return e.dateEquals(columns.Date(n.SubFieldID), n.Value)
	case *formula.DateSubFieldInRangeNode:
		return e.dateInRange(columns.Date(n.SubFieldID), n.Min, n.Max)
	case *formula.AltCodeSubFieldHasValueNode:
		return e.present(columns.AltCode(n.SubFieldID))
	case *formula.AltCodeSubFieldContainsNode:
		return e.contains(columns.AltCode(n.SubFieldID), n.TextContains)
	case *formula.AttributeSubFieldHasValueNode:
		return e.present(columns.Attribute(n.SubFieldID))
	case *formula.AttributeSubFieldContainsNode:
		return e.contains(columns.Attribute(n.SubFieldID), n.TextContains)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
	}
}

// conjunction evaluates And/Or. An empty And matches every row and an
// empty Or matches none.
func (e *Evaluator) conjunction(n *formula.MultiOperandBooleanNode) ([]bool, error) {
	and := n.TypeID() == formula.NodeAnd
	out := e.fill(and)
	for _, operand := range n.Operands {
		child, err := e.match(operand)
		if err != nil {
			return nil, err
		}
		for i := range out {
			if and {
				out[i] = out[i] && child[i]
			} else {
				out[i] = out[i] || child[i]
			}
		}
	}
	return out, nil
}

func (e *Evaluator) comparison(n *formula.NumericComparisonNode) ([]bool, error) {
	left, leftOK, err := e.operand(n.Left)
	if err != nil {
		return nil, err
	}
	right, rightOK, err := e.operand(n.Right)
	if err != nil {
		return nil, err
	}

	var cmp func(l, r float64) bool
	switch n.TypeID() {
	case formula.NodeNumericEquals:
		cmp = func(l, r float64) bool { return l == r }
	case formula.NodeNumericGreaterThan:
		cmp = func(l, r float64) bool { return l > r }
	case formula.NodeNumericGreaterThanOrEqual:
		cmp = func(l, r float64) bool { return l >= r }
	case formula.NodeNumericLessThan:
		cmp = func(l, r float64) bool { return l < r }
	case formula.NodeNumericLessThanOrEqual:
		cmp = func(l, r float64) bool { return l <= r }
	default:
		return nil, fmt.Errorf("%w: comparison %v", ErrUnsupportedNode, n.TypeID())
	}

	return e.rowsWhere(func(i int) bool {
		return leftOK[i] && rightOK[i] && cmp(left[i], right[i])
	}), nil
}

func (e *Evaluator) value(node formula.NumericNode) ([]float64, []bool, error) {
	if node == nil {
		return nil, nil, fmt.Errorf("%w: nil numeric node", ErrUnsupportedNode)
	}

	switch n := node.(type) {
	case *formula.NumericFieldValueGetNode:
		name, err := fieldColumn(n.FieldID)
		if err != nil {
			return nil, nil, err
		}
		col, err := e.numeric(name)
		if err != nil {
			return nil, nil, err
		}
		values := make([]float64, e.rows)
		valid := make([]bool, e.rows)
		for i := range values {
			values[i], valid[i] = col(i)
		}
		return values, valid, nil
	case *formula.NumericUnaryArithmeticNode:
		values, valid, err := e.operand(n.Operand)
		if err != nil {
			return nil, nil, err
		}
		switch n.TypeID() {
		case formula.NodeNumericNeg:
			for i := range values {
				values[i] = -values[i]
			}
		case formula.NodeNumericAbs:
			for i := range values {
				values[i] = math.Abs(values[i])
			}
		}
		return values, valid, nil
	case *formula.NumericLeftRightArithmeticNode:
		return e.arithmetic(n)
	case *formula.NumericIfNode:
		return e.ifValue(n)
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
	}
}

func (e *Evaluator) arithmetic(n *formula.NumericLeftRightArithmeticNode) ([]float64, []bool, error) {
	left, leftOK, err := e.operand(n.Left)
	if err != nil {
		return nil, nil, err
	}
	right, rightOK, err := e.operand(n.Right)
	if err != nil {
		return nil, nil, err
	}

	op := n.TypeID()
	for i := range left {
		leftOK[i] = leftOK[i] && rightOK[i]
		if !leftOK[i] {
			continue
		}
		l, r := left[i], right[i]
		switch op {
		case formula.NodeNumericAdd:
			left[i] = l + r
		case formula.NodeNumericSub:
			left[i] = l - r
		case formula.NodeNumericMul:
			left[i] = l * r
		case formula.NodeNumericDiv, formula.NodeNumericMod:
			if r == 0 {
				leftOK[i] = false
				continue
			}
			if op == formula.NodeNumericDiv {
				left[i] = l / r
			} else {
				left[i] = math.Mod(l, r)
			}
		}
	}
	return left, leftOK, nil
}

// ifValue takes, per row, the value of the first arm whose condition
// holds, else the false arm.
func (e *Evaluator) ifValue(n *formula.NumericIfNode) ([]float64, []bool, error) {
	values, valid, err := e.operand(n.FalseArm)
	if err != nil {
		return nil, nil, err
	}
	decided := make([]bool, e.rows)
	for _, arm := range n.TrueArms {
		cond, err := e.match(arm.Condition)
		if err != nil {
			return nil, nil, err
		}
		armValues, armValid, err := e.operand(arm.Value)
		if err != nil {
			return nil, nil, err
		}
		for i := range values {
			if decided[i] || !cond[i] {
				continue
			}
			decided[i] = true
			values[i], valid[i] = armValues[i], armValid[i]
		}
	}
	return values, valid, nil
}

// operand evaluates a numeric operand into freshly allocated slices.
func (e *Evaluator) operand(op formula.NumericOperand) ([]float64, []bool, error) {
	if v, ok := op.Literal(); ok {
		values := make([]float64, e.rows)
		for i := range values {
			values[i] = v
		}
		return values, e.fill(true), nil
	}
	n, _ := op.Node()
	return e.value(n)
}

func (e *Evaluator) numericEquals(name string, target float64) ([]bool, error) {
	col, err := e.numeric(name)
	if err != nil {
		return nil, err
	}
	return e.rowsWhere(func(i int) bool {
		v, ok := col(i)
		return ok && v == target
	}), nil
}

func (e *Evaluator) numericInRange(name string, min, max *float64) ([]bool, error) {
	col, err := e.numeric(name)
	if err != nil {
		return nil, err
	}
	return e.rowsWhere(func(i int) bool {
		v, ok := col(i)
		return ok && (min == nil || v >= *min) && (max == nil || v <= *max)
	}), nil
}

func (e *Evaluator) dateEquals(name string, target time.Time) ([]bool, error) {
	col, err := e.date(name)
	if err != nil {
		return nil, err
	}
	return e.rowsWhere(func(i int) bool {
		v, ok := col(i)
		return ok && v.Equal(target)
	}), nil
}

func (e *Evaluator) dateInRange(name string, min, max *time.Time) ([]bool, error) {
	col, err := e.date(name)
	if err != nil {
		return nil, err
	}
	return e.rowsWhere(func(i int) bool {
		v, ok := col(i)
		return ok && (min == nil || !v.Before(*min)) && (max == nil || !v.After(*max))
	}), nil
}

func (e *Evaluator) contains(name string, tc formula.TextContains) ([]bool, error) {
	col, err := e.text(name)
	if err != nil {
		return nil, err
	}
	m := newTextMatcher(tc)
	return e.rowsWhere(func(i int) bool {
		v, ok := col(i)
		return ok && m.match(v)
	}), nil
}

func (e *Evaluator) fill(v bool) []bool {
	out := make([]bool, e.rows)
	if v {
		for i := range out {
			out[i] = true
		}
	}
	return out
}

func (e *Evaluator) rowsWhere(pred func(i int) bool) []bool {
	out := make([]bool, e.rows)
	for i := range out {
		out[i] = pred(i)
	}
	return out
}

// fieldColumn returns the default column of a scalar field.
func fieldColumn(id formula.FieldID) (string, error) {
	if !id.Valid() || id.IsSubbed() {
		return "", fmt.Errorf("%w: field %v", ErrUnsupportedNode, id)
	}
	return columns.Field(id), nil
}

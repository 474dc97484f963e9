package filter

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugr-lab/zenith-scan/formula"
	"github.com/hugr-lab/zenith-scan/internal/columns"
)

// DuckDBEncoder encodes scan formulas to DuckDB SQL syntax.
//
// Predicates follow two-valued logic: a field predicate or comparison over
// a NULL value is false, never NULL, so NOT and XOR behave as they do in
// the in-memory evaluator.
type DuckDBEncoder struct {
	opts *EncoderOptions
}

// NewDuckDBEncoder creates a new DuckDB SQL encoder.
// If opts is nil, default options are used.
func NewDuckDBEncoder(opts *EncoderOptions) *DuckDBEncoder {
	if opts == nil {
		opts = &EncoderOptions{}
	}
	return &DuckDBEncoder{opts: opts}
}

// EncodeFilters converts all criteria to a WHERE clause body.
// Returns the condition portion without "WHERE" keyword.
// Returns empty string if no criteria can be encoded.
func (e *DuckDBEncoder) EncodeFilters(criteria ...formula.BooleanNode) string {
	var parts []string
	for _, c := range criteria {
		encoded := e.Encode(c)
		if encoded != "" {
			parts = append(parts, encoded)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	if len(parts) == 1 {
		return parts[0]
	}

	return "(" + strings.Join(parts, ") AND (") + ")"
}

// Encode converts a boolean formula to SQL.
// Returns empty string if the formula is unsupported.
func (e *DuckDBEncoder) Encode(node formula.BooleanNode) string {
	if node == nil {
		return ""
	}

	switch n := node.(type) {
	case *formula.ZeroOperandBooleanNode:
		if n.TypeID() == formula.NodeAll {
			return "true"
		}
		return "false"
	case *formula.NotNode:
		child := e.Encode(n.Operand)
		if child == "" {
			return ""
		}
		return "NOT (" + child + ")"
	case *formula.XorNode:
		left := e.Encode(n.Left)
		right := e.Encode(n.Right)
		if left == "" || right == "" {
			return ""
		}
		return "((" + left + ") <> (" + right + "))"
	case *formula.MultiOperandBooleanNode:
		return e.encodeConjunction(n)
	case *formula.NumericComparisonNode:
		return e.encodeComparison(n)
	case *formula.FieldHasValueNode:
		return e.hasValue(e.fieldColumn(n.FieldID))
	case *formula.BooleanFieldEqualsNode:
		if n.Target {
			return compare(e.fieldColumn(n.FieldID), " = true")
		}
		return compare(e.fieldColumn(n.FieldID), " = false")
	case *formula.NumericFieldEqualsNode:
		return compare(e.fieldColumn(n.FieldID), " = " + numericLiteral(n.Value))
	case *formula.NumericFieldInRangeNode:
		return encodeRange(e.fieldColumn(n.FieldID), n.Min, n.Max, numericLiteral)
	case *formula.DateFieldEqualsNode:
		return compare(e.fieldColumn(n.FieldID), " = " + dateLiteral(n.Value))
	case *formula.DateFieldInRangeNode:
		return encodeRange(e.fieldColumn(n.FieldID), n.Min, n.Max, dateLiteral)
	case *formula.TextFieldContainsNode:
		return encodeContains(e.fieldColumn(n.FieldID), n.TextContains)
	case *formula.PriceSubFieldHasValueNode:
		return e.hasValue(e.column(columns.Price(n.SubFieldID)))
	case *formula.PriceSubFieldEqualsNode:
		return compare(e.column(columns.Price(n.SubFieldID)), " = " + numericLiteral(n.Value))
	case *formula.PriceSubFieldInRangeNode:
		return encodeRange(e.column(columns.Price(n.SubFieldID)), n.Min, n.Max, numericLiteral)
	case *formula.DateSubFieldHasValueNode:
		return e.hasValue(e.column(columns.Date(n.SubFieldID)))
	case *formula.DateSubFieldEqualsNode:
		return compare(e.column(columns.Date(n.SubFieldID)), " = " + dateLiteral(n.Value))
	case *formula.DateSubFieldInRangeNode:
		return encodeRange(e.column(columns.Date(n.SubFieldID)), n.Min, n.Max, dateLiteral)
	case *formula.AltCodeSubFieldHasValueNode:
		return e.hasValue(e.column(columns.AltCode(n.SubFieldID)))
	case *formula.AltCodeSubFieldContainsNode:
		return encodeContains(e.column(columns.AltCode(n.SubFieldID)), n.TextContains)
	case *formula.AttributeSubFieldHasValueNode:
		return e.hasValue(e.column(columns.Attribute(n.SubFieldID)))
	case *formula.AttributeSubFieldContainsNode:
		return encodeContains(e.column(columns.Attribute(n.SubFieldID)), n.TextContains)
	default:
		return ""
	}
}

// EncodeNumeric converts a numeric formula to SQL.
// Returns empty string if the formula is unsupported.
func (e *DuckDBEncoder) EncodeNumeric(node formula.NumericNode) string {
	if node == nil {
		return ""
	}

	switch n := node.(type) {
	case *formula.NumericFieldValueGetNode:
		return e.fieldColumn(n.FieldID)
	case *formula.NumericUnaryArithmeticNode:
		operand := e.encodeOperand(n.Operand)
		if operand == "" {
			return ""
		}
		switch n.TypeID() {
		case formula.NodeNumericNeg:
			return "(-" + operand + ")"
		case formula.NodeNumericPos:
			return "(+" + operand + ")"
		case formula.NodeNumericAbs:
			return "abs(" + operand + ")"
		}
	case *formula.NumericLeftRightArithmeticNode:
		left := e.encodeOperand(n.Left)
		right := e.encodeOperand(n.Right)
		if left == "" || right == "" {
			return ""
		}
		switch n.TypeID() {
		case formula.NodeNumericAdd:
			return "(" + left + " + " + right + ")"
		case formula.NodeNumericSub:
			return "(" + left + " - " + right + ")"
		case formula.NodeNumericMul:
			return "(" + left + " * " + right + ")"
		case formula.NodeNumericDiv:
			// Division and modulo by zero yield NULL.
			return "(" + left + " / nullif(" + right + ", 0))"
		case formula.NodeNumericMod:
			return "(" + left + " % nullif(" + right + ", 0))"
		}
	case *formula.NumericIfNode:
		return e.encodeIf(n)
	}
	return ""
}

// encodeConjunction encodes And/Or.
func (e *DuckDBEncoder) encodeConjunction(n *formula.MultiOperandBooleanNode) string {
	var parts []string
	for _, child := range n.Operands {
		encoded := e.Encode(child)
		if encoded != "" {
			parts = append(parts, encoded)
		}
	}

	// Unsupported operands:
	// - For OR: if any operand is unsupported, skip entire OR
	// - For AND: skip unsupported operands, keep others
	or := n.TypeID() == formula.NodeOr
	if or && len(parts) != len(n.Operands) {
		return ""
	}

	if len(parts) == 0 {
		return ""
	}

	if len(parts) == 1 {
		return parts[0]
	}

	op := " AND "
	if or {
		op = " OR "
	}

	return "(" + strings.Join(parts, op) + ")"
}

// encodeComparison encodes a numeric comparison.
func (e *DuckDBEncoder) encodeComparison(n *formula.NumericComparisonNode) string {
	left := e.encodeOperand(n.Left)
	right := e.encodeOperand(n.Right)

	if left == "" || right == "" {
		return ""
	}

	var op string
	switch n.TypeID() {
	case formula.NodeNumericEquals:
		op = " = "
	case formula.NodeNumericGreaterThan:
		op = " > "
	case formula.NodeNumericGreaterThanOrEqual:
		op = " >= "
	case formula.NodeNumericLessThan:
		op = " < "
	case formula.NodeNumericLessThanOrEqual:
		op = " <= "
	default:
		return ""
	}
	return notFalse(left + op + right)
}

// encodeIf encodes a numeric conditional as a searched CASE.
func (e *DuckDBEncoder) encodeIf(n *formula.NumericIfNode) string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, arm := range n.TrueArms {
		cond := e.Encode(arm.Condition)
		value := e.encodeOperand(arm.Value)
		if cond == "" || value == "" {
			return ""
		}
		b.WriteString(" WHEN " + cond + " THEN " + value)
	}
	falseValue := e.encodeOperand(n.FalseArm)
	if falseValue == "" {
		return ""
	}
	b.WriteString(" ELSE " + falseValue + " END")
	return b.String()
}

func (e *DuckDBEncoder) encodeOperand(op formula.NumericOperand) string {
	if v, ok := op.Literal(); ok {
		return numericLiteral(v)
	}
	n, _ := op.Node()
	return e.EncodeNumeric(n)
}

// hasValue encodes a presence test.
func (e *DuckDBEncoder) hasValue(col string) string {
	if col == "" {
		return ""
	}
	return "(" + col + " IS NOT NULL)"
}

// fieldColumn resolves the column of a scalar field.
func (e *DuckDBEncoder) fieldColumn(id formula.FieldID) string {
	if !id.Valid() || id.IsSubbed() {
		return ""
	}
	return e.column(columns.Field(id))
}

// column resolves a default column name through the encoder options.
func (e *DuckDBEncoder) column(name string) string {
	// Check for expression mapping first (takes precedence)
	if e.opts.ColumnExpressions != nil {
		if expr, ok := e.opts.ColumnExpressions[name]; ok {
			return expr
		}
	}

	// Check for name mapping
	if e.opts.ColumnMapping != nil {
		if mapped, ok := e.opts.ColumnMapping[name]; ok {
			name = mapped
		}
	}

	return quoteIdentifier(name)
}

// compare encodes col followed by a comparison against a literal.
func compare(col, rest string) string {
	if col == "" {
		return ""
	}
	return notFalse(col + rest)
}

// notFalse maps a NULL predicate result to false.
func notFalse(predicate string) string {
	return "coalesce(" + predicate + ", false)"
}

// encodeRange encodes inclusive bounds, at least one of which is set.
func encodeRange[T any](col string, min, max *T, literal func(T) string) string {
	if col == "" {
		return ""
	}
	switch {
	case min != nil && max != nil:
		return notFalse(col + " BETWEEN " + literal(*min) + " AND " + literal(*max))
	case min != nil:
		return notFalse(col + " >= " + literal(*min))
	case max != nil:
		return notFalse(col + " <= " + literal(*max))
	default:
		return ""
	}
}

// encodeContains encodes a text match. Exact matches use equality;
// the other styles use LIKE or ILIKE with escaped wildcards.
func encodeContains(col string, tc formula.TextContains) string {
	if col == "" {
		return ""
	}
	if tc.As == formula.TextContainsAsExact {
		if tc.IgnoreCase {
			return notFalse("lower(" + col + ") = lower(" + quoteLiteral(tc.Value) + ")")
		}
		return notFalse(col + " = " + quoteLiteral(tc.Value))
	}

	op := " LIKE "
	if tc.IgnoreCase {
		op = " ILIKE "
	}
	return notFalse(col + op + likePattern(tc.Value, tc.As) + ` ESCAPE '\'`)
}

// numericLiteral formats a float as an exact decimal literal. Negative
// values are parenthesised so they never form a "--" comment.
func numericLiteral(v float64) string {
	switch {
	case math.IsNaN(v):
		return "'NaN'::DOUBLE"
	case math.IsInf(v, 1):
		return "'Infinity'::DOUBLE"
	case math.IsInf(v, -1):
		return "'-Infinity'::DOUBLE"
	}
	s := decimal.NewFromFloat(v).String()
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}

// dateLiteral formats an instant as a UTC TIMESTAMPTZ literal.
func dateLiteral(t time.Time) string {
	return "TIMESTAMPTZ '" + t.UTC().Format("2006-01-02 15:04:05.999999") + "+00'"
}

package zenith

import (
	"fmt"
	"time"

	"github.com/hugr-lab/zenith-scan/formula"
)

// DateLayout is the layout used for date values in tuples.
const DateLayout = time.RFC3339Nano

// expandedDateLayout is DateLayout without the year.
const expandedDateLayout = "-01-02T15:04:05.999999999Z07:00"

// EncodeBoolean converts a boolean node tree into its tuple form.
// It panics if the tree contains an unknown node or out-of-range enum value.
func EncodeBoolean(node formula.BooleanNode) []any {
	switch n := node.(type) {
	case *formula.ZeroOperandBooleanNode:
		switch n.TypeID() {
		case formula.NodeAll:
			return []any{AllTupleNodeType}
		case formula.NodeNone:
			return []any{NoneTupleNodeType}
		}
	case *formula.NotNode:
		return []any{NotTupleNodeType, EncodeBoolean(n.Operand)}
	case *formula.XorNode:
		return []any{XorTupleNodeType, EncodeBoolean(n.Left), EncodeBoolean(n.Right)}
	case *formula.MultiOperandBooleanNode:
		tag := AndTupleNodeType
		if n.TypeID() == formula.NodeOr {
			tag = OrTupleNodeType
		}
		tuple := make([]any, 0, len(n.Operands)+1)
		tuple = append(tuple, tag)
		for _, op := range n.Operands {
			tuple = append(tuple, EncodeBoolean(op))
		}
		return tuple
	case *formula.NumericComparisonNode:
		return []any{comparisonTag(n.TypeID()), encodeNumericOperand(n.Left), encodeNumericOperand(n.Right)}
	case *formula.FieldHasValueNode:
		return []any{EncodeFieldID(n.FieldID)}
	case *formula.BooleanFieldEqualsNode:
		return []any{EncodeFieldID(n.FieldID), n.Target}
	case *formula.NumericFieldEqualsNode:
		return []any{EncodeFieldID(n.FieldID), n.Value}
	case *formula.NumericFieldInRangeNode:
		return []any{EncodeFieldID(n.FieldID), encodeNumericRange(n.Min, n.Max)}
	case *formula.DateFieldEqualsNode:
		return []any{EncodeFieldID(n.FieldID), encodeDate(n.Value)}
	case *formula.DateFieldInRangeNode:
		return []any{EncodeFieldID(n.FieldID), encodeDateRange(n.Min, n.Max)}
	case *formula.TextFieldContainsNode:
		return appendTextContains([]any{EncodeFieldID(n.FieldID)}, n.TextContains)
	case *formula.PriceSubFieldHasValueNode:
		return []any{EncodeFieldID(formula.FieldPriceSubbed), EncodePriceSubFieldID(n.SubFieldID)}
	case *formula.PriceSubFieldEqualsNode:
		return []any{EncodeFieldID(formula.FieldPriceSubbed), EncodePriceSubFieldID(n.SubFieldID), n.Value}
	case *formula.PriceSubFieldInRangeNode:
		return []any{EncodeFieldID(formula.FieldPriceSubbed), EncodePriceSubFieldID(n.SubFieldID), encodeNumericRange(n.Min, n.Max)}
	case *formula.DateSubFieldHasValueNode:
		return []any{EncodeFieldID(formula.FieldDateSubbed), EncodeDateSubFieldID(n.SubFieldID)}
	case *formula.DateSubFieldEqualsNode:
		return []any{EncodeFieldID(formula.FieldDateSubbed), EncodeDateSubFieldID(n.SubFieldID), encodeDate(n.Value)}
	case *formula.DateSubFieldInRangeNode:
		return []any{EncodeFieldID(formula.FieldDateSubbed), EncodeDateSubFieldID(n.SubFieldID), encodeDateRange(n.Min, n.Max)}
	case *formula.AltCodeSubFieldHasValueNode:
		return []any{EncodeFieldID(formula.FieldAltCodeSubbed), EncodeAltCodeSubFieldID(n.SubFieldID)}
	case *formula.AltCodeSubFieldContainsNode:
		return appendTextContains([]any{EncodeFieldID(formula.FieldAltCodeSubbed), EncodeAltCodeSubFieldID(n.SubFieldID)}, n.TextContains)
	case *formula.AttributeSubFieldHasValueNode:
		return []any{EncodeFieldID(formula.FieldAttributeSubbed), EncodeAttributeSubFieldID(n.SubFieldID)}
	case *formula.AttributeSubFieldContainsNode:
		return appendTextContains([]any{EncodeFieldID(formula.FieldAttributeSubbed), EncodeAttributeSubFieldID(n.SubFieldID)}, n.TextContains)
	}
	panic(fmt.Sprintf("zenith: cannot encode boolean node %T", node))
}

// EncodeNumeric converts a numeric node tree into its tuple form.
// A field value get at the root encodes as the bare field tag string;
// every other node encodes as a []any tuple.
func EncodeNumeric(node formula.NumericNode) any {
	if n, ok := node.(*formula.NumericFieldValueGetNode); ok {
		return EncodeFieldID(n.FieldID)
	}
	return encodeNumericTuple(node)
}

func encodeNumericTuple(node formula.NumericNode) []any {
	switch n := node.(type) {
	case *formula.NumericUnaryArithmeticNode:
		return []any{unaryTag(n.TypeID()), encodeNumericOperand(n.Operand)}
	case *formula.NumericLeftRightArithmeticNode:
		return []any{leftRightTag(n.TypeID()), encodeNumericOperand(n.Left), encodeNumericOperand(n.Right)}
	case *formula.NumericIfNode:
		tuple := make([]any, 0, 2*len(n.TrueArms)+2)
		tuple = append(tuple, IfTupleNodeType)
		for _, arm := range n.TrueArms {
			tuple = append(tuple, EncodeBoolean(arm.Condition), encodeNumericOperand(arm.Value))
		}
		return append(tuple, encodeNumericOperand(n.FalseArm))
	}
	panic(fmt.Sprintf("zenith: cannot encode numeric node %T as tuple", node))
}

func encodeNumericOperand(op formula.NumericOperand) any {
	if v, ok := op.Literal(); ok {
		return v
	}
	n, _ := op.Node()
	return EncodeNumeric(n)
}

func comparisonTag(t formula.NodeTypeID) string {
	switch t {
	case formula.NodeNumericEquals:
		return EqualTupleNodeType
	case formula.NodeNumericGreaterThan:
		return GreaterThanTupleNodeType
	case formula.NodeNumericGreaterThanOrEqual:
		return GreaterThanOrEqualTupleNodeType
	case formula.NodeNumericLessThan:
		return LessThanTupleNodeType
	case formula.NodeNumericLessThanOrEqual:
		return LessThanOrEqualTupleNodeType
	default:
		panic(fmt.Sprintf("zenith: %v is not a comparison", t))
	}
}

func unaryTag(t formula.NodeTypeID) string {
	switch t {
	case formula.NodeNumericNeg:
		return NegTupleNodeType
	case formula.NodeNumericPos:
		return PosTupleNodeType
	case formula.NodeNumericAbs:
		return AbsTupleNodeType
	default:
		panic(fmt.Sprintf("zenith: %v is not a unary arithmetic node", t))
	}
}

func leftRightTag(t formula.NodeTypeID) string {
	switch t {
	case formula.NodeNumericAdd:
		return AddTupleNodeType
	case formula.NodeNumericSub:
		return SubTupleNodeType
	case formula.NodeNumericMul:
		return MulTupleNodeType
	case formula.NodeNumericDiv:
		return DivTupleNodeType
	case formula.NodeNumericMod:
		return ModTupleNodeType
	default:
		panic(fmt.Sprintf("zenith: %v is not a left/right arithmetic node", t))
	}
}

// encodeDate writes t in RFC 3339. Years outside 0000-9999 use the ISO 8601
// expanded form, a sign and at least five digits.
func encodeDate(t time.Time) string {
	t = formula.CanonicalDate(t)
	year := t.Year()
	if year >= 0 && year <= 9999 {
		return t.Format(DateLayout)
	}
	sign := '+'
	if year < 0 {
		sign, year = '-', -year
	}
	return fmt.Sprintf("%c%05d%s", sign, year, t.Format(expandedDateLayout))
}

func encodeNumericRange(min, max *float64) map[string]any {
	named := make(map[string]any, 2)
	if min != nil {
		named[MinParameterName] = *min
	}
	if max != nil {
		named[MaxParameterName] = *max
	}
	return named
}

func encodeDateRange(min, max *time.Time) map[string]any {
	named := make(map[string]any, 2)
	if min != nil {
		named[MinParameterName] = encodeDate(*min)
	}
	if max != nil {
		named[MaxParameterName] = encodeDate(*max)
	}
	return named
}

// appendTextContains appends the value and, when they differ from the
// defaults, the match parameters as a named object.
func appendTextContains(tuple []any, tc formula.TextContains) []any {
	as := EncodeTextContainsAsID(tc.As)
	tuple = append(tuple, tc.Value)
	if tc.As == formula.TextContainsAsNone && !tc.IgnoreCase {
		return tuple
	}
	return append(tuple, map[string]any{
		AsParameterName:         as,
		IgnoreCaseParameterName: tc.IgnoreCase,
	})
}

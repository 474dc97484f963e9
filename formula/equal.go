package formula

import "time"

// Equal reports whether two formula trees are structurally identical.
// Dates are equal when they denote the same instant with the same UTC offset.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.TypeID() != b.TypeID() {
		return false
	}

	switch x := a.(type) {
	case *ZeroOperandBooleanNode:
		return true
	case *NotNode:
		y := b.(*NotNode)
		return Equal(x.Operand, y.Operand)
	case *XorNode:
		y := b.(*XorNode)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *MultiOperandBooleanNode:
		y := b.(*MultiOperandBooleanNode)
		if len(x.Operands) != len(y.Operands) {
			return false
		}
		for i := range x.Operands {
			if !Equal(x.Operands[i], y.Operands[i]) {
				return false
			}
		}
		return true
	case *NumericComparisonNode:
		y := b.(*NumericComparisonNode)
		return EqualOperands(x.Left, y.Left) && EqualOperands(x.Right, y.Right)
	case *FieldHasValueNode:
		return x.FieldID == b.(*FieldHasValueNode).FieldID
	case *BooleanFieldEqualsNode:
		y := b.(*BooleanFieldEqualsNode)
		return x.FieldID == y.FieldID && x.Target == y.Target
	case *NumericFieldEqualsNode:
		y := b.(*NumericFieldEqualsNode)
		return x.FieldID == y.FieldID && x.Value == y.Value
	case *NumericFieldInRangeNode:
		y := b.(*NumericFieldInRangeNode)
		return x.FieldID == y.FieldID && equalFloatPtr(x.Min, y.Min) && equalFloatPtr(x.Max, y.Max)
	case *DateFieldEqualsNode:
		y := b.(*DateFieldEqualsNode)
		return x.FieldID == y.FieldID && equalTime(x.Value, y.Value)
	case *DateFieldInRangeNode:
		y := b.(*DateFieldInRangeNode)
		return x.FieldID == y.FieldID && equalTimePtr(x.Min, y.Min) && equalTimePtr(x.Max, y.Max)
	case *TextFieldContainsNode:
		y := b.(*TextFieldContainsNode)
		return x.FieldID == y.FieldID && x.TextContains == y.TextContains
	case *PriceSubFieldHasValueNode:
		return x.SubFieldID == b.(*PriceSubFieldHasValueNode).SubFieldID
	case *PriceSubFieldEqualsNode:
		y := b.(*PriceSubFieldEqualsNode)
		return x.SubFieldID == y.SubFieldID && x.Value == y.Value
	case *PriceSubFieldInRangeNode:
		y := b.(*PriceSubFieldInRangeNode)
		return x.SubFieldID == y.SubFieldID && equalFloatPtr(x.Min, y.Min) && equalFloatPtr(x.Max, y.Max)
	case *DateSubFieldHasValueNode:
		return x.SubFieldID == b.(*DateSubFieldHasValueNode).SubFieldID
	case *DateSubFieldEqualsNode:
		y := b.(*DateSubFieldEqualsNode)
		return x.SubFieldID == y.SubFieldID && equalTime(x.Value, y.Value)
	case *DateSubFieldInRangeNode:
		y := b.(*DateSubFieldInRangeNode)
		return x.SubFieldID == y.SubFieldID && equalTimePtr(x.Min, y.Min) && equalTimePtr(x.Max, y.Max)
	case *AltCodeSubFieldHasValueNode:
		return x.SubFieldID == b.(*AltCodeSubFieldHasValueNode).SubFieldID
	case *AltCodeSubFieldContainsNode:
		y := b.(*AltCodeSubFieldContainsNode)
		return x.SubFieldID == y.SubFieldID && x.TextContains == y.TextContains
	case *AttributeSubFieldHasValueNode:
		return x.SubFieldID == b.(*AttributeSubFieldHasValueNode).SubFieldID
	case *AttributeSubFieldContainsNode:
		y := b.(*AttributeSubFieldContainsNode)
		return x.SubFieldID == y.SubFieldID && x.TextContains == y.TextContains
	case *NumericUnaryArithmeticNode:
		return EqualOperands(x.Operand, b.(*NumericUnaryArithmeticNode).Operand)
	case *NumericLeftRightArithmeticNode:
		y := b.(*NumericLeftRightArithmeticNode)
		return EqualOperands(x.Left, y.Left) && EqualOperands(x.Right, y.Right)
	case *NumericIfNode:
		y := b.(*NumericIfNode)
		if len(x.TrueArms) != len(y.TrueArms) {
			return false
		}
		for i := range x.TrueArms {
			if !Equal(x.TrueArms[i].Condition, y.TrueArms[i].Condition) ||
				!EqualOperands(x.TrueArms[i].Value, y.TrueArms[i].Value) {
				return false
			}
		}
		return EqualOperands(x.FalseArm, y.FalseArm)
	case *NumericFieldValueGetNode:
		return x.FieldID == b.(*NumericFieldValueGetNode).FieldID
	default:
		return false
	}
}

// EqualOperands reports whether two numeric operands are structurally identical.
func EqualOperands(a, b NumericOperand) bool {
	an, aIsNode := a.Node()
	bn, bIsNode := b.Node()
	if aIsNode != bIsNode {
		return false
	}
	if aIsNode {
		return Equal(an, bn)
	}
	return a.literal == b.literal
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalTime(a, b time.Time) bool {
	if !a.Equal(b) {
		return false
	}
	_, ao := CanonicalDate(a).Zone()
	_, bo := CanonicalDate(b).Zone()
	return ao == bo
}

// CanonicalDate returns t in the zone it keeps when written as an RFC 3339
// date: t itself when its offset is a whole number of minutes inside
// ±24h, t in UTC otherwise.
func CanonicalDate(t time.Time) time.Time {
	_, offset := t.Zone()
	if offset%60 != 0 || offset <= -24*3600 || offset >= 24*3600 {
		return t.UTC()
	}
	return t
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalTime(*a, *b)
}

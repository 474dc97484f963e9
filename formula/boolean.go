package formula

import "time"

// ZeroOperandBooleanNode is All or None.
type ZeroOperandBooleanNode struct {
	booleanBase
}

// NewAll returns a node that is always true.
func NewAll() *ZeroOperandBooleanNode {
	return &ZeroOperandBooleanNode{booleanBase{baseNode{NodeAll}}}
}

// NewNone returns a node that is always false.
func NewNone() *ZeroOperandBooleanNode {
	return &ZeroOperandBooleanNode{booleanBase{baseNode{NodeNone}}}
}

// NotNode negates its operand.
type NotNode struct {
	booleanBase
	Operand BooleanNode
}

// NewNot returns the negation of operand.
func NewNot(operand BooleanNode) *NotNode {
	return &NotNode{booleanBase: booleanBase{baseNode{NodeNot}}, Operand: operand}
}

// XorNode is true when exactly one operand is true.
type XorNode struct {
	booleanBase
	Left  BooleanNode
	Right BooleanNode
}

// NewXor returns a node true when exactly one of left and right is true.
func NewXor(left, right BooleanNode) *XorNode {
	return &XorNode{booleanBase: booleanBase{baseNode{NodeXor}}, Left: left, Right: right}
}

// MultiOperandBooleanNode is And or Or over an ordered operand list.
type MultiOperandBooleanNode struct {
	booleanBase
	Operands []BooleanNode
}

// NewAnd returns a conjunction. With no operands it matches every row.
func NewAnd(operands ...BooleanNode) *MultiOperandBooleanNode {
	return &MultiOperandBooleanNode{booleanBase: booleanBase{baseNode{NodeAnd}}, Operands: operands}
}

// NewOr returns a disjunction. With no operands it matches no row.
func NewOr(operands ...BooleanNode) *MultiOperandBooleanNode {
	return &MultiOperandBooleanNode{booleanBase: booleanBase{baseNode{NodeOr}}, Operands: operands}
}

// NumericComparisonNode compares two numeric operands.
// The comparison is selected by TypeID.
type NumericComparisonNode struct {
	booleanBase
	Left  NumericOperand
	Right NumericOperand
}

func newComparison(t NodeTypeID, left, right NumericOperand) *NumericComparisonNode {
	return &NumericComparisonNode{booleanBase: booleanBase{baseNode{t}}, Left: left, Right: right}
}

// NewNumericEquals returns left = right.
func NewNumericEquals(left, right NumericOperand) *NumericComparisonNode {
	return newComparison(NodeNumericEquals, left, right)
}

// NewNumericGreaterThan returns left > right.
func NewNumericGreaterThan(left, right NumericOperand) *NumericComparisonNode {
	return newComparison(NodeNumericGreaterThan, left, right)
}

// NewNumericGreaterThanOrEqual returns left >= right.
func NewNumericGreaterThanOrEqual(left, right NumericOperand) *NumericComparisonNode {
	return newComparison(NodeNumericGreaterThanOrEqual, left, right)
}

// NewNumericLessThan returns left < right.
func NewNumericLessThan(left, right NumericOperand) *NumericComparisonNode {
	return newComparison(NodeNumericLessThan, left, right)
}

// NewNumericLessThanOrEqual returns left <= right.
func NewNumericLessThanOrEqual(left, right NumericOperand) *NumericComparisonNode {
	return newComparison(NodeNumericLessThanOrEqual, left, right)
}

// FieldHasValueNode is true when the field has a value.
type FieldHasValueNode struct {
	booleanBase
	FieldID FieldID
}

// NewFieldHasValue returns a node true when field is set.
func NewFieldHasValue(field FieldID) *FieldHasValueNode {
	return &FieldHasValueNode{booleanBase: booleanBase{baseNode{NodeFieldHasValue}}, FieldID: field}
}

// Field returns the tested field.
func (n *FieldHasValueNode) Field() FieldID { return n.FieldID }

// BooleanFieldEqualsNode tests a boolean field against a target.
type BooleanFieldEqualsNode struct {
	booleanBase
	FieldID FieldID
	Target  bool
}

// NewBooleanFieldEquals tests a boolean field against target.
func NewBooleanFieldEquals(field FieldID, target bool) *BooleanFieldEqualsNode {
	return &BooleanFieldEqualsNode{booleanBase: booleanBase{baseNode{NodeBooleanFieldEquals}}, FieldID: field, Target: target}
}

// Field returns the tested field.
func (n *BooleanFieldEqualsNode) Field() FieldID { return n.FieldID }

// NumericFieldEqualsNode tests a numeric field against a value.
type NumericFieldEqualsNode struct {
	booleanBase
	FieldID FieldID
	Value   float64
}

// NewNumericFieldEquals tests a numeric field for equality with value.
func NewNumericFieldEquals(field FieldID, value float64) *NumericFieldEqualsNode {
	return &NumericFieldEqualsNode{booleanBase: booleanBase{baseNode{NodeNumericFieldEquals}}, FieldID: field, Value: value}
}

// Field returns the tested field.
func (n *NumericFieldEqualsNode) Field() FieldID { return n.FieldID }

// NumericFieldInRangeNode tests a numeric field against inclusive bounds.
// At least one of Min and Max is set.
type NumericFieldInRangeNode struct {
	booleanBase
	FieldID FieldID
	Min     *float64
	Max     *float64
}

// NewNumericFieldInRange tests a numeric field against inclusive bounds. At least one bound must be set.
func NewNumericFieldInRange(field FieldID, min, max *float64) *NumericFieldInRangeNode {
	return &NumericFieldInRangeNode{booleanBase: booleanBase{baseNode{NodeNumericFieldInRange}}, FieldID: field, Min: min, Max: max}
}

// Field returns the tested field.
func (n *NumericFieldInRangeNode) Field() FieldID { return n.FieldID }

// DateFieldEqualsNode tests a date field against an instant.
type DateFieldEqualsNode struct {
	booleanBase
	FieldID FieldID
	Value   time.Time
}

// NewDateFieldEquals tests a date field for the instant value.
func NewDateFieldEquals(field FieldID, value time.Time) *DateFieldEqualsNode {
	return &DateFieldEqualsNode{booleanBase: booleanBase{baseNode{NodeDateFieldEquals}}, FieldID: field, Value: value}
}

// Field returns the tested field.
func (n *DateFieldEqualsNode) Field() FieldID { return n.FieldID }

// DateFieldInRangeNode tests a date field against inclusive bounds.
// At least one of Min and Max is set.
type DateFieldInRangeNode struct {
	booleanBase
	FieldID FieldID
	Min     *time.Time
	Max     *time.Time
}

// NewDateFieldInRange tests a date field against inclusive bounds. At least one bound must be set.
func NewDateFieldInRange(field FieldID, min, max *time.Time) *DateFieldInRangeNode {
	return &DateFieldInRangeNode{booleanBase: booleanBase{baseNode{NodeDateFieldInRange}}, FieldID: field, Min: min, Max: max}
}

// Field returns the tested field.
func (n *DateFieldInRangeNode) Field() FieldID { return n.FieldID }

// TextContains holds the match parameters shared by the text-contains nodes.
type TextContains struct {
	Value      string
	As         TextContainsAsID
	IgnoreCase bool
}

// TextFieldContainsNode tests a text field for a value.
type TextFieldContainsNode struct {
	booleanBase
	FieldID FieldID
	TextContains
}

// NewTextFieldContains matches a text field against value.
func NewTextFieldContains(field FieldID, value string, as TextContainsAsID, ignoreCase bool) *TextFieldContainsNode {
	return &TextFieldContainsNode{
		booleanBase:  booleanBase{baseNode{NodeTextFieldContains}},
		FieldID:      field,
		TextContains: TextContains{Value: value, As: as, IgnoreCase: ignoreCase},
	}
}

// Field returns the tested field.
func (n *TextFieldContainsNode) Field() FieldID { return n.FieldID }

// PriceSubFieldHasValueNode is true when the price sub-field has a value.
type PriceSubFieldHasValueNode struct {
	booleanBase
	SubFieldID PriceSubFieldID
}

// NewPriceSubFieldHasValue returns a node true when the price sub-field is set.
func NewPriceSubFieldHasValue(sub PriceSubFieldID) *PriceSubFieldHasValueNode {
	return &PriceSubFieldHasValueNode{booleanBase: booleanBase{baseNode{NodePriceSubFieldHasValue}}, SubFieldID: sub}
}

// Field returns FieldPriceSubbed.
func (n *PriceSubFieldHasValueNode) Field() FieldID { return FieldPriceSubbed }

// PriceSubFieldEqualsNode tests a price sub-field against a value.
type PriceSubFieldEqualsNode struct {
	booleanBase
	SubFieldID PriceSubFieldID
	Value      float64
}

// NewPriceSubFieldEquals tests a price sub-field for equality with value.
func NewPriceSubFieldEquals(sub PriceSubFieldID, value float64) *PriceSubFieldEqualsNode {
	return &PriceSubFieldEqualsNode{booleanBase: booleanBase{baseNode{NodePriceSubFieldEquals}}, SubFieldID: sub, Value: value}
}

// Field returns FieldPriceSubbed.
func (n *PriceSubFieldEqualsNode) Field() FieldID { return FieldPriceSubbed }

// PriceSubFieldInRangeNode tests a price sub-field against inclusive bounds.
type PriceSubFieldInRangeNode struct {
	booleanBase
	SubFieldID PriceSubFieldID
	Min        *float64
	Max        *float64
}

// NewPriceSubFieldInRange tests a price sub-field against inclusive bounds.
func NewPriceSubFieldInRange(sub PriceSubFieldID, min, max *float64) *PriceSubFieldInRangeNode {
	return &PriceSubFieldInRangeNode{booleanBase: booleanBase{baseNode{NodePriceSubFieldInRange}}, SubFieldID: sub, Min: min, Max: max}
}

// Field returns FieldPriceSubbed.
func (n *PriceSubFieldInRangeNode) Field() FieldID { return FieldPriceSubbed }

// DateSubFieldHasValueNode is true when the date sub-field has a value.
type DateSubFieldHasValueNode struct {
	booleanBase
	SubFieldID DateSubFieldID
}

// NewDateSubFieldHasValue returns a node true when the date sub-field is set.
func NewDateSubFieldHasValue(sub DateSubFieldID) *DateSubFieldHasValueNode {
	return &DateSubFieldHasValueNode{booleanBase: booleanBase{baseNode{NodeDateSubFieldHasValue}}, SubFieldID: sub}
}

// Field returns FieldDateSubbed.
func (n *DateSubFieldHasValueNode) Field() FieldID { return FieldDateSubbed }

// DateSubFieldEqualsNode tests a date sub-field against an instant.
type DateSubFieldEqualsNode struct {
	booleanBase
	SubFieldID DateSubFieldID
	Value      time.Time
}

// NewDateSubFieldEquals tests a date sub-field for the instant value.
func NewDateSubFieldEquals(sub DateSubFieldID, value time.Time) *DateSubFieldEqualsNode {
	return &DateSubFieldEqualsNode{booleanBase: booleanBase{baseNode{NodeDateSubFieldEquals}}, SubFieldID: sub, Value: value}
}

// Field returns FieldDateSubbed.
func (n *DateSubFieldEqualsNode) Field() FieldID { return FieldDateSubbed }

// DateSubFieldInRangeNode tests a date sub-field against inclusive bounds.
type DateSubFieldInRangeNode struct {
	booleanBase
	SubFieldID DateSubFieldID
	Min        *time.Time
	Max        *time.Time
}

// NewDateSubFieldInRange tests a date sub-field against inclusive bounds.
func NewDateSubFieldInRange(sub DateSubFieldID, min, max *time.Time) *DateSubFieldInRangeNode {
	return &DateSubFieldInRangeNode{booleanBase: booleanBase{baseNode{NodeDateSubFieldInRange}}, SubFieldID: sub, Min: min, Max: max}
}

// Field returns FieldDateSubbed.
func (n *DateSubFieldInRangeNode) Field() FieldID { return FieldDateSubbed }

// AltCodeSubFieldHasValueNode is true when the alternate code is present.
type AltCodeSubFieldHasValueNode struct {
	booleanBase
	SubFieldID AltCodeSubFieldID
}

// NewAltCodeSubFieldHasValue returns a node true when the alternate code is set.
func NewAltCodeSubFieldHasValue(sub AltCodeSubFieldID) *AltCodeSubFieldHasValueNode {
	return &AltCodeSubFieldHasValueNode{booleanBase: booleanBase{baseNode{NodeAltCodeSubFieldHasValue}}, SubFieldID: sub}
}

// Field returns FieldAltCodeSubbed.
func (n *AltCodeSubFieldHasValueNode) Field() FieldID { return FieldAltCodeSubbed }

// AltCodeSubFieldContainsNode tests an alternate code for a value.
type AltCodeSubFieldContainsNode struct {
	booleanBase
	SubFieldID AltCodeSubFieldID
	TextContains
}

// NewAltCodeSubFieldContains matches an alternate code against value.
func NewAltCodeSubFieldContains(sub AltCodeSubFieldID, value string, as TextContainsAsID, ignoreCase bool) *AltCodeSubFieldContainsNode {
	return &AltCodeSubFieldContainsNode{
		booleanBase:  booleanBase{baseNode{NodeAltCodeSubFieldContains}},
		SubFieldID:   sub,
		TextContains: TextContains{Value: value, As: as, IgnoreCase: ignoreCase},
	}
}

// Field returns FieldAltCodeSubbed.
func (n *AltCodeSubFieldContainsNode) Field() FieldID { return FieldAltCodeSubbed }

// AttributeSubFieldHasValueNode is true when the attribute is present.
type AttributeSubFieldHasValueNode struct {
	booleanBase
	SubFieldID AttributeSubFieldID
}

// NewAttributeSubFieldHasValue returns a node true when the attribute is set.
func NewAttributeSubFieldHasValue(sub AttributeSubFieldID) *AttributeSubFieldHasValueNode {
	return &AttributeSubFieldHasValueNode{booleanBase: booleanBase{baseNode{NodeAttributeSubFieldHasValue}}, SubFieldID: sub}
}

// Field returns FieldAttributeSubbed.
func (n *AttributeSubFieldHasValueNode) Field() FieldID { return FieldAttributeSubbed }

// AttributeSubFieldContainsNode tests an attribute for a value.
type AttributeSubFieldContainsNode struct {
	booleanBase
	SubFieldID AttributeSubFieldID
	TextContains
}

// NewAttributeSubFieldContains matches an attribute against value.
func NewAttributeSubFieldContains(sub AttributeSubFieldID, value string, as TextContainsAsID, ignoreCase bool) *AttributeSubFieldContainsNode {
	return &AttributeSubFieldContainsNode{
		booleanBase:  booleanBase{baseNode{NodeAttributeSubFieldContains}},
		SubFieldID:   sub,
		TextContains: TextContains{Value: value, As: as, IgnoreCase: ignoreCase},
	}
}

// Field returns FieldAttributeSubbed.
func (n *AttributeSubFieldContainsNode) Field() FieldID { return FieldAttributeSubbed }

package formula

import "strconv"

// NodeTypeID identifies the concrete type of a formula node.
type NodeTypeID int

const (
	// Boolean nodes
	NodeAnd NodeTypeID = iota
	NodeOr
	NodeNot
	NodeXor
	NodeAll
	NodeNone
	NodeNumericEquals
	NodeNumericGreaterThan
	NodeNumericGreaterThanOrEqual
	NodeNumericLessThan
	NodeNumericLessThanOrEqual
	NodeFieldHasValue
	NodeBooleanFieldEquals
	NodeNumericFieldEquals
	NodeNumericFieldInRange
	NodeDateFieldEquals
	NodeDateFieldInRange
	NodeTextFieldContains
	NodePriceSubFieldHasValue
	NodePriceSubFieldEquals
	NodePriceSubFieldInRange
	NodeDateSubFieldHasValue
	NodeDateSubFieldEquals
	NodeDateSubFieldInRange
	NodeAltCodeSubFieldHasValue
	NodeAltCodeSubFieldContains
	NodeAttributeSubFieldHasValue
	NodeAttributeSubFieldContains

	// Numeric nodes
	NodeNumericNeg
	NodeNumericPos
	NodeNumericAbs
	NodeNumericAdd
	NodeNumericDiv
	NodeNumericMod
	NodeNumericMul
	NodeNumericSub
	NodeNumericIf
	NodeNumericFieldValueGet

	nodeTypeCount
)

var nodeTypeNames = [nodeTypeCount]string{
	NodeAnd:                       "And",
	NodeOr:                        "Or",
	NodeNot:                       "Not",
	NodeXor:                       "Xor",
	NodeAll:                       "All",
	NodeNone:                      "None",
	NodeNumericEquals:             "NumericEquals",
	NodeNumericGreaterThan:        "NumericGreaterThan",
	NodeNumericGreaterThanOrEqual: "NumericGreaterThanOrEqual",
	NodeNumericLessThan:           "NumericLessThan",
	NodeNumericLessThanOrEqual:    "NumericLessThanOrEqual",
	NodeFieldHasValue:             "FieldHasValue",
	NodeBooleanFieldEquals:        "BooleanFieldEquals",
	NodeNumericFieldEquals:        "NumericFieldEquals",
	NodeNumericFieldInRange:       "NumericFieldInRange",
	NodeDateFieldEquals:           "DateFieldEquals",
	NodeDateFieldInRange:          "DateFieldInRange",
	NodeTextFieldContains:         "TextFieldContains",
	NodePriceSubFieldHasValue:     "PriceSubFieldHasValue",
	NodePriceSubFieldEquals:       "PriceSubFieldEquals",
	NodePriceSubFieldInRange:      "PriceSubFieldInRange",
	NodeDateSubFieldHasValue:      "DateSubFieldHasValue",
	NodeDateSubFieldEquals:        "DateSubFieldEquals",
	NodeDateSubFieldInRange:       "DateSubFieldInRange",
	NodeAltCodeSubFieldHasValue:   "AltCodeSubFieldHasValue",
	NodeAltCodeSubFieldContains:   "AltCodeSubFieldContains",
	NodeAttributeSubFieldHasValue: "AttributeSubFieldHasValue",
	NodeAttributeSubFieldContains: "AttributeSubFieldContains",
	NodeNumericNeg:                "NumericNeg",
	NodeNumericPos:                "NumericPos",
	NodeNumericAbs:                "NumericAbs",
	NodeNumericAdd:                "NumericAdd",
	NodeNumericDiv:                "NumericDiv",
	NodeNumericMod:                "NumericMod",
	NodeNumericMul:                "NumericMul",
	NodeNumericSub:                "NumericSub",
	NodeNumericIf:                 "NumericIf",
	NodeNumericFieldValueGet:      "NumericFieldValueGet",
}

func (t NodeTypeID) String() string {
	if t < 0 || t >= nodeTypeCount {
		return "NodeTypeID(" + strconv.Itoa(int(t)) + ")"
	}
	return nodeTypeNames[t]
}

// NodeTypes returns all node type ids in declared order.
func NodeTypes() []NodeTypeID {
	types := make([]NodeTypeID, 0, nodeTypeCount)
	for t := NodeTypeID(0); t < nodeTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// IsBoolean reports whether nodes of this type evaluate to a boolean.
func (t NodeTypeID) IsBoolean() bool {
	return t >= NodeAnd && t < NodeNumericNeg
}

// IsNumeric reports whether nodes of this type evaluate to a number.
func (t NodeTypeID) IsNumeric() bool {
	return t >= NodeNumericNeg && t < nodeTypeCount
}

// Node is the interface implemented by every formula node.
// Use type switches to access the concrete payload.
type Node interface {
	// TypeID returns the node type fixed at construction.
	TypeID() NodeTypeID

	// nodeMarker prevents implementations outside this package.
	nodeMarker()
}

// BooleanNode is a node that evaluates to a boolean.
type BooleanNode interface {
	Node
	booleanMarker()
}

// NumericNode is a node that evaluates to a number.
type NumericNode interface {
	Node
	numericMarker()
}

// FieldNode is a boolean node that tests a field of the catalogue.
type FieldNode interface {
	BooleanNode
	// Field returns the field the predicate applies to. Sub-field nodes
	// return their owning subbed field.
	Field() FieldID
}

type baseNode struct {
	typeID NodeTypeID
}

// TypeID returns the node type.
func (b *baseNode) TypeID() NodeTypeID { return b.typeID }

func (b *baseNode) nodeMarker() {}

type booleanBase struct{ baseNode }

func (b *booleanBase) booleanMarker() {}

type numericBase struct{ baseNode }

func (b *numericBase) numericMarker() {}

// NumericOperand is either a literal number or a numeric node.
// The zero value is the literal 0.
type NumericOperand struct {
	node    NumericNode
	literal float64
}

// NumericLiteral returns an operand holding a literal number.
func NumericLiteral(v float64) NumericOperand {
	return NumericOperand{literal: v}
}

// NumericExpression returns an operand holding a numeric node.
// A nil node yields the literal 0.
func NumericExpression(n NumericNode) NumericOperand {
	return NumericOperand{node: n}
}

// Literal returns the literal value and true if the operand is a literal.
func (o NumericOperand) Literal() (float64, bool) {
	if o.node != nil {
		return 0, false
	}
	return o.literal, true
}

// Node returns the numeric node and true if the operand is an expression.
func (o NumericOperand) Node() (NumericNode, bool) {
	return o.node, o.node != nil
}

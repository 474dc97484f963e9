package formula

// NumericUnaryArithmeticNode is Neg, Pos or Abs of one operand.
type NumericUnaryArithmeticNode struct {
	numericBase
	Operand NumericOperand
}

func newUnary(t NodeTypeID, operand NumericOperand) *NumericUnaryArithmeticNode {
	return &NumericUnaryArithmeticNode{numericBase: numericBase{baseNode{t}}, Operand: operand}
}

// NewNumericNeg returns -operand.
func NewNumericNeg(operand NumericOperand) *NumericUnaryArithmeticNode {
	return newUnary(NodeNumericNeg, operand)
}

// NewNumericPos returns +operand.
func NewNumericPos(operand NumericOperand) *NumericUnaryArithmeticNode {
	return newUnary(NodeNumericPos, operand)
}

// NewNumericAbs returns the absolute value of operand.
func NewNumericAbs(operand NumericOperand) *NumericUnaryArithmeticNode {
	return newUnary(NodeNumericAbs, operand)
}

// NumericLeftRightArithmeticNode is Add, Sub, Mul, Div or Mod of two operands.
type NumericLeftRightArithmeticNode struct {
	numericBase
	Left  NumericOperand
	Right NumericOperand
}

func newLeftRight(t NodeTypeID, left, right NumericOperand) *NumericLeftRightArithmeticNode {
	return &NumericLeftRightArithmeticNode{numericBase: numericBase{baseNode{t}}, Left: left, Right: right}
}

// NewNumericAdd returns left + right.
func NewNumericAdd(left, right NumericOperand) *NumericLeftRightArithmeticNode {
	return newLeftRight(NodeNumericAdd, left, right)
}

// NewNumericSub returns left - right.
func NewNumericSub(left, right NumericOperand) *NumericLeftRightArithmeticNode {
	return newLeftRight(NodeNumericSub, left, right)
}

// NewNumericMul returns left * right.
func NewNumericMul(left, right NumericOperand) *NumericLeftRightArithmeticNode {
	return newLeftRight(NodeNumericMul, left, right)
}

// NewNumericDiv returns left / right.
func NewNumericDiv(left, right NumericOperand) *NumericLeftRightArithmeticNode {
	return newLeftRight(NodeNumericDiv, left, right)
}

// NewNumericMod returns the remainder of left / right.
func NewNumericMod(left, right NumericOperand) *NumericLeftRightArithmeticNode {
	return newLeftRight(NodeNumericMod, left, right)
}

// NumericIfArm pairs a condition with the value used when it holds.
type NumericIfArm struct {
	Condition BooleanNode
	Value     NumericOperand
}

// NumericIfNode yields the value of the first arm whose condition holds,
// or FalseArm when none does.
type NumericIfNode struct {
	numericBase
	TrueArms []NumericIfArm
	FalseArm NumericOperand
}

// NewNumericIf returns the value of the first arm whose condition holds, else falseArm.
func NewNumericIf(trueArms []NumericIfArm, falseArm NumericOperand) *NumericIfNode {
	return &NumericIfNode{numericBase: numericBase{baseNode{NodeNumericIf}}, TrueArms: trueArms, FalseArm: falseArm}
}

// NumericFieldValueGetNode reads the value of a scalar numeric field.
type NumericFieldValueGetNode struct {
	numericBase
	FieldID FieldID
}

// NewNumericFieldValueGet reads the value of a numeric field.
func NewNumericFieldValueGet(field FieldID) *NumericFieldValueGetNode {
	return &NumericFieldValueGetNode{numericBase: numericBase{baseNode{NodeNumericFieldValueGet}}, FieldID: field}
}

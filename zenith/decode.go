package zenith

import (
	"strconv"

	"github.com/hugr-lab/zenith-scan/formula"
)

// DecodeBoolean converts a boolean tuple into a node tree. The progress
// trail is returned whether or not decoding succeeds. A non-nil error is
// always a *DecodeError.
func DecodeBoolean(tuple any) (formula.BooleanNode, *DecodeProgress, error) {
	d := &decoder{progress: &DecodeProgress{}}
	node, err := d.booleanTuple(tuple)
	if err != nil {
		return nil, d.progress, err
	}
	return node, d.progress, nil
}

// DecodeNumeric converts a numeric tuple, or a bare numeric field tag,
// into a node tree.
func DecodeNumeric(tuple any) (formula.NumericNode, *DecodeProgress, error) {
	d := &decoder{progress: &DecodeProgress{}}
	var (
		node formula.NumericNode
		err  error
	)
	if tag, ok := tuple.(string); ok {
		node, err = d.numericFieldTag(tag)
	} else {
		node, err = d.numericTuple(tuple)
	}
	if err != nil {
		return nil, d.progress, err
	}
	return node, d.progress, nil
}

type decoder struct {
	progress *DecodeProgress
}

func (d *decoder) booleanTuple(v any) (formula.BooleanNode, error) {
	tuple, ok := v.([]any)
	if !ok {
		return nil, newDecodeError(ErrorBooleanTupleNodeIsNotAnArray, rawText(v))
	}
	if len(tuple) == 0 {
		return nil, newDecodeError(ErrorBooleanTupleNodeArrayIsZeroLength, "")
	}
	tag, ok := tuple[0].(string)
	if !ok {
		return nil, newDecodeError(ErrorBooleanTupleNodeTypeIsNotString, rawText(tuple[0]))
	}

	index := d.progress.enterTupleNode(tag)
	node, err := d.booleanTupleNode(tag, tuple[1:])
	if err != nil {
		return nil, err
	}
	d.progress.exitTupleNode(index, node.TypeID())
	return node, nil
}

func (d *decoder) booleanTupleNode(tag string, params []any) (formula.BooleanNode, error) {
	switch tag {
	case AndTupleNodeType, OrTupleNodeType:
		if len(params) == 0 {
			return nil, newDecodeError(ErrorMultiOperandLogicalBooleanMissingOperands, tag)
		}
		operands, err := d.booleanOperands(params)
		if err != nil {
			return nil, err
		}
		if tag == AndTupleNodeType {
			return formula.NewAnd(operands...), nil
		}
		return formula.NewOr(operands...), nil
	case NotTupleNodeType:
		if len(params) != 1 {
			return nil, newDecodeError(ErrorSingleOperandLogicalBooleanDoesNotHaveOneOperand, strconv.Itoa(len(params)))
		}
		operand, err := d.booleanOperand(params[0])
		if err != nil {
			return nil, err
		}
		return formula.NewNot(operand), nil
	case XorTupleNodeType:
		if len(params) != 2 {
			return nil, newDecodeError(ErrorLeftRightOperandLogicalBooleanDoesNotHaveTwoOperands, strconv.Itoa(len(params)))
		}
		operands, err := d.booleanOperands(params)
		if err != nil {
			return nil, err
		}
		return formula.NewXor(operands[0], operands[1]), nil
	case AllTupleNodeType, NoneTupleNodeType:
		if len(params) != 0 {
			return nil, newDecodeError(ErrorZeroOperandBooleanTupleNodeHasParameters, tag)
		}
		if tag == AllTupleNodeType {
			return formula.NewAll(), nil
		}
		return formula.NewNone(), nil
	case EqualTupleNodeType, GreaterThanTupleNodeType, GreaterThanOrEqualTupleNodeType,
		LessThanTupleNodeType, LessThanOrEqualTupleNodeType:
		return d.comparison(tag, params)
	}

	field, ok := TryDecodeFieldID(tag)
	if !ok {
		return nil, newDecodeError(ErrorUnknownBooleanTupleNodeType, tag)
	}
	return decodeFieldParams(field, params)
}

func (d *decoder) comparison(tag string, params []any) (formula.BooleanNode, error) {
	if len(params) != 2 {
		return nil, newDecodeError(ErrorNumericComparisonDoesNotHaveTwoOperands, strconv.Itoa(len(params)))
	}
	left, err := d.numericOperand(params[0])
	if err != nil {
		return nil, err
	}
	right, err := d.numericOperand(params[1])
	if err != nil {
		return nil, err
	}
	switch tag {
	case EqualTupleNodeType:
		return formula.NewNumericEquals(left, right), nil
	case GreaterThanTupleNodeType:
		return formula.NewNumericGreaterThan(left, right), nil
	case GreaterThanOrEqualTupleNodeType:
		return formula.NewNumericGreaterThanOrEqual(left, right), nil
	case LessThanTupleNodeType:
		return formula.NewNumericLessThan(left, right), nil
	default:
		return formula.NewNumericLessThanOrEqual(left, right), nil
	}
}

func (d *decoder) booleanOperands(params []any) ([]formula.BooleanNode, error) {
	operands := make([]formula.BooleanNode, 0, len(params))
	for _, p := range params {
		op, err := d.booleanOperand(p)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}
	return operands, nil
}

// booleanOperand accepts a nested tuple or a bare field tag, which is
// shorthand for the field tuple without parameters.
func (d *decoder) booleanOperand(v any) (formula.BooleanNode, error) {
	switch op := v.(type) {
	case []any:
		return d.booleanTuple(op)
	case string:
		field, ok := TryDecodeFieldID(op)
		if !ok {
			return nil, newDecodeError(ErrorUnknownFieldTag, op)
		}
		return decodeFieldParams(field, nil)
	default:
		return nil, newDecodeError(ErrorBooleanOperandIsNotTupleNodeOrFieldTag, rawText(v))
	}
}

func (d *decoder) numericTuple(v any) (formula.NumericNode, error) {
	tuple, ok := v.([]any)
	if !ok {
		return nil, newDecodeError(ErrorNumericTupleNodeIsNotAnArray, rawText(v))
	}
	if len(tuple) == 0 {
		return nil, newDecodeError(ErrorNumericTupleNodeArrayIsZeroLength, "")
	}
	tag, ok := tuple[0].(string)
	if !ok {
		return nil, newDecodeError(ErrorNumericTupleNodeTypeIsNotString, rawText(tuple[0]))
	}

	index := d.progress.enterTupleNode(tag)
	node, err := d.numericTupleNode(tag, tuple[1:])
	if err != nil {
		return nil, err
	}
	d.progress.exitTupleNode(index, node.TypeID())
	return node, nil
}

func (d *decoder) numericTupleNode(tag string, params []any) (formula.NumericNode, error) {
	switch tag {
	case NegTupleNodeType, PosTupleNodeType, AbsTupleNodeType:
		if len(params) != 1 {
			return nil, newDecodeError(ErrorUnaryArithmeticNumericTupleNodeRequiresOneOperand, strconv.Itoa(len(params)))
		}
		operand, err := d.numericOperand(params[0])
		if err != nil {
			return nil, err
		}
		switch tag {
		case NegTupleNodeType:
			return formula.NewNumericNeg(operand), nil
		case PosTupleNodeType:
			return formula.NewNumericPos(operand), nil
		default:
			return formula.NewNumericAbs(operand), nil
		}
	case AddTupleNodeType, SubTupleNodeType, MulTupleNodeType, DivTupleNodeType, ModTupleNodeType:
		if len(params) != 2 {
			return nil, newDecodeError(ErrorLeftRightArithmeticNumericTupleNodeRequiresTwoOperands, strconv.Itoa(len(params)))
		}
		left, err := d.numericOperand(params[0])
		if err != nil {
			return nil, err
		}
		right, err := d.numericOperand(params[1])
		if err != nil {
			return nil, err
		}
		switch tag {
		case AddTupleNodeType:
			return formula.NewNumericAdd(left, right), nil
		case SubTupleNodeType:
			return formula.NewNumericSub(left, right), nil
		case MulTupleNodeType:
			return formula.NewNumericMul(left, right), nil
		case DivTupleNodeType:
			return formula.NewNumericDiv(left, right), nil
		default:
			return formula.NewNumericMod(left, right), nil
		}
	case IfTupleNodeType:
		return d.numericIf(params)
	default:
		return nil, newDecodeError(ErrorUnknownNumericTupleNodeType, tag)
	}
}

// numericIf reads condition/value pairs followed by the false value.
func (d *decoder) numericIf(params []any) (formula.NumericNode, error) {
	if len(params) < 3 {
		return nil, newDecodeError(ErrorNumericIfTupleNodeRequiresAtLeastThreeParameters, strconv.Itoa(len(params)))
	}
	if len(params)%2 == 0 {
		return nil, newDecodeError(ErrorNumericIfTupleNodeRequiresAnOddNumberOfParameters, strconv.Itoa(len(params)))
	}

	last := len(params) - 1
	arms := make([]formula.NumericIfArm, 0, last/2)
	for i := 0; i < last; i += 2 {
		condition, err := d.booleanOperand(params[i])
		if err != nil {
			return nil, err
		}
		value, err := d.numericOperand(params[i+1])
		if err != nil {
			return nil, err
		}
		arms = append(arms, formula.NumericIfArm{Condition: condition, Value: value})
	}
	falseArm, err := d.numericOperand(params[last])
	if err != nil {
		return nil, err
	}
	return formula.NewNumericIf(arms, falseArm), nil
}

// numericOperand accepts a number, a numeric field tag or a nested tuple.
func (d *decoder) numericOperand(v any) (formula.NumericOperand, error) {
	if f, ok := toFloat(v); ok {
		return formula.NumericLiteral(f), nil
	}
	var (
		node formula.NumericNode
		err  error
	)
	switch op := v.(type) {
	case string:
		node, err = d.numericFieldTag(op)
	case []any:
		node, err = d.numericTuple(op)
	default:
		return formula.NumericOperand{}, newDecodeError(ErrorNumericOperandIsNotNumberFieldTagOrTupleNode, rawText(v))
	}
	if err != nil {
		return formula.NumericOperand{}, err
	}
	return formula.NumericExpression(node), nil
}

func (d *decoder) numericFieldTag(tag string) (formula.NumericNode, error) {
	field, ok := TryDecodeFieldID(tag)
	if !ok {
		return nil, newDecodeError(ErrorUnknownNumericFieldTag, tag)
	}
	if !field.IsNumericRange() {
		return nil, newDecodeError(ErrorFieldIsNotNumericRange, tag)
	}
	return formula.NewNumericFieldValueGet(field), nil
}

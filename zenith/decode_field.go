package zenith

import (
	"fmt"
	"time"

	"github.com/hugr-lab/zenith-scan/formula"
)

// styleCount is the number of formula.StyleID values.
const styleCount = int(formula.StyleContains) + 1

// fieldDecodeFunc builds a field predicate from the parameters following the field tag.
type fieldDecodeFunc func(field formula.FieldID, params []any) (formula.BooleanNode, error)

// fieldDecodeTable selects the decoder by parameter count and field style.
// Every cell is populated.
var fieldDecodeTable = [maxFieldParameterCount + 1][styleCount]fieldDecodeFunc{
	0: {
		formula.StyleInRange:        decodeFieldNoParams,
		formula.StyleOverlaps:       decodeFieldNoParams,
		formula.StyleEquals:         decodeFieldNoParams,
		formula.StyleHasValueEquals: decodeFieldNoParams,
		formula.StyleContains:       decodeFieldNoParams,
	},
	1: {
		formula.StyleInRange:        decodeRangeOneParam,
		formula.StyleOverlaps:       decodeTextOneParam,
		formula.StyleEquals:         decodeEqualsOneParam,
		formula.StyleHasValueEquals: decodeTextOneParam,
		formula.StyleContains:       decodeTextOneParam,
	},
	2: {
		formula.StyleInRange:        decodeRangeTwoParams,
		formula.StyleOverlaps:       decodeTextTwoParams,
		formula.StyleEquals:         textOnly(decodeTextTwoParams),
		formula.StyleHasValueEquals: decodeTextTwoParams,
		formula.StyleContains:       decodeTextTwoParams,
	},
	3: {
		formula.StyleInRange:        decodeRangeThreeParams,
		formula.StyleOverlaps:       decodeTextThreeParams,
		formula.StyleEquals:         textOnly(decodeTextThreeParams),
		formula.StyleHasValueEquals: decodeTextThreeParams,
		formula.StyleContains:       decodeTextThreeParams,
	},
	4: {
		formula.StyleInRange:        parameterCountNotSupported,
		formula.StyleOverlaps:       decodeTextFourParams,
		formula.StyleEquals:         textOnly(decodeTextFourParams),
		formula.StyleHasValueEquals: decodeTextFourParams,
		formula.StyleContains:       decodeTextFourParams,
	},
}

// decodeFieldParams decodes the parameters of a field tuple.
func decodeFieldParams(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if len(params) > maxFieldParameterCount {
		return nil, newDecodeError(ErrorFieldBooleanNodeHasTooManyParameters, EncodeFieldID(field))
	}
	return fieldDecodeTable[len(params)][field.Style()](field, params)
}

func parameterCountNotSupported(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	return nil, newDecodeError(ErrorFieldBooleanNodeParameterCountNotSupported,
		fmt.Sprintf("%s: %d", EncodeFieldID(field), len(params)))
}

// textOnly rejects boolean fields, which accept at most one parameter.
func textOnly(decode fieldDecodeFunc) fieldDecodeFunc {
	return func(field formula.FieldID, params []any) (formula.BooleanNode, error) {
		if field.DataType() == formula.DataTypeBoolean {
			return parameterCountNotSupported(field, params)
		}
		return decode(field, params)
	}
}

func decodeFieldNoParams(field formula.FieldID, _ []any) (formula.BooleanNode, error) {
	switch {
	case field.IsSubbed():
		return nil, newDecodeError(ErrorSubFieldIsMissing, EncodeFieldID(field))
	case field.DataType() == formula.DataTypeBoolean:
		return formula.NewBooleanFieldEquals(field, true), nil
	default:
		return formula.NewFieldHasValue(field), nil
	}
}

func decodeEqualsOneParam(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if field.DataType() != formula.DataTypeBoolean {
		return decodeTextOneParam(field, params)
	}
	target, ok := params[0].(bool)
	if !ok {
		return nil, newDecodeError(ErrorBooleanFieldEqualsTargetIsNotBoolean, rawText(params[0]))
	}
	return formula.NewBooleanFieldEquals(field, target), nil
}

// Range fields: numeric and date, optionally subbed.

func decodeRangeOneParam(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if field.IsSubbed() {
		hasValue, _, err := decodeRangeSubField(field, params[0])
		return hasValue, err
	}
	return fieldRange(field).scalarOrNamed(params[0])
}

func decodeRangeTwoParams(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if field.IsSubbed() {
		_, dec, err := decodeRangeSubField(field, params[0])
		if err != nil {
			return nil, err
		}
		return dec.scalarOrNamed(params[1])
	}
	return fieldRange(field).positional(params[0], params[1])
}

func decodeRangeThreeParams(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if !field.IsSubbed() {
		return parameterCountNotSupported(field, params)
	}
	_, dec, err := decodeRangeSubField(field, params[0])
	if err != nil {
		return nil, err
	}
	return dec.positional(params[1], params[2])
}

// rangeDecoder builds equals or in-range predicates for one range target.
type rangeDecoder interface {
	scalarOrNamed(v any) (formula.BooleanNode, error)
	positional(min, max any) (formula.BooleanNode, error)
}

type rangeBuilder[T any] struct {
	decode     valueDecoder[T]
	equalsCode ErrorCode
	equals     func(v T) formula.BooleanNode
	inRange    func(min, max *T) formula.BooleanNode
}

// scalarOrNamed reads either an equals value or an At/Min/Max object.
func (b rangeBuilder[T]) scalarOrNamed(v any) (formula.BooleanNode, error) {
	if named, ok := v.(map[string]any); ok {
		r, err := decodeNamedRange(named, b.decode)
		if err != nil {
			return nil, err
		}
		return b.build(r), nil
	}
	value, err := b.decode(v, b.equalsCode)
	if err != nil {
		return nil, err
	}
	return b.equals(value), nil
}

func (b rangeBuilder[T]) positional(min, max any) (formula.BooleanNode, error) {
	r, err := decodePositionalRange(min, max, b.decode)
	if err != nil {
		return nil, err
	}
	return b.build(r), nil
}

func (b rangeBuilder[T]) build(r rangeResult[T]) formula.BooleanNode {
	if r.at != nil {
		return b.equals(*r.at)
	}
	return b.inRange(r.min, r.max)
}

func fieldRange(field formula.FieldID) rangeDecoder {
	switch field.DataType() {
	case formula.DataTypeNumeric:
		return rangeBuilder[float64]{
			decode:     decodeNumber,
			equalsCode: ErrorNumericFieldEqualsValueIsNotNumber,
			equals: func(v float64) formula.BooleanNode {
				return formula.NewNumericFieldEquals(field, v)
			},
			inRange: func(min, max *float64) formula.BooleanNode {
				return formula.NewNumericFieldInRange(field, min, max)
			},
		}
	case formula.DataTypeDate:
		return rangeBuilder[time.Time]{
			decode: decodeDate,
			equals: func(v time.Time) formula.BooleanNode {
				return formula.NewDateFieldEquals(field, v)
			},
			inRange: func(min, max *time.Time) formula.BooleanNode {
				return formula.NewDateFieldInRange(field, min, max)
			},
		}
	default:
		panic(fmt.Sprintf("zenith: field %v is not a range field", field))
	}
}

// decodeRangeSubField reads the sub-field tag of the price or date field
// and returns its has-value predicate and range decoder.
func decodeRangeSubField(field formula.FieldID, param any) (formula.BooleanNode, rangeDecoder, error) {
	tag, ok := param.(string)
	if !ok {
		return nil, nil, newDecodeError(ErrorSubFieldIsNotString, rawText(param))
	}
	switch field {
	case formula.FieldPriceSubbed:
		sub, ok := TryDecodePriceSubFieldID(tag)
		if !ok {
			return nil, nil, newDecodeError(ErrorUnknownPriceSubField, tag)
		}
		return formula.NewPriceSubFieldHasValue(sub), rangeBuilder[float64]{
			decode:     decodeNumber,
			equalsCode: ErrorNumericFieldEqualsValueIsNotNumber,
			equals: func(v float64) formula.BooleanNode {
				return formula.NewPriceSubFieldEquals(sub, v)
			},
			inRange: func(min, max *float64) formula.BooleanNode {
				return formula.NewPriceSubFieldInRange(sub, min, max)
			},
		}, nil
	case formula.FieldDateSubbed:
		sub, ok := TryDecodeDateSubFieldID(tag)
		if !ok {
			return nil, nil, newDecodeError(ErrorUnknownDateSubField, tag)
		}
		return formula.NewDateSubFieldHasValue(sub), rangeBuilder[time.Time]{
			decode: decodeDate,
			equals: func(v time.Time) formula.BooleanNode {
				return formula.NewDateSubFieldEquals(sub, v)
			},
			inRange: func(min, max *time.Time) formula.BooleanNode {
				return formula.NewDateSubFieldInRange(sub, min, max)
			},
		}, nil
	default:
		panic(fmt.Sprintf("zenith: field %v is not a subbed range field", field))
	}
}

// Text fields: contains-style predicates, optionally subbed.

type containsFunc func(tc formula.TextContains) formula.BooleanNode

func fieldContains(field formula.FieldID) containsFunc {
	return func(tc formula.TextContains) formula.BooleanNode {
		return formula.NewTextFieldContains(field, tc.Value, tc.As, tc.IgnoreCase)
	}
}

// decodeTextSubField reads the sub-field tag of the alternate code or
// attribute field and returns its has-value predicate and contains builder.
func decodeTextSubField(field formula.FieldID, param any) (formula.BooleanNode, containsFunc, error) {
	tag, ok := param.(string)
	if !ok {
		return nil, nil, newDecodeError(ErrorSubFieldIsNotString, rawText(param))
	}
	switch field {
	case formula.FieldAltCodeSubbed:
		sub, ok := TryDecodeAltCodeSubFieldID(tag)
		if !ok {
			return nil, nil, newDecodeError(ErrorUnknownAltCodeSubField, tag)
		}
		return formula.NewAltCodeSubFieldHasValue(sub), func(tc formula.TextContains) formula.BooleanNode {
			return formula.NewAltCodeSubFieldContains(sub, tc.Value, tc.As, tc.IgnoreCase)
		}, nil
	case formula.FieldAttributeSubbed:
		sub, ok := TryDecodeAttributeSubFieldID(tag)
		if !ok {
			return nil, nil, newDecodeError(ErrorUnknownAttributeSubField, tag)
		}
		return formula.NewAttributeSubFieldHasValue(sub), func(tc formula.TextContains) formula.BooleanNode {
			return formula.NewAttributeSubFieldContains(sub, tc.Value, tc.As, tc.IgnoreCase)
		}, nil
	default:
		panic(fmt.Sprintf("zenith: field %v is not a subbed text field", field))
	}
}

// textTarget splits off the sub-field parameter of subbed fields.
func textTarget(field formula.FieldID, params []any) (formula.BooleanNode, containsFunc, []any, error) {
	if !field.IsSubbed() {
		return nil, fieldContains(field), params, nil
	}
	hasValue, contains, err := decodeTextSubField(field, params[0])
	return hasValue, contains, params[1:], err
}

func decodeTextOneParam(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	hasValue, contains, rest, err := textTarget(field, params)
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return hasValue, nil
	}
	if _, ok := rest[0].(map[string]any); ok {
		return nil, newDecodeError(ErrorNamedParametersNotSupported, EncodeFieldID(field))
	}
	value, err := decodeTextValue(rest[0])
	if err != nil {
		return nil, err
	}
	return contains(formula.TextContains{Value: value}), nil
}

func decodeTextTwoParams(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	_, contains, rest, err := textTarget(field, params)
	if err != nil {
		return nil, err
	}
	value, err := decodeTextValue(rest[0])
	if err != nil {
		return nil, err
	}
	tc := formula.TextContains{Value: value}
	if len(rest) > 1 {
		if err := decodeTextOptions(rest[1], &tc); err != nil {
			return nil, err
		}
	}
	return contains(tc), nil
}

func decodeTextThreeParams(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if field.IsSubbed() {
		return decodeTextTwoParams(field, params)
	}
	return decodeTextPositional(fieldContains(field), params)
}

func decodeTextFourParams(field formula.FieldID, params []any) (formula.BooleanNode, error) {
	if !field.IsSubbed() {
		return parameterCountNotSupported(field, params)
	}
	_, contains, rest, err := textTarget(field, params)
	if err != nil {
		return nil, err
	}
	return decodeTextPositional(contains, rest)
}

// decodeTextPositional reads [value, As, IgnoreCase].
func decodeTextPositional(contains containsFunc, params []any) (formula.BooleanNode, error) {
	value, err := decodeTextValue(params[0])
	if err != nil {
		return nil, err
	}
	as, err := decodeTextAs(params[1])
	if err != nil {
		return nil, err
	}
	ignoreCase, err := decodeTextIgnoreCase(params[2])
	if err != nil {
		return nil, err
	}
	return contains(formula.TextContains{Value: value, As: as, IgnoreCase: ignoreCase}), nil
}

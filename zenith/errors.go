package zenith

import "strconv"

// ErrorCode identifies why a tuple failed to decode.
type ErrorCode int

const (
	ErrorInvalidJSON ErrorCode = iota
	ErrorBooleanTupleNodeIsNotAnArray
	ErrorBooleanTupleNodeArrayIsZeroLength
	ErrorBooleanTupleNodeTypeIsNotString
	ErrorUnknownBooleanTupleNodeType
	ErrorNumericTupleNodeIsNotAnArray
	ErrorNumericTupleNodeArrayIsZeroLength
	ErrorNumericTupleNodeTypeIsNotString
	ErrorUnknownNumericTupleNodeType
	ErrorBooleanOperandIsNotTupleNodeOrFieldTag
	ErrorUnknownFieldTag
	ErrorZeroOperandBooleanTupleNodeHasParameters
	ErrorSingleOperandLogicalBooleanDoesNotHaveOneOperand
	ErrorLeftRightOperandLogicalBooleanDoesNotHaveTwoOperands
	ErrorMultiOperandLogicalBooleanMissingOperands
	ErrorNumericComparisonDoesNotHaveTwoOperands
	ErrorUnaryArithmeticNumericTupleNodeRequiresOneOperand
	ErrorLeftRightArithmeticNumericTupleNodeRequiresTwoOperands
	ErrorNumericIfTupleNodeRequiresAtLeastThreeParameters
	ErrorNumericIfTupleNodeRequiresAnOddNumberOfParameters
	ErrorNumericOperandIsNotNumberFieldTagOrTupleNode
	ErrorUnknownNumericFieldTag
	ErrorFieldIsNotNumericRange
	ErrorFieldBooleanNodeHasTooManyParameters
	ErrorFieldBooleanNodeParameterCountNotSupported
	ErrorSubFieldIsMissing
	ErrorSubFieldIsNotString
	ErrorUnknownPriceSubField
	ErrorUnknownDateSubField
	ErrorUnknownAltCodeSubField
	ErrorUnknownAttributeSubField
	ErrorNamedParametersNotSupported
	ErrorNamedParametersHasUnknownKey
	ErrorRangeMinAndMaxAreBothUndefined
	ErrorRangeMinIsNotNumber
	ErrorRangeMaxIsNotNumber
	ErrorRangeAtIsNotNumber
	ErrorNumericFieldEqualsValueIsNotNumber
	ErrorDateValueIsNotString
	ErrorDateValueIsNotValidIso8601
	ErrorBooleanFieldEqualsTargetIsNotBoolean
	ErrorTextFieldContainsValueIsNotString
	ErrorTextFieldContainsAsIsNotString
	ErrorTextFieldContainsAsHasUnknownValue
	ErrorTextFieldContainsIgnoreCaseIsNotBoolean
	ErrorTextFieldContainsParameterIsNotAsOrNamedParameters

	errorCodeCount
)

var errorCodeNames = [errorCodeCount]string{
	ErrorInvalidJSON:                                            "InvalidJson",
	ErrorBooleanTupleNodeIsNotAnArray:                           "BooleanTupleNodeIsNotAnArray",
	ErrorBooleanTupleNodeArrayIsZeroLength:                      "BooleanTupleNodeArrayIsZeroLength",
	ErrorBooleanTupleNodeTypeIsNotString:                        "BooleanTupleNodeTypeIsNotString",
	ErrorUnknownBooleanTupleNodeType:                            "UnknownBooleanTupleNodeType",
	ErrorNumericTupleNodeIsNotAnArray:                           "NumericTupleNodeIsNotAnArray",
	ErrorNumericTupleNodeArrayIsZeroLength:                      "NumericTupleNodeArrayIsZeroLength",
	ErrorNumericTupleNodeTypeIsNotString:                        "NumericTupleNodeTypeIsNotString",
	ErrorUnknownNumericTupleNodeType:                            "UnknownNumericTupleNodeType",
	ErrorBooleanOperandIsNotTupleNodeOrFieldTag:                 "BooleanOperandIsNotTupleNodeOrFieldTag",
	ErrorUnknownFieldTag:                                        "UnknownFieldTag",
	ErrorZeroOperandBooleanTupleNodeHasParameters:               "ZeroOperandBooleanTupleNodeHasParameters",
	ErrorSingleOperandLogicalBooleanDoesNotHaveOneOperand:       "SingleOperandLogicalBooleanDoesNotHaveOneOperand",
	ErrorLeftRightOperandLogicalBooleanDoesNotHaveTwoOperands:   "LeftRightOperandLogicalBooleanDoesNotHaveTwoOperands",
	ErrorMultiOperandLogicalBooleanMissingOperands:              "MultiOperandLogicalBooleanMissingOperands",
	ErrorNumericComparisonDoesNotHaveTwoOperands:                "NumericComparisonDoesNotHaveTwoOperands",
	ErrorUnaryArithmeticNumericTupleNodeRequiresOneOperand:      "UnaryArithmeticNumericTupleNodeRequiresOneOperand",
	ErrorLeftRightArithmeticNumericTupleNodeRequiresTwoOperands: "LeftRightArithmeticNumericTupleNodeRequiresTwoOperands",
	ErrorNumericIfTupleNodeRequiresAtLeastThreeParameters:       "NumericIfTupleNodeRequiresAtLeastThreeParameters",
	ErrorNumericIfTupleNodeRequiresAnOddNumberOfParameters:      "NumericIfTupleNodeRequiresAnOddNumberOfParameters",
	ErrorNumericOperandIsNotNumberFieldTagOrTupleNode:           "NumericOperandIsNotNumberFieldTagOrTupleNode",
	ErrorUnknownNumericFieldTag:                                 "UnknownNumericFieldTag",
	ErrorFieldIsNotNumericRange:                                 "FieldIsNotNumericRange",
	ErrorFieldBooleanNodeHasTooManyParameters:                   "FieldBooleanNodeHasTooManyParameters",
	ErrorFieldBooleanNodeParameterCountNotSupported:             "FieldBooleanNodeParameterCountNotSupported",
	ErrorSubFieldIsMissing:                                      "SubFieldIsMissing",
	ErrorSubFieldIsNotString:                                    "SubFieldIsNotString",
	ErrorUnknownPriceSubField:                                   "UnknownPriceSubField",
	ErrorUnknownDateSubField:                                    "UnknownDateSubField",
	ErrorUnknownAltCodeSubField:                                 "UnknownAltCodeSubField",
	ErrorUnknownAttributeSubField:                               "UnknownAttributeSubField",
	ErrorNamedParametersNotSupported:                            "NamedParametersNotSupported",
	ErrorNamedParametersHasUnknownKey:                           "NamedParametersHasUnknownKey",
	ErrorRangeMinAndMaxAreBothUndefined:                         "RangeMinAndMaxAreBothUndefined",
	ErrorRangeMinIsNotNumber:                                    "RangeMinIsNotNumber",
	ErrorRangeMaxIsNotNumber:                                    "RangeMaxIsNotNumber",
	ErrorRangeAtIsNotNumber:                                     "RangeAtIsNotNumber",
	ErrorNumericFieldEqualsValueIsNotNumber:                     "NumericFieldEqualsValueIsNotNumber",
	ErrorDateValueIsNotString:                                   "DateValueIsNotString",
	ErrorDateValueIsNotValidIso8601:                             "DateValueIsNotValidIso8601",
	ErrorBooleanFieldEqualsTargetIsNotBoolean:                   "BooleanFieldEqualsTargetIsNotBoolean",
	ErrorTextFieldContainsValueIsNotString:                      "TextFieldContainsValueIsNotString",
	ErrorTextFieldContainsAsIsNotString:                         "TextFieldContainsAsIsNotString",
	ErrorTextFieldContainsAsHasUnknownValue:                     "TextFieldContainsAsHasUnknownValue",
	ErrorTextFieldContainsIgnoreCaseIsNotBoolean:                "TextFieldContainsIgnoreCaseIsNotBoolean",
	ErrorTextFieldContainsParameterIsNotAsOrNamedParameters:     "TextFieldContainsParameterIsNotAsOrNamedParameters",
}

func (c ErrorCode) String() string {
	if c < 0 || c >= errorCodeCount {
		return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
	}
	return errorCodeNames[c]
}

// DecodeError describes the first problem found while decoding a tuple.
// ExtraText usually holds the offending raw value.
type DecodeError struct {
	Code      ErrorCode
	ExtraText string
}

func (e *DecodeError) Error() string {
	if e.ExtraText == "" {
		return "zenith: " + e.Code.String()
	}
	return "zenith: " + e.Code.String() + ": " + e.ExtraText
}

// Is reports whether target is a *DecodeError with the same code.
// It lets callers write errors.Is(err, &zenith.DecodeError{Code: ...}).
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Code == e.Code
}

func newDecodeError(code ErrorCode, extra string) error {
	return &DecodeError{Code: code, ExtraText: extra}
}

package zenith

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hugr-lab/zenith-scan/formula"
)

func decodeCode(t *testing.T, err error) ErrorCode {
	t.Helper()
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	return de.Code
}

func TestDecodeTextScalarDefaults(t *testing.T) {
	node, _, err := DecodeBoolean([]any{"code", "ABC"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	contains, ok := node.(*formula.TextFieldContainsNode)
	if !ok {
		t.Fatalf("expected *TextFieldContainsNode, got %T", node)
	}
	if contains.FieldID != formula.FieldCode || contains.Value != "ABC" ||
		contains.As != formula.TextContainsAsNone || contains.IgnoreCase {
		t.Errorf("unexpected node %+v", contains)
	}
}

func TestDecodeAndWithRange(t *testing.T) {
	var tuple any
	if err := json.Unmarshal([]byte(`["and", ["code"], ["volume", {"Min": 100}]]`), &tuple); err != nil {
		t.Fatal(err)
	}
	node, progress, err := DecodeBoolean(tuple)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := formula.NewAnd(
		formula.NewFieldHasValue(formula.FieldCode),
		formula.NewNumericFieldInRange(formula.FieldVolume, ptr(100.0), nil),
	)
	if !formula.Equal(want, node) {
		t.Errorf("got %#v", node)
	}
	if progress.TupleNodeCount() != 3 {
		t.Errorf("expected 3 tuple nodes, got %d", progress.TupleNodeCount())
	}
	nodes := progress.DecodedNodes()
	if nodes[0].TupleNodeType != "and" || nodes[0].TupleNodeDepth != 0 || nodes[0].NodeTypeID != formula.NodeAnd {
		t.Errorf("unexpected root entry %+v", nodes[0])
	}
	if nodes[2].TupleNodeType != "volume" || nodes[2].TupleNodeDepth != 1 || nodes[2].NodeTypeID != formula.NodeNumericFieldInRange {
		t.Errorf("unexpected range entry %+v", nodes[2])
	}
}

func TestDecodeNumericWithFieldTag(t *testing.T) {
	node, _, err := DecodeNumeric([]any{"add", []any{"neg", 5}, "bestBidPrice"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := formula.NewNumericAdd(
		formula.NumericExpression(formula.NewNumericNeg(formula.NumericLiteral(5))),
		formula.NumericExpression(formula.NewNumericFieldValueGet(formula.FieldBestBidPrice)),
	)
	if !formula.Equal(want, node) {
		t.Errorf("got %#v", node)
	}
}

func TestDecodeRangeVariants(t *testing.T) {
	tests := []struct {
		name  string
		tuple []any
		want  formula.BooleanNode
	}{
		{"min only", []any{"volume", map[string]any{"Min": 1.0}}, formula.NewNumericFieldInRange(formula.FieldVolume, ptr(1.0), nil)},
		{"max only", []any{"volume", map[string]any{"Max": 2}}, formula.NewNumericFieldInRange(formula.FieldVolume, nil, ptr(2.0))},
		{"at wins", []any{"volume", map[string]any{"At": 3, "Min": 1, "Max": 9}}, formula.NewNumericFieldEquals(formula.FieldVolume, 3)},
		{"scalar", []any{"volume", int64(7)}, formula.NewNumericFieldEquals(formula.FieldVolume, 7)},
		{"positional", []any{"volume", nil, 5.0}, formula.NewNumericFieldInRange(formula.FieldVolume, nil, ptr(5.0))},
		{"date scalar", []any{"expiryDate", "2024-03-01T00:00:00Z"}, formula.NewDateFieldEquals(formula.FieldExpiryDate, march1)},
		{"date named", []any{"expiryDate", map[string]any{"Min": "2024-03-01T00:00:00Z"}}, formula.NewDateFieldInRange(formula.FieldExpiryDate, &march1, nil)},
		{"date expanded year", []any{"expiryDate", "+10000-01-01T00:00:00Z"}, formula.NewDateFieldEquals(formula.FieldExpiryDate, year10000)},
		{"date negative year", []any{"expiryDate", "-00044-03-15T09:30:00+01:00"}, formula.NewDateFieldEquals(formula.FieldExpiryDate, yearMinus)},
		{"price sub", []any{"price", "Last"}, formula.NewPriceSubFieldHasValue(formula.PriceSubFieldLast)},
		{"price sub equals", []any{"price", "Open", 4.5}, formula.NewPriceSubFieldEquals(formula.PriceSubFieldOpen, 4.5)},
		{"price sub at", []any{"price", "Open", map[string]any{"At": 4.5}}, formula.NewPriceSubFieldEquals(formula.PriceSubFieldOpen, 4.5)},
		{"price sub positional", []any{"price", "High", 1.0, nil}, formula.NewPriceSubFieldInRange(formula.PriceSubFieldHigh, ptr(1.0), nil)},
		{"date sub positional", []any{"date", "Expiry", nil, "2024-03-01T00:00:00Z"}, formula.NewDateSubFieldInRange(formula.DateSubFieldExpiry, nil, &march1)},
		{"json number", []any{"volume", json.Number("12.5")}, formula.NewNumericFieldEquals(formula.FieldVolume, 12.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, _, err := DecodeBoolean(tt.tuple)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !formula.Equal(tt.want, node) {
				t.Errorf("got %#v, want %#v", node, tt.want)
			}
		})
	}
}

func TestDecodeTextVariants(t *testing.T) {
	tests := []struct {
		name  string
		tuple []any
		want  formula.BooleanNode
	}{
		{"as string", []any{"name", "bhp", "FromStart"}, formula.NewTextFieldContains(formula.FieldName, "bhp", formula.TextContainsAsFromStart, false)},
		{"named", []any{"name", "bhp", map[string]any{"IgnoreCase": true}}, formula.NewTextFieldContains(formula.FieldName, "bhp", formula.TextContainsAsNone, true)},
		{"positional", []any{"market", "asx", "Exact", true}, formula.NewTextFieldContains(formula.FieldMarket, "asx", formula.TextContainsAsExact, true)},
		{"has value equals", []any{"currency", "AUD"}, formula.NewTextFieldContains(formula.FieldCurrency, "AUD", formula.TextContainsAsNone, false)},
		{"alt code sub", []any{"altCode", "RIC"}, formula.NewAltCodeSubFieldHasValue(formula.AltCodeSubFieldRic)},
		{"alt code value", []any{"altCode", "Gics", "x"}, nil},
		{"attribute named", []any{"attribute", "Sector", "Mining", map[string]any{"As": "FromEnd"}}, formula.NewAttributeSubFieldContains(formula.AttributeSubFieldSector, "Mining", formula.TextContainsAsFromEnd, false)},
		{"attribute as", []any{"attribute", "Class", "A", "Exact"}, formula.NewAttributeSubFieldContains(formula.AttributeSubFieldClass, "A", formula.TextContainsAsExact, false)},
		{"attribute positional", []any{"attribute", "Class", "A", "Exact", true}, formula.NewAttributeSubFieldContains(formula.AttributeSubFieldClass, "A", formula.TextContainsAsExact, true)},
		{"boolean sugar", []any{"isIndex"}, formula.NewBooleanFieldEquals(formula.FieldIsIndex, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, _, err := DecodeBoolean(tt.tuple)
			if tt.want == nil {
				if code := decodeCode(t, err); code != ErrorUnknownAltCodeSubField {
					t.Errorf("expected UnknownAltCodeSubField, got %v", code)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !formula.Equal(tt.want, node) {
				t.Errorf("got %#v, want %#v", node, tt.want)
			}
		})
	}
}

func TestDecodeBareFieldOperand(t *testing.T) {
	node, progress, err := DecodeBoolean([]any{"or", "code", "isIndex"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := formula.NewOr(formula.NewFieldHasValue(formula.FieldCode), formula.NewBooleanFieldEquals(formula.FieldIsIndex, true))
	if !formula.Equal(want, node) {
		t.Errorf("got %#v", node)
	}
	if progress.TupleNodeCount() != 1 {
		t.Errorf("bare tags must not be recorded as tuple nodes, got %d", progress.TupleNodeCount())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		tuple any
		want  ErrorCode
	}{
		{"not array", "code", ErrorBooleanTupleNodeIsNotAnArray},
		{"empty", []any{}, ErrorBooleanTupleNodeArrayIsZeroLength},
		{"tag not string", []any{1.0}, ErrorBooleanTupleNodeTypeIsNotString},
		{"unknown tag", []any{"nope"}, ErrorUnknownBooleanTupleNodeType},
		{"operand kind", []any{"not", 1.0}, ErrorBooleanOperandIsNotTupleNodeOrFieldTag},
		{"operand tag", []any{"not", "nope"}, ErrorUnknownFieldTag},
		{"all with params", []any{"all", []any{"none"}}, ErrorZeroOperandBooleanTupleNodeHasParameters},
		{"not arity", []any{"not"}, ErrorSingleOperandLogicalBooleanDoesNotHaveOneOperand},
		{"xor arity", []any{"xor", []any{"all"}}, ErrorLeftRightOperandLogicalBooleanDoesNotHaveTwoOperands},
		{"and empty", []any{"and"}, ErrorMultiOperandLogicalBooleanMissingOperands},
		{"comparison arity", []any{">", 1.0}, ErrorNumericComparisonDoesNotHaveTwoOperands},
		{"numeric operand kind", []any{">", true, 1.0}, ErrorNumericOperandIsNotNumberFieldTagOrTupleNode},
		{"numeric operand tag", []any{">", "nope", 1.0}, ErrorUnknownNumericFieldTag},
		{"numeric operand text field", []any{">", "code", 1.0}, ErrorFieldIsNotNumericRange},
		{"numeric operand subbed field", []any{">", "price", 1.0}, ErrorFieldIsNotNumericRange},
		{"nested numeric not array", []any{">", map[string]any{}, 1.0}, ErrorNumericOperandIsNotNumberFieldTagOrTupleNode},
		{"nested numeric empty", []any{">", []any{}, 1.0}, ErrorNumericTupleNodeArrayIsZeroLength},
		{"nested numeric tag", []any{">", []any{2.0}, 1.0}, ErrorNumericTupleNodeTypeIsNotString},
		{"nested numeric unknown", []any{">", []any{"pow", 2.0}, 1.0}, ErrorUnknownNumericTupleNodeType},
		{"subbed missing", []any{"price"}, ErrorSubFieldIsMissing},
		{"sub not string", []any{"price", 1.0}, ErrorSubFieldIsNotString},
		{"unknown price sub", []any{"price", "Mid"}, ErrorUnknownPriceSubField},
		{"unknown date sub", []any{"date", "Birthday"}, ErrorUnknownDateSubField},
		{"unknown attribute sub", []any{"attribute", "Colour"}, ErrorUnknownAttributeSubField},
		{"text named single", []any{"code", map[string]any{"As": "Exact"}}, ErrorNamedParametersNotSupported},
		{"unknown key", []any{"volume", map[string]any{"Minimum": 1.0}}, ErrorNamedParametersHasUnknownKey},
		{"range empty", []any{"volume", map[string]any{}}, ErrorRangeMinAndMaxAreBothUndefined},
		{"range nulls", []any{"volume", nil, nil}, ErrorRangeMinAndMaxAreBothUndefined},
		{"range min", []any{"volume", map[string]any{"Min": "1"}}, ErrorRangeMinIsNotNumber},
		{"range max", []any{"volume", 1.0, "2"}, ErrorRangeMaxIsNotNumber},
		{"range at", []any{"volume", map[string]any{"At": false}}, ErrorRangeAtIsNotNumber},
		{"equals value", []any{"volume", "10"}, ErrorNumericFieldEqualsValueIsNotNumber},
		{"date not string", []any{"expiryDate", 20240301.0}, ErrorDateValueIsNotString},
		{"date invalid", []any{"expiryDate", "01/03/2024"}, ErrorDateValueIsNotValidIso8601},
		{"date expanded leap day", []any{"expiryDate", "+10001-02-29T00:00:00Z"}, ErrorDateValueIsNotValidIso8601},
		{"date expanded short year", []any{"expiryDate", "+100-01-01T00:00:00Z"}, ErrorDateValueIsNotValidIso8601},
		{"boolean target", []any{"isIndex", "yes"}, ErrorBooleanFieldEqualsTargetIsNotBoolean},
		{"boolean arity", []any{"isIndex", true, true}, ErrorFieldBooleanNodeParameterCountNotSupported},
		{"range arity", []any{"volume", 1.0, 2.0, 3.0}, ErrorFieldBooleanNodeParameterCountNotSupported},
		{"text arity", []any{"code", "a", "None", false, 1.0, 2.0}, ErrorFieldBooleanNodeHasTooManyParameters},
		{"text four", []any{"code", "a", "None", false, true}, ErrorFieldBooleanNodeParameterCountNotSupported},
		{"text value", []any{"code", 1.0, "None"}, ErrorTextFieldContainsValueIsNotString},
		{"text as kind", []any{"code", "a", map[string]any{"As": 1.0}}, ErrorTextFieldContainsAsIsNotString},
		{"text as value", []any{"code", "a", "Middle"}, ErrorTextFieldContainsAsHasUnknownValue},
		{"text ignore case", []any{"code", "a", "None", "yes"}, ErrorTextFieldContainsIgnoreCaseIsNotBoolean},
		{"text option kind", []any{"code", "a", 1.0}, ErrorTextFieldContainsParameterIsNotAsOrNamedParameters},
		{"if short", []any{"=", []any{"if", []any{"all"}, 1.0}, 1.0}, ErrorNumericIfTupleNodeRequiresAtLeastThreeParameters},
		{"if even", []any{"=", []any{"if", []any{"all"}, 1.0, []any{"none"}, 2.0}, 1.0}, ErrorNumericIfTupleNodeRequiresAnOddNumberOfParameters},
		{"unary arity", []any{"=", []any{"neg"}, 1.0}, ErrorUnaryArithmeticNumericTupleNodeRequiresOneOperand},
		{"binary arity", []any{"=", []any{"add", 1.0}, 1.0}, ErrorLeftRightArithmeticNumericTupleNodeRequiresTwoOperands},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, progress, err := DecodeBoolean(tt.tuple)
			if node != nil {
				t.Errorf("expected nil node on failure, got %#v", node)
			}
			if progress == nil {
				t.Fatal("expected progress on failure")
			}
			if code := decodeCode(t, err); code != tt.want {
				t.Errorf("got %v (%v), want %v", code, err, tt.want)
			}
		})
	}
}

func TestDecodeNumericErrors(t *testing.T) {
	tests := []struct {
		name  string
		tuple any
		want  ErrorCode
	}{
		{"not array", 5.0, ErrorNumericTupleNodeIsNotAnArray},
		{"unknown", []any{"and", []any{"all"}}, ErrorUnknownNumericTupleNodeType},
		{"bare unknown", "nope", ErrorUnknownNumericFieldTag},
		{"bare date", "expiryDate", ErrorFieldIsNotNumericRange},
		{"if condition", []any{"if", 1.0, 2.0, 3.0}, ErrorBooleanOperandIsNotTupleNodeOrFieldTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeNumeric(tt.tuple)
			if code := decodeCode(t, err); code != tt.want {
				t.Errorf("got %v, want %v", code, tt.want)
			}
		})
	}
}

func TestTooManyParametersForEveryField(t *testing.T) {
	for _, field := range formula.Fields() {
		tuple := []any{EncodeFieldID(field), 1.0, 2.0, 3.0, 4.0, 5.0}
		_, _, err := DecodeBoolean(tuple)
		if code := decodeCode(t, err); code != ErrorFieldBooleanNodeHasTooManyParameters {
			t.Errorf("%v: got %v", field, code)
		}
	}
}

func TestFieldDecodeTableIsTotal(t *testing.T) {
	if styleCount != len(formula.Styles()) {
		t.Fatalf("styleCount %d does not match %d styles", styleCount, len(formula.Styles()))
	}
	for arity := range fieldDecodeTable {
		for _, style := range formula.Styles() {
			if fieldDecodeTable[arity][style] == nil {
				t.Errorf("no decoder for arity %d style %v", arity, style)
			}
		}
	}
}

// Every field and arity must either decode or fail with a DecodeError.
func TestFieldDecodeNeverPanics(t *testing.T) {
	params := [][]any{
		{},
		{"x"},
		{"x", "y"},
		{1.0, 2.0, 3.0},
		{"Last", "v", "None", true},
	}
	for _, field := range formula.Fields() {
		for _, p := range params {
			tuple := append([]any{EncodeFieldID(field)}, p...)
			node, _, err := DecodeBoolean(tuple)
			if err == nil && node == nil {
				t.Errorf("%v: nil node without error for %v", field, tuple)
			}
			if err != nil {
				decodeCode(t, err)
			}
		}
	}
}

func TestProgressOnFailure(t *testing.T) {
	tuple := []any{"and", []any{"code"}, []any{"not", []any{"volume", map[string]any{}}}}
	_, progress, err := DecodeBoolean(tuple)
	if code := decodeCode(t, err); code != ErrorRangeMinAndMaxAreBothUndefined {
		t.Fatalf("unexpected code %v", code)
	}

	failed, ok := progress.Failed()
	if !ok {
		t.Fatal("expected a failed node")
	}
	if failed.TupleNodeType != "volume" || failed.TupleNodeDepth != 2 || failed.Resolved {
		t.Errorf("unexpected failed node %+v", failed)
	}
	nodes := progress.DecodedNodes()
	if len(nodes) != 4 {
		t.Fatalf("expected 4 entered nodes, got %d", len(nodes))
	}
	if !nodes[1].Resolved || nodes[1].NodeTypeID != formula.NodeFieldHasValue {
		t.Errorf("expected code node resolved, got %+v", nodes[1])
	}
	if nodes[0].Resolved || nodes[2].Resolved {
		t.Error("ancestors of the failing node must stay unresolved")
	}
	if progress.TupleNodeDepth() != 3 {
		t.Errorf("expected depth 3, got %d", progress.TupleNodeDepth())
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, progress, err := ParseBoolean([]byte(`["and", `))
	if code := decodeCode(t, err); code != ErrorInvalidJSON {
		t.Errorf("got %v", code)
	}
	if progress == nil {
		t.Fatal("expected an empty progress trail")
	}
	if progress.TupleNodeCount() != 0 || len(progress.DecodedNodes()) != 0 {
		t.Errorf("expected empty trail, got %+v", progress.DecodedNodes())
	}
	if _, failed := progress.Failed(); failed {
		t.Error("expected no failed node")
	}

	_, progress, err = ParseNumeric([]byte(`{"add"`))
	if code := decodeCode(t, err); code != ErrorInvalidJSON {
		t.Errorf("got %v", code)
	}
	if progress == nil || progress.TupleNodeCount() != 0 {
		t.Errorf("expected empty numeric trail, got %+v", progress)
	}
}

func TestDecodeErrorMatching(t *testing.T) {
	_, _, err := DecodeBoolean([]any{"nope"})
	if !errors.Is(err, &DecodeError{Code: ErrorUnknownBooleanTupleNodeType}) {
		t.Errorf("expected errors.Is to match on code, got %v", err)
	}
	if errors.Is(err, &DecodeError{Code: ErrorUnknownFieldTag}) {
		t.Error("expected different codes not to match")
	}
	if got := err.Error(); got != "zenith: UnknownBooleanTupleNodeType: nope" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrorCodeNames(t *testing.T) {
	for c := ErrorCode(0); c < errorCodeCount; c++ {
		if errorCodeNames[c] == "" {
			t.Errorf("error code %d has no name", c)
		}
	}
	if got := ErrorCode(-1).String(); got != "ErrorCode(-1)" {
		t.Errorf("unexpected out of range name %q", got)
	}
}

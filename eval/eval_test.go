package eval

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hugr-lab/zenith-scan/formula"
)

func ptr[T any](v T) *T { return &v }

func get(f formula.FieldID) formula.NumericOperand {
	return formula.NumericExpression(formula.NewNumericFieldValueGet(f))
}

var june27 = time.Date(2024, 6, 27, 0, 0, 0, 0, time.UTC)

// symbolRecord builds the test symbol table:
//
//	code  name               is_index volume last_price previous_close expiry_date lot_size price_last alt_code_isin
//	BHP   BHP Group          false    1500   45.10      44.00          null        100      45.10      AU000000BHP4
//	CBA   Commonwealth Bank  false    800    110.00     112.50         null        100      110.00     AU000000CBA7
//	XJO   ASX 200 Index      true     null   7800       7790           null        null     null       null
//	BHPO  BHP Option         false    20     null       1.25           2024-06-27  0        null       null
func symbolRecord(t *testing.T, mem memory.Allocator) arrow.Record {
	t.Helper()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "code", Type: arrow.BinaryTypes.String},
		{Name: "name", Type: arrow.BinaryTypes.LargeString},
		{Name: "is_index", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "volume", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "last_price", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "previous_close", Type: arrow.PrimitiveTypes.Float32},
		{Name: "expiry_date", Type: &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}, Nullable: true},
		{Name: "lot_size", Type: arrow.PrimitiveTypes.Uint64, Nullable: true},
		{Name: "price_last", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "alt_code_isin", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "date_listing", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	b.Field(0).(*array.StringBuilder).AppendValues([]string{"BHP", "CBA", "XJO", "BHPO"}, nil)
	b.Field(1).(*array.LargeStringBuilder).AppendValues([]string{"BHP Group", "Commonwealth Bank", "ASX 200 Index", "BHP Option"}, nil)
	b.Field(2).(*array.BooleanBuilder).AppendValues([]bool{false, false, true, false}, nil)
	b.Field(3).(*array.Int64Builder).AppendValues([]int64{1500, 800, 0, 20}, []bool{true, true, false, true})
	b.Field(4).(*array.Float64Builder).AppendValues([]float64{45.10, 110.00, 7800, 0}, []bool{true, true, true, false})
	b.Field(5).(*array.Float32Builder).AppendValues([]float32{44.00, 112.50, 7790, 1.25}, nil)
	b.Field(6).(*array.TimestampBuilder).AppendValues(
		[]arrow.Timestamp{0, 0, 0, arrow.Timestamp(june27.UnixMicro())},
		[]bool{false, false, false, true},
	)
	b.Field(7).(*array.Uint64Builder).AppendValues([]uint64{100, 100, 0, 0}, []bool{true, true, false, true})
	b.Field(8).(*array.Float64Builder).AppendValues([]float64{45.10, 110.00, 0, 0}, []bool{true, true, false, false})
	b.Field(9).(*array.StringBuilder).AppendValues([]string{"AU000000BHP4", "AU000000CBA7", "", ""}, []bool{true, true, false, false})
	b.Field(10).(*array.Date32Builder).AppendValues(
		[]arrow.Date32{arrow.Date32FromTime(time.Date(1885, 8, 13, 0, 0, 0, 0, time.UTC)), 0, 0, 0},
		[]bool{true, false, false, false},
	)

	return b.NewRecord()
}

func newEvaluator(t *testing.T) *Evaluator {
	t.Helper()

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	rec := symbolRecord(t, mem)
	t.Cleanup(func() {
		rec.Release()
		mem.AssertSize(t, 0)
	})

	ev, err := New(rec, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return ev
}

func codes(rows []int) []string {
	all := []string{"BHP", "CBA", "XJO", "BHPO"}
	var out []string
	for _, r := range rows {
		out = append(out, all[r])
	}
	return out
}

func TestSelect(t *testing.T) {
	ev := newEvaluator(t)
	june30 := time.Date(2024, 6, 30, 10, 0, 0, 0, time.FixedZone("", 10*3600))

	tests := []struct {
		name     string
		node     formula.BooleanNode
		expected []string
	}{
		{"all", formula.NewAll(), []string{"BHP", "CBA", "XJO", "BHPO"}},
		{"none", formula.NewNone(), nil},
		{"volume range", formula.NewNumericFieldInRange(formula.FieldVolume, ptr(100.0), nil), []string{"BHP", "CBA"}},
		{"volume equals", formula.NewNumericFieldEquals(formula.FieldVolume, 20), []string{"BHPO"}},
		{"code prefix", formula.NewTextFieldContains(formula.FieldCode, "bhp", formula.TextContainsAsFromStart, true), []string{"BHP", "BHPO"}},
		{"code prefix case sensitive", formula.NewTextFieldContains(formula.FieldCode, "bhp", formula.TextContainsAsFromStart, false), nil},
		{"name contains", formula.NewTextFieldContains(formula.FieldName, "Bank", formula.TextContainsAsNone, false), []string{"CBA"}},
		{"name suffix", formula.NewTextFieldContains(formula.FieldName, "INDEX", formula.TextContainsAsFromEnd, true), []string{"XJO"}},
		{"code exact", formula.NewTextFieldContains(formula.FieldCode, "BHP", formula.TextContainsAsExact, false), []string{"BHP"}},
		{"index", formula.NewBooleanFieldEquals(formula.FieldIsIndex, true), []string{"XJO"}},
		{"not index", formula.NewBooleanFieldEquals(formula.FieldIsIndex, false), []string{"BHP", "CBA", "BHPO"}},
		{"not over null", formula.NewNot(formula.NewNumericFieldInRange(formula.FieldVolume, ptr(100.0), nil)), []string{"XJO", "BHPO"}},
		{"rising", formula.NewNumericGreaterThan(get(formula.FieldLastPrice), get(formula.FieldPreviousClose)), []string{"BHP", "XJO"}},
		{"expiry before", formula.NewDateFieldInRange(formula.FieldExpiryDate, nil, &june30), []string{"BHPO"}},
		{"expiry equals", formula.NewDateFieldEquals(formula.FieldExpiryDate, june27.In(time.FixedZone("", -5*3600))), []string{"BHPO"}},
		{"listing date32", formula.NewDateSubFieldInRange(formula.DateSubFieldListing, nil, &june30), []string{"BHP"}},
		{"isin", formula.NewAltCodeSubFieldContains(formula.AltCodeSubFieldIsin, "AU", formula.TextContainsAsFromStart, false), []string{"BHP", "CBA"}},
		{"isin has value", formula.NewAltCodeSubFieldHasValue(formula.AltCodeSubFieldIsin), []string{"BHP", "CBA"}},
		{"price has value", formula.NewPriceSubFieldHasValue(formula.PriceSubFieldLast), []string{"BHP", "CBA"}},
		{"price range", formula.NewPriceSubFieldInRange(formula.PriceSubFieldLast, ptr(100.0), ptr(200.0)), []string{"CBA"}},
		{"price equals", formula.NewPriceSubFieldEquals(formula.PriceSubFieldLast, 45.10), []string{"BHP"}},
		{"lot size uint64", formula.NewNumericFieldInRange(formula.FieldLotSize, nil, ptr(50.0)), []string{"BHPO"}},
		{"has value", formula.NewFieldHasValue(formula.FieldExpiryDate), []string{"BHPO"}},
		{"and", formula.NewAnd(
			formula.NewFieldHasValue(formula.FieldVolume),
			formula.NewTextFieldContains(formula.FieldName, "bhp", formula.TextContainsAsNone, true),
		), []string{"BHP", "BHPO"}},
		{"empty and", formula.NewAnd(), []string{"BHP", "CBA", "XJO", "BHPO"}},
		{"or", formula.NewOr(
			formula.NewBooleanFieldEquals(formula.FieldIsIndex, true),
			formula.NewNumericFieldEquals(formula.FieldVolume, 800),
		), []string{"CBA", "XJO"}},
		{"empty or", formula.NewOr(), nil},
		{"xor", formula.NewXor(
			formula.NewFieldHasValue(formula.FieldVolume),
			formula.NewFieldHasValue(formula.FieldLastPrice),
		), []string{"XJO", "BHPO"}},
		{"div by zero never equal", formula.NewNumericEquals(
			formula.NumericExpression(formula.NewNumericDiv(get(formula.FieldVolume), formula.NumericLiteral(0))),
			formula.NumericLiteral(0),
		), nil},
		{"if", formula.NewNumericLessThan(
			formula.NumericExpression(formula.NewNumericIf(
				[]formula.NumericIfArm{{Condition: formula.NewFieldHasValue(formula.FieldLastPrice), Value: get(formula.FieldLastPrice)}},
				get(formula.FieldPreviousClose),
			)),
			formula.NumericLiteral(50),
		), []string{"BHP", "BHPO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ev.Select(tt.node)
			if err != nil {
				t.Fatalf("Select failed: %v", err)
			}
			if got := codes(rows); !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestValue(t *testing.T) {
	ev := newEvaluator(t)

	tests := []struct {
		name   string
		node   formula.NumericNode
		values []float64
		valid  []bool
	}{
		{"field", formula.NewNumericFieldValueGet(formula.FieldVolume),
			[]float64{1500, 800, 0, 20}, []bool{true, true, false, true}},
		{"neg", formula.NewNumericNeg(get(formula.FieldVolume)),
			[]float64{-1500, -800, 0, -20}, []bool{true, true, false, true}},
		{"pos", formula.NewNumericPos(formula.NumericLiteral(-2)),
			[]float64{-2, -2, -2, -2}, []bool{true, true, true, true}},
		{"abs", formula.NewNumericAbs(formula.NumericExpression(formula.NewNumericSub(formula.NumericLiteral(0), get(formula.FieldVolume)))),
			[]float64{1500, 800, 0, 20}, []bool{true, true, false, true}},
		{"mul", formula.NewNumericMul(get(formula.FieldVolume), formula.NumericLiteral(2)),
			[]float64{3000, 1600, 0, 40}, []bool{true, true, false, true}},
		{"div", formula.NewNumericDiv(get(formula.FieldVolume), get(formula.FieldLotSize)),
			[]float64{15, 8, 0, 0}, []bool{true, true, false, false}},
		{"mod", formula.NewNumericMod(get(formula.FieldVolume), formula.NumericLiteral(7)),
			[]float64{2, 2, 0, 6}, []bool{true, true, false, true}},
		{"mod by zero", formula.NewNumericMod(formula.NumericLiteral(7), formula.NumericLiteral(0)),
			[]float64{7, 7, 7, 7}, []bool{false, false, false, false}},
		{"if first arm wins", formula.NewNumericIf(
			[]formula.NumericIfArm{
				{Condition: formula.NewBooleanFieldEquals(formula.FieldIsIndex, true), Value: formula.NumericLiteral(1)},
				{Condition: formula.NewAll(), Value: formula.NumericLiteral(2)},
			},
			formula.NumericLiteral(3),
		), []float64{2, 2, 1, 2}, []bool{true, true, true, true}},
		{"if false arm", formula.NewNumericIf(
			[]formula.NumericIfArm{{Condition: formula.NewNone(), Value: formula.NumericLiteral(1)}},
			get(formula.FieldVolume),
		), []float64{1500, 800, 0, 20}, []bool{true, true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, valid, err := ev.Value(tt.node)
			if err != nil {
				t.Fatalf("Value failed: %v", err)
			}
			if !slices.Equal(valid, tt.valid) {
				t.Fatalf("validity: expected %v, got %v", tt.valid, valid)
			}
			for i := range values {
				if valid[i] && math.Abs(values[i]-tt.values[i]) > 1e-9 {
					t.Errorf("row %d: expected %v, got %v", i, tt.values[i], values[i])
				}
			}
		})
	}
}

func TestColumnMapping(t *testing.T) {
	mem := memory.NewGoAllocator()
	rec := symbolRecord(t, mem)
	defer rec.Release()

	ev, err := New(rec, &Options{ColumnMapping: map[string]string{"vwap": "last_price"}})
	if err != nil {
		t.Fatal(err)
	}
	rows, err := ev.Select(formula.NewNumericFieldInRange(formula.FieldVwap, ptr(1000.0), nil))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got := codes(rows); !slices.Equal(got, []string{"XJO"}) {
		t.Errorf("expected [XJO], got %v", got)
	}
}

func TestErrors(t *testing.T) {
	ev := newEvaluator(t)

	tests := []struct {
		name     string
		node     formula.BooleanNode
		expected error
	}{
		{"missing column", formula.NewFieldHasValue(formula.FieldVwap), ErrColumnNotFound},
		{"missing sub-field column", formula.NewAttributeSubFieldHasValue(formula.AttributeSubFieldSector), ErrColumnNotFound},
		{"numeric on text", formula.NewNumericFieldEquals(formula.FieldCode, 1), ErrColumnType},
		{"text on numeric", formula.NewTextFieldContains(formula.FieldVolume, "1", formula.TextContainsAsNone, false), ErrColumnType},
		{"date on text", formula.NewDateFieldEquals(formula.FieldName, june27), ErrColumnType},
		{"boolean on text", formula.NewBooleanFieldEquals(formula.FieldCode, true), ErrColumnType},
		{"nil operand", formula.NewNot(nil), ErrUnsupportedNode},
		{"invalid field", formula.NewFieldHasValue(formula.FieldID(-1)), ErrUnsupportedNode},
		{"subbed field", formula.NewFieldHasValue(formula.FieldPriceSubbed), ErrUnsupportedNode},
		{"nested in or", formula.NewOr(formula.NewAll(), formula.NewFieldHasValue(formula.FieldVwap)), ErrColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ev.Match(tt.node)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	if _, _, err := ev.Value(nil); !errors.Is(err, ErrUnsupportedNode) {
		t.Errorf("Value(nil): expected ErrUnsupportedNode, got %v", err)
	}
	if _, err := New(nil, nil); err == nil {
		t.Error("New(nil) should fail")
	}
}

package zenith

import (
	"testing"

	"github.com/hugr-lab/zenith-scan/formula"
)

// BenchmarkParseBoolean benchmarks JSON parsing and decoding of every
// boolean sample.
func BenchmarkParseBoolean(b *testing.B) {
	root := formula.NewAnd(booleanSamples()...)
	data, err := MarshalBoolean(root)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := ParseBoolean(data); err != nil {
			b.Fatalf("ParseBoolean failed: %v", err)
		}
	}

	b.StopTimer()
	b.ReportMetric(float64(len(data)), "bytes")
}

// BenchmarkMarshalBoolean benchmarks encoding and JSON emission.
func BenchmarkMarshalBoolean(b *testing.B) {
	root := formula.NewAnd(booleanSamples()...)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := MarshalBoolean(root); err != nil {
			b.Fatalf("MarshalBoolean failed: %v", err)
		}
	}
}

// BenchmarkDecodeNumeric benchmarks decoding a pre-parsed numeric tuple.
func BenchmarkDecodeNumeric(b *testing.B) {
	tuple := EncodeNumeric(numericSamples()[8])

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := DecodeNumeric(tuple); err != nil {
			b.Fatalf("DecodeNumeric failed: %v", err)
		}
	}
}

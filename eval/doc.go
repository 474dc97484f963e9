// Package eval evaluates scan formulas over Arrow records.
//
// Each formula is evaluated column-wise for every row of the record.
// Fields are read from the columns named by internal/columns, optionally
// renamed through Options.ColumnMapping:
//
//	ev, err := eval.New(rec, nil)
//	if err != nil {
//	    return err
//	}
//	rows, err := ev.Select(def.Criteria)
//
// Accepted column types are Float64, Float32, Int64, Int32 and Uint64 for
// numeric fields, Timestamp and Date32 for dates, String and LargeString
// for text, and Boolean for boolean fields.
//
// Predicates over a null value are false. Arithmetic over a null value is
// null, and so is division or modulo by zero.
//
// Case-insensitive text matching uses Unicode case folding, so "Straße"
// equals "STRASSE". The SQL encoding in package filter compares lower()
// values and ILIKE, which keep ß distinct from ss; the two can disagree on
// characters whose folded form differs from their lower case form.
package eval

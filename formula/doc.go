// Package formula defines the typed expression tree used to describe scans.
//
// A scan formula is a tree of immutable nodes. Boolean nodes combine
// predicates (And, Or, Not, Xor, All, None), compare numeric operands
// (=, >, >=, <, <=) or test fields of the catalogue (has value, equals,
// in range, contains). Numeric nodes perform arithmetic, choose between
// values with If, or read a scalar numeric field.
//
// # Building Trees
//
// Nodes are created with their constructors, which fix the node type:
//
//	min := 100.0
//	criteria := formula.NewAnd(
//	    formula.NewFieldHasValue(formula.FieldCode),
//	    formula.NewNumericFieldInRange(formula.FieldVolume, &min, nil),
//	)
//
// Numeric operands are either literals or nested numeric nodes:
//
//	spread := formula.NewNumericSub(
//	    formula.NumericExpression(formula.NewNumericFieldValueGet(formula.FieldBestAskPrice)),
//	    formula.NumericExpression(formula.NewNumericFieldValueGet(formula.FieldBestBidPrice)),
//	)
//	narrow := formula.NewNumericLessThan(formula.NumericExpression(spread), formula.NumericLiteral(0.05))
//
// # Field Catalogue
//
// Every FieldID has a data type (Numeric, Date, Text, Boolean), a predicate
// style (InRange, Overlaps, Equals, HasValueEquals, Contains) and a subbed
// flag. Subbed fields (Price, Date, AltCode, Attribute) are addressed
// through their own sub-field enumerations.
//
// The catalogue is checked when the package initialises; an entry stored
// out of order panics with a *CatalogOrderError.
//
// The tree carries no validation of its own: field compatibility with a
// node's shape is enforced when a tree is decoded from the wire format
// (see package zenith).
package formula

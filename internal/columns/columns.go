// Package columns maps formula fields to the default column names used by
// the SQL encoder, the Arrow evaluator and the scan store.
package columns

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hugr-lab/zenith-scan/formula"
)

// Prefixes of the columns that hold sub-field values.
const (
	PricePrefix     = "price_"
	DatePrefix      = "date_"
	AltCodePrefix   = "alt_code_"
	AttributePrefix = "attribute_"
)

// Field returns the column name of a scalar field, e.g. best_bid_price.
// It panics for subbed fields, which have one column per sub-field.
func Field(id formula.FieldID) string {
	if !id.Valid() || id.IsSubbed() {
		panic(fmt.Sprintf("columns: %v has no single column", id))
	}
	return snake(id.String())
}

// Price returns the column name of a price sub-field, e.g. price_last.
func Price(id formula.PriceSubFieldID) string { return PricePrefix + snake(id.String()) }

// Date returns the column name of a date sub-field, e.g. date_dividend.
func Date(id formula.DateSubFieldID) string { return DatePrefix + snake(id.String()) }

// AltCode returns the column name of an alternate code, e.g. alt_code_isin.
func AltCode(id formula.AltCodeSubFieldID) string { return AltCodePrefix + snake(id.String()) }

// Attribute returns the column name of an attribute, e.g. attribute_max_rss.
func Attribute(id formula.AttributeSubFieldID) string {
	return AttributePrefix + snake(id.String())
}

// Column describes one column of the default symbol table layout.
type Column struct {
	Name     string
	DataType formula.DataTypeID
}

// All returns every column of the default layout: scalar fields in
// catalogue order followed by the sub-field columns.
func All() []Column {
	var cols []Column
	for _, id := range formula.Fields() {
		if !id.IsSubbed() {
			cols = append(cols, Column{Name: Field(id), DataType: id.DataType()})
		}
	}
	for _, id := range formula.PriceSubFields() {
		cols = append(cols, Column{Name: Price(id), DataType: formula.DataTypeNumeric})
	}
	for _, id := range formula.DateSubFields() {
		cols = append(cols, Column{Name: Date(id), DataType: formula.DataTypeDate})
	}
	for _, id := range formula.AltCodeSubFields() {
		cols = append(cols, Column{Name: AltCode(id), DataType: formula.DataTypeText})
	}
	for _, id := range formula.AttributeSubFields() {
		cols = append(cols, Column{Name: Attribute(id), DataType: formula.DataTypeText})
	}
	return cols
}

// snake converts a PascalCase name to snake_case.
func snake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

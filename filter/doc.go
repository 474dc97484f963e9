// Package filter encodes scan formulas as DuckDB SQL.
//
// This package enables scan hosts to:
//   - Push scan criteria down to a symbol table as a WHERE clause body
//   - Encode rank formulas as SQL expressions for ORDER BY
//   - Map default column names to the names used by a backend table
//   - Replace column names with SQL expressions for computed columns
//
// # Basic Usage
//
//	enc := filter.NewDuckDBEncoder(nil)
//	where := enc.EncodeFilters(def.Criteria)
//	if where != "" {
//	    query := "SELECT * FROM symbols WHERE " + where
//	}
//
// Default column names come from internal/columns: scalar fields use the
// snake_case field name (best_bid_price) and sub-fields are prefixed by
// their owning field (price_last, alt_code_isin).
//
// # Column Mapping
//
//	enc := filter.NewDuckDBEncoder(&filter.EncoderOptions{
//	    ColumnMapping: map[string]string{
//	        "last_price": "px_last",
//	    },
//	    ColumnExpressions: map[string]string{
//	        "code": "split_part(ticker, '.', 1)",
//	    },
//	})
//
// # NULL Handling
//
// Every field predicate and comparison is wrapped in coalesce(..., false),
// so a missing value never satisfies a predicate and NOT of a predicate
// over a missing value is true. Division and modulo by zero yield NULL.
//
// # Case-Insensitive Text
//
// IgnoreCase predicates use ILIKE, or lower() on both sides for exact
// matches. This is DuckDB lower case mapping, not Unicode case folding:
// 'Straße' does not match 'STRASSE' here although it does in package eval.
//
// # Unsupported Nodes
//
// Nodes the encoder cannot express (nil operands or out-of-range field ids)
// encode to the empty string:
//   - For And: unsupported operands are skipped, others kept
//   - For Or: if any operand is unsupported, the whole Or is skipped
package filter

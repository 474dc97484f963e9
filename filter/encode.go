package filter

import (
	"strings"

	"github.com/hugr-lab/zenith-scan/formula"
)

// Encoder converts scan formulas to SQL strings.
// Implementations handle dialect-specific syntax.
type Encoder interface {
	// Encode converts a boolean formula to a SQL predicate.
	// Returns empty string if the formula is unsupported.
	Encode(node formula.BooleanNode) string

	// EncodeNumeric converts a numeric formula to a SQL expression.
	// Returns empty string if the formula is unsupported.
	EncodeNumeric(node formula.NumericNode) string

	// EncodeFilters converts all criteria to a WHERE clause body.
	// Returns the condition portion without "WHERE" keyword.
	// Returns empty string if no criteria can be encoded.
	EncodeFilters(criteria ...formula.BooleanNode) string
}

// EncoderOptions configures encoding behavior.
type EncoderOptions struct {
	// ColumnMapping maps default column names (see internal/columns)
	// to target names. Columns not in the map use their default names.
	ColumnMapping map[string]string

	// ColumnExpressions maps default column names to SQL expressions.
	// Takes precedence over ColumnMapping.
	ColumnExpressions map[string]string
}

// escapeString escapes single quotes in a string value for SQL.
func escapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// quoteLiteral returns a SQL string literal with proper escaping.
func quoteLiteral(s string) string {
	return "'" + escapeString(s) + "'"
}

// likeEscaper escapes LIKE wildcards. Patterns use ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern returns a quoted LIKE pattern matching value at the given position.
func likePattern(value string, as formula.TextContainsAsID) string {
	escaped := likeEscaper.Replace(value)
	switch as {
	case formula.TextContainsAsFromStart:
		return quoteLiteral(escaped + "%")
	case formula.TextContainsAsFromEnd:
		return quoteLiteral("%" + escaped)
	default:
		return quoteLiteral("%" + escaped + "%")
	}
}

// quoteIdentifier returns a quoted identifier if needed.
// DuckDB uses double quotes for identifiers.
func quoteIdentifier(name string) string {
	if needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

// needsQuoting returns true if the identifier needs quoting.
func needsQuoting(name string) bool {
	if len(name) == 0 {
		return true
	}

	c := name[0]
	if !isLower(c) && c != '_' {
		return true
	}
	for i := 1; i < len(name); i++ {
		c = name[i]
		if !isLower(c) && !isDigit(c) && c != '_' {
			return true
		}
	}

	// Reserved words
	switch strings.ToUpper(name) {
	case "SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "NULL", "TRUE", "FALSE",
		"INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER", "TABLE", "INDEX",
		"JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "ON", "AS", "IN", "IS", "LIKE",
		"ILIKE", "BETWEEN", "EXISTS", "CASE", "WHEN", "THEN", "ELSE", "END", "ORDER",
		"BY", "GROUP", "HAVING", "LIMIT", "OFFSET", "UNION", "EXCEPT", "INTERSECT",
		"ALL", "ANY", "DISTINCT", "VALUES", "SET", "INTO", "PRIMARY", "KEY", "FOREIGN",
		"REFERENCES", "CONSTRAINT", "DEFAULT", "CHECK", "UNIQUE", "ASC", "DESC",
		"NULLS", "FIRST", "LAST", "CAST", "INTERVAL", "DATE", "TIME", "TIMESTAMP",
		"WITH", "WINDOW", "OVER", "QUALIFY", "FILTER", "USING", "NATURAL", "CROSS":
		return true
	}
	return false
}

// isLower returns true if c is a lower case ASCII letter. Upper case
// identifiers are quoted to preserve their case.
func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isDigit returns true if c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

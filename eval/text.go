package eval

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/hugr-lab/zenith-scan/formula"
)

// textMatcher applies one text-contains predicate to column values.
type textMatcher struct {
	value string
	as    formula.TextContainsAsID
	fold  *cases.Caser
}

func newTextMatcher(tc formula.TextContains) *textMatcher {
	m := &textMatcher{value: tc.Value, as: tc.As}
	if tc.IgnoreCase {
		c := cases.Fold()
		m.fold = &c
		m.value = c.String(tc.Value)
	}
	return m
}

func (m *textMatcher) match(s string) bool {
	if m.fold != nil {
		s = m.fold.String(s)
	}
	switch m.as {
	case formula.TextContainsAsFromStart:
		return strings.HasPrefix(s, m.value)
	case formula.TextContainsAsFromEnd:
		return strings.HasSuffix(s, m.value)
	case formula.TextContainsAsExact:
		return s == m.value
	default:
		return strings.Contains(s, m.value)
	}
}

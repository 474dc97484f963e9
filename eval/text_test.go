package eval

import (
	"testing"

	"github.com/hugr-lab/zenith-scan/formula"
)

func TestTextMatcher(t *testing.T) {
	tests := []struct {
		name     string
		tc       formula.TextContains
		value    string
		expected bool
	}{
		{"contains", formula.TextContains{Value: "Group"}, "BHP Group", true},
		{"case sensitive", formula.TextContains{Value: "group"}, "BHP Group", false},
		{"from start", formula.TextContains{Value: "bh", As: formula.TextContainsAsFromStart, IgnoreCase: true}, "BHP", true},
		{"from end", formula.TextContains{Value: "INDEX", As: formula.TextContainsAsFromEnd, IgnoreCase: true}, "ASX 200 Index", true},
		{"exact", formula.TextContains{Value: "bhp", As: formula.TextContainsAsExact, IgnoreCase: true}, "BHPO", false},
		// Folding maps ß to ss, unlike SQL lower().
		{"folded sharp s", formula.TextContains{Value: "STRASSE", As: formula.TextContainsAsExact, IgnoreCase: true}, "Straße", true},
		{"sharp s case sensitive", formula.TextContains{Value: "STRASSE", As: formula.TextContainsAsExact}, "Straße", false},
		{"final sigma", formula.TextContains{Value: "ΟΔΟΣ", As: formula.TextContainsAsExact, IgnoreCase: true}, "οδος", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newTextMatcher(tt.tc).match(tt.value); got != tt.expected {
				t.Errorf("match(%q) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

package address

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatternMatcher(t *testing.T) {
	tests := []struct {
		input string
		want  Result
	}{
		{"Winterallee 3", Format("Winterallee", "3")},
		{"Blaufeldweg 123B", Format("Blaufeldweg", "123B")},
		{"Auf der Vogelwiese 23 b", Format("Auf der Vogelwiese", "23 b")},
		{"200 Broadway Av", Format("Broadway Av", "200")},
		{"Am Bächle 23", Format("Am Bächle", "23")},
		// first match wins and only that occurrence is removed
		{"Route 66 Diner 66", Format("Route  Diner 66", "66")},
		// commas are removed after trimming
		{"12 Kingsway , East", Format("Kingsway  East", "12")},
		{"Hous 9", Format("9", "Hous")},
		{"", Failure(MsgInvalidAddress)},
	}

	m := NewPatternMatcher(DefaultMatchTimeout)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := m.Match(tt.input)
			if err != nil {
				t.Fatalf("Match(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Match(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestPatternMatcherNoMatch(t *testing.T) {
	_, err := Parse("Hauptstrasse")
	if !errors.Is(err, ErrNoHouseNumber) {
		t.Errorf("Parse error = %v, want %v", err, ErrNoHouseNumber)
	}
}

func TestPatternMatcherPattern(t *testing.T) {
	if got := NewPatternMatcher(0).Pattern(); got != HouseNumberPattern {
		t.Errorf("Pattern() = %q, want %q", got, HouseNumberPattern)
	}
}

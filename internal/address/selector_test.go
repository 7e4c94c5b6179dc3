package address

import "testing"

func TestSubstringSelector(t *testing.T) {
	tests := []struct {
		input         string
		wantMode      Mode
		wantDelimiter Delimiter
	}{
		{"Blaufeldweg, 123B", ModeSplit, DelimiterComma},
		{"Winterallee FLAT 3", ModeSplit, DelimiterFlat},
		{"Musterstrasse house 45", ModeSplit, DelimiterHouse},
		{"Calle 39 No 1540", ModeSplit, DelimiterNo},
		{"Science Park Building 7", ModeSplit, DelimiterBuilding},
		{"Winterallee 3", ModeParse, DelimiterNone},
		{"", ModeParse, DelimiterNone},
		// comma beats every keyword
		{"Flat 3, Winterallee", ModeSplit, DelimiterComma},
		// flat beats the later keywords
		{"House Flat 3", ModeSplit, DelimiterFlat},
		// bare substring test
		{"Norway 5", ModeSplit, DelimiterNo},
		{"Townhouse Lane 2", ModeSplit, DelimiterHouse},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, delim := SubstringSelector{}.Select(tt.input)
			if mode != tt.wantMode || delim != tt.wantDelimiter {
				t.Errorf("Select(%q) = %v %q, want %v %q", tt.input, mode, delim, tt.wantMode, tt.wantDelimiter)
			}
		})
	}
}

func TestWordSelector(t *testing.T) {
	s := NewWordSelector()
	tests := []struct {
		input         string
		wantMode      Mode
		wantDelimiter Delimiter
	}{
		{"Calle 39 no 1540", ModeSplit, DelimiterNo},
		{"Norway 5", ModeParse, DelimiterNone},
		{"Townhouse Lane 2", ModeParse, DelimiterNone},
		{"Flat 3, Winterallee", ModeSplit, DelimiterComma},
		{"Winterallee flat 3", ModeSplit, DelimiterFlat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, delim := s.Select(tt.input)
			if mode != tt.wantMode || delim != tt.wantDelimiter {
				t.Errorf("Select(%q) = %v %q, want %v %q", tt.input, mode, delim, tt.wantMode, tt.wantDelimiter)
			}
		})
	}
}

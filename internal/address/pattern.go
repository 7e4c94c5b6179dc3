package address

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// HouseNumberPattern matches a house-number token: digits optionally followed by
// a single letter, or one of the literal markers. "Hous" is intentionally
// truncated; existing callers depend on it.
const HouseNumberPattern = `\b(?:\d+(?:\s*[a-zA-Z]\b|\b)|No|Flat|Hous)\s*(?!\w)`

// DefaultMatchTimeout bounds a single regular expression evaluation.
const DefaultMatchTimeout = 100 * time.Millisecond

// Matcher extracts a house number from the whole address with a fixed pattern.
type Matcher interface {
	Match(address string) (Result, error)
}

// PatternMatcher is the regular expression based Matcher.
type PatternMatcher struct {
	re *regexp2.Regexp
}

// NewPatternMatcher compiles HouseNumberPattern. A zero timeout disables the
// evaluation limit.
func NewPatternMatcher(timeout time.Duration) *PatternMatcher {
	re := regexp2.MustCompile(HouseNumberPattern, regexp2.None)
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &PatternMatcher{re: re}
}

// Pattern returns the expression the matcher was compiled from.
func (m *PatternMatcher) Pattern() string {
	return m.re.String()
}

// Match takes the first pattern match as the house number and the rest of the
// address, trimmed and without commas, as the street. An empty address yields a
// structured error; an address without any match is a fault.
func (m *PatternMatcher) Match(address string) (Result, error) {
	if address == "" {
		return Failure(MsgInvalidAddress), nil
	}

	match, err := m.re.FindStringMatch(address)
	if err != nil {
		return Result{}, fmt.Errorf("matching house number in %q: %w", address, err)
	}
	if match == nil {
		return Result{}, fmt.Errorf("%w in %q", ErrNoHouseNumber, address)
	}

	house := match.String()
	street := strings.Replace(address, house, "", 1)
	street = strings.ReplaceAll(strings.TrimSpace(street), ",", "")
	return Format(street, house), nil
}

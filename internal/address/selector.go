package address

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Selector decides which strategy handles an address and, for SPLIT, on what.
type Selector interface {
	Select(address string) (Mode, Delimiter)
}

// SubstringSelector checks the lower-cased address for a comma and then for each
// keyword as a bare substring. First match wins. Because the test is a substring
// test, "no" also fires inside words such as "Norway".
type SubstringSelector struct{}

// Select implements Selector.
func (SubstringSelector) Select(address string) (Mode, Delimiter) {
	lower := strings.ToLower(address)
	if strings.Contains(lower, ",") {
		return ModeSplit, DelimiterComma
	}
	for _, kw := range Keywords {
		if strings.Contains(lower, strings.ToLower(string(kw))) {
			return ModeSplit, kw
		}
	}
	return ModeParse, DelimiterNone
}

// WordSelector uses the same priority order as SubstringSelector but only
// accepts keywords that stand as whole words. It changes the selected mode for
// inputs like "Norway 5", so it is opt-in.
type WordSelector struct {
	patterns map[Delimiter]*regexp2.Regexp
}

// NewWordSelector compiles the whole-word keyword patterns.
func NewWordSelector() *WordSelector {
	s := &WordSelector{patterns: make(map[Delimiter]*regexp2.Regexp, len(Keywords))}
	for _, kw := range Keywords {
		s.patterns[kw] = regexp2.MustCompile(`\b`+regexp2.Escape(string(kw))+`\b`, regexp2.IgnoreCase)
	}
	return s
}

// Select implements Selector.
func (s *WordSelector) Select(address string) (Mode, Delimiter) {
	if strings.Contains(address, ",") {
		return ModeSplit, DelimiterComma
	}
	for _, kw := range Keywords {
		if ok, err := s.patterns[kw].MatchString(address); err == nil && ok {
			return ModeSplit, kw
		}
	}
	return ModeParse, DelimiterNone
}

package address

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Splitter divides an address on a delimiter into street and house number.
type Splitter interface {
	Split(address string, delimiter Delimiter) (Result, error)
}

// DelimiterSplitter splits on a comma or on a keyword followed by a token.
// When the delimiter gives nothing usable it falls back to its Matcher on the
// unmodified address.
type DelimiterSplitter struct {
	fallback Matcher
	timeout  time.Duration

	mu       sync.RWMutex
	keywords map[Delimiter]*regexp2.Regexp
}

// NewDelimiterSplitter creates a splitter with the keyword patterns precompiled.
func NewDelimiterSplitter(fallback Matcher, timeout time.Duration) *DelimiterSplitter {
	s := &DelimiterSplitter{
		fallback: fallback,
		timeout:  timeout,
		keywords: make(map[Delimiter]*regexp2.Regexp, len(Keywords)),
	}
	for _, kw := range Keywords {
		s.keywords[kw] = s.compile(kw)
	}
	return s
}

// Split implements Splitter.
func (s *DelimiterSplitter) Split(address string, delimiter Delimiter) (Result, error) {
	if delimiter == DelimiterComma {
		return s.splitComma(address)
	}
	return s.splitKeyword(address, delimiter)
}

func (s *DelimiterSplitter) splitComma(address string) (Result, error) {
	parts := strings.Split(address, string(DelimiterComma))
	if len(parts) != 2 {
		return Result{}, fmt.Errorf("%w: %q has %d", ErrMalformedComma, address, len(parts))
	}
	first, second := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	// The second part is only inspected when the first does not start with a digit.
	firstDigit, err := startsWithDigit(first)
	if err != nil {
		return Result{}, fmt.Errorf("splitting %q: %w", address, err)
	}
	if firstDigit {
		return Format(second, first), nil
	}
	secondDigit, err := startsWithDigit(second)
	if err != nil {
		return Result{}, fmt.Errorf("splitting %q: %w", address, err)
	}
	if secondDigit {
		return Format(first, second), nil
	}
	return s.fallback.Match(address)
}

func (s *DelimiterSplitter) splitKeyword(address string, keyword Delimiter) (Result, error) {
	token, ok, err := s.nextWord(address, keyword)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return s.fallback.Match(address)
	}

	house := string(keyword) + " " + token
	street := strings.ReplaceAll(address, house, "")
	street = strings.ReplaceAll(street, ",", "")
	street = strings.ReplaceAll(street, strings.ToLower(house), "")
	return Format(strings.TrimSpace(street), house), nil
}

// nextWord returns the word following keyword, matched case-insensitively as a
// whole word.
func (s *DelimiterSplitter) nextWord(address string, keyword Delimiter) (string, bool, error) {
	re := s.pattern(keyword)
	m, err := re.FindStringMatch(address)
	if err != nil {
		return "", false, fmt.Errorf("finding word after %q in %q: %w", keyword, address, err)
	}
	if m == nil {
		return "", false, nil
	}
	return m.GroupByNumber(1).String(), true, nil
}

func (s *DelimiterSplitter) pattern(keyword Delimiter) *regexp2.Regexp {
	s.mu.RLock()
	re, ok := s.keywords[keyword]
	s.mu.RUnlock()
	if ok {
		return re
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if re, ok = s.keywords[keyword]; !ok {
		re = s.compile(keyword)
		s.keywords[keyword] = re
	}
	return re
}

func (s *DelimiterSplitter) compile(keyword Delimiter) *regexp2.Regexp {
	expr := `(?<=\b` + regexp2.Escape(string(keyword)) + `\b)\s+(\w+)`
	re := regexp2.MustCompile(expr, regexp2.IgnoreCase)
	if s.timeout > 0 {
		re.MatchTimeout = s.timeout
	}
	return re
}

func startsWithDigit(part string) (bool, error) {
	if part == "" {
		return false, ErrEmptyPart
	}
	r, _ := utf8.DecodeRuneInString(part)
	return unicode.IsDigit(r) || unicode.Is(digitSymbols, r), nil
}

// digitSymbols holds the characters outside category Nd whose Unicode
// Numeric_Type is Digit: superscripts, subscripts, circled and parenthesised
// digits and a few script-specific forms (Unicode 14).
var digitSymbols = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// Package address extracts a street name and a house number from a single-line
// address.
//
// A Parser picks one of two strategies when it is created. Addresses holding a
// comma or one of the keywords Flat, House, No or Building are split on that
// delimiter; everything else is scanned with HouseNumberPattern. Operation is
// the only place faults are caught: they are logged and reported as an absent
// result, distinct from the structured {"error": ...} results.
package address

import (
	"fmt"
)

// ErrorLogger receives faults caught by Parser.Operation. Implementations must
// not panic and must tolerate concurrent calls.
type ErrorLogger interface {
	LogError(err error, msg string)
}

type nopLogger struct{}

func (nopLogger) LogError(error, string) {}

var (
	defaultMatcher  = NewPatternMatcher(DefaultMatchTimeout)
	defaultSplitter = NewDelimiterSplitter(defaultMatcher, DefaultMatchTimeout)
)

// Parse runs the pattern-matching strategy with the default matcher.
func Parse(address string) (Result, error) {
	return defaultMatcher.Match(address)
}

// Split runs the splitting strategy with the default splitter.
func Split(address string, delimiter Delimiter) (Result, error) {
	return defaultSplitter.Split(address, delimiter)
}

// Option customises a Parser.
type Option func(*Parser)

// WithSelector replaces the operation selector.
func WithSelector(s Selector) Option {
	return func(p *Parser) { p.selector = s }
}

// WithSplitter replaces the splitting strategy.
func WithSplitter(s Splitter) Option {
	return func(p *Parser) { p.splitter = s }
}

// WithMatcher replaces the pattern-matching strategy.
func WithMatcher(m Matcher) Option {
	return func(p *Parser) { p.matcher = m }
}

// WithErrorLogger sets where faults caught by Operation are reported.
func WithErrorLogger(l ErrorLogger) Option {
	return func(p *Parser) { p.logger = l }
}

// Parser holds one address and the strategy selected for it.
type Parser struct {
	address   string
	mode      Mode
	delimiter Delimiter

	selector Selector
	splitter Splitter
	matcher  Matcher
	logger   ErrorLogger
}

// New creates a Parser for address and selects its operation immediately.
func New(address string, opts ...Option) *Parser {
	p := &Parser{
		address:  address,
		selector: SubstringSelector{},
		splitter: defaultSplitter,
		matcher:  defaultMatcher,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.mode, p.delimiter = p.selector.Select(address)
	return p
}

// Address returns the input the Parser was created with.
func (p *Parser) Address() string { return p.address }

// Mode returns the selected operation.
func (p *Parser) Mode() Mode { return p.mode }

// Delimiter returns the split delimiter, or DelimiterNone for PARSE.
func (p *Parser) Delimiter() Delimiter { return p.delimiter }

// Pattern returns the house-number expression when the matcher exposes one.
func (p *Parser) Pattern() string {
	if pm, ok := p.matcher.(interface{ Pattern() string }); ok {
		return pm.Pattern()
	}
	return ""
}

// Run performs the selected operation without catching faults.
func (p *Parser) Run() (Result, error) {
	switch {
	case !p.mode.Valid():
		return Failure(MsgInvalidOperation), nil
	case p.mode == ModeSplit && p.delimiter == DelimiterNone:
		return Failure(MsgInvalidOperation), nil
	case p.mode == ModeSplit:
		return p.splitter.Split(p.address, p.delimiter)
	default:
		return p.matcher.Match(p.address)
	}
}

// Operation performs the selected operation. The boolean is false when a fault
// occurred; the fault has then been handed to the ErrorLogger and the Result is
// empty.
func (p *Parser) Operation() (res Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.LogError(fmt.Errorf("%w: %v", ErrPanic, r), p.failureMessage())
			res, ok = Result{}, false
		}
	}()

	res, err := p.Run()
	if err != nil {
		p.logger.LogError(err, p.failureMessage())
		return Result{}, false
	}
	return res, true
}

func (p *Parser) failureMessage() string {
	return fmt.Sprintf("address operation %s failed for %q", p.mode, p.address)
}

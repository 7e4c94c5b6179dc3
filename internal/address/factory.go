package address

import "time"

// FactoryConfig controls the strategies shared by Parsers built from a Factory.
type FactoryConfig struct {
	// StrictKeywords selects keywords only when they appear as whole words.
	StrictKeywords bool
	MatchTimeout   time.Duration
	Logger         ErrorLogger
}

// Factory builds Parsers that share one set of compiled strategies. It is safe
// for concurrent use.
type Factory struct {
	selector Selector
	splitter Splitter
	matcher  Matcher
	logger   ErrorLogger
}

// NewFactory compiles the strategies described by cfg.
func NewFactory(cfg FactoryConfig) *Factory {
	matcher := NewPatternMatcher(cfg.MatchTimeout)
	f := &Factory{
		selector: SubstringSelector{},
		splitter: NewDelimiterSplitter(matcher, cfg.MatchTimeout),
		matcher:  matcher,
		logger:   cfg.Logger,
	}
	if cfg.StrictKeywords {
		f.selector = NewWordSelector()
	}
	if f.logger == nil {
		f.logger = nopLogger{}
	}
	return f
}

// New creates a Parser for address.
func (f *Factory) New(address string) *Parser {
	return New(address,
		WithSelector(f.selector),
		WithSplitter(f.splitter),
		WithMatcher(f.matcher),
		WithErrorLogger(f.logger),
	)
}

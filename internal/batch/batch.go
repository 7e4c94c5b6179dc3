package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ehdc-llpg/housenumber/internal/address"
	"github.com/ehdc-llpg/housenumber/internal/debug"
)

// Outcome is the result for one input line. Result is nil when the parser
// faulted.
type Outcome struct {
	Line    int             `json:"line"`
	Address string          `json:"address"`
	Result  *address.Result `json:"result"`
}

// Stats summarises a batch run.
type Stats struct {
	Total          int           `json:"total"`
	Parsed         int           `json:"parsed"`
	ErrorResults   int           `json:"error_results"`
	Faults         int           `json:"faults"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// Processor parses many addresses concurrently. Each address gets its own
// Parser; the compiled strategies are shared through the Factory.
type Processor struct {
	factory *address.Factory
	workers int
	logger  *zap.Logger
	debug   bool
}

// NewProcessor creates a processor running at most workers parsers at a time.
func NewProcessor(factory *address.Factory, workers int, logger *zap.Logger, debugEnabled bool) *Processor {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{factory: factory, workers: workers, logger: logger, debug: debugEnabled}
}

// Process parses addresses and returns outcomes in input order.
func (p *Processor) Process(ctx context.Context, addresses []string) ([]Outcome, Stats, error) {
	defer debug.Timing(p.logger, p.debug, "batch")()

	start := time.Now()
	outcomes := make([]Outcome, len(addresses))
	var parsed, errorResults, faults int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, addr := range addresses {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = Outcome{Line: i + 1, Address: addr}
			res, ok := p.factory.New(addr).Operation()
			switch {
			case !ok:
				atomic.AddInt64(&faults, 1)
			case res.Failed():
				atomic.AddInt64(&errorResults, 1)
				outcomes[i].Result = &res
			default:
				atomic.AddInt64(&parsed, 1)
				outcomes[i].Result = &res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("batch cancelled: %w", err)
	}

	stats := Stats{
		Total:          len(addresses),
		Parsed:         int(parsed),
		ErrorResults:   int(errorResults),
		Faults:         int(faults),
		ProcessingTime: time.Since(start),
	}
	debug.Output(p.logger, p.debug, "batch parsed %d/%d addresses, %d faults", stats.Parsed, stats.Total, stats.Faults)
	return outcomes, stats, nil
}

// ReadLines reads one address per line. Lines have no length limit. Carriage
// returns are dropped and empty lines are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read addresses: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

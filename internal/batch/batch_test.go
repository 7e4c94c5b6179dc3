package batch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/ehdc-llpg/housenumber/internal/address"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingLogger struct{ n int64 }

func (l *countingLogger) LogError(error, string) { l.n++ }

func TestProcessKeepsInputOrder(t *testing.T) {
	inputs := []string{
		"Winterallee 3",
		"Hauptstrasse",
		"",
		"Calle 39 No 1540",
		"4, rue de la revolution",
	}
	logger := &countingLogger{}
	factory := address.NewFactory(address.FactoryConfig{Logger: logger})
	p := NewProcessor(factory, 1, nil, false)

	outcomes, stats, err := p.Process(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []*address.Result{
		{Street: "Winterallee", HouseNumber: "3"},
		nil,
		{Error: address.MsgInvalidAddress},
		{Street: "Calle 39", HouseNumber: "No 1540"},
		{Street: "rue de la revolution", HouseNumber: "4"},
	}
	if len(outcomes) != len(want) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(want))
	}
	for i, o := range outcomes {
		if o.Line != i+1 || o.Address != inputs[i] {
			t.Errorf("outcome %d = line %d %q", i, o.Line, o.Address)
		}
		if diff := cmp.Diff(want[i], o.Result); diff != "" {
			t.Errorf("outcome %d mismatch (-want +got):\n%s", i, diff)
		}
	}

	wantStats := Stats{Total: 5, Parsed: 3, ErrorResults: 1, Faults: 1}
	stats.ProcessingTime = 0
	if stats != wantStats {
		t.Errorf("stats = %+v, want %+v", stats, wantStats)
	}
	if logger.n != 1 {
		t.Errorf("logged %d faults, want 1", logger.n)
	}
}

func TestProcessConcurrent(t *testing.T) {
	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = "Musterstrasse 45"
	}
	p := NewProcessor(address.NewFactory(address.FactoryConfig{}), 8, nil, false)

	outcomes, stats, err := p.Process(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if stats.Parsed != len(inputs) {
		t.Errorf("parsed %d, want %d", stats.Parsed, len(inputs))
	}
	for _, o := range outcomes {
		if o.Result == nil || o.Result.HouseNumber != "45" {
			t.Fatalf("line %d: unexpected result %+v", o.Line, o.Result)
		}
	}
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProcessor(address.NewFactory(address.FactoryConfig{}), 2, nil, false)
	_, _, err := p.Process(ctx, []string{"Winterallee 3"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Process error = %v, want context.Canceled", err)
	}
}

func TestProcessRepeatedWithSameContext(t *testing.T) {
	ctx := context.Background()
	p := NewProcessor(address.NewFactory(address.FactoryConfig{}), 3, nil, false)

	for run := 1; run <= 2; run++ {
		outcomes, stats, err := p.Process(ctx, []string{"Winterallee 3", "Blaufeldweg, 123B"})
		if err != nil {
			t.Fatalf("run %d: Process: %v", run, err)
		}
		if len(outcomes) != 2 || stats.Parsed != 2 {
			t.Errorf("run %d: got %d outcomes, %d parsed, want 2 and 2", run, len(outcomes), stats.Parsed)
		}
	}
	if err := ctx.Err(); err != nil {
		t.Errorf("caller context ended up cancelled: %v", err)
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("a", 70000) + " 3"
	got, err := ReadLines(strings.NewReader("Winterallee 3\n" + long + "\nBlaufeldweg, 123B"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadLines returned %d lines, want 3", len(got))
	}
	if got[1] != long {
		t.Errorf("long line was truncated to %d bytes", len(got[1]))
	}
	if got[2] != "Blaufeldweg, 123B" {
		t.Errorf("last line without newline = %q", got[2])
	}
}

func TestReadLines(t *testing.T) {
	got, err := ReadLines(strings.NewReader("Winterallee 3\r\n\nBlaufeldweg, 123B\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"Winterallee 3", "Blaufeldweg, 123B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
	}
}

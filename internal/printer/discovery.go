package printer

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Source finds destinations and sends each one on found as soon as it is
// known. Implementations must stop promptly when ctx is done.
type Source interface {
	Discover(ctx context.Context, found chan<- Destination) error
}

// emit sends d unless ctx finishes first.
func emit(ctx context.Context, found chan<- Destination, d Destination) bool {
	select {
	case found <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

// StaticSource reports a fixed list of queue names, waiting Delay before
// each one.
type StaticSource struct {
	Names []string
	Delay time.Duration
}

func (s StaticSource) Discover(ctx context.Context, found chan<- Destination) error {
	for _, name := range s.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if s.Delay > 0 {
			select {
			case <-time.After(s.Delay):
			case <-ctx.Done():
				return nil
			}
		}
		if !emit(ctx, found, PrinterDestination(name)) {
			return nil
		}
	}
	return nil
}

// LPStatSource lists CUPS queues with `lpstat -e`. A missing lpstat binary
// is not an error; the source simply reports nothing.
type LPStatSource struct {
	// Run executes lpstat and returns its stdout. Nil uses exec.
	Run    func(ctx context.Context) ([]byte, error)
	Logger *slog.Logger
}

func (s LPStatSource) Discover(ctx context.Context, found chan<- Destination) error {
	run := s.Run
	if run == nil {
		run = runLPStat
	}
	out, err := run(ctx)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || ctx.Err() != nil {
			logger(s.Logger).Debug("lpstat unavailable", "error", err)
			return nil
		}
		return fmt.Errorf("lpstat: %w", err)
	}
	for _, queue := range parseLPStat(out) {
		if !emit(ctx, found, PrinterDestination(queue)) {
			return nil
		}
	}
	return nil
}

func runLPStat(ctx context.Context) ([]byte, error) {
	path, err := exec.LookPath("lpstat")
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, path, "-e").Output()
}

// parseLPStat returns one queue name per non-empty line.
func parseLPStat(out []byte) []string {
	var queues []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			queues = append(queues, f[0])
		}
	}
	return queues
}

// finalHandoff bounds how long a finished scan waits for its consumer to
// take the closing SaveAsPDF entry.
const finalHandoff = 2 * time.Second

// Scanner runs every Source concurrently and merges their results.
type Scanner struct {
	sources []Source
	logger  *slog.Logger
	running atomic.Bool
}

// NewScanner returns a Scanner over sources. A nil logger discards.
func NewScanner(logger *slog.Logger, sources ...Source) *Scanner {
	return &Scanner{sources: sources, logger: logger}
}

// Scan starts a discovery pass bounded by window (no bound when window
// is zero) and returns a channel of destinations in the order they are
// found. Duplicate IDs are dropped and SaveAsPDF is always sent last
// before the channel closes. Only one scan may run at a time.
func (s *Scanner) Scan(ctx context.Context, window time.Duration) (<-chan Destination, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}

	out := make(chan Destination)
	go func() {
		defer close(out)
		defer s.running.Store(false)

		scanCtx, cancel := ctx, context.CancelFunc(func() {})
		if window > 0 {
			scanCtx, cancel = context.WithTimeout(ctx, window)
		}
		defer cancel()

		found := make(chan Destination)
		var g errgroup.Group
		for _, src := range s.sources {
			g.Go(func() error {
				return src.Discover(scanCtx, found)
			})
		}
		go func() {
			if err := g.Wait(); err != nil {
				logger(s.logger).Warn("destination source failed", "error", err)
			}
			close(found)
		}()

		// Results that arrive after the window closes are dropped; the
		// loop keeps draining found until every source has returned.
		seen := map[string]bool{SaveAsPDF.ID: true}
		for d := range found {
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			select {
			case out <- d:
			case <-scanCtx.Done():
			}
		}

		// A consumer that walked away must not hold the scan open.
		handoff := time.NewTimer(finalHandoff)
		defer handoff.Stop()
		select {
		case out <- SaveAsPDF:
		case <-ctx.Done():
		case <-handoff.C:
			logger(s.logger).Debug("scan result abandoned by consumer")
		}
	}()
	return out, nil
}

// Collect drains a scan into a slice.
func Collect(ch <-chan Destination) []Destination {
	var all []Destination
	for d := range ch {
		all = append(all, d)
	}
	return all
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

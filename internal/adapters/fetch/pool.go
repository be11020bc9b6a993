// Package fetch loads the pitch-type rows of a whole cohort with a bounded
// number of concurrent workers.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/pkg/logger"
	"github.com/okian/stuffscore/pkg/metrics"
)

// Default pool configuration constants.
const (
	defaultWorkers = 4
	defaultTimeout = 10 * time.Second
)

// SummaryProvider returns the rows of one pitcher.
type SummaryProvider interface {
	Summary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error)
}

// Pool fans a cohort out to a fixed number of workers. A Pool keeps no state
// between calls and may be shared by concurrent requests.
type Pool struct {
	provider SummaryProvider
	workers  int
	timeout  time.Duration
	active   atomic.Int64
	logger   logger.Logger
}

// NewPool creates a new fetch pool.
func NewPool(provider SummaryProvider, opts ...Option) *Pool {
	p := &Pool{
		provider: provider,
		workers:  defaultWorkers,
		timeout:  defaultTimeout,
		logger:   logger.Get().Named("fetch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Fetch loads every pitcher's rows and returns them in input order. It
// returns only once all pitchers are loaded; the first failure cancels the
// remaining work and fails the whole call, so callers never see a partial
// cohort.
func (p *Pool) Fetch(ctx context.Context, pitchers []pitch.Pitcher) ([]pitch.Summary, error) {
	if p.provider == nil {
		return nil, ErrNoProvider
	}
	out := make([]pitch.Summary, len(pitchers))
	if len(pitchers) == 0 {
		return out, nil
	}

	if p.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, p.timeout)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	workers := min(p.workers, len(pitchers))
	metrics.UpdateFetchWorkersActive(int(p.active.Add(int64(workers))))
	defer func() {
		metrics.UpdateFetchWorkersActive(int(p.active.Add(-int64(workers))))
	}()

	jobs := make(chan int)
	var (
		wg        sync.WaitGroup
		completed atomic.Int64
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				rows, err := p.fetchOne(ctx, pitchers[i])
				if err != nil {
					cancel(err)
					continue
				}
				out[i] = pitch.Summary{Pitcher: pitchers[i], Rows: rows}
				completed.Add(1)
			}
		}()
	}

feed:
	for i := range pitchers {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// A deadline that fires after the last job finished does not void a
	// complete cohort.
	if int(completed.Load()) < len(pitchers) {
		err := context.Cause(ctx)
		if !errors.Is(err, ErrFetch) {
			err = fmt.Errorf("%w: %w", ErrFetch, err)
		}
		p.logger.Warn(ctx, "cohort fetch aborted",
			logger.Int("pitchers", len(pitchers)),
			logger.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (p *Pool) fetchOne(ctx context.Context, pt pitch.Pitcher) ([]pitch.PitchTypeRow, error) {
	start := time.Now()
	rows, err := p.provider.Summary(ctx, pt.ID)
	metrics.RecordFetchLatency(float64(time.Since(start).Microseconds()) / 1000)

	if err != nil {
		metrics.RecordFetchError()
		metrics.RecordErrorByComponent("fetch", "summary")
		return nil, fmt.Errorf("%w: pitcher %d (%s): %w", ErrFetch, pt.ID, pt.Name, err)
	}
	return rows, nil
}

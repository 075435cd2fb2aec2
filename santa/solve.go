// Package santa - retry driver.
//
// Generate is the single loop owner: it rebuilds the giving matrix for every
// attempt, hands it to BuildCycle, and stops at the first complete list, when
// the attempt budget runs out, or when ctx is done.
package santa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/secretsanta/matrix"
)

// DefaultMaxAttempts bounds Generate when Options.MaxAttempts is zero.
const DefaultMaxAttempts = 20000

// Options configures Generate.
type Options struct {
	// MaxAttempts is the attempt budget; 0 means DefaultMaxAttempts.
	MaxAttempts int

	// Seed feeds NewSource when Source is nil (0 ⇒ fixed default seed).
	Seed int64

	// Source overrides Seed.
	Source Source

	// Logger receives per-attempt Debug records and a summary record.
	// Nil discards.
	Logger *slog.Logger

	// Metrics records attempt counters. Nil records nothing.
	Metrics *Metrics
}

// DefaultOptions returns Options with the default budget and seed policy.
func DefaultOptions() Options {
	return Options{MaxAttempts: DefaultMaxAttempts}
}

// Stats summarizes the attempts of one Generate call.
type Stats struct {
	Attempts         int
	NoViableReceiver int
	RiggingConflicts int
	Elapsed          time.Duration
}

// Result is a successful draw.
type Result struct {
	List  SantasList
	Stats Stats
}

// Generate draws a complete list for d.
//
// Errors:
//   - ErrInvalidOptions for a negative budget;
//   - ErrBudgetExhausted (wrapped with attempt statistics) when no attempt
//     succeeds within the budget. The returned Result still carries Stats;
//   - ctx.Err() (wrapped) when ctx is done between attempts.
//
// Attempt-level failures are counted and retried, never returned.
func Generate(ctx context.Context, d *Draw, opts Options) (Result, error) {
	if opts.MaxAttempts < 0 {
		return Result{}, fmt.Errorf("max attempts %d: %w", opts.MaxAttempts, ErrInvalidOptions)
	}
	var budget = opts.MaxAttempts
	if budget == 0 {
		budget = DefaultMaxAttempts
	}
	var src = opts.Source
	if src == nil {
		src = NewSource(opts.Seed)
	}
	var log = opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		t0    = time.Now()
		stats Stats
		m     *matrix.Dense
		list  SantasList
		fail  Failure
		err   error
	)
	for stats.Attempts < budget {
		if err = ctx.Err(); err != nil {
			stats.Elapsed = time.Since(t0)
			return Result{Stats: stats}, fmt.Errorf("after %d attempts: %w", stats.Attempts, err)
		}
		stats.Attempts++

		if m, err = d.BuildMatrix(); err != nil {
			return Result{Stats: stats}, err
		}
		list, fail, err = d.BuildCycle(m, src)
		if err != nil {
			return Result{Stats: stats}, err
		}
		opts.Metrics.observeAttempt(fail)

		switch fail {
		case FailNone:
			stats.Elapsed = time.Since(t0)
			list.ID = uuid.New()
			opts.Metrics.observeList(stats.Attempts)
			log.Info("santa list generated",
				"list_id", list.ID.String(),
				"participants", list.Len(),
				"attempts", stats.Attempts,
				"no_viable_receiver", stats.NoViableReceiver,
				"rigging_conflicts", stats.RiggingConflicts,
				"elapsed", stats.Elapsed)
			return Result{List: list, Stats: stats}, nil
		case FailNoViableReceiver:
			stats.NoViableReceiver++
		default:
			stats.RiggingConflicts++
		}
		log.Debug("attempt discarded", "attempt", stats.Attempts, "reason", fail.String())
	}

	stats.Elapsed = time.Since(t0)
	opts.Metrics.observeExhausted()
	log.Warn("attempt budget exhausted",
		"attempts", stats.Attempts,
		"no_viable_receiver", stats.NoViableReceiver,
		"rigging_conflicts", stats.RiggingConflicts)

	return Result{Stats: stats}, fmt.Errorf("%d attempts (%d with no options, %d rigging conflicts): %w",
		stats.Attempts, stats.NoViableReceiver, stats.RiggingConflicts, ErrBudgetExhausted)
}

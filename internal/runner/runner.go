// Package runner drives the bounded generation loop: synthesize a profile,
// append it, repeat until the deadline elapses or the context is cancelled.
package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/osgen/osgen/internal/profile"
	"github.com/osgen/osgen/internal/writer"
)

// Config holds the run parameters.
type Config struct {
	OutputPath string
	// Duration caps the wall-clock run time. Defaults to 30 minutes.
	Duration time.Duration
	// Delay is the pause between rows. Zero disables throttling.
	Delay time.Duration
	// Seed for the random source. Zero picks a time-based seed.
	Seed int64
}

// progressEvery controls how often a progress line is logged.
const progressEvery = 100

// Run appends synthesized rows to cfg.OutputPath until the duration elapses
// or ctx is cancelled. Cancellation is a clean stop, not an error; every row
// already appended is durable. Returns the number of rows written.
func Run(ctx context.Context, cfg Config) (int, error) {
	if cfg.Duration <= 0 {
		cfg.Duration = 30 * time.Minute
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w, err := writer.Open(cfg.OutputPath)
	if err != nil {
		return 0, err
	}
	defer w.Close()

	if err := w.EnsureHeader(profile.Header); err != nil {
		return 0, err
	}

	synth := profile.NewSynthesizer(cfg.Seed)

	log.Printf("[osgen] writing rows to %s", cfg.OutputPath)
	log.Printf("[osgen] running for up to %s or until interrupted", cfg.Duration)

	start := time.Now()
	deadline := start.Add(cfg.Duration)
	rows := 0

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			log.Printf("[osgen] stopped by operator after %d rows", rows)
			return rows, nil
		default:
		}

		p := synth.Synthesize()
		if err := w.Append(p.Record()); err != nil {
			return rows, fmt.Errorf("append row: %w", err)
		}
		rows++

		if rows%progressEvery == 0 {
			log.Printf("[osgen] generated %d rows (%.1f min elapsed)", rows, time.Since(start).Minutes())
		}

		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				log.Printf("[osgen] stopped by operator after %d rows", rows)
				return rows, nil
			case <-time.After(cfg.Delay):
			}
		}
	}

	log.Printf("[osgen] time limit reached after %d rows", rows)
	return rows, nil
}

// Package pacing provides the injectable delay provider used for
// readability pacing between repetitions and effect applications.
// Pacing is cosmetic, not a correctness requirement, so tests swap in
// implementations that never touch the wall clock.
package pacing

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the system default pacing between repetitions when
// a card carries no timing override
const DefaultDelay = 2 * time.Second

// Delayer waits for a pacing interval, honoring context cancellation
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// sleeper implements Delayer with a real timer
type sleeper struct{}

// NewSleeper creates the wall-clock delayer used in production
func NewSleeper() Delayer {
	return &sleeper{}
}

func (s *sleeper) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay is a Delayer that returns immediately
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

// Recorder is a Delayer for tests that records every requested wait
// without sleeping
type Recorder struct {
	mu    sync.Mutex
	waits []time.Duration
}

// NewRecorder creates a recording delayer
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Wait(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waits = append(r.waits, d)
	return ctx.Err()
}

// Waits returns a copy of the recorded wait durations in order
func (r *Recorder) Waits() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.waits))
	copy(out, r.waits)
	return out
}

package usecase

import (
	"context"
	"time"
)

// TimerDelayer sleeps on a real timer.
type TimerDelayer struct{}

func (TimerDelayer) Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay returns immediately unless ctx is already done.
type NoDelay struct{}

func (NoDelay) Delay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

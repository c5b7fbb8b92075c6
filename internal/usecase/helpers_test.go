package usecase

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"veritas-core/internal/domain/repository"
)

func seeded(seed uint64) repository.RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// scriptedRand replays fixed draws. IntN falls back to 0 once ints run out.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// recordingDelayer records requested delays without sleeping.
type recordingDelayer struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingDelayer) Delay(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
	return ctx.Err()
}

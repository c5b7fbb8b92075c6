package store

import (
	"context"
	"sync"
	"time"

	"veritas-core/internal/domain/entity"
)

// MemoryLimiter is the usage counter used when no Redis is configured.
type MemoryLimiter struct {
	mu     sync.Mutex
	counts map[string]dayCount
	now    func() time.Time
}

type dayCount struct {
	day   string
	count int
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		counts: make(map[string]dayCount),
		now:    time.Now,
	}
}

func (m *MemoryLimiter) CheckLimit(ctx context.Context, userID string, limit int) (bool, error) {
	if limit == entity.Unlimited {
		return true, nil
	}
	usage, err := m.Usage(ctx, userID)
	if err != nil {
		return false, err
	}
	return usage < limit, nil
}

func (m *MemoryLimiter) Reserve(_ context.Context, userID string, limit int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.current(userID)
	if limit != entity.Unlimited && c.count >= limit {
		return false, nil
	}
	c.count++
	m.counts[userID] = c
	return true, nil
}

func (m *MemoryLimiter) Increment(_ context.Context, userID string, queries int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.current(userID)
	c.count = max(0, c.count+queries)
	m.counts[userID] = c
	return nil
}

func (m *MemoryLimiter) Usage(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current(userID).count, nil
}

// current returns today's count for userID. Callers hold mu.
func (m *MemoryLimiter) current(userID string) dayCount {
	day := m.today()
	c := m.counts[userID]
	if c.day != day {
		c = dayCount{day: day}
	}
	return c
}

func (m *MemoryLimiter) today() string {
	return m.now().UTC().Format("2006-01-02")
}

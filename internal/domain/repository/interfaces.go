//go:generate mockgen -package=mocks -destination=../../mocks/mock_repository.go veritas-core/internal/domain/repository UsageLimiter,SessionStore

package repository

import (
	"context"
	"time"

	"veritas-core/internal/domain/entity"
)

// RandomSource is satisfied by *rand.Rand from math/rand/v2. Tests seed it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// Delayer waits for d or until ctx is done.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration) error
}

type UsageLimiter interface {
	CheckLimit(ctx context.Context, userID string, limit int) (bool, error)
	// Reserve counts one query if today's usage is still under limit. The
	// check and the count are atomic.
	Reserve(ctx context.Context, userID string, limit int) (bool, error)
	// Increment adds queries to today's usage. Negative values refund.
	Increment(ctx context.Context, userID string, queries int) error
	Usage(ctx context.Context, userID string) (int, error)
}

type SessionStore interface {
	State(ctx context.Context, userID string) (entity.SessionState, error)
	// SetAnalyzing marks one run as started or finished. The state reports
	// analyzing while any run is in flight.
	SetAnalyzing(ctx context.Context, userID string, analyzing bool) error
	Publish(ctx context.Context, userID string, session *entity.AnalysisSession) error
	Fail(ctx context.Context, userID string, message string) error
	Clear(ctx context.Context, userID string) error
	ClearError(ctx context.Context, userID string) error
	History(ctx context.Context, userID string) ([]entity.AnalysisSession, error)
	Find(ctx context.Context, userID, sessionID string) (*entity.AnalysisSession, error)
	Delete(ctx context.Context, userID, sessionID string) error
}

type SubscriptionStore interface {
	Tier(ctx context.Context, userID string) (entity.Tier, error)
	SetTier(ctx context.Context, userID string, tier entity.Tier) error
}

type UserStore interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"
	"veritas-core/internal/logging"
)

const defaultAnalysisTimeout = 60 * time.Second

type Orchestrator struct {
	analyzer      *Analyzer
	sessions      repository.SessionStore
	limiter       repository.UsageLimiter
	subscriptions *SubscriptionService
	retrier       *Retrier
	newRand       func() repository.RandomSource
	timeout       time.Duration
	log           logging.Logger
}

type OrchestratorOption func(*Orchestrator)

// WithRandSource replaces the per-request random source factory.
func WithRandSource(f func() repository.RandomSource) OrchestratorOption {
	return func(o *Orchestrator) { o.newRand = f }
}

func WithAnalysisTimeout(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func NewOrchestrator(analyzer *Analyzer, sessions repository.SessionStore, limiter repository.UsageLimiter, subs *SubscriptionService, log logging.Logger, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		analyzer:      analyzer,
		sessions:      sessions,
		limiter:       limiter,
		subscriptions: subs,
		retrier:       NewRetrier(log),
		newRand: func() repository.RandomSource {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		timeout: defaultAnalysisTimeout,
		log:     log,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (u *Orchestrator) Catalog() entity.Catalog {
	return u.analyzer.Catalog()
}

// Execute validates the request against the caller's plan, runs the
// analysis and publishes the session as the caller's current one.
func (u *Orchestrator) Execute(ctx context.Context, userID string, req entity.AnalysisRequest) (*entity.AnalysisSession, error) {
	log := u.log.With("user_id", userID)

	// 1. Check plan limits
	tier, err := u.subscriptions.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	limits := tier.Limits()
	if err := u.validate(ctx, userID, req, tier); err != nil {
		return nil, err
	}

	// 2. Take one query from today's quota; concurrent requests race here
	allowed, err := u.limiter.Reserve(ctx, userID, limits.DailyQueries)
	if err != nil {
		return nil, fmt.Errorf("rate limiter check failed: %w", err)
	}
	if !allowed {
		return nil, entity.ErrDailyLimitReached
	}
	bgCtx := context.WithoutCancel(ctx)
	published := false
	defer func() {
		if !published {
			u.refund(bgCtx, userID, log)
		}
	}()

	// 3. Mark in flight; the flag is reset even if ctx is gone by then
	if err := u.sessions.SetAnalyzing(ctx, userID, true); err != nil {
		return nil, fmt.Errorf("session state update failed: %w", err)
	}
	defer func() {
		if err := u.sessions.SetAnalyzing(bgCtx, userID, false); err != nil {
			log.Warn("failed to reset analyzing flag", "error", err)
		}
	}()
	if err := u.sessions.ClearError(ctx, userID); err != nil {
		return nil, fmt.Errorf("session state update failed: %w", err)
	}

	// 4. Run the engines
	analyzer := u.analyzer
	if limits.PriorityProcessing {
		analyzer = analyzer.Prioritized()
	}
	runCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	session, err := analyzer.Run(runCtx, req.Text, req.EngineIDs, u.newRand())
	if err != nil {
		log.Error("analysis failed", "error", err)
		if errors.Is(err, entity.ErrAnalysisFailed) {
			if ferr := u.sessions.Fail(bgCtx, userID, entity.AnalysisFailedMessage); ferr != nil {
				log.Warn("failed to record analysis error", "error", ferr)
			}
		}
		return nil, err
	}

	// 5. Publish
	if err := u.sessions.Publish(bgCtx, userID, session); err != nil {
		log.Error("failed to publish session", "session_id", session.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", entity.ErrAnalysisFailed, err)
	}
	published = true

	log.Info("analysis published",
		"session_id", session.ID,
		"engines", len(session.Results),
		"verdict", session.OverallVerdict,
		"confidence", session.OverallConfidence,
		"processing_ms", session.ProcessingTimeMs,
	)
	return session, nil
}

// validate applies the plan checks in the order the user would hit them.
// The daily check here only orders the errors; Reserve enforces the quota.
func (u *Orchestrator) validate(ctx context.Context, userID string, req entity.AnalysisRequest, tier entity.Tier) error {
	limits := tier.Limits()
	allowed, err := u.limiter.CheckLimit(ctx, userID, limits.DailyQueries)
	if err != nil {
		return fmt.Errorf("rate limiter check failed: %w", err)
	}
	if !allowed {
		return entity.ErrDailyLimitReached
	}

	ids := dedupe(req.EngineIDs)
	if len(ids) == 0 {
		return entity.ErrNoEnginesSelected
	}
	if strings.TrimSpace(req.Text) == "" {
		return entity.ErrEmptyText
	}
	if n := utf8.RuneCountInString(req.Text); n > limits.MaxTextLength {
		return fmt.Errorf("%w: %d of %d characters", entity.ErrTextTooLong, n, limits.MaxTextLength)
	}

	catalog := u.analyzer.Catalog()
	for _, id := range ids {
		engine, ok := catalog.Find(id)
		if !ok {
			return fmt.Errorf("%w: %s", entity.ErrUnknownEngine, id)
		}
		if engine.Premium && tier == entity.TierFree {
			return fmt.Errorf("%w: %s", entity.ErrPremiumEngine, engine.Name)
		}
	}
	if limits.AIEngines != entity.Unlimited && len(ids) > limits.AIEngines {
		return fmt.Errorf("%w: up to %d engines", entity.ErrEngineLimit, limits.AIEngines)
	}
	return nil
}

// refund returns a reserved query after a run that published nothing.
func (u *Orchestrator) refund(ctx context.Context, userID string, log logging.Logger) {
	err := u.retrier.Do(ctx, "usage refund", func(c context.Context) error {
		return u.limiter.Increment(c, userID, -1)
	})
	if err != nil {
		log.Warn("failed to refund usage", "error", err)
	}
}

func (u *Orchestrator) State(ctx context.Context, userID string) (entity.SessionState, error) {
	return u.sessions.State(ctx, userID)
}

func (u *Orchestrator) Clear(ctx context.Context, userID string) error {
	return u.sessions.Clear(ctx, userID)
}

func (u *Orchestrator) ClearError(ctx context.Context, userID string) error {
	return u.sessions.ClearError(ctx, userID)
}

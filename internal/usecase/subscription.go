package usecase

import (
	"context"
	"fmt"
	"time"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"
	"veritas-core/internal/logging"
)

const (
	upgradeDelay = 2 * time.Second
	cancelDelay  = 1 * time.Second
)

// SubscriptionService owns the per-user tier and reports today's usage
// against it. Upgrades and cancellations are simulated.
type SubscriptionService struct {
	store   repository.SubscriptionStore
	limiter repository.UsageLimiter
	delayer repository.Delayer
	log     logging.Logger
}

func NewSubscriptionService(store repository.SubscriptionStore, limiter repository.UsageLimiter, delayer repository.Delayer, log logging.Logger) *SubscriptionService {
	return &SubscriptionService{store: store, limiter: limiter, delayer: delayer, log: log}
}

func (s *SubscriptionService) Tier(ctx context.Context, userID string) (entity.Tier, error) {
	tier, err := s.store.Tier(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("subscription lookup failed: %w", err)
	}
	return tier, nil
}

func (s *SubscriptionService) Status(ctx context.Context, userID string) (*entity.Subscription, error) {
	tier, err := s.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	queries, err := s.limiter.Usage(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usage lookup failed: %w", err)
	}
	return &entity.Subscription{
		Tier:       tier,
		Limits:     tier.Limits(),
		UsageToday: entity.Usage{Queries: queries},
		CanUpgrade: tier == entity.TierFree,
	}, nil
}

func (s *SubscriptionService) Upgrade(ctx context.Context, userID string) (*entity.Subscription, error) {
	tier, err := s.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tier == entity.TierPremium {
		return nil, entity.ErrAlreadyPremium
	}
	if err := s.delayer.Delay(ctx, upgradeDelay); err != nil {
		return nil, err
	}
	if err := s.store.SetTier(ctx, userID, entity.TierPremium); err != nil {
		return nil, fmt.Errorf("upgrade failed: %w", err)
	}
	s.log.Info("subscription upgraded", "user_id", userID)
	return s.Status(ctx, userID)
}

func (s *SubscriptionService) Cancel(ctx context.Context, userID string) (*entity.Subscription, error) {
	if err := s.delayer.Delay(ctx, cancelDelay); err != nil {
		return nil, err
	}
	if err := s.store.SetTier(ctx, userID, entity.TierFree); err != nil {
		return nil, fmt.Errorf("cancel failed: %w", err)
	}
	s.log.Info("subscription cancelled", "user_id", userID)
	return s.Status(ctx, userID)
}

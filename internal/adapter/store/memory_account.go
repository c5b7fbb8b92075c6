package store

import (
	"context"
	"strings"
	"sync"

	"veritas-core/internal/domain/entity"
)

// MemorySubscriptionStore holds each user's tier. Unknown users are free.
type MemorySubscriptionStore struct {
	mu    sync.RWMutex
	tiers map[string]entity.Tier
}

func NewMemorySubscriptionStore() *MemorySubscriptionStore {
	return &MemorySubscriptionStore{tiers: make(map[string]entity.Tier)}
}

func (s *MemorySubscriptionStore) Tier(_ context.Context, userID string) (entity.Tier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tiers[userID]; ok {
		return t, nil
	}
	return entity.TierFree, nil
}

func (s *MemorySubscriptionStore) SetTier(_ context.Context, userID string, tier entity.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiers[userID] = tier
	return nil
}

type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryUserStore) Save(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.byID[u.ID] = &u
	s.byEmail[strings.ToLower(u.Email)] = u.ID
	return nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, entity.ErrResourceNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, entity.ErrResourceNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

package store

import (
	"context"
	"sync"

	"veritas-core/internal/domain/entity"
)

type userSessions struct {
	state    entity.SessionState
	inflight int
	history  []entity.AnalysisSession // newest first
}

// MemorySessionStore keeps each user's current session and a bounded
// history for the lifetime of the process.
type MemorySessionStore struct {
	mu           sync.RWMutex
	users        map[string]*userSessions
	historyLimit int
}

func NewMemorySessionStore(historyLimit int) *MemorySessionStore {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &MemorySessionStore{
		users:        make(map[string]*userSessions),
		historyLimit: historyLimit,
	}
}

func (s *MemorySessionStore) get(userID string) *userSessions {
	u, ok := s.users[userID]
	if !ok {
		u = &userSessions{}
		s.users[userID] = u
	}
	return u
}

func (s *MemorySessionStore) State(_ context.Context, userID string) (entity.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return entity.SessionState{}, nil
	}
	return u.state, nil
}

func (s *MemorySessionStore) SetAnalyzing(_ context.Context, userID string, analyzing bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.get(userID)
	if analyzing {
		u.inflight++
	} else if u.inflight > 0 {
		u.inflight--
	}
	u.state.Analyzing = u.inflight > 0
	return nil
}

// Publish replaces the current session and records it in history.
func (s *MemorySessionStore) Publish(_ context.Context, userID string, session *entity.AnalysisSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.get(userID)
	u.state.Current = session
	u.state.LastError = ""

	u.history = append([]entity.AnalysisSession{*session}, u.history...)
	if len(u.history) > s.historyLimit {
		u.history = u.history[:s.historyLimit]
	}
	return nil
}

func (s *MemorySessionStore) Fail(_ context.Context, userID string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).state.LastError = message
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.get(userID)
	u.state.Current = nil
	u.state.LastError = ""
	return nil
}

func (s *MemorySessionStore) ClearError(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).state.LastError = ""
	return nil
}

func (s *MemorySessionStore) History(_ context.Context, userID string) ([]entity.AnalysisSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	out := make([]entity.AnalysisSession, len(u.history))
	copy(out, u.history)
	return out, nil
}

func (s *MemorySessionStore) Find(_ context.Context, userID, sessionID string) (*entity.AnalysisSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		for i := range u.history {
			if u.history[i].ID == sessionID {
				found := u.history[i]
				return &found, nil
			}
		}
	}
	return nil, entity.ErrResourceNotFound
}

func (s *MemorySessionStore) Delete(_ context.Context, userID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		for i := range u.history {
			if u.history[i].ID == sessionID {
				u.history = append(u.history[:i], u.history[i+1:]...)
				return nil
			}
		}
	}
	return entity.ErrResourceNotFound
}

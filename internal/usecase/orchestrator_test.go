package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"veritas-core/internal/adapter/store"
	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"
	"veritas-core/internal/logging"
	"veritas-core/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorFixture struct {
	orch     *Orchestrator
	sessions *store.MemorySessionStore
	limiter  *store.MemoryLimiter
	tiers    *store.MemorySubscriptionStore
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	f := &orchestratorFixture{
		sessions: store.NewMemorySessionStore(10),
		limiter:  store.NewMemoryLimiter(),
		tiers:    store.NewMemorySubscriptionStore(),
	}
	log := logging.Discard()
	subs := NewSubscriptionService(f.tiers, f.limiter, NoDelay{}, log)
	analyzer := NewAnalyzer(entity.DefaultCatalog(), NoDelay{}, 0, 0)
	f.orch = NewOrchestrator(analyzer, f.sessions, f.limiter, subs, log,
		WithRandSource(func() repository.RandomSource { return seeded(11) }),
	)
	return f
}

func TestOrchestratorExecutePublishesSession(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	session, err := f.orch.Execute(ctx, "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4", "claude"}})
	require.NoError(t, err)
	require.Len(t, session.Results, 2)

	state, err := f.orch.State(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, state.Current)
	assert.Equal(t, session.ID, state.Current.ID)
	assert.False(t, state.Analyzing)
	assert.Empty(t, state.LastError)

	usage, err := f.limiter.Usage(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, usage)

	history, err := f.sessions.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestOrchestratorExecuteReplacesCurrentSession(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	req := entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}}

	first, err := f.orch.Execute(ctx, "u1", req)
	require.NoError(t, err)
	second, err := f.orch.Execute(ctx, "u1", req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	state, err := f.orch.State(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, state.Current.ID)
}

func TestOrchestratorValidation(t *testing.T) {
	tests := []struct {
		name    string
		premium bool
		used    int
		req     entity.AnalysisRequest
		wantErr error
	}{
		{
			name:    "daily limit",
			used:    5,
			req:     entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}},
			wantErr: entity.ErrDailyLimitReached,
		},
		{
			name:    "no engines",
			req:     entity.AnalysisRequest{Text: sampleText},
			wantErr: entity.ErrNoEnginesSelected,
		},
		{
			name:    "blank text",
			req:     entity.AnalysisRequest{Text: " \n\t", EngineIDs: []string{"gpt4"}},
			wantErr: entity.ErrEmptyText,
		},
		{
			name:    "free text limit",
			req:     entity.AnalysisRequest{Text: strings.Repeat("a", 501), EngineIDs: []string{"gpt4"}},
			wantErr: entity.ErrTextTooLong,
		},
		{
			name:    "premium text limit",
			premium: true,
			req:     entity.AnalysisRequest{Text: strings.Repeat("a", 2001), EngineIDs: []string{"gpt4"}},
			wantErr: entity.ErrTextTooLong,
		},
		{
			name:    "unknown engine",
			req:     entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4", "bard"}},
			wantErr: entity.ErrUnknownEngine,
		},
		{
			name:    "premium engine on free plan",
			req:     entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"grok"}},
			wantErr: entity.ErrPremiumEngine,
		},
		{
			name:    "too many engines on free plan",
			req:     entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4", "claude", "gpt35"}},
			wantErr: entity.ErrEngineLimit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrchestratorFixture(t)
			ctx := context.Background()
			if tt.premium {
				require.NoError(t, f.tiers.SetTier(ctx, "u1", entity.TierPremium))
			}
			require.NoError(t, f.limiter.Increment(ctx, "u1", tt.used))

			session, err := f.orch.Execute(ctx, "u1", tt.req)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.wantErr)

			state, err := f.orch.State(ctx, "u1")
			require.NoError(t, err)
			assert.Nil(t, state.Current)
		})
	}
}

func TestOrchestratorPremiumUnlocksEngines(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	require.NoError(t, f.tiers.SetTier(ctx, "u1", entity.TierPremium))
	require.NoError(t, f.limiter.Increment(ctx, "u1", 100))

	ids := []string{"gpt4", "claude", "grok", "gemini", "gpt35", "palm"}
	session, err := f.orch.Execute(ctx, "u1", entity.AnalysisRequest{Text: strings.Repeat("b", 2000), EngineIDs: ids})
	require.NoError(t, err)
	assert.Len(t, session.Results, len(ids))
}

func TestOrchestratorCancelledRunRecordsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessionStore(ctrl)
	limiter := mocks.NewMockUsageLimiter(ctrl)
	log := logging.Discard()

	subs := NewSubscriptionService(store.NewMemorySubscriptionStore(), limiter, NoDelay{}, log)
	analyzer := NewAnalyzer(entity.DefaultCatalog(), TimerDelayer{}, time.Hour, time.Hour)
	orch := NewOrchestrator(analyzer, sessions, limiter, subs, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gomock.InOrder(
		limiter.EXPECT().CheckLimit(gomock.Any(), "u1", 5).Return(true, nil),
		limiter.EXPECT().Reserve(gomock.Any(), "u1", 5).Return(true, nil),
		sessions.EXPECT().SetAnalyzing(gomock.Any(), "u1", true).Return(nil),
		sessions.EXPECT().ClearError(gomock.Any(), "u1").Return(nil),
		sessions.EXPECT().Fail(gomock.Any(), "u1", entity.AnalysisFailedMessage).Return(nil),
		sessions.EXPECT().SetAnalyzing(gomock.Any(), "u1", false).Return(nil),
		limiter.EXPECT().Increment(gomock.Any(), "u1", -1).Return(nil),
	)
	sessions.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	session, err := orch.Execute(ctx, "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	assert.Nil(t, session)
	assert.ErrorIs(t, err, entity.ErrAnalysisFailed)
}

func TestOrchestratorPublishFailureIsAnalysisFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessionStore(ctrl)
	limiter := mocks.NewMockUsageLimiter(ctrl)
	log := logging.Discard()

	subs := NewSubscriptionService(store.NewMemorySubscriptionStore(), limiter, NoDelay{}, log)
	orch := NewOrchestrator(NewAnalyzer(entity.DefaultCatalog(), NoDelay{}, 0, 0), sessions, limiter, subs, log)

	limiter.EXPECT().CheckLimit(gomock.Any(), "u1", 5).Return(true, nil)
	limiter.EXPECT().Reserve(gomock.Any(), "u1", 5).Return(true, nil)
	sessions.EXPECT().SetAnalyzing(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(2)
	sessions.EXPECT().ClearError(gomock.Any(), "u1").Return(nil)
	sessions.EXPECT().Publish(gomock.Any(), "u1", gomock.Any()).Return(errors.New("store down"))
	limiter.EXPECT().Increment(gomock.Any(), "u1", -1).Return(nil)

	_, err := orch.Execute(context.Background(), "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	assert.ErrorIs(t, err, entity.ErrAnalysisFailed)
}

func TestOrchestratorRefundFailureIsOnlyLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockUsageLimiter(ctrl)
	log := logging.Discard()
	sessions := store.NewMemorySessionStore(10)

	subs := NewSubscriptionService(store.NewMemorySubscriptionStore(), limiter, NoDelay{}, log)
	analyzer := NewAnalyzer(entity.DefaultCatalog(), TimerDelayer{}, time.Hour, time.Hour)
	orch := NewOrchestrator(analyzer, sessions, limiter, subs, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	limiter.EXPECT().CheckLimit(gomock.Any(), "u1", 5).Return(true, nil)
	limiter.EXPECT().Reserve(gomock.Any(), "u1", 5).Return(true, nil)
	limiter.EXPECT().Increment(gomock.Any(), "u1", -1).Return(errors.New("WRONGTYPE Operation against a key holding the wrong kind of value"))

	_, err := orch.Execute(ctx, "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	assert.ErrorIs(t, err, entity.ErrAnalysisFailed)

	state, err := sessions.State(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, state.Analyzing)
	assert.Equal(t, entity.AnalysisFailedMessage, state.LastError)
}

func TestOrchestratorReserveRefusalIsDailyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockUsageLimiter(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	log := logging.Discard()

	subs := NewSubscriptionService(store.NewMemorySubscriptionStore(), limiter, NoDelay{}, log)
	orch := NewOrchestrator(NewAnalyzer(entity.DefaultCatalog(), NoDelay{}, 0, 0), sessions, limiter, subs, log)

	limiter.EXPECT().CheckLimit(gomock.Any(), "u1", 5).Return(true, nil)
	limiter.EXPECT().Reserve(gomock.Any(), "u1", 5).Return(false, nil)
	limiter.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	sessions.EXPECT().SetAnalyzing(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := orch.Execute(context.Background(), "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	assert.ErrorIs(t, err, entity.ErrDailyLimitReached)
}

func TestOrchestratorConcurrentRequestsHonorDailyLimit(t *testing.T) {
	sessions := store.NewMemorySessionStore(50)
	limiter := store.NewMemoryLimiter()
	log := logging.Discard()
	subs := NewSubscriptionService(store.NewMemorySubscriptionStore(), limiter, NoDelay{}, log)
	analyzer := NewAnalyzer(entity.DefaultCatalog(), TimerDelayer{}, 20*time.Millisecond, 20*time.Millisecond)
	orch := NewOrchestrator(analyzer, sessions, limiter, subs, log)

	const requests = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		limited   int
	)
	for range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orch.Execute(context.Background(), "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, entity.ErrDailyLimitReached):
				limited++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	daily := entity.TierFree.Limits().DailyQueries
	assert.Equal(t, daily, successes)
	assert.Equal(t, requests-daily, limited)

	usage, err := limiter.Usage(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, daily, usage)

	state, err := sessions.State(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, state.Analyzing)
}

func TestOrchestratorFailedRunRefundsQuota(t *testing.T) {
	f := newOrchestratorFixture(t)
	require.NoError(t, f.limiter.Increment(context.Background(), "u1", 4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := NewOrchestrator(NewAnalyzer(entity.DefaultCatalog(), TimerDelayer{}, time.Hour, time.Hour),
		f.sessions, f.limiter, NewSubscriptionService(f.tiers, f.limiter, NoDelay{}, logging.Discard()), logging.Discard())

	_, err := slow.Execute(ctx, "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	require.ErrorIs(t, err, entity.ErrAnalysisFailed)

	usage, err := f.limiter.Usage(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, usage)

	_, err = f.orch.Execute(context.Background(), "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	assert.NoError(t, err, "the refunded query is still available")
}

func TestOrchestratorLimiterErrorStopsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockUsageLimiter(ctrl)
	log := logging.Discard()

	subs := NewSubscriptionService(store.NewMemorySubscriptionStore(), limiter, NoDelay{}, log)
	orch := NewOrchestrator(NewAnalyzer(entity.DefaultCatalog(), NoDelay{}, 0, 0), store.NewMemorySessionStore(10), limiter, subs, log)

	limiter.EXPECT().CheckLimit(gomock.Any(), "u1", 5).Return(false, errors.New("dial tcp: connection refused"))

	_, err := orch.Execute(context.Background(), "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	assert.ErrorContains(t, err, "rate limiter check failed")
}

func TestOrchestratorClearState(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	_, err := f.orch.Execute(ctx, "u1", entity.AnalysisRequest{Text: sampleText, EngineIDs: []string{"gpt4"}})
	require.NoError(t, err)
	require.NoError(t, f.sessions.Fail(ctx, "u1", "boom"))

	require.NoError(t, f.orch.ClearError(ctx, "u1"))
	state, err := f.orch.State(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, state.LastError)
	assert.NotNil(t, state.Current)

	require.NoError(t, f.orch.Clear(ctx, "u1"))
	state, err = f.orch.State(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, state.Current)
}

package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"
)

// HistoryService serves past sessions: listing, comparison and export.
type HistoryService struct {
	sessions      repository.SessionStore
	subscriptions *SubscriptionService
	catalog       entity.Catalog
	newRand       func() repository.RandomSource
}

func NewHistoryService(sessions repository.SessionStore, subs *SubscriptionService, catalog entity.Catalog) *HistoryService {
	return &HistoryService{
		sessions:      sessions,
		subscriptions: subs,
		catalog:       catalog,
		newRand: func() repository.RandomSource {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// List returns the caller's sessions, newest first. filter is "all", empty,
// or a verdict. Plans with a history cap only see their newest sessions.
func (h *HistoryService) List(ctx context.Context, userID, filter string) ([]entity.HistoryRecord, error) {
	if filter != "" && filter != "all" && !entity.Verdict(filter).Valid() {
		return nil, fmt.Errorf("%w: unknown filter %q", entity.ErrInvalidRequest, filter)
	}
	tier, err := h.subscriptions.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := h.sessions.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history lookup failed: %w", err)
	}
	if limit := tier.Limits().HistoryRecords; limit != entity.Unlimited && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	records := make([]entity.HistoryRecord, 0, len(sessions))
	for _, s := range sessions {
		if filter != "" && filter != "all" && s.OverallVerdict != entity.Verdict(filter) {
			continue
		}
		records = append(records, entity.HistoryRecord{
			ID:             s.ID,
			Text:           s.OriginalText,
			Timestamp:      s.CreatedAt,
			OverallVerdict: s.OverallVerdict,
			Confidence:     s.OverallConfidence,
			EngineCount:    len(s.Results),
		})
	}
	return records, nil
}

// Delete removes one session from the caller's history. The current
// session, if it is the same one, stays on screen.
func (h *HistoryService) Delete(ctx context.Context, userID, sessionID string) error {
	return h.sessions.Delete(ctx, userID, sessionID)
}

func (h *HistoryService) Comparison(ctx context.Context, userID, sessionID, sortBy string) (*entity.ComparisonReport, error) {
	key, err := ParseSortKey(sortBy)
	if err != nil {
		return nil, err
	}
	session, err := h.sessions.Find(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	tier, err := h.subscriptions.Tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildComparison(session, h.catalog, tier, key, h.newRand()), nil
}

// Export renders a past session for download. Premium only.
func (h *HistoryService) Export(ctx context.Context, userID, sessionID, format string) ([]byte, string, error) {
	tier, err := h.subscriptions.Tier(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if !tier.Limits().ExportResults {
		return nil, "", entity.ErrPremiumFeature
	}
	f, err := ParseExportFormat(format)
	if err != nil {
		return nil, "", err
	}
	session, err := h.sessions.Find(ctx, userID, sessionID)
	if err != nil {
		return nil, "", err
	}
	return Export(session, f)
}

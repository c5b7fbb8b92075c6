package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"

	"github.com/google/uuid"
)

const (
	DefaultMinDelay = 1500 * time.Millisecond
	DefaultMaxDelay = 4000 * time.Millisecond
)

// Analyzer runs the mock engines over one chat message.
type Analyzer struct {
	catalog  entity.Catalog
	delayer  repository.Delayer
	minDelay time.Duration
	maxDelay time.Duration
	now      func() time.Time
}

func NewAnalyzer(catalog entity.Catalog, delayer repository.Delayer, minDelay, maxDelay time.Duration) *Analyzer {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Analyzer{
		catalog:  catalog,
		delayer:  delayer,
		minDelay: minDelay,
		maxDelay: maxDelay,
		now:      time.Now,
	}
}

func (a *Analyzer) Catalog() entity.Catalog {
	return a.catalog
}

// Prioritized returns a copy of a whose simulated latency is halved.
func (a *Analyzer) Prioritized() *Analyzer {
	cp := *a
	cp.minDelay /= 2
	cp.maxDelay /= 2
	return &cp
}

// Run scores text with every engine in engineIDs, one at a time in request
// order, and assembles the session once all of them finished. Duplicate ids
// are collapsed. An id missing from the catalog is scored under its own id
// at the default rate.
//
// Cancelling ctx abandons the run; no partial session is returned.
func (a *Analyzer) Run(ctx context.Context, text string, engineIDs []string, rng repository.RandomSource) (*entity.AnalysisSession, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyText
	}
	ids := dedupe(engineIDs)
	if len(ids) == 0 {
		return nil, entity.ErrNoEnginesSelected
	}

	sessionID := uuid.NewString()
	start := a.now()
	features := ExtractFeatures(text)
	results := make([]entity.EngineResult, 0, len(ids))

	for _, id := range ids {
		engine, ok := a.catalog.Find(id)
		if !ok {
			engine = entity.EngineDescriptor{ID: id, Name: id}
		}

		callStart := a.now()
		if err := a.delayer.Delay(ctx, a.delayFor(rng)); err != nil {
			return nil, fmt.Errorf("%w: engine %s: %w", entity.ErrAnalysisFailed, id, err)
		}

		result := ScoreEngine(engine, features, a.now().Sub(callStart), rng)
		result.ID = sessionID + "-" + engine.ID
		results = append(results, result)
	}

	overall := Aggregate(results)
	return &entity.AnalysisSession{
		ID:                sessionID,
		OriginalText:      text,
		SelectedEngines:   ids,
		Results:           results,
		OverallVerdict:    overall.Verdict,
		OverallConfidence: overall.Confidence,
		CreatedAt:         a.now(),
		ProcessingTimeMs:  a.now().Sub(start).Milliseconds(),
	}, nil
}

func (a *Analyzer) delayFor(rng repository.RandomSource) time.Duration {
	span := a.maxDelay - a.minDelay
	return a.minDelay + time.Duration(rng.Float64()*float64(span))
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

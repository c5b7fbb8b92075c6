package usecase

import (
	"testing"

	"veritas-core/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func results(pairs ...any) []entity.EngineResult {
	var out []entity.EngineResult
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, entity.EngineResult{
			Verdict:    pairs[i].(entity.Verdict),
			Confidence: pairs[i+1].(int),
		})
	}
	return out
}

func TestAggregate(t *testing.T) {
	const (
		tr = entity.VerdictTruthful
		de = entity.VerdictDeceptive
		un = entity.VerdictUncertain
	)
	tests := []struct {
		name    string
		in      []entity.EngineResult
		verdict entity.Verdict
		conf    int
	}{
		{"empty", nil, un, 0},
		{"single engine", results(de, 72), de, 72},
		{"two of three truthful", results(tr, 90, tr, 88, de, 70), tr, 83},
		{"two of three deceptive", results(de, 61, tr, 95, de, 66), de, 74},
		{"truthful against deceptive ties", results(tr, 90, de, 80), un, 85},
		{"one of each ties", results(tr, 90, de, 80, un, 70), un, 80},
		{"uncertain plurality", results(un, 75, un, 77, tr, 90), un, 81},
		{"two-two tie", results(tr, 60, tr, 60, de, 95, de, 95), un, 78},
		{"rounds half up", results(tr, 60, tr, 61), tr, 61},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.in)
			assert.Equal(t, tt.verdict, got.Verdict)
			assert.Equal(t, tt.conf, got.Confidence)
		})
	}
}

func TestAggregateConfidenceStaysInBounds(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		rng := seeded(seed)
		var rs []entity.EngineResult
		for _, e := range entity.DefaultCatalog() {
			rs = append(rs, ScoreEngine(e, ExtractFeatures("Are you sure? Really? Honestly?"), 0, rng))
			got := Aggregate(rs)
			assert.GreaterOrEqual(t, got.Confidence, 60)
			assert.LessOrEqual(t, got.Confidence, 95)
			assert.True(t, got.Verdict.Valid())
		}
	}
}

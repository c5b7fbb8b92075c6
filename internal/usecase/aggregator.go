package usecase

import (
	"math"

	"veritas-core/internal/domain/entity"
)

type Overall struct {
	Verdict    entity.Verdict `json:"verdict"`
	Confidence int            `json:"confidence"`
}

// Aggregate combines engine results by plurality vote. A verdict must beat
// both others strictly; anything else, including an empty input, is uncertain.
func Aggregate(results []entity.EngineResult) Overall {
	if len(results) == 0 {
		return Overall{Verdict: entity.VerdictUncertain}
	}

	counts := make(map[entity.Verdict]int, 3)
	sum := 0
	for _, r := range results {
		counts[r.Verdict]++
		sum += r.Confidence
	}
	confidence := int(math.Round(float64(sum) / float64(len(results))))

	truthful := counts[entity.VerdictTruthful]
	deceptive := counts[entity.VerdictDeceptive]
	uncertain := counts[entity.VerdictUncertain]

	verdict := entity.VerdictUncertain
	switch {
	case truthful > deceptive && truthful > uncertain:
		verdict = entity.VerdictTruthful
	case deceptive > truthful && deceptive > uncertain:
		verdict = entity.VerdictDeceptive
	}
	return Overall{Verdict: verdict, Confidence: confidence}
}

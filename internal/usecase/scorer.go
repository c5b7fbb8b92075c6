package usecase

import (
	"math"
	"strings"
	"time"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"
)

const (
	baseConfidence      = 65.0
	baseConfidenceRange = 35.0
	minConfidence       = 60.0
	maxConfidence       = 95.0

	highConfidenceBand = 85.0
	lowConfidenceBand  = 70.0

	// Verdict draw thresholds. These are mock values with no tuning behind them.
	highBandTruthfulOver = 0.3
	lowBandDeceptiveOver = 0.4
	midBandUncertainOver = 0.5
	midBandTruthfulOver  = 0.5

	shortTextLength      = 50
	questionPenaltyOver  = 2
	exclamationBonusOver = 1
	shortTextPenalty     = -5.0
	questionPenalty      = -3.0
	exclamationBonus     = 2.0
	negationPenalty      = -2.0

	charsPerToken = 3.5
)

const enginePlaceholder = "{engine}"

var explanations = map[entity.Verdict][]string{
	entity.VerdictTruthful: {
		"{engine} detected consistent conversational patterns suggesting truthfulness with high confidence.",
		"Chat analysis shows no significant deceptive markers. Communication patterns indicate genuine dialogue.",
		"{engine} found the conversational structure demonstrates authenticity and directness typical of truthful chat responses.",
		"Analysis reveals coherent messaging patterns and linguistic consistency indicating honest communication.",
		"{engine} identified authentic conversational flow with no contradictory elements detected.",
	},
	entity.VerdictDeceptive: {
		"{engine} identified multiple deceptive conversational patterns and inconsistencies in the chat message.",
		"Chat analysis reveals evasive language structures and stress indicators commonly associated with deceptive communication.",
		"{engine} detected contradictory elements and unusual phrasing patterns that suggest potential dishonesty in conversation.",
		"Analysis shows linguistic markers typical of deceptive communication including hedging and deflection.",
		"{engine} found inconsistent messaging patterns and potential misdirection tactics in the conversation.",
	},
	entity.VerdictUncertain: {
		"{engine} found mixed conversational signals that require additional context for definitive assessment.",
		"Chat analysis shows some inconsistencies but insufficient evidence for conclusive determination.",
		"{engine} suggests the conversation contains ambiguous elements that could benefit from further investigation.",
		"Analysis reveals conflicting indicators requiring more comprehensive evaluation for accurate assessment.",
		"{engine} detected neutral patterns with both truthful and potentially deceptive elements present.",
	},
}

var realTimeExplanations = map[entity.Verdict][]string{
	entity.VerdictTruthful: {
		"{engine}'s real-time chat analysis indicates authentic communication patterns with conversational context validation.",
		"Real-time conversational assessment shows consistent truthful markers throughout the chat interaction.",
		"{engine} found the chat flow and contextual alignment suggest genuine, unfiltered conversational communication.",
		"Live analysis confirms authentic dialogue patterns with no deceptive conversational tactics detected.",
		"{engine}'s contextual evaluation shows genuine communication style consistent with truthful interaction.",
	},
	entity.VerdictDeceptive: {
		"{engine}'s real-time chat analysis detected conversational inconsistencies and potential misdirection tactics.",
		"Conversational pattern analysis reveals evasive chat structures commonly used to obscure truth in dialogue.",
		"{engine} identified contextual misalignments and linguistic markers suggesting deliberate deception in conversation.",
		"Real-time evaluation shows manipulative conversational patterns and strategic information withholding.",
		"{engine} detected conversational red flags including deflection and inconsistent narrative elements.",
	},
	entity.VerdictUncertain: {
		"{engine}'s conversational analysis shows mixed authenticity signals requiring deeper contextual chat evaluation.",
		"Real-time chat assessment indicates ambiguous conversational patterns that need additional verification.",
		"{engine} suggests the chat contains conversational elements that could benefit from real-time fact-checking.",
		"Live analysis reveals neutral conversational indicators with conflicting authenticity signals.",
		"{engine} found conversational ambiguity that requires additional context for definitive truth assessment.",
	},
}

// ScoreEngine synthesizes one engine's result. latency is the simulated
// round trip that preceded it and is only carried through for display.
func ScoreEngine(engine entity.EngineDescriptor, f Features, latency time.Duration, rng repository.RandomSource) entity.EngineResult {
	confidence := adjustConfidence(baseConfidence+rng.Float64()*baseConfidenceRange, f)
	verdict := pickVerdict(confidence, rng)
	tokens := TokenCount(f.Length)

	return entity.EngineResult{
		EngineID:      engine.ID,
		EngineName:    engine.Name,
		Confidence:    int(math.Round(confidence)),
		Verdict:       verdict,
		Analysis:      explain(engine, verdict, rng),
		LatencyMs:     latency.Milliseconds(),
		TokenCount:    tokens,
		EstimatedCost: EstimateCost(engine, tokens),
	}
}

func adjustConfidence(c float64, f Features) float64 {
	if f.Length < shortTextLength {
		c += shortTextPenalty
	}
	if f.Questions > questionPenaltyOver {
		c += questionPenalty
	}
	if f.Exclamations > exclamationBonusOver {
		c += exclamationBonus
	}
	if f.HasNegation {
		c += negationPenalty
	}
	return math.Max(minConfidence, math.Min(maxConfidence, c))
}

func pickVerdict(confidence float64, rng repository.RandomSource) entity.Verdict {
	switch {
	case confidence > highConfidenceBand:
		if rng.Float64() > highBandTruthfulOver {
			return entity.VerdictTruthful
		}
		return entity.VerdictDeceptive
	case confidence < lowConfidenceBand:
		if rng.Float64() > lowBandDeceptiveOver {
			return entity.VerdictDeceptive
		}
		return entity.VerdictUncertain
	default:
		if rng.Float64() > midBandUncertainOver {
			return entity.VerdictUncertain
		}
		if rng.Float64() > midBandTruthfulOver {
			return entity.VerdictTruthful
		}
		return entity.VerdictDeceptive
	}
}

func explain(engine entity.EngineDescriptor, verdict entity.Verdict, rng repository.RandomSource) string {
	set := explanations
	if engine.RealTime {
		set = realTimeExplanations
	}
	templates := set[verdict]
	name := engine.Name
	if name == "" {
		name = engine.ID
	}
	return strings.ReplaceAll(templates[rng.IntN(len(templates))], enginePlaceholder, name)
}

func TokenCount(length int) int {
	return int(math.Floor(float64(length) / charsPerToken))
}

func EstimateCost(engine entity.EngineDescriptor, tokens int) float64 {
	return float64(tokens) / 1000 * engine.Rate()
}

package entity

import "time"

type Verdict string

const (
	VerdictTruthful  Verdict = "truthful"
	VerdictDeceptive Verdict = "deceptive"
	VerdictUncertain Verdict = "uncertain"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictTruthful, VerdictDeceptive, VerdictUncertain:
		return true
	}
	return false
}

type AnalysisRequest struct {
	Text      string   `json:"text"`
	EngineIDs []string `json:"engine_ids"`
}

// EngineDescriptor is one entry of the static engine catalog.
type EngineDescriptor struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Version     string  `json:"version" yaml:"version"`
	RatePer1K   float64 `json:"rate_per_1k" yaml:"rate_per_1k"`
	Premium     bool    `json:"premium" yaml:"premium"`
	RealTime    bool    `json:"real_time" yaml:"real_time"` // uses the live-analysis phrasing
}

// EngineResult is produced once per engine per request and never mutated.
type EngineResult struct {
	ID            string  `json:"id" yaml:"id"`
	EngineID      string  `json:"engine_id" yaml:"engine_id"`
	EngineName    string  `json:"engine_name" yaml:"engine_name"`
	Confidence    int     `json:"confidence" yaml:"confidence"`
	Verdict       Verdict `json:"verdict" yaml:"verdict"`
	Analysis      string  `json:"analysis" yaml:"analysis"`
	LatencyMs     int64   `json:"latency_ms" yaml:"latency_ms"`
	TokenCount    int     `json:"token_count" yaml:"token_count"`
	EstimatedCost float64 `json:"estimated_cost" yaml:"estimated_cost"`
}

type AnalysisSession struct {
	ID                string         `json:"id" yaml:"id"`
	OriginalText      string         `json:"original_text" yaml:"original_text"`
	SelectedEngines   []string       `json:"selected_engines" yaml:"selected_engines"`
	Results           []EngineResult `json:"results" yaml:"results"`
	OverallVerdict    Verdict        `json:"overall_verdict" yaml:"overall_verdict"`
	OverallConfidence int            `json:"overall_confidence" yaml:"overall_confidence"`
	CreatedAt         time.Time      `json:"created_at" yaml:"created_at"`
	ProcessingTimeMs  int64          `json:"processing_time_ms" yaml:"processing_time_ms"`
}

// SessionState replaces the client-side analysis context: the current
// session, whether a request is in flight, and the last error shown.
type SessionState struct {
	Current   *AnalysisSession `json:"current_session"`
	Analyzing bool             `json:"is_analyzing"`
	LastError string           `json:"analysis_error,omitempty"`
}

// HistoryRecord is the list view of a past session.
type HistoryRecord struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	OverallVerdict Verdict   `json:"overall_verdict"`
	Confidence     int       `json:"confidence"`
	EngineCount    int       `json:"engine_count"`
}

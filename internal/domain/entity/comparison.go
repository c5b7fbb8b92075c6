package entity

import "time"

type SearchResults struct {
	Query       string   `json:"query"`
	Findings    []string `json:"findings"`
	Sources     int      `json:"sources"`
	Reliability int      `json:"reliability"`
}

type EngineNarrative struct {
	Summary               string   `json:"summary"`
	Reasoning             string   `json:"reasoning"`
	ConfidenceExplanation string   `json:"confidence_explanation"`
	KeyIndicators         []string `json:"key_indicators"`
}

// EngineComparison is the per-engine view rendered on the compare screen.
type EngineComparison struct {
	ID            string          `json:"id"`
	EngineID      string          `json:"engine_id"`
	ModelName     string          `json:"model_name"`
	ModelVersion  string          `json:"model_version"`
	Verdict       Verdict         `json:"verdict"`
	ResponseTime  int64           `json:"response_time_ms"`
	Accuracy      int             `json:"accuracy"`
	Depth         int             `json:"depth"`
	Clarity       int             `json:"clarity"`
	OverallScore  int             `json:"overall_score"`
	BiasDetection int             `json:"bias_detection"`
	SearchResults SearchResults   `json:"search_results"`
	Narrative     EngineNarrative `json:"ai_response"`
}

type ComparisonReport struct {
	SessionID string             `json:"session_id"`
	Prompt    string             `json:"prompt"`
	Engines   []EngineComparison `json:"engines"`
	CreatedAt time.Time          `json:"created_at"`
}

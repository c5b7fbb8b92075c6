package entity

// DefaultRatePer1K is charged for engines with no known pricing.
const DefaultRatePer1K = 0.01

type Catalog []EngineDescriptor

func (c Catalog) Find(id string) (EngineDescriptor, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return EngineDescriptor{}, false
}

// Rate returns the per-1000-token price, or DefaultRatePer1K when the
// engine carries none.
func (e EngineDescriptor) Rate() float64 {
	if e.RatePer1K > 0 {
		return e.RatePer1K
	}
	return DefaultRatePer1K
}

func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "gpt4", Name: "GPT-4 Turbo", Description: "Most advanced reasoning and analysis", Version: "gpt-4-turbo-preview", RatePer1K: 0.03},
		{ID: "claude", Name: "Claude 3 Opus", Description: "Superior contextual understanding", Version: "claude-3-opus-20240229", RatePer1K: 0.015},
		{ID: "grok", Name: "Grok AI", Description: "Real-time analysis with conversational insights", Version: "grok-1.5-vision-preview", RatePer1K: 0.02, Premium: true, RealTime: true},
		{ID: "gemini", Name: "Gemini Pro", Description: "Google's multimodal AI", Version: "gemini-pro-1.5", RatePer1K: 0.001, Premium: true},
		{ID: "gpt35", Name: "GPT-3.5 Turbo", Description: "Fast and reliable analysis", Version: "gpt-3.5-turbo-0125", RatePer1K: 0.002},
		{ID: "palm", Name: "PaLM 2", Description: "Advanced language understanding", Version: "palm-2", RatePer1K: 0.01, Premium: true},
	}
}

package entity

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Unlimited marks a limit with no ceiling.
const Unlimited = -1

type SubscriptionLimits struct {
	AIEngines          int  `json:"ai_engines"`
	DailyQueries       int  `json:"daily_queries"`
	MaxTextLength      int  `json:"max_text_length"`
	ExportResults      bool `json:"export_results"`
	PriorityProcessing bool `json:"priority_processing"`
	AdvancedAnalytics  bool `json:"advanced_analytics"`
	HistoryRecords     int  `json:"history_records"` // newest sessions listed
}

var tierLimits = map[Tier]SubscriptionLimits{
	TierFree: {
		AIEngines:      2,
		DailyQueries:   5,
		MaxTextLength:  500,
		HistoryRecords: 10,
	},
	TierPremium: {
		AIEngines:          Unlimited,
		DailyQueries:       Unlimited,
		MaxTextLength:      2000,
		ExportResults:      true,
		PriorityProcessing: true,
		AdvancedAnalytics:  true,
		HistoryRecords:     Unlimited,
	},
}

// Limits returns the limits for t, falling back to the free tier.
func (t Tier) Limits() SubscriptionLimits {
	if l, ok := tierLimits[t]; ok {
		return l
	}
	return tierLimits[TierFree]
}

type Usage struct {
	Queries int `json:"queries"`
}

type Subscription struct {
	Tier       Tier               `json:"tier"`
	Limits     SubscriptionLimits `json:"limits"`
	UsageToday Usage              `json:"usage_today"`
	CanUpgrade bool               `json:"can_upgrade"`
}

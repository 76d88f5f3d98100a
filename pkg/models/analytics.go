package models

// StageCount is one row of the funnel breakdown
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// FunnelAnalytics summarizes thread distribution across a funnel's stages
type FunnelAnalytics struct {
	FunnelID      string       `json:"funnel_id"`
	Stages        []StageCount `json:"stages"`
	TotalThreads  int          `json:"total_threads"`
	TakeoverCount int          `json:"takeover_count"`
	// Unseeded counts threads whose first message has not yet passed the
	// funnel detector.
	Unseeded int `json:"unseeded"`
	// SalesCount and SalesValue aggregate approved sales over the
	// requested window.
	SalesCount int     `json:"sales_count"`
	SalesValue float64 `json:"sales_value"`
}

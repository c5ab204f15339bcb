package domain

// PredictionRequest is the /predict payload: the deal parameters merged with
// brand-derived fields and coerced numerics. Built fresh on every
// submission, never stored.
type PredictionRequest struct {
	City            string  `json:"city"`
	EventType       string  `json:"event_type"`
	SponsorCategory string  `json:"sponsor_category"`
	DayOfWeek       int     `json:"day_of_week"`
	Price           float64 `json:"price"`
	MarketingBudget float64 `json:"marketing_budget"`
	VenueCapacity   int     `json:"venue_capacity"`
	Temperature     float64 `json:"temperature"`
	IsRaining       int     `json:"is_raining"`
}

// ScoreBreakdown carries the per-factor sub-scores of a prediction. Fields
// the service omits decode to zero, which is exactly the display default.
type ScoreBreakdown struct {
	AudienceScore float64 `json:"audience_score"`
	BrandFitScore float64 `json:"brand_fit_score"`
	CostScore     float64 `json:"cost_score"`
	CostPerHead   float64 `json:"cost_per_head"`
}

// PredictionResult is the service's scored assessment of a deal. The client
// only projects and displays it; each new submission replaces the previous
// result wholesale.
type PredictionResult struct {
	FinalScore float64        `json:"final_score"`
	Verdict    string         `json:"verdict"`
	Attendance int            `json:"attendance"`
	AIAnalysis string         `json:"ai_analysis"`
	Factors    []string       `json:"factors"`
	Tips       []string       `json:"tips"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

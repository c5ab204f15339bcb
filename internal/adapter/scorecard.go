package adapter

import (
	"math"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/constants"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/util"
)

// Severity bands the headline score for display.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// GaugeGeometry describes the circular progress indicator: a partial-arc
// fill proportional to the score on a circle of the configured radius.
type GaugeGeometry struct {
	Radius        float64
	Circumference float64
	StrokeOffset  float64
}

// BreakdownBar is one percentage-width sub-score bar.
type BreakdownBar struct {
	Label   string
	Percent float64
}

// Scorecard is the fully-coerced view model projected from a prediction
// result. Every numeric passed through coercion, every collection non-nil;
// the rendering layer never sees a value it could choke on.
type Scorecard struct {
	Score        float64
	Band         Severity
	Gauge        GaugeGeometry
	Verdict      string
	Attendance   int
	Capacity     int
	WeekdayLabel string
	City         string
	EventType    string
	Analysis     string
	Factors      []string
	Tips         []string
	Bars         []BreakdownBar
	CostPercent  float64
}

// BandFor assigns the severity band for a display score.
func BandFor(score float64) Severity {
	switch {
	case score < constants.ScoreBands.LowCeiling:
		return SeverityLow
	case score < constants.ScoreBands.MediumCeiling:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// BuildScorecard projects a prediction result plus the deal form it was
// scored against into renderable fields.
func BuildScorecard(result *domain.PredictionResult, deal domain.DealParameters) Scorecard {
	if result == nil {
		result = &domain.PredictionResult{}
	}

	score := util.ClampFloat(util.CoerceFloat(result.FinalScore), 0, 100)

	radius := constants.GaugeConfig.Radius
	circumference := 2 * math.Pi * radius

	audience := util.CoerceFloat(result.Breakdown.AudienceScore)
	brandFit := util.CoerceFloat(result.Breakdown.BrandFitScore)
	cost := util.CoerceFloat(result.Breakdown.CostScore)

	factors := result.Factors
	if factors == nil {
		factors = []string{}
	}
	tips := result.Tips
	if tips == nil {
		tips = []string{}
	}

	return Scorecard{
		Score: score,
		Band:  BandFor(score),
		Gauge: GaugeGeometry{
			Radius:        radius,
			Circumference: circumference,
			StrokeOffset:  circumference - (score/100)*circumference,
		},
		Verdict:      result.Verdict,
		Attendance:   result.Attendance,
		Capacity:     util.CoerceInt(deal.VenueCapacity),
		WeekdayLabel: domain.WeekdayName(deal.Date),
		City:         deal.City.String(),
		EventType:    deal.EventType.String(),
		Analysis:     result.AIAnalysis,
		Factors:      factors,
		Tips:         tips,
		Bars: []BreakdownBar{
			{Label: "Audience", Percent: audience},
			{Label: "Brand Fit", Percent: brandFit},
			{Label: "Cost Efficiency", Percent: cost},
		},
		CostPercent: cost,
	}
}

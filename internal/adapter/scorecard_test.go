package adapter

import (
	"math"
	"strings"
	"testing"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBandThresholds(t *testing.T) {
	cases := []struct {
		score    float64
		expected Severity
	}{
		{0, SeverityLow},
		{44.9, SeverityLow},
		{45, SeverityMedium},
		{74.9, SeverityMedium},
		{75, SeverityHigh},
		{100, SeverityHigh},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.expected, BandFor(tc.score), "score %v", tc.score)
	}
}

func TestBuildScorecardProjectsResult(t *testing.T) {
	result := &domain.PredictionResult{
		FinalScore: 82,
		Verdict:    "HIGH POTENTIAL",
		Attendance: 420,
		AIAnalysis: "Strong weekend traction.",
		Factors:    []string{"🏙️ Indore Boost (+20%)"},
		Tips:       []string{"Book a larger venue."},
		Breakdown:  domain.ScoreBreakdown{AudienceScore: 90},
	}
	deal := domain.DefaultDealParameters()
	deal.Date = "2026-09-12"

	card := BuildScorecard(result, deal)

	assert.Equal(t, 82.0, card.Score)
	assert.Equal(t, SeverityHigh, card.Band)
	assert.Equal(t, 420, card.Attendance)
	assert.Equal(t, 500, card.Capacity)
	assert.Equal(t, "Saturday", card.WeekdayLabel)
	assert.Equal(t, "Indore", card.City)

	circumference := 2 * math.Pi * 60
	assert.InDelta(t, circumference, card.Gauge.Circumference, 1e-9)
	assert.InDelta(t, circumference-(82.0/100)*circumference, card.Gauge.StrokeOffset, 1e-9)

	assert.Equal(t, 90.0, card.Bars[0].Percent, "audience bar")
	assert.Equal(t, 0.0, card.Bars[1].Percent, "missing brand fit defaults to 0")
	assert.Equal(t, 0.0, card.Bars[2].Percent, "missing cost score defaults to 0")
}

func TestBuildScorecardClampsScore(t *testing.T) {
	card := BuildScorecard(&domain.PredictionResult{FinalScore: 140}, domain.DefaultDealParameters())
	assert.Equal(t, 100.0, card.Score)
	assert.InDelta(t, 0.0, card.Gauge.StrokeOffset, 1e-9, "full score leaves no unfilled arc")

	card = BuildScorecard(&domain.PredictionResult{FinalScore: -20}, domain.DefaultDealParameters())
	assert.Equal(t, 0.0, card.Score)
	assert.Equal(t, SeverityLow, card.Band)
}

func TestBuildScorecardSurvivesEmptyResult(t *testing.T) {
	card := BuildScorecard(nil, domain.DefaultDealParameters())

	assert.Equal(t, 0.0, card.Score)
	assert.NotNil(t, card.Tips)
	assert.NotNil(t, card.Factors)
	assert.Empty(t, card.Tips)
	assert.Empty(t, card.Factors)
	assert.Equal(t, "", card.WeekdayLabel)
}

func TestFormatReportRendersAllSections(t *testing.T) {
	result := &domain.PredictionResult{
		FinalScore: 82,
		Verdict:    "High Potential",
		Attendance: 420,
		AIAnalysis: "Strong weekend traction.",
		Factors:    []string{"📅 Weekend Surge (+40%)"},
		Tips:       []string{"Book a larger venue.", "Raise ticket prices."},
		Breakdown:  domain.ScoreBreakdown{AudienceScore: 90, CostScore: 64},
	}
	deal := domain.DefaultDealParameters()
	deal.Date = "2026-09-12"

	formatter := NewReportFormatter()
	report := formatter.FormatReport(BuildScorecard(result, deal))

	assert.Contains(t, report, "82/100")
	assert.Contains(t, report, "HIGH POTENTIAL")
	assert.Contains(t, report, "420 / 500 attendees")
	assert.Contains(t, report, "Adjusted for Saturday in Indore.")
	assert.Contains(t, report, "Weekend Surge")
	assert.Contains(t, report, "Strong weekend traction.")
	assert.Contains(t, report, "Book a larger venue.")
	assert.Contains(t, report, "🟢")
}

func TestFormatReportOmitsEmptyCollections(t *testing.T) {
	formatter := NewReportFormatter()
	report := formatter.FormatReport(BuildScorecard(&domain.PredictionResult{FinalScore: 30}, domain.DefaultDealParameters()))

	assert.NotContains(t, report, "Strategic Recommendations")
	assert.NotContains(t, report, "Factors")
	assert.Contains(t, report, "🔴")
}

func TestRenderBarWidths(t *testing.T) {
	full := renderBar(100)
	empty := renderBar(0)

	assert.Equal(t, barWidth, strings.Count(full, "█"))
	assert.Equal(t, 0, strings.Count(empty, "█"))
	assert.Equal(t, barWidth, strings.Count(empty, "░"))
	assert.Equal(t, barWidth, strings.Count(renderBar(150), "█"), "overflow clamps to full")
}

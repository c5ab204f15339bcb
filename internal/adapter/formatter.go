package adapter

import (
	"fmt"
	"strings"

	"github.com/sponsorwise/sponsorwise-cli-go/internal/domain"
	"github.com/sponsorwise/sponsorwise-cli-go/internal/workflow"
)

const barWidth = 20

// ReportFormatter renders workflow state and scorecards as terminal text.
type ReportFormatter struct{}

func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{}
}

// FormatBrandForm renders the step-1 form with its current values.
func (f *ReportFormatter) FormatBrandForm(brand domain.BrandProfile) string {
	var sb strings.Builder
	sb.WriteString("1️⃣  Brand Profile\n\n")
	sb.WriteString(fmt.Sprintf("  company_name : %s\n", orPlaceholder(brand.CompanyName, "e.g. Red Bull")))
	sb.WriteString(fmt.Sprintf("  industry     : %s\n", orPlaceholder(brand.Industry, "e.g. Energy Drinks")))
	sb.WriteString("\nType `company <name>` / `industry <name>`, then `analyze`.")
	return sb.String()
}

// FormatBrandHeader renders the read-only step-2 brand card.
func (f *ReportFormatter) FormatBrandHeader(brand domain.BrandProfile, analysis *domain.BrandAnalysis) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏢 %s\n", brand.CompanyName))

	line := brand.Industry
	if analysis != nil && analysis.Persona != "" {
		line += " • " + analysis.Persona
	}
	sb.WriteString(fmt.Sprintf("   %s\n", line))

	if analysis != nil && analysis.StrategyStatement != "" {
		sb.WriteString(fmt.Sprintf("   \"%s\"\n", analysis.StrategyStatement))
	}
	sb.WriteString("\nType `set <field> <value>` to shape the deal, then `evaluate`. `edit` returns to step 1.")
	return sb.String()
}

// FormatDealForm renders the step-2 form with its current values and the
// weekday derived from the date field.
func (f *ReportFormatter) FormatDealForm(deal domain.DealParameters) string {
	var sb strings.Builder
	sb.WriteString("2️⃣  Evaluate Deal\n\n")
	sb.WriteString(fmt.Sprintf("  city             : %s  (options: %s)\n", deal.City, joinCities()))
	sb.WriteString(fmt.Sprintf("  event_type       : %s  (options: %s)\n", deal.EventType, joinEventTypes()))

	dateLine := orPlaceholder(deal.Date, "unset")
	if weekday := domain.WeekdayName(deal.Date); weekday != "" {
		dateLine += " (" + weekday + ")"
	}
	sb.WriteString(fmt.Sprintf("  date             : %s\n", dateLine))
	sb.WriteString(fmt.Sprintf("  price            : %s\n", deal.Price))
	sb.WriteString(fmt.Sprintf("  marketing_budget : %s\n", deal.MarketingBudget))
	sb.WriteString(fmt.Sprintf("  venue_capacity   : %s\n", deal.VenueCapacity))
	sb.WriteString(fmt.Sprintf("  temperature      : %s\n", deal.Temperature))
	sb.WriteString(fmt.Sprintf("  is_raining       : %d", deal.IsRaining))
	return sb.String()
}

// FormatReport renders the full multi-part result dashboard.
func (f *ReportFormatter) FormatReport(card Scorecard) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s Sponsorship Score: %.0f/100", bandIcon(card.Band), card.Score))
	if card.Verdict != "" {
		sb.WriteString(fmt.Sprintf(" — %s", strings.ToUpper(card.Verdict)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("   %s\n\n", renderBar(card.Score)))

	sb.WriteString("📊 ML Model Forecast\n")
	sb.WriteString(fmt.Sprintf("   %d / %d attendees\n", card.Attendance, card.Capacity))
	if card.WeekdayLabel != "" {
		sb.WriteString(fmt.Sprintf("   Adjusted for %s in %s.\n", card.WeekdayLabel, card.City))
	} else {
		sb.WriteString(fmt.Sprintf("   Adjusted for %s.\n", card.City))
	}
	sb.WriteString("\n")

	for _, bar := range card.Bars {
		sb.WriteString(fmt.Sprintf("   %-16s %s %3.0f%%\n", bar.Label, renderBar(bar.Percent), bar.Percent))
	}

	if len(card.Factors) > 0 {
		sb.WriteString("\n📌 Factors\n")
		for _, factor := range card.Factors {
			sb.WriteString(fmt.Sprintf("   • %s\n", factor))
		}
	}

	if card.Analysis != "" {
		sb.WriteString("\n🧾 Detailed Breakdown\n")
		sb.WriteString(fmt.Sprintf("   \"%s\"\n", card.Analysis))
	}

	if len(card.Tips) > 0 {
		sb.WriteString("\n🚀 Strategic Recommendations\n")
		for _, tip := range card.Tips {
			sb.WriteString(fmt.Sprintf("   • %s\n", tip))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// FormatEmptyState renders the no-result placeholder.
func (f *ReportFormatter) FormatEmptyState() string {
	return "Select deal parameters to view Forecast & Analysis."
}

// FormatPending renders the in-flight notice for a step.
func (f *ReportFormatter) FormatPending(step workflow.Step) string {
	if step == workflow.StepBrandInput {
		return "⏳ Analyzing..."
	}
	return "⏳ Predicting..."
}

// FormatError renders a user-facing failure line.
func (f *ReportFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

// FormatHelp lists the available commands.
func (f *ReportFormatter) FormatHelp() string {
	return `🎪 SponsorWise — AI-Powered Sponsorship Intelligence

Step 1 — Brand Profile
  company <name>     set the sponsor's company name
  industry <name>    set the sponsor's industry
  analyze            generate the brand profile

Step 2 — Evaluate Deal
  set <field> <value>  edit a deal field
                       fields: city, event_type, date (YYYY-MM-DD), price,
                       marketing_budget, venue_capacity, temperature, is_raining
  evaluate             score the deal
  edit                 go back and change the brand profile

Anytime
  show               re-render the current step
  help               this message
  quit               exit`
}

// Helper methods

func renderBar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * barWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

func bandIcon(band Severity) string {
	switch band {
	case SeverityLow:
		return "🔴"
	case SeverityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func joinCities() string {
	names := make([]string, 0, len(domain.Cities()))
	for _, city := range domain.Cities() {
		names = append(names, city.String())
	}
	return strings.Join(names, ", ")
}

func joinEventTypes() string {
	names := make([]string, 0, len(domain.EventTypes()))
	for _, eventType := range domain.EventTypes() {
		names = append(names, eventType.String())
	}
	return strings.Join(names, ", ")
}

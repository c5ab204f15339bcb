package domain

import (
	"fmt"
	"strings"
)

// BrandProfile is the sponsor identity the user fills in during step 1.
type BrandProfile struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
}

// IsComplete reports whether both fields carry a non-blank value. Submission
// is refused locally until this holds.
func (p BrandProfile) IsComplete() bool {
	return strings.TrimSpace(p.CompanyName) != "" && strings.TrimSpace(p.Industry) != ""
}

// SponsorCategory renders the profile in the "{company} ({industry})" form
// the prediction service expects.
func (p BrandProfile) SponsorCategory() string {
	return fmt.Sprintf("%s (%s)", p.CompanyName, p.Industry)
}

// BrandAnalysis is the insight service's read of a brand profile. The shape
// is owned by the service; unknown fields are dropped on decode.
type BrandAnalysis struct {
	Persona           string   `json:"persona"`
	StrategyStatement string   `json:"strategy_statement"`
	TargetAudience    string   `json:"target_audience"`
	CoreValues        string   `json:"core_values"`
	HighSynergy       []string `json:"high_synergy"`
}

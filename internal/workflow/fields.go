package workflow

// BrandField names an editable field of the brand profile form.
type BrandField string

const (
	BrandFieldCompanyName BrandField = "company_name"
	BrandFieldIndustry    BrandField = "industry"
)

// DealField names an editable field of the deal form.
type DealField string

const (
	DealFieldCity            DealField = "city"
	DealFieldEventType       DealField = "event_type"
	DealFieldDate            DealField = "date"
	DealFieldPrice           DealField = "price"
	DealFieldMarketingBudget DealField = "marketing_budget"
	DealFieldVenueCapacity   DealField = "venue_capacity"
	DealFieldTemperature     DealField = "temperature"
	DealFieldIsRaining       DealField = "is_raining"
)

// DealFields lists the editable deal fields in form order.
func DealFields() []DealField {
	return []DealField{
		DealFieldCity,
		DealFieldEventType,
		DealFieldDate,
		DealFieldPrice,
		DealFieldMarketingBudget,
		DealFieldVenueCapacity,
		DealFieldTemperature,
		DealFieldIsRaining,
	}
}

// ParseDealField resolves a user-typed field name, returning false for
// anything outside the form.
func ParseDealField(name string) (DealField, bool) {
	for _, field := range DealFields() {
		if string(field) == name {
			return field, true
		}
	}
	return "", false
}

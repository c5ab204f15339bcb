package domain

type City string

const (
	CityIndore   City = "Indore"
	CityBhopal   City = "Bhopal"
	CityGwalior  City = "Gwalior"
	CityJabalpur City = "Jabalpur"
)

// Cities lists the selectable cities in widget order.
func Cities() []City {
	return []City{CityIndore, CityBhopal, CityGwalior, CityJabalpur}
}

func (c City) IsValid() bool {
	for _, known := range Cities() {
		if c == known {
			return true
		}
	}
	return false
}

func (c City) String() string {
	return string(c)
}

type EventType string

const (
	EventFoodFestival EventType = "Food Festival"
	EventTechMeetup   EventType = "Tech Meetup"
	EventMusicConcert EventType = "Music Concert"
	EventComedyShow   EventType = "Comedy Show"
	EventMarathon     EventType = "Marathon"
)

// EventTypes lists the selectable event types in widget order.
func EventTypes() []EventType {
	return []EventType{EventFoodFestival, EventTechMeetup, EventMusicConcert, EventComedyShow, EventMarathon}
}

func (e EventType) IsValid() bool {
	for _, known := range EventTypes() {
		if e == known {
			return true
		}
	}
	return false
}

func (e EventType) String() string {
	return string(e)
}

// DealParameters is the step-2 form state. Quantity fields hold the raw
// user input; they are coerced to numbers only when a request is built or a
// percentage is rendered.
type DealParameters struct {
	City            City      `json:"city"`
	EventType       EventType `json:"event_type"`
	Date            string    `json:"date"`
	Price           string    `json:"price"`
	MarketingBudget string    `json:"marketing_budget"`
	VenueCapacity   string    `json:"venue_capacity"`
	Temperature     string    `json:"temperature"`
	IsRaining       int       `json:"is_raining"`
}

// DefaultDealParameters returns the form defaults shown when step 2 opens.
func DefaultDealParameters() DealParameters {
	return DealParameters{
		City:            CityIndore,
		EventType:       EventFoodFestival,
		Date:            "",
		Price:           "100",
		MarketingBudget: "5000",
		VenueCapacity:   "500",
		Temperature:     "30",
		IsRaining:       0,
	}
}

package domain

import "time"

const dateLayout = "2006-01-02"

// FallbackDayOfWeek is sent when the date field is empty or unparseable.
// The prediction service treats index 6 (Saturday) as the neutral default.
const FallbackDayOfWeek = 6

// DayOfWeek derives the 0-based weekday index (Sunday = 0) from a
// YYYY-MM-DD date string. Invalid input yields FallbackDayOfWeek.
func DayOfWeek(dateString string) int {
	t, err := time.Parse(dateLayout, dateString)
	if err != nil {
		return FallbackDayOfWeek
	}
	return int(t.Weekday())
}

// WeekdayName derives a display label ("Sunday".."Saturday") from a
// YYYY-MM-DD date string, or "" when the date is invalid. Presentation
// only; recomputed on every read.
func WeekdayName(dateString string) string {
	t, err := time.Parse(dateLayout, dateString)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

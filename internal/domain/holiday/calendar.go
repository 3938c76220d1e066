package holiday

import "time"

type DayType string

const (
	DayWorking DayType = "working"
	DayHoliday DayType = "holiday"
	DayWeekend DayType = "weekend"
)

// DefaultName is used when a holiday row carries no name
const DefaultName = "Holiday"

// Classify resolves the calendar type of date. A registered holiday wins over
// the weekend; the weekday is taken from the UTC calendar.
func Classify(date time.Time, h *Holiday) DayType {
	if h != nil {
		return DayHoliday
	}
	if IsWeekend(date) {
		return DayWeekend
	}
	return DayWorking
}

// IsWeekend reports Saturday or Sunday on the UTC calendar
func IsWeekend(date time.Time) bool {
	switch date.UTC().Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// DisplayName returns the holiday name, or DefaultName when blank
func (h Holiday) DisplayName() string {
	if h.Name == "" {
		return DefaultName
	}
	return h.Name
}

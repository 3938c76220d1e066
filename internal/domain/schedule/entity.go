package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts "15:04" or "15:04:05"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

// On anchors the time of day to the calendar day of date in loc
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, t.Second, 0, loc)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

type Shift struct {
	ID        string
	Name      string
	StartTime *TimeOfDay
	EndTime   *TimeOfDay
}

// ShiftAssignment binds an employee to a shift for [EffectiveFrom, EffectiveTo];
// a nil EffectiveTo is open ended
type ShiftAssignment struct {
	ID            string
	EmployeeID    string
	ShiftID       string
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time

	Shift Shift
}

// CoversDate reports whether the assignment is active on date
func (a ShiftAssignment) CoversDate(date time.Time) bool {
	if a.EffectiveFrom.After(date) {
		return false
	}
	return a.EffectiveTo == nil || !a.EffectiveTo.Before(date)
}

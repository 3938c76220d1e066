package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	saturday := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DayWeekend, Classify(saturday, nil))
	assert.Equal(t, DayWeekend, Classify(sunday, nil))
	assert.Equal(t, DayWorking, Classify(monday, nil))

	// holiday beats weekend
	assert.Equal(t, DayHoliday, Classify(saturday, &Holiday{Name: "Founders Day"}))
	assert.Equal(t, DayHoliday, Classify(monday, &Holiday{Name: "Founders Day"}))
}

func TestIsWeekend_UsesUTCCalendar(t *testing.T) {
	// Friday 23:00 at UTC-05:00 is already Saturday in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	fridayLate := time.Date(2024, 5, 31, 23, 0, 0, 0, loc)
	assert.True(t, IsWeekend(fridayLate))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Holiday", Holiday{}.DisplayName())
	assert.Equal(t, "New Year", Holiday{Name: "New Year"}.DisplayName())
}

package summary

import (
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/schedule"
)

// LateThreshold is the grace period after shift start before an arrival counts as late
const LateThreshold = 10 * time.Minute

// DayInput is everything known about one employee on one day
type DayInput struct {
	EmployeeID   string
	DepartmentID string
	Date         time.Time
	Holiday      *holiday.Holiday
	Assignment   *schedule.ShiftAssignment
	Leave        *leave.Leave
	Log          *attendance.Log

	// Location anchors the shift start time of day; nil means UTC
	Location *time.Location
}

// Reconcile derives the summary for one employee and day. The boolean is false
// when the employee is not scheduled and no row should be written.
//
// Resolution order, first match wins: holiday, weekend, no shift assignment,
// approved leave, missing log, log.
func Reconcile(in DayInput) (Summary, bool) {
	s := Summary{
		EmployeeID:   in.EmployeeID,
		DepartmentID: in.DepartmentID,
		Date:         in.Date,
		Status:       StatusAbsent,
	}

	switch holiday.Classify(in.Date, in.Holiday) {
	case holiday.DayHoliday:
		s.Status = StatusHoliday
		s.Remarks = in.Holiday.DisplayName()
	case holiday.DayWeekend:
		s.Status = StatusWeekend
	default:
		if in.Assignment == nil {
			return Summary{}, false
		}
		switch {
		case in.Leave != nil:
			s.Status = StatusOnLeave
			s.Remarks = in.Leave.ReasonOrDefault()
		case in.Log == nil:
			s.Status = StatusAbsent
		default:
			applyLog(&s, *in.Log, in.Assignment.Shift, in.Location)
		}
	}

	s.UnplannedAbsence = in.Log == nil && in.Leave == nil && in.Holiday == nil
	return s, true
}

func applyLog(s *Summary, log attendance.Log, shift schedule.Shift, loc *time.Location) {
	s.Status = log.Status
	if s.Status == "" {
		s.Status = StatusPresent
	}

	if log.ActualClockIn != nil && shift.StartTime != nil {
		start := shift.StartTime.On(s.Date, loc)
		s.LateArrival = log.ActualClockIn.Sub(start) > LateThreshold
	}

	if log.ActualClockIn != nil && log.ActualClockOut != nil {
		hours := log.ActualClockOut.Sub(*log.ActualClockIn).Hours()
		s.TotalWorkHours = &hours
	}
}

package schedule

import "time"

type Shift struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Days []ShiftDay
}

// ShiftDay is one of the seven per-weekday records of a shift.
type ShiftDay struct {
	ID           string
	ShiftID      string
	DayOfWeek    int // 0=Sunday, ..., 6=Saturday, matching time.Weekday
	StartTime    *time.Time
	EndTime      *time.Time
	IsOff        bool
	GraceMinutes int
	IsOvernight  bool // clock-out falls on the next calendar day
}

// ShiftAssignment binds an employee to a shift for a date range.
// At most one assignment is active for an employee on any given date.
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Shift *Shift
}

// Covers reports whether date falls within the assignment's range,
// inclusive on both ends. Comparison is by calendar date.
func (a ShiftAssignment) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(a.StartDate)) && !d.After(truncateToDay(a.EndDate))
}

// DayFor returns the shift's day-record for the weekday of date, or nil
// when the shift does not define one.
func (a ShiftAssignment) DayFor(date time.Time) *ShiftDay {
	if a.Shift == nil {
		return nil
	}
	weekday := int(date.Weekday())
	for i := range a.Shift.Days {
		if a.Shift.Days[i].DayOfWeek == weekday {
			return &a.Shift.Days[i]
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

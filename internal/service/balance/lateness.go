package balance

import (
	"time"

	"github.com/openhrms/leave-ledger-go/internal/domain/schedule"
)

// LatePolicy is the fixed fallback applied when no shift day-record
// resolves for a punch date.
type LatePolicy struct {
	FallbackHour   int
	FallbackMinute int
}

func DefaultLatePolicy() LatePolicy {
	return LatePolicy{FallbackHour: 9, FallbackMinute: 15}
}

func (p LatePolicy) fallbackMinutes() int {
	return p.FallbackHour*60 + p.FallbackMinute
}

// IsLate classifies a punch-in for a date. The shift assignment whose
// range contains the date wins; its day-record for the date's weekday
// supplies start time and grace minutes. Off days are never late. When
// no assignment or start time resolves, the fallback policy applies.
func IsLate(assignments []schedule.ShiftAssignment, date, clockIn time.Time, policy LatePolicy) bool {
	for i := range assignments {
		if !assignments[i].Covers(date) {
			continue
		}
		day := assignments[i].DayFor(date)
		if day == nil {
			break
		}
		if day.IsOff {
			return false
		}
		if day.StartTime == nil {
			break
		}
		limit := minutesOfDay(*day.StartTime) + day.GraceMinutes
		return minutesOfDay(clockIn) > limit
	}
	return minutesOfDay(clockIn) > policy.fallbackMinutes()
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

package balance

import (
	"testing"
	"time"

	"github.com/openhrms/leave-ledger-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func clock(hour, minute int) time.Time {
	return time.Date(2025, 7, 7, hour, minute, 0, 0, time.UTC) // a Monday
}

func mondayShift(startHour, startMinute, grace int) []schedule.ShiftAssignment {
	start := clock(startHour, startMinute)
	return []schedule.ShiftAssignment{{
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		Shift: &schedule.Shift{
			Days: []schedule.ShiftDay{{
				DayOfWeek:    int(time.Monday),
				StartTime:    &start,
				GraceMinutes: grace,
			}},
		},
	}}
}

func TestIsLate_ShiftGraceApplies(t *testing.T) {
	assignments := mondayShift(10, 0, 15)
	date := clock(0, 0)

	assert.False(t, IsLate(assignments, date, clock(10, 15), DefaultLatePolicy()), "inside grace")
	assert.True(t, IsLate(assignments, date, clock(10, 16), DefaultLatePolicy()), "one minute past grace")
	assert.False(t, IsLate(assignments, date, clock(9, 30), DefaultLatePolicy()), "early punch with a late shift")
}

func TestIsLate_OffDayNeverLate(t *testing.T) {
	assignments := mondayShift(10, 0, 0)
	assignments[0].Shift.Days[0].IsOff = true
	assignments[0].Shift.Days[0].StartTime = nil

	assert.False(t, IsLate(assignments, clock(0, 0), clock(23, 0), DefaultLatePolicy()))
}

func TestIsLate_FallbackWhenNoAssignmentCovers(t *testing.T) {
	date := clock(0, 0)

	assert.False(t, IsLate(nil, date, clock(9, 15), DefaultLatePolicy()), "09:15 exactly is on time")
	assert.True(t, IsLate(nil, date, clock(9, 16), DefaultLatePolicy()))
}

func TestIsLate_FallbackWhenNoDayRecord(t *testing.T) {
	// The assignment covers the date but the shift defines no Monday
	// record, so the fixed policy applies.
	assignments := mondayShift(10, 0, 15)
	assignments[0].Shift.Days[0].DayOfWeek = int(time.Tuesday)

	assert.True(t, IsLate(assignments, clock(0, 0), clock(9, 30), DefaultLatePolicy()))
}

func TestIsLate_FallbackWhenNoStartTime(t *testing.T) {
	assignments := mondayShift(10, 0, 15)
	assignments[0].Shift.Days[0].StartTime = nil

	assert.True(t, IsLate(assignments, clock(0, 0), clock(9, 30), DefaultLatePolicy()))
	assert.False(t, IsLate(assignments, clock(0, 0), clock(9, 0), DefaultLatePolicy()))
}

func TestIsLate_AssignmentOutsideRangeIgnored(t *testing.T) {
	assignments := mondayShift(8, 0, 0)
	assignments[0].EndDate = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// The stale assignment would flag 08:01 late; the fallback does not.
	assert.False(t, IsLate(assignments, clock(0, 0), clock(8, 1), DefaultLatePolicy()))
}

func TestIsLate_CustomFallbackPolicy(t *testing.T) {
	policy := LatePolicy{FallbackHour: 8, FallbackMinute: 30}

	assert.True(t, IsLate(nil, clock(0, 0), clock(8, 31), policy))
	assert.False(t, IsLate(nil, clock(0, 0), clock(8, 30), policy))
}

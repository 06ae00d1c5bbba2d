package balance

import "github.com/shopspring/decimal"

// Fixed company-wide conversion rates. Eight worked hours fold into one
// day; three late check-ins cost one deducted day.
const lateCheckinsPerDay = 3

var hoursPerDay = decimal.NewFromInt(8)

// NormalizeHours folds a previous day/hour balance together with the
// current month's day/hour amounts. Hours at or above 8 overflow into
// whole days; the returned hours component is always in [0, 8).
func NormalizeHours(prevDays, prevHours, curDays, curHours decimal.Decimal) (days, hours decimal.Decimal) {
	total := prevHours.Add(curHours)
	overflowDays := decimal.Zero
	remainder := total
	if total.GreaterThanOrEqual(hoursPerDay) {
		overflowDays = total.Div(hoursPerDay).Floor()
		remainder = total.Sub(overflowDays.Mul(hoursPerDay))
	}
	return prevDays.Add(curDays).Add(overflowDays), remainder
}

// ConvertGrantTotals folds a flat sum of grant or permission hours into a
// day/hour pair using the same overflow rule, without any carried balance.
// It is applied once per pool per month before the result enters
// NormalizeHours. Comp-off totals sum approved grants only; permission
// totals sum every entry.
func ConvertGrantTotals(totalDays, totalHours decimal.Decimal) (days, hours decimal.Decimal) {
	overflowDays := decimal.Zero
	remainder := totalHours
	if totalHours.GreaterThanOrEqual(hoursPerDay) {
		overflowDays = totalHours.Div(hoursPerDay).Floor()
		remainder = totalHours.Sub(overflowDays.Mul(hoursPerDay))
	}
	return totalDays.Add(overflowDays), remainder
}

// LateCheckinsToDays converts a count of late arrivals into deducted
// days. Integer division, no rounding.
func LateCheckinsToDays(count int) int {
	return count / lateCheckinsPerDay
}

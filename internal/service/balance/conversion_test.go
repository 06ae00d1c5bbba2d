package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNormalizeHours(t *testing.T) {
	cases := []struct {
		name                                   string
		prevDays, prevHours, curDays, curHours string
		wantDays, wantHours                    string
	}{
		{"no overflow", "0", "3", "0", "4", "0", "7"},
		{"exact day", "0", "4", "0", "4", "1", "0"},
		{"overflow with remainder", "1", "6", "2", "5", "4", "3"},
		{"multiple days overflow", "0", "10", "0", "15", "3", "1"},
		{"fractional hours", "0", "2.5", "0", "6", "1", "0.5"},
		{"all zero", "0", "0", "0", "0", "0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			days, hours := NormalizeHours(d(c.prevDays), d(c.prevHours), d(c.curDays), d(c.curHours))
			assert.True(t, d(c.wantDays).Equal(days), "days = %s, want %s", days, c.wantDays)
			assert.True(t, d(c.wantHours).Equal(hours), "hours = %s, want %s", hours, c.wantHours)
		})
	}
}

func TestNormalizeHours_RemainderAlwaysBelowEight(t *testing.T) {
	for _, prev := range []string{"0", "1.25", "7.99", "23"} {
		for _, cur := range []string{"0", "0.5", "7", "16.5"} {
			_, hours := NormalizeHours(decimal.Zero, d(prev), decimal.Zero, d(cur))
			assert.True(t, hours.GreaterThanOrEqual(decimal.Zero), "hours %s negative for prev=%s cur=%s", hours, prev, cur)
			assert.True(t, hours.LessThan(hoursPerDay), "hours %s >= 8 for prev=%s cur=%s", hours, prev, cur)
		}
	}
}

func TestConvertGrantTotals(t *testing.T) {
	days, hours := ConvertGrantTotals(decimal.Zero, d("10"))
	assert.True(t, d("1").Equal(days))
	assert.True(t, d("2").Equal(hours))

	days, hours = ConvertGrantTotals(d("2"), d("7.5"))
	assert.True(t, d("2").Equal(days))
	assert.True(t, d("7.5").Equal(hours))

	days, hours = ConvertGrantTotals(decimal.Zero, d("24"))
	assert.True(t, d("3").Equal(days))
	assert.True(t, hours.IsZero())
}

func TestLateCheckinsToDays(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 0, 3: 1, 5: 1, 6: 2, 8: 2, 9: 3}
	for count, want := range cases {
		assert.Equal(t, want, LateCheckinsToDays(count), "count=%d", count)
	}
}

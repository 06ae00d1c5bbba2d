package balance

import (
	"github.com/openhrms/leave-ledger-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// FreshAllocation returns the CL and SL pools granted in the calendar
// month equal to the employee's personal leave-start month. When resets
// is false the category carries the prior balance forward unchanged and
// the returned pools are meaningless.
func FreshAllocation(category employee.Category) (cl, sl decimal.Decimal, resets bool) {
	switch category {
	case employee.CategoryConfirmed, employee.CategoryTimeScale:
		return decimal.NewFromInt(12), decimal.NewFromInt(15), true
	case employee.CategoryContract:
		return decimal.NewFromInt(8), decimal.NewFromInt(8), true
	default:
		// adhoc, part_time and anything unknown: carry forward only.
		return decimal.Zero, decimal.Zero, false
	}
}

// ELCredit returns the earned-leave days credited for a calendar month.
// EL is credited in January and June only, company policy, independent
// of the employee's personal leave-start month. Adhoc employees are
// never credited.
func ELCredit(month int, category employee.Category) decimal.Decimal {
	if month != 1 && month != 6 {
		return decimal.Zero
	}
	switch category {
	case employee.CategoryConfirmed, employee.CategoryTimeScale, employee.CategoryContract:
		return decimal.NewFromInt(15)
	case employee.CategoryPartTime:
		return decimal.NewFromInt(8)
	default:
		return decimal.Zero
	}
}

package balance

import (
	"sort"

	domain "github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/shopspring/decimal"
)

// Pool identifies one deficit bucket the waterfall must satisfy.
type Pool string

const (
	PoolCasual     Pool = "CL"
	PoolLate       Pool = "late"
	PoolPermission Pool = "permission"
	PoolSick       Pool = "SL"
)

// DeductionRule pins a pool to a position in the waterfall. The order is
// data, not control flow: both allocation phases walk the rule list by
// ascending priority.
type DeductionRule struct {
	Pool     Pool
	Priority int
}

// DefaultDeductionRules is the company policy: casual leave first, then
// late days, then permission days, then sick leave.
func DefaultDeductionRules() []DeductionRule {
	return []DeductionRule{
		{Pool: PoolCasual, Priority: 1},
		{Pool: PoolLate, Priority: 2},
		{Pool: PoolPermission, Priority: 3},
		{Pool: PoolSick, Priority: 4},
	}
}

// Inputs collects everything the allocator needs for one employee-month.
// Day-valued deficits are already normalized; available pools include the
// previous month's carry.
type Inputs struct {
	CLAvailed      decimal.Decimal // CL days availed this month
	LateDays       decimal.Decimal // late check-ins converted to days
	PermissionDays decimal.Decimal // permission days, current + carried
	SLAvailed      decimal.Decimal // SL days availed this month
	ELAvailed      decimal.Decimal // EL days availed this month

	CompOffDays     decimal.Decimal // available comp-off days, current + carried
	CompOffHours    decimal.Decimal // comp-off hour remainder
	PermissionHours decimal.Decimal // permission hour remainder

	CLBalance decimal.Decimal // fresh allocation or carried
	SLBalance decimal.Decimal
	ELBalance decimal.Decimal // carried + credited this month
}

// Allocation is the fully resolved waterfall for one employee-month.
type Allocation struct {
	CompOffUsedDays  decimal.Decimal // days consumed from comp-off in phase 1
	CompOffUsedHours decimal.Decimal // min(comp-off hours, permission hours)
	CompOffDays      decimal.Decimal // carry forward
	CompOffHours     decimal.Decimal

	CLDrawn decimal.Decimal // drawn from the CL balance in phase 2
	ELDrawn decimal.Decimal // deficit overflow charged to EL (excludes ELAvailed)

	CLBalance decimal.Decimal // may be negative before close-time flooring
	SLBalance decimal.Decimal
	ELBalance decimal.Decimal

	SLShortfall decimal.Decimal // SL deficit comp-off could not cover

	PermissionDays  decimal.Decimal // uncovered permission days, carry forward
	PermissionHours decimal.Decimal // permission hours comp-off could not cover

	LOPDays decimal.Decimal
	Status  domain.Status

	// SLOverBalance flags SL availed beyond the SL pool. Informational;
	// never blocks the computation.
	SLOverBalance bool
}

// Allocate resolves the month's deficits against the available pools.
//
// Phase 1 pays the deficits out of comp-off days, in rule order, each
// step capped by remaining comp-off and remaining deficit. Comp-off hour
// consumption is capped at min(comp-off hours, permission hours),
// independent of day consumption. Whatever SL deficit survives phase 1
// is never covered downstream; it feeds loss-of-pay at half value.
//
// Phase 2 resolves the remaining CL/late/permission deficit from the CL
// balance and, when the EL balance is positive, overflows into EL in the
// same order. With no positive EL the CL balance absorbs everything and
// may go negative; the negative value becomes LOP at close.
func Allocate(in Inputs, rules []DeductionRule) Allocation {
	ordered := make([]DeductionRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority < ordered[j].Priority })

	deficits := map[Pool]decimal.Decimal{
		PoolCasual:     in.CLAvailed,
		PoolLate:       in.LateDays,
		PoolPermission: in.PermissionDays,
		PoolSick:       in.SLAvailed,
	}

	// Phase 1: comp-off days.
	compOff := in.CompOffDays
	for _, rule := range ordered {
		pay := decimal.Min(deficits[rule.Pool], compOff)
		deficits[rule.Pool] = deficits[rule.Pool].Sub(pay)
		compOff = compOff.Sub(pay)
	}
	usedDays := in.CompOffDays.Sub(compOff)
	usedHours := decimal.Min(in.CompOffHours, in.PermissionHours)

	slShortfall := deficits[PoolSick]
	deficits[PoolSick] = decimal.Zero

	// Phase 2: CL balance, then EL overflow. Drawn amounts are capped at
	// what the pool actually holds; any charge beyond that shows up as a
	// negative balance and becomes LOP, never as a draw.
	var clDrawn, elDrawn decimal.Decimal
	var clBalance, elBalance decimal.Decimal

	if in.ELBalance.IsPositive() {
		drawable := decimal.Max(in.CLBalance, decimal.Zero)
		for _, rule := range ordered {
			if rule.Pool == PoolSick {
				continue
			}
			pay := decimal.Min(deficits[rule.Pool], drawable)
			deficits[rule.Pool] = deficits[rule.Pool].Sub(pay)
			drawable = drawable.Sub(pay)
			clDrawn = clDrawn.Add(pay)
		}
		elCharge := decimal.Zero
		for _, rule := range ordered {
			if rule.Pool == PoolSick {
				continue
			}
			elCharge = elCharge.Add(deficits[rule.Pool])
			deficits[rule.Pool] = decimal.Zero
		}
		elDrawn = decimal.Min(elCharge, in.ELBalance)
		clBalance = in.CLBalance.Sub(clDrawn)
		elBalance = in.ELBalance.Sub(elCharge).Sub(in.ELAvailed)
	} else {
		clCharge := decimal.Zero
		for _, rule := range ordered {
			if rule.Pool == PoolSick {
				continue
			}
			clCharge = clCharge.Add(deficits[rule.Pool])
			deficits[rule.Pool] = decimal.Zero
		}
		clDrawn = decimal.Min(clCharge, decimal.Max(in.CLBalance, decimal.Zero))
		clBalance = in.CLBalance.Sub(clCharge)
		elBalance = in.ELBalance.Sub(in.ELAvailed)
	}

	slBalance := in.SLBalance.Sub(slShortfall)

	lop := negativePart(clBalance).Add(negativePart(elBalance))
	if slShortfall.IsPositive() {
		lop = lop.Add(slShortfall.Div(decimal.NewFromInt(2)))
	}

	status := domain.StatusFull
	if lop.IsPositive() {
		status = domain.StatusLOP
	}

	return Allocation{
		CompOffUsedDays:  usedDays,
		CompOffUsedHours: usedHours,
		CompOffDays:      in.CompOffDays.Sub(usedDays),
		CompOffHours:     in.CompOffHours.Sub(usedHours),
		CLDrawn:          clDrawn,
		ELDrawn:          elDrawn,
		CLBalance:        clBalance,
		SLBalance:        slBalance,
		ELBalance:        elBalance,
		SLShortfall:      slShortfall,
		PermissionDays:   deficits[PoolPermission],
		PermissionHours:  in.PermissionHours.Sub(usedHours),
		LOPDays:          lop,
		Status:           status,
		SLOverBalance:    in.SLAvailed.GreaterThan(in.SLBalance),
	}
}

func negativePart(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return d.Neg()
	}
	return decimal.Zero
}

package balance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/openhrms/leave-ledger-go/internal/domain/attendance"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/domain/employee"
	"github.com/openhrms/leave-ledger-go/internal/domain/leave"
	"github.com/openhrms/leave-ledger-go/internal/domain/schedule"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type BalanceServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.PunchRepository
	schedule.ShiftAssignmentRepository
	leave.LeaveRequestRepository
	balance.MonthlyBalanceRepository
	balance.CompOffRepository
	balance.PermissionRepository

	latePolicy       LatePolicy
	rules            []DeductionRule
	closeParallelism int
}

func NewBalanceService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	punchRepo attendance.PunchRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	balanceRepo balance.MonthlyBalanceRepository,
	compOffRepo balance.CompOffRepository,
	permissionRepo balance.PermissionRepository,
	latePolicy LatePolicy,
	closeParallelism int,
) balance.BalanceService {
	if closeParallelism < 1 {
		closeParallelism = 1
	}
	return &BalanceServiceImpl{
		db:                        db,
		EmployeeRepository:        employeeRepo,
		PunchRepository:           punchRepo,
		ShiftAssignmentRepository: assignmentRepo,
		LeaveRequestRepository:    leaveRequestRepo,
		MonthlyBalanceRepository:  balanceRepo,
		CompOffRepository:         compOffRepo,
		PermissionRepository:      permissionRepo,
		latePolicy:                latePolicy,
		rules:                     DefaultDeductionRules(),
		closeParallelism:          closeParallelism,
	}
}

// computation holds one employee-month's gathered inputs and the resolved
// waterfall. Both projections and month close are built from it.
type computation struct {
	emp         employee.Employee
	prev        *balance.MonthlyBalance
	grants      []balance.CompOffGrant
	permissions []balance.PermissionEntry
	consumption leave.Consumption
	lateDates   []string

	currentCompOffDays    decimal.Decimal
	currentCompOffHours   decimal.Decimal
	currentPermissionDays decimal.Decimal

	inputs   Inputs
	alloc    Allocation
	warnings []string
}

func previousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

func monthBounds(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func (s *BalanceServiceImpl) compute(ctx context.Context, emp employee.Employee, month, year int) (computation, error) {
	c := computation{emp: emp}

	prevMonth, prevYear := previousMonth(month, year)
	prevRow, err := s.MonthlyBalanceRepository.GetByEmployeeMonthYear(ctx, emp.ID, prevMonth, prevYear)
	switch {
	case err == nil:
		c.prev = &prevRow
	case errors.Is(err, balance.ErrBalanceNotFound):
		// Bootstrap month: zero carry.
	default:
		return c, fmt.Errorf("load previous balance: %w", err)
	}

	var carry balance.MonthlyBalance
	if c.prev != nil {
		carry = *c.prev
	}

	// Comp-off pool: approved grants only.
	c.grants, err = s.CompOffRepository.ListByEmployeeMonth(ctx, emp.ID, month, year)
	if err != nil {
		return c, fmt.Errorf("load comp-off grants: %w", err)
	}
	grantHours := decimal.Zero
	for _, g := range c.grants {
		if g.Status == balance.GrantStatusApproved {
			grantHours = grantHours.Add(g.Hours)
		}
	}
	curCoDays, curCoHours := ConvertGrantTotals(decimal.Zero, grantHours)
	compOffDays, compOffHours := NormalizeHours(carry.CompOffDays, carry.CompOffHours, curCoDays, curCoHours)
	c.currentCompOffDays = curCoDays
	c.currentCompOffHours = curCoHours

	// Permission pool: every entry counts, no approval gate.
	c.permissions, err = s.PermissionRepository.ListByEmployeeMonth(ctx, emp.ID, month, year)
	if err != nil {
		return c, fmt.Errorf("load permission entries: %w", err)
	}
	permHours := decimal.Zero
	for _, p := range c.permissions {
		permHours = permHours.Add(p.Hours)
	}
	curPermDays, curPermHours := ConvertGrantTotals(decimal.Zero, permHours)
	permissionDays, permissionHours := NormalizeHours(carry.LateEarlyDays, carry.LateEarlyHours, curPermDays, curPermHours)
	c.currentPermissionDays = curPermDays

	// Late check-ins.
	first, last := monthBounds(month, year)
	punches, err := s.PunchRepository.GetByEmployeeMonth(ctx, emp.ID, month, year)
	if err != nil {
		return c, fmt.Errorf("load punches: %w", err)
	}
	assignments, err := s.ShiftAssignmentRepository.GetActiveForRange(ctx, emp.ID, first, last)
	if err != nil {
		return c, fmt.Errorf("load shift assignments: %w", err)
	}
	lateCount := 0
	for _, p := range punches {
		if p.ClockIn == nil {
			continue
		}
		if IsLate(assignments, p.Date, *p.ClockIn, s.latePolicy) {
			lateCount++
			c.lateDates = append(c.lateDates, p.Date.Format("2006-01-02"))
		}
	}
	lateDays := decimal.NewFromInt(int64(LateCheckinsToDays(lateCount)))

	// Leave consumption by category.
	c.consumption, err = s.LeaveRequestRepository.ConsumptionForMonth(ctx, emp.ID, month, year)
	if err != nil {
		return c, fmt.Errorf("load leave consumption: %w", err)
	}
	for _, name := range c.consumption.Unclassified {
		c.warnings = append(c.warnings, fmt.Sprintf("leave type %q has no category; excluded from CL/SL/EL", name))
	}

	// CL/SL pools: fresh allocation in the employee's personal
	// leave-start month, carried forward otherwise. An unset
	// leave-start month means the pools never reset.
	clBalance := carry.CLBalance
	slBalance := carry.SLBalance
	if emp.LeaveStartMonth != nil && *emp.LeaveStartMonth == month {
		if cl, sl, resets := FreshAllocation(emp.Category); resets {
			clBalance = cl
			slBalance = sl
		}
	}
	elBalance := carry.ELBalance.Add(ELCredit(month, emp.Category))

	c.inputs = Inputs{
		CLAvailed:       c.consumption.CasualDays,
		LateDays:        lateDays,
		PermissionDays:  permissionDays,
		SLAvailed:       c.consumption.SickDays,
		ELAvailed:       c.consumption.EarnedDays,
		CompOffDays:     compOffDays,
		CompOffHours:    compOffHours,
		PermissionHours: permissionHours,
		CLBalance:       clBalance,
		SLBalance:       slBalance,
		ELBalance:       elBalance,
	}
	c.alloc = Allocate(c.inputs, s.rules)
	return c, nil
}

// Details implements balance.BalanceService.
func (s *BalanceServiceImpl) Details(ctx context.Context, companyID string, month, year int) ([]balance.DetailsRow, error) {
	employees, err := s.EmployeeRepository.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows := make([]balance.DetailsRow, 0, len(employees))
	for _, emp := range employees {
		c, err := s.compute(ctx, emp, month, year)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", emp.ID, err)
		}

		leaves, err := s.LeaveRequestRepository.GetApprovedForMonth(ctx, emp.ID, month, year)
		if err != nil {
			return nil, fmt.Errorf("employee %s: load leave entries: %w", emp.ID, err)
		}
		entries := make([]balance.LeaveEntry, 0, len(leaves))
		for _, lr := range leaves {
			entries = append(entries, balance.LeaveEntry{
				LeaveTypeName: lr.LeaveTypeName,
				Category:      string(lr.LeaveTypeCategory),
				StartDate:     lr.StartDate.Format("2006-01-02"),
				EndDate:       lr.EndDate.Format("2006-01-02"),
				Days:          lr.Days,
			})
		}

		rows = append(rows, balance.DetailsRow{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			EmployeeName: emp.FullName,
			CompOffs:     c.grants,
			Permissions:  c.permissions,
			LeaveEntries: entries,
			LateDates:    c.lateDates,
			Previous:     c.prev,
			Warnings:     c.warnings,
		})
	}
	return rows, nil
}

// Summary implements balance.BalanceService. The waterfall is computed
// live against current data; nothing is persisted.
func (s *BalanceServiceImpl) Summary(ctx context.Context, companyID string, month, year int) ([]balance.SummaryRow, error) {
	employees, err := s.EmployeeRepository.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows := make([]balance.SummaryRow, 0, len(employees))
	for _, emp := range employees {
		c, err := s.compute(ctx, emp, month, year)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", emp.ID, err)
		}
		rows = append(rows, summaryRow(c))
	}
	return rows, nil
}

func summaryRow(c computation) balance.SummaryRow {
	in, alloc := c.inputs, c.alloc
	return balance.SummaryRow{
		EmployeeID:   c.emp.ID,
		EmployeeCode: c.emp.EmployeeCode,
		EmployeeName: c.emp.FullName,
		Category:     string(c.emp.Category),
		CompOff: balance.PoolFigures{
			Current:   c.currentCompOffDays,
			Available: in.CompOffDays,
			Adjusted:  alloc.CompOffUsedDays,
			Balance:   alloc.CompOffDays,
		},
		CompOffHours: balance.PoolFigures{
			Current:   c.currentCompOffHours,
			Available: in.CompOffHours,
			Adjusted:  alloc.CompOffUsedHours,
			Balance:   alloc.CompOffHours,
		},
		CL: balance.PoolFigures{
			Current:   in.CLAvailed,
			Available: in.CLBalance,
			Adjusted:  alloc.CLDrawn,
			Balance:   alloc.CLBalance,
		},
		SL: balance.PoolFigures{
			Current:   in.SLAvailed,
			Available: in.SLBalance,
			Adjusted:  in.SLAvailed.Sub(alloc.SLShortfall),
			Balance:   alloc.SLBalance,
		},
		EL: balance.PoolFigures{
			Current:   in.ELAvailed,
			Available: in.ELBalance,
			Adjusted:  alloc.ELDrawn,
			Balance:   alloc.ELBalance,
		},
		Permission: balance.PoolFigures{
			Current:   c.currentPermissionDays,
			Available: in.PermissionDays,
			Adjusted:  in.PermissionDays.Sub(alloc.PermissionDays),
			Balance:   alloc.PermissionDays,
		},
		LateDays:      in.LateDays,
		LOPDays:       alloc.LOPDays,
		Status:        alloc.Status,
		SLOverBalance: alloc.SLOverBalance,
		Warnings:      c.warnings,
	}
}

// CloseMonth implements balance.BalanceService. Every active employee is
// recomputed and upserted independently with bounded parallelism; one
// employee failing leaves its row unclosed and never aborts the batch.
func (s *BalanceServiceImpl) CloseMonth(ctx context.Context, companyID string, month, year int, force bool) (balance.CloseResult, error) {
	employees, err := s.EmployeeRepository.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return balance.CloseResult{}, err
	}

	result := balance.CloseResult{Month: month, Year: year}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.closeParallelism)
	for _, emp := range employees {
		g.Go(func() error {
			if err := s.closeEmployee(gctx, emp, month, year, force); err != nil {
				mu.Lock()
				result.Failed = append(result.Failed, balance.CloseFailure{
					EmployeeID: emp.ID,
					Error:      err.Error(),
				})
				mu.Unlock()
				return nil
			}
			mu.Lock()
			result.Processed++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func (s *BalanceServiceImpl) closeEmployee(ctx context.Context, emp employee.Employee, month, year int, force bool) error {
	existing, err := s.MonthlyBalanceRepository.GetByEmployeeMonthYear(ctx, emp.ID, month, year)
	switch {
	case err == nil:
		if existing.IsClosed && !force {
			return balance.ErrMonthAlreadyClosed
		}
	case errors.Is(err, balance.ErrBalanceNotFound):
	default:
		return err
	}

	// A month may only close on top of a closed predecessor. The very
	// first ledger month for an employee is exempt.
	prevMonth, prevYear := previousMonth(month, year)
	prev, err := s.MonthlyBalanceRepository.GetByEmployeeMonthYear(ctx, emp.ID, prevMonth, prevYear)
	if errors.Is(err, balance.ErrBalanceNotFound) || (err == nil && !prev.IsClosed) {
		hasEarlier, herr := s.MonthlyBalanceRepository.HasRowsBefore(ctx, emp.ID, month, year)
		if herr != nil {
			return herr
		}
		if hasEarlier {
			return balance.ErrPreviousMonthNotClosed
		}
	} else if err != nil {
		return err
	}

	c, err := s.compute(ctx, emp, month, year)
	if err != nil {
		return err
	}

	row := balance.MonthlyBalance{
		EmployeeID:     emp.ID,
		CompanyID:      emp.CompanyID,
		Month:          month,
		Year:           year,
		CompOffDays:    floorZero(c.alloc.CompOffDays),
		CompOffHours:   floorZero(c.alloc.CompOffHours),
		CLBalance:      floorZero(c.alloc.CLBalance),
		SLBalance:      floorZero(c.alloc.SLBalance),
		ELBalance:      floorZero(c.alloc.ELBalance),
		LateEarlyDays:  floorZero(c.alloc.PermissionDays),
		LateEarlyHours: floorZero(c.alloc.PermissionHours),
		LOPDays:        c.alloc.LOPDays,
		IsClosed:       true,
	}
	if _, err := s.MonthlyBalanceRepository.Upsert(ctx, row); err != nil {
		return fmt.Errorf("persist ledger row: %w", err)
	}
	return nil
}

// floorZero clamps a carry-forward field at zero. Deficits become LOP for
// the month and never propagate as debt.
func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ReopenMonth implements balance.BalanceService. Reopening is rejected
// while any later month is already closed, since those months consumed
// this one as their carry source.
func (s *BalanceServiceImpl) ReopenMonth(ctx context.Context, companyID string, month, year int) (int, error) {
	closedAfter, err := s.MonthlyBalanceRepository.AnyClosedAfter(ctx, companyID, month, year)
	if err != nil {
		return 0, err
	}
	if closedAfter {
		return 0, balance.ErrDownstreamMonthClosed
	}
	return s.MonthlyBalanceRepository.ReopenMonth(ctx, companyID, month, year)
}

// SeedOpeningBalance implements balance.BalanceService. The seeded row is
// stored closed so the following month can chain from it.
func (s *BalanceServiceImpl) SeedOpeningBalance(ctx context.Context, companyID string, req balance.SeedBalanceRequest) (balance.MonthlyBalance, error) {
	if err := req.Validate(); err != nil {
		return balance.MonthlyBalance{}, err
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return balance.MonthlyBalance{}, err
	}
	if emp.CompanyID != companyID {
		return balance.MonthlyBalance{}, employee.ErrUnauthorized
	}

	existing, err := s.MonthlyBalanceRepository.GetByEmployeeMonthYear(ctx, req.EmployeeID, req.Month, req.Year)
	if err == nil && existing.IsClosed {
		return balance.MonthlyBalance{}, balance.ErrMonthAlreadyClosed
	}
	if err != nil && !errors.Is(err, balance.ErrBalanceNotFound) {
		return balance.MonthlyBalance{}, err
	}

	coDays, coHours := ConvertGrantTotals(decimal.NewFromFloat(req.CompOffDays), decimal.NewFromFloat(req.CompOffHours))
	leDays, leHours := ConvertGrantTotals(decimal.NewFromFloat(req.LateEarlyDays), decimal.NewFromFloat(req.LateEarlyHours))

	row := balance.MonthlyBalance{
		EmployeeID:     req.EmployeeID,
		CompanyID:      companyID,
		Month:          req.Month,
		Year:           req.Year,
		CompOffDays:    coDays,
		CompOffHours:   coHours,
		CLBalance:      decimal.NewFromFloat(req.CLBalance),
		SLBalance:      decimal.NewFromFloat(req.SLBalance),
		ELBalance:      decimal.NewFromFloat(req.ELBalance),
		LateEarlyDays:  leDays,
		LateEarlyHours: leHours,
		LOPDays:        decimal.Zero,
		IsClosed:       true,
	}
	return s.MonthlyBalanceRepository.Upsert(ctx, row)
}

package balance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/openhrms/leave-ledger-go/internal/domain/attendance"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/domain/employee"
	"github.com/openhrms/leave-ledger-go/internal/domain/leave"
	"github.com/openhrms/leave-ledger-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. Only the methods the balance service reaches are
// meaningfully implemented.

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, companyID, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.CompanyID == companyID && e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakePunchRepo struct {
	punches []attendance.Punch
}

func (f *fakePunchRepo) GetByEmployeeMonth(_ context.Context, employeeID string, month, year int) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && int(p.Date.Month()) == month && p.Date.Year() == year {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments []schedule.ShiftAssignment
}

func (f *fakeAssignmentRepo) GetActiveForRange(_ context.Context, employeeID string, _, _ time.Time) ([]schedule.ShiftAssignment, error) {
	var out []schedule.ShiftAssignment
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeLeaveRequestRepo struct {
	requests    []leave.LeaveRequest
	consumption map[string]leave.Consumption
}

func (f *fakeLeaveRequestRepo) GetApprovedForMonth(_ context.Context, employeeID string, _, _ int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ConsumptionForMonth(_ context.Context, employeeID string, _, _ int) (leave.Consumption, error) {
	if c, ok := f.consumption[employeeID]; ok {
		return c, nil
	}
	return leave.Consumption{}, nil
}

type balanceKey struct {
	employeeID  string
	month, year int
}

type fakeBalanceRepo struct {
	mu   sync.Mutex
	rows map[balanceKey]balance.MonthlyBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{rows: make(map[balanceKey]balance.MonthlyBalance)}
}

func (f *fakeBalanceRepo) GetByEmployeeMonthYear(_ context.Context, employeeID string, month, year int) (balance.MonthlyBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[balanceKey{employeeID, month, year}]
	if !ok {
		return balance.MonthlyBalance{}, balance.ErrBalanceNotFound
	}
	return row, nil
}

func (f *fakeBalanceRepo) Upsert(_ context.Context, row balance.MonthlyBalance) (balance.MonthlyBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[balanceKey{row.EmployeeID, row.Month, row.Year}] = row
	return row, nil
}

func (f *fakeBalanceRepo) HasRowsBefore(_ context.Context, employeeID string, month, year int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.rows {
		if k.employeeID == employeeID && (k.year < year || (k.year == year && k.month < month)) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBalanceRepo) AnyClosedAfter(_ context.Context, companyID string, month, year int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, row := range f.rows {
		if row.CompanyID == companyID && row.IsClosed && (k.year > year || (k.year == year && k.month > month)) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBalanceRepo) ReopenMonth(_ context.Context, companyID string, month, year int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for k, row := range f.rows {
		if row.CompanyID == companyID && k.month == month && k.year == year && row.IsClosed {
			row.IsClosed = false
			f.rows[k] = row
			count++
		}
	}
	return count, nil
}

type fakeCompOffRepo struct {
	grants []balance.CompOffGrant
}

func (f *fakeCompOffRepo) Create(_ context.Context, g balance.CompOffGrant) (balance.CompOffGrant, error) {
	f.grants = append(f.grants, g)
	return g, nil
}

func (f *fakeCompOffRepo) GetByID(_ context.Context, id string) (balance.CompOffGrant, error) {
	for _, g := range f.grants {
		if g.ID == id {
			return g, nil
		}
	}
	return balance.CompOffGrant{}, balance.ErrGrantNotFound
}

func (f *fakeCompOffRepo) UpdateStatus(_ context.Context, id string, status balance.GrantStatus) error {
	for i := range f.grants {
		if f.grants[i].ID == id {
			f.grants[i].Status = status
			return nil
		}
	}
	return balance.ErrGrantNotFound
}

func (f *fakeCompOffRepo) Delete(_ context.Context, id string) error {
	for i := range f.grants {
		if f.grants[i].ID == id {
			f.grants = append(f.grants[:i], f.grants[i+1:]...)
			return nil
		}
	}
	return balance.ErrGrantNotFound
}

func (f *fakeCompOffRepo) ListByEmployeeMonth(_ context.Context, employeeID string, month, year int) ([]balance.CompOffGrant, error) {
	var out []balance.CompOffGrant
	for _, g := range f.grants {
		if g.EmployeeID == employeeID && g.Month == month && g.Year == year {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeCompOffRepo) ListByCompanyMonth(_ context.Context, companyID string, month, year int) ([]balance.CompOffGrant, error) {
	var out []balance.CompOffGrant
	for _, g := range f.grants {
		if g.CompanyID == companyID && g.Month == month && g.Year == year {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakePermissionRepo struct {
	entries []balance.PermissionEntry
}

func (f *fakePermissionRepo) Create(_ context.Context, e balance.PermissionEntry) (balance.PermissionEntry, error) {
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakePermissionRepo) GetByID(_ context.Context, id string) (balance.PermissionEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return balance.PermissionEntry{}, balance.ErrPermissionNotFound
}

func (f *fakePermissionRepo) Delete(_ context.Context, id string) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return balance.ErrPermissionNotFound
}

func (f *fakePermissionRepo) ListByEmployeeMonth(_ context.Context, employeeID string, month, year int) ([]balance.PermissionEntry, error) {
	var out []balance.PermissionEntry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && e.Month == month && e.Year == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePermissionRepo) ListByCompanyMonth(_ context.Context, companyID string, month, year int) ([]balance.PermissionEntry, error) {
	var out []balance.PermissionEntry
	for _, e := range f.entries {
		if e.CompanyID == companyID && e.Month == month && e.Year == year {
			out = append(out, e)
		}
	}
	return out, nil
}

type serviceFixture struct {
	employees   *fakeEmployeeRepo
	punches     *fakePunchRepo
	assignments *fakeAssignmentRepo
	leaves      *fakeLeaveRequestRepo
	balances    *fakeBalanceRepo
	compOffs    *fakeCompOffRepo
	permissions *fakePermissionRepo
	service     balance.BalanceService
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		employees:   &fakeEmployeeRepo{},
		punches:     &fakePunchRepo{},
		assignments: &fakeAssignmentRepo{},
		leaves:      &fakeLeaveRequestRepo{consumption: make(map[string]leave.Consumption)},
		balances:    newFakeBalanceRepo(),
		compOffs:    &fakeCompOffRepo{},
		permissions: &fakePermissionRepo{},
	}
	f.service = NewBalanceService(
		nil,
		f.employees,
		f.punches,
		f.assignments,
		f.leaves,
		f.balances,
		f.compOffs,
		f.permissions,
		DefaultLatePolicy(),
		4,
	)
	return f
}

func month(n int) *int { return &n }

func confirmedEmployee(id, companyID string, leaveStart *int) employee.Employee {
	return employee.Employee{
		ID:               id,
		CompanyID:        companyID,
		EmployeeCode:     "E-" + id,
		FullName:         "Employee " + id,
		Category:         employee.CategoryConfirmed,
		LeaveStartMonth:  leaveStart,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
}

func TestBalanceService_Summary_FreshAllocationOnAnniversary(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}
	f.balances.rows[balanceKey{"e1", 6, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 6, Year: 2025,
		CLBalance: d("2"), SLBalance: d("1"), ELBalance: d("4"), IsClosed: true,
	}

	rows, err := f.service.Summary(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, d("12").Equal(rows[0].CL.Available), "anniversary month resets CL regardless of carry")
	assert.True(t, d("15").Equal(rows[0].SL.Available))
	assert.True(t, d("4").Equal(rows[0].EL.Available), "EL carries, July credits nothing")
}

func TestBalanceService_Summary_CarriesForwardOffAnniversary(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}
	f.balances.rows[balanceKey{"e1", 7, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 7, Year: 2025,
		CLBalance: d("9"), SLBalance: d("13"), ELBalance: d("4"), IsClosed: true,
	}

	rows, err := f.service.Summary(context.Background(), "c1", 8, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, d("9").Equal(rows[0].CL.Available))
	assert.True(t, d("13").Equal(rows[0].SL.Available))
}

func TestBalanceService_Summary_UnsetLeaveStartNeverResets(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", nil)}
	f.balances.rows[balanceKey{"e1", 6, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 6, Year: 2025,
		CLBalance: d("2"), SLBalance: d("1"), IsClosed: true,
	}

	rows, err := f.service.Summary(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, d("2").Equal(rows[0].CL.Available))
	assert.True(t, d("1").Equal(rows[0].SL.Available))
}

func TestBalanceService_Summary_CompOffAndLateness(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	// One approved 10-hour grant and one pending one that must not count.
	f.compOffs.grants = []balance.CompOffGrant{
		{ID: "g1", EmployeeID: "e1", CompanyID: "c1", Hours: d("10"), Status: balance.GrantStatusApproved, Month: 7, Year: 2025},
		{ID: "g2", EmployeeID: "e1", CompanyID: "c1", Hours: d("16"), Status: balance.GrantStatusPending, Month: 7, Year: 2025},
	}

	// Three late punches against the 09:15 fallback convert to one day.
	for day := 1; day <= 3; day++ {
		in := time.Date(2025, 7, day, 9, 30, 0, 0, time.UTC)
		f.punches.punches = append(f.punches.punches, attendance.Punch{
			EmployeeID: "e1", Date: time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC), ClockIn: &in,
		})
	}

	rows, err := f.service.Summary(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, d("1").Equal(rows[0].CompOff.Available), "10h grant folds to 1 day")
	assert.True(t, d("2").Equal(rows[0].CompOffHours.Available))
	assert.True(t, d("1").Equal(rows[0].LateDays))
	assert.True(t, d("1").Equal(rows[0].CompOff.Adjusted), "comp-off pays the late day")
	assert.True(t, rows[0].LOPDays.IsZero())
}

func TestBalanceService_Summary_CompOffHourCarryOverflow(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	// 6 carried hours plus a 4-hour grant fold into 1 day + 2 hours.
	f.balances.rows[balanceKey{"e1", 6, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 6, Year: 2025,
		CompOffHours: d("6"), IsClosed: true,
	}
	f.compOffs.grants = []balance.CompOffGrant{
		{ID: "g1", EmployeeID: "e1", CompanyID: "c1", Hours: d("4"), Status: balance.GrantStatusApproved, Month: 7, Year: 2025},
	}

	rows, err := f.service.Summary(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, d("1").Equal(rows[0].CompOff.Available))
	assert.True(t, d("2").Equal(rows[0].CompOffHours.Available))
	assert.True(t, d("4").Equal(rows[0].CompOffHours.Current), "this month's own remainder, not available minus carry")
	assert.False(t, rows[0].CompOffHours.Current.IsNegative())
}

func TestBalanceService_Summary_UnclassifiedLeaveWarns(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}
	f.leaves.consumption["e1"] = leave.Consumption{
		CasualDays:   d("1"),
		Unclassified: []string{"Paternity Leave"},
	}

	rows, err := f.service.Summary(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Warnings, 1)
	assert.Contains(t, rows[0].Warnings[0], "Paternity Leave")
}

func TestBalanceService_CloseMonth_WritesClosedRow(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	result, err := f.service.CloseMonth(context.Background(), "c1", 7, 2025, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Empty(t, result.Failed)

	row, err := f.balances.GetByEmployeeMonthYear(context.Background(), "e1", 7, 2025)
	require.NoError(t, err)
	assert.True(t, row.IsClosed)
	assert.True(t, d("12").Equal(row.CLBalance))
	assert.True(t, d("15").Equal(row.SLBalance))
}

func TestBalanceService_CloseMonth_GuardsReclose(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}
	f.balances.rows[balanceKey{"e1", 7, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 7, Year: 2025, IsClosed: true,
	}

	result, err := f.service.CloseMonth(context.Background(), "c1", 7, 2025, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "e1", result.Failed[0].EmployeeID)
	assert.Equal(t, balance.ErrMonthAlreadyClosed.Error(), result.Failed[0].Error)

	// Force re-closes with recomputed values.
	result, err = f.service.CloseMonth(context.Background(), "c1", 7, 2025, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Empty(t, result.Failed)
}

func TestBalanceService_CloseMonth_RequiresClosedPredecessor(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	// An earlier row exists but June itself is open: July must not close.
	f.balances.rows[balanceKey{"e1", 6, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 6, Year: 2025, IsClosed: false,
	}

	result, err := f.service.CloseMonth(context.Background(), "c1", 7, 2025, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, balance.ErrPreviousMonthNotClosed.Error(), result.Failed[0].Error)
}

func TestBalanceService_CloseMonth_BootstrapMonthExempt(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	// No ledger history at all: the first month closes without a
	// predecessor.
	result, err := f.service.CloseMonth(context.Background(), "c1", 7, 2025, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestBalanceService_CloseMonth_FloorsNegativeCarry(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", nil)}
	f.balances.rows[balanceKey{"e1", 6, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 6, Year: 2025, IsClosed: true,
	}
	// 3 CL days availed against zero balances drives CL to -3.
	f.leaves.consumption["e1"] = leave.Consumption{CasualDays: d("3")}

	result, err := f.service.CloseMonth(context.Background(), "c1", 7, 2025, false)
	require.NoError(t, err)
	require.Equal(t, 1, result.Processed)

	row, err := f.balances.GetByEmployeeMonthYear(context.Background(), "e1", 7, 2025)
	require.NoError(t, err)
	assert.True(t, row.CLBalance.IsZero(), "deficit floored, not carried as debt")
	assert.True(t, d("3").Equal(row.LOPDays), "LOP keeps the full deficit")
}

func TestBalanceService_CloseMonth_IdempotentUnderForce(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	_, err := f.service.CloseMonth(context.Background(), "c1", 7, 2025, false)
	require.NoError(t, err)
	first, err := f.balances.GetByEmployeeMonthYear(context.Background(), "e1", 7, 2025)
	require.NoError(t, err)

	_, err = f.service.CloseMonth(context.Background(), "c1", 7, 2025, true)
	require.NoError(t, err)
	second, err := f.balances.GetByEmployeeMonthYear(context.Background(), "e1", 7, 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBalanceService_ReopenMonth(t *testing.T) {
	f := newServiceFixture()
	f.balances.rows[balanceKey{"e1", 7, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 7, Year: 2025, IsClosed: true,
	}

	reopened, err := f.service.ReopenMonth(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened)

	row, err := f.balances.GetByEmployeeMonthYear(context.Background(), "e1", 7, 2025)
	require.NoError(t, err)
	assert.False(t, row.IsClosed)
}

func TestBalanceService_ReopenMonth_RejectedWhenDownstreamClosed(t *testing.T) {
	f := newServiceFixture()
	f.balances.rows[balanceKey{"e1", 7, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 7, Year: 2025, IsClosed: true,
	}
	f.balances.rows[balanceKey{"e1", 8, 2025}] = balance.MonthlyBalance{
		EmployeeID: "e1", CompanyID: "c1", Month: 8, Year: 2025, IsClosed: true,
	}

	_, err := f.service.ReopenMonth(context.Background(), "c1", 7, 2025)
	assert.ErrorIs(t, err, balance.ErrDownstreamMonthClosed)
}

func TestBalanceService_SeedOpeningBalance(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	row, err := f.service.SeedOpeningBalance(context.Background(), "c1", balance.SeedBalanceRequest{
		EmployeeID:   "e1",
		Month:        6,
		Year:         2025,
		CompOffHours: 12,
		CLBalance:    4,
	})
	require.NoError(t, err)

	assert.True(t, row.IsClosed, "seed row stores closed so month+1 can chain")
	assert.True(t, d("1").Equal(row.CompOffDays), "12h folds into 1 day 4h")
	assert.True(t, d("4").Equal(row.CompOffHours))
	assert.True(t, d("4").Equal(row.CLBalance))
}

func TestBalanceService_SeedOpeningBalance_WrongCompany(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}

	_, err := f.service.SeedOpeningBalance(context.Background(), "c2", balance.SeedBalanceRequest{
		EmployeeID: "e1", Month: 6, Year: 2025,
	})
	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

func TestBalanceService_Details(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{confirmedEmployee("e1", "c1", month(7))}
	f.compOffs.grants = []balance.CompOffGrant{
		{ID: "g1", EmployeeID: "e1", CompanyID: "c1", Hours: d("8"), Status: balance.GrantStatusApproved, Month: 7, Year: 2025},
	}
	f.permissions.entries = []balance.PermissionEntry{
		{ID: "p1", EmployeeID: "e1", CompanyID: "c1", Type: balance.PermissionGeneral, Hours: d("2"), Month: 7, Year: 2025},
	}
	f.leaves.requests = []leave.LeaveRequest{{
		EmployeeID:        "e1",
		StartDate:         time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
		Days:              d("2"),
		LeaveTypeName:     "Casual Leave",
		LeaveTypeCategory: leave.CategoryCasual,
	}}

	rows, err := f.service.Details(context.Background(), "c1", 7, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Len(t, rows[0].CompOffs, 1)
	assert.Len(t, rows[0].Permissions, 1)
	require.Len(t, rows[0].LeaveEntries, 1)
	assert.Equal(t, "2025-07-10", rows[0].LeaveEntries[0].StartDate)
	assert.Nil(t, rows[0].Previous)
}

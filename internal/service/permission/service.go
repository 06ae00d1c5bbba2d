package permission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/domain/employee"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
	"github.com/openhrms/leave-ledger-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var hoursPerDay = decimal.NewFromInt(8)

type PermissionServiceImpl struct {
	db *database.DB
	balance.PermissionRepository
	balance.MonthlyBalanceRepository
	employee.EmployeeRepository
}

func NewPermissionService(
	db *database.DB,
	permissionRepo balance.PermissionRepository,
	balanceRepo balance.MonthlyBalanceRepository,
	employeeRepo employee.EmployeeRepository,
) balance.PermissionService {
	return &PermissionServiceImpl{
		db:                       db,
		PermissionRepository:     permissionRepo,
		MonthlyBalanceRepository: balanceRepo,
		EmployeeRepository:       employeeRepo,
	}
}

// Create implements balance.PermissionService. Permission entries carry
// no approval gate; every entry counts toward the month's deficit.
func (s *PermissionServiceImpl) Create(ctx context.Context, companyID string, req balance.CreatePermissionRequest) (balance.PermissionEntry, error) {
	if err := req.Validate(); err != nil {
		return balance.PermissionEntry{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return balance.PermissionEntry{}, err
	}
	if emp.CompanyID != companyID {
		return balance.PermissionEntry{}, employee.ErrUnauthorized
	}

	if err := s.ensureMonthOpen(ctx, req.EmployeeID, int(date.Month()), date.Year()); err != nil {
		return balance.PermissionEntry{}, err
	}

	hours := decimal.NewFromFloat(req.Hours)
	entry := balance.PermissionEntry{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Type:       balance.PermissionType(req.Type),
		Hours:      hours,
		Days:       hours.Div(hoursPerDay),
		Month:      int(date.Month()),
		Year:       date.Year(),
	}
	return s.PermissionRepository.Create(ctx, entry)
}

// Delete implements balance.PermissionService.
func (s *PermissionServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	entry, err := s.PermissionRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.CompanyID != companyID {
		return balance.ErrPermissionNotFound
	}
	if err := s.ensureMonthOpen(ctx, entry.EmployeeID, entry.Month, entry.Year); err != nil {
		return err
	}
	return s.PermissionRepository.Delete(ctx, id)
}

// ListByMonth implements balance.PermissionService.
func (s *PermissionServiceImpl) ListByMonth(ctx context.Context, companyID string, month, year int) ([]balance.PermissionEntry, error) {
	return s.PermissionRepository.ListByCompanyMonth(ctx, companyID, month, year)
}

func (s *PermissionServiceImpl) ensureMonthOpen(ctx context.Context, employeeID string, month, year int) error {
	row, err := s.MonthlyBalanceRepository.GetByEmployeeMonthYear(ctx, employeeID, month, year)
	if errors.Is(err, balance.ErrBalanceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if row.IsClosed {
		return balance.ErrMonthClosedForEdits
	}
	return nil
}

package compoff

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

type CompOffServiceImpl struct {
	db *database.DB
	balance.CompOffRepository
	balance.MonthlyBalanceRepository
	employee.EmployeeRepository
}

func NewCompOffService(
	db *database.DB,
	compOffRepo balance.CompOffRepository,
	balanceRepo balance.MonthlyBalanceRepository,
	employeeRepo employee.EmployeeRepository,
) balance.CompOffService {
	return &CompOffServiceImpl{
		db:                       db,
		CompOffRepository:        compOffRepo,
		MonthlyBalanceRepository: balanceRepo,
		EmployeeRepository:       employeeRepo,
	}
}

// Create implements balance.CompOffService. Grants start pending; only
// approval makes them count toward the ledger.
func (s *CompOffServiceImpl) Create(ctx context.Context, companyID string, req balance.CreateCompOffRequest) (balance.CompOffGrant, error) {
	if err := req.Validate(); err != nil {
		return balance.CompOffGrant{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return balance.CompOffGrant{}, err
	}
	if emp.CompanyID != companyID {
		return balance.CompOffGrant{}, employee.ErrUnauthorized
	}

	if err := s.ensureMonthOpen(ctx, req.EmployeeID, int(date.Month()), date.Year()); err != nil {
		return balance.CompOffGrant{}, err
	}

	hours := decimal.NewFromFloat(req.Hours)
	grant := balance.CompOffGrant{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Hours:      hours,
		Days:       hours.Div(hoursPerDay),
		Status:     balance.GrantStatusPending,
		Month:      int(date.Month()),
		Year:       date.Year(),
	}
	return s.CompOffRepository.Create(ctx, grant)
}

// Approve implements balance.CompOffService.
func (s *CompOffServiceImpl) Approve(ctx context.Context, companyID, id string) error {
	return s.setStatus(ctx, companyID, id, balance.GrantStatusApproved)
}

// Reject implements balance.CompOffService.
func (s *CompOffServiceImpl) Reject(ctx context.Context, companyID, id string) error {
	return s.setStatus(ctx, companyID, id, balance.GrantStatusRejected)
}

func (s *CompOffServiceImpl) setStatus(ctx context.Context, companyID, id string, status balance.GrantStatus) error {
	grant, err := s.CompOffRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if grant.CompanyID != companyID {
		return balance.ErrGrantNotFound
	}
	if grant.Status != balance.GrantStatusPending {
		return balance.ErrGrantAlreadyProcessed
	}
	if err := s.ensureMonthOpen(ctx, grant.EmployeeID, grant.Month, grant.Year); err != nil {
		return err
	}
	return s.CompOffRepository.UpdateStatus(ctx, id, status)
}

// Delete implements balance.CompOffService. Grants may be deleted freely
// before their month closes.
func (s *CompOffServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	grant, err := s.CompOffRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if grant.CompanyID != companyID {
		return balance.ErrGrantNotFound
	}
	if err := s.ensureMonthOpen(ctx, grant.EmployeeID, grant.Month, grant.Year); err != nil {
		return err
	}
	return s.CompOffRepository.Delete(ctx, id)
}

// ListByMonth implements balance.CompOffService.
func (s *CompOffServiceImpl) ListByMonth(ctx context.Context, companyID string, month, year int) ([]balance.CompOffGrant, error) {
	return s.CompOffRepository.ListByCompanyMonth(ctx, companyID, month, year)
}

func (s *CompOffServiceImpl) ensureMonthOpen(ctx context.Context, employeeID string, month, year int) error {
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

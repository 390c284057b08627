package payroll

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	payrollerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sourceType = "payroll"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l}
}

func (s *service) Preview(
	ctx context.Context,
	req PreviewRequest,
) (PreviewResponse, error) {
	employeeID, periodStart, periodEnd, err := validatePeriod(req.EmployeeID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return PreviewResponse{}, err
	}

	emp, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		return PreviewResponse{}, err
	}
	sum, err := s.repo.Summarize(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return PreviewResponse{}, err
	}
	budget, err := s.poster.Balance(ctx, ledger.EmployeeBudget, employeeID)
	if err != nil {
		return PreviewResponse{}, err
	}

	return PreviewResponse{
		EmployeeID:   employeeID.String(),
		EmployeeName: emp.FullName,
		PeriodStart:  dateutil.FormatDate(periodStart),
		PeriodEnd:    dateutil.FormatDate(periodEnd),
		DailySalary:  sum.DailySalary,
		DaysWorked:   sum.DaysWorked,
		TotalSalary:  sum.TotalSalary,
		Bonuses:      sum.Bonuses,
		Deductions:   sum.Deductions,
		Advances:     sum.Advances,
		NetSalary:    sum.NetSalary,
		Budget:       budget,
	}, nil
}

// Create snapshots the period summary and pays PaidAmount out of the employee
// budget. A zero PaidAmount pays the computed net salary.
func (s *service) Create(
	ctx context.Context,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create payroll requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("period_start", req.PeriodStart),
		zap.String("period_end", req.PeriodEnd),
	)

	employeeID, periodStart, periodEnd, err := validatePeriod(req.EmployeeID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}
	if req.PaidAmount.IsNegative() {
		return PayrollResponse{}, payrollerrors.ErrInvalidPaidAmount
	}
	var custodyID *uuid.UUID
	if req.CustodyID != nil && strings.TrimSpace(*req.CustodyID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.CustodyID))
		if err != nil {
			return PayrollResponse{}, payrollerrors.ErrInvalidCustodyID
		}
		custodyID = &id
	}

	var (
		row *Payroll
		res ledger.Result
	)
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		emp, err := qtx.FindEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		overlap, err := qtx.HasOverlappingPeriod(ctx, employeeID, periodStart, periodEnd, nil)
		if err != nil {
			return err
		}
		if overlap {
			return payrollerrors.ErrPayrollOverlap
		}
		sum, err := qtx.Summarize(ctx, employeeID, periodStart, periodEnd)
		if err != nil {
			return err
		}

		paid := req.PaidAmount
		if paid.IsZero() {
			paid = sum.NetSalary
		}
		if !paid.IsPositive() {
			return payrollerrors.ErrInvalidPaidAmount
		}

		row = &Payroll{
			ID:          uuid.New(),
			EmployeeID:  employeeID,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			DailySalary: sum.DailySalary,
			DaysWorked:  sum.DaysWorked,
			TotalSalary: sum.TotalSalary,
			Bonuses:     sum.Bonuses,
			Deductions:  sum.Deductions,
			Advances:    sum.Advances,
			NetSalary:   sum.NetSalary,
			PaidAmount:  paid,
			CustodyID:   custodyID,
			Notes:       strings.TrimSpace(req.Notes),
			Employee:    emp,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return err
		}

		plan := ledger.Create("payroll.created",
			ledger.PayrollContribution(row.EmployeeID, row.PaidAmount),
		).From(sourceType, row.ID)
		if custodyID != nil {
			plan = plan.WithCharge(ledger.Charge{
				CustodyID:   *custodyID,
				Amount:      row.PaidAmount,
				Description: "Payroll for " + emp.FullName,
				Date:        periodEnd,
				Source:      ledger.SourcePayroll,
				SourceID:    row.ID,
			})
		}
		res, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("create payroll failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("create payroll success",
		zap.String("payroll_id", row.ID.String()),
		zap.String("paid_amount", row.PaidAmount.String()),
	)
	return withBudget(mapToResponse(*row), res, row.EmployeeID), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter PayrollFilter,
) ([]PayrollResponse, error) {
	employeeID := strings.TrimSpace(filter.EmployeeID)
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, payrollerrors.ErrInvalidEmployeeID
		}
	}
	from, err := parseOptionalDate(filter.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(filter.To)
	if err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindAll(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	payroll, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*payroll), nil
}

// Update changes the paid amount. Any custody charge made on create stays as
// it was recorded.
func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}
	if !req.PaidAmount.IsPositive() {
		return PayrollResponse{}, payrollerrors.ErrInvalidPaidAmount
	}

	var (
		row *Payroll
		res ledger.Result
	)
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		prev := cur.PaidAmount
		cur.PaidAmount = req.PaidAmount
		cur.Notes = strings.TrimSpace(req.Notes)
		if err := qtx.Update(ctx, cur); err != nil {
			return err
		}

		plan := ledger.Diff("payroll.updated",
			ledger.PayrollContribution(cur.EmployeeID, prev),
			ledger.PayrollContribution(cur.EmployeeID, cur.PaidAmount),
		).From(sourceType, cur.ID)
		res, err = s.poster.WithTx(tx).Apply(ctx, plan)
		if err != nil {
			return err
		}
		row = cur
		return nil
	})
	if err != nil {
		log.Warn("update payroll failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("update payroll success", zap.String("payroll_id", id))
	return withBudget(mapToResponse(*row), res, row.EmployeeID), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidPayrollID
	}

	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := qtx.Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		plan := ledger.Reverse("payroll.deleted",
			ledger.PayrollContribution(cur.EmployeeID, cur.PaidAmount),
		).From(sourceType, cur.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete payroll failed", zap.String("payroll_id", id), zap.Error(err))
		return err
	}

	log.Info("delete payroll success", zap.String("payroll_id", id))
	return nil
}

func validatePeriod(
	employeeID, start, end string,
) (uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(strings.TrimSpace(employeeID))
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidEmployeeID
	}

	periodStart, err := dateutil.ParseDate(start)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	periodEnd, err := dateutil.ParseDate(end)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}

	if periodStart.After(periodEnd) {
		return uuid.Nil, time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}

	return employeeUUID, periodStart, periodEnd, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := dateutil.ParseDate(v)
	if err != nil {
		return nil, payrollerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func withBudget(resp PayrollResponse, res ledger.Result, employeeID uuid.UUID) PayrollResponse {
	if budget, ok := res.Balance(ledger.EmployeeBudget, employeeID); ok {
		resp.EmployeeBudget = &budget
	}
	return resp
}

func mapToResponse(payroll Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          payroll.ID.String(),
		EmployeeID:  payroll.EmployeeID.String(),
		PeriodStart: dateutil.FormatDate(payroll.PeriodStart),
		PeriodEnd:   dateutil.FormatDate(payroll.PeriodEnd),
		DailySalary: payroll.DailySalary,
		DaysWorked:  payroll.DaysWorked,
		TotalSalary: payroll.TotalSalary,
		Bonuses:     payroll.Bonuses,
		Deductions:  payroll.Deductions,
		Advances:    payroll.Advances,
		NetSalary:   payroll.NetSalary,
		PaidAmount:  payroll.PaidAmount,
		Notes:       payroll.Notes,
	}

	if payroll.CustodyID != nil {
		v := payroll.CustodyID.String()
		resp.CustodyID = &v
	}
	if payroll.Employee != nil {
		resp.EmployeeName = payroll.Employee.FullName
	}

	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}

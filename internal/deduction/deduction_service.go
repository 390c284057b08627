package deduction

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	deductionerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/deduction/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sourceType = "deduction"

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	GetAll(ctx context.Context, filter DeductionFilter) ([]DeductionResponse, error)
	GetByID(ctx context.Context, id string) (DeductionResponse, error)
	Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return deductionerrors.ErrDeductionNotFound
	}
	return err
}

func (s *service) Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidEmployeeID
	}
	if !req.Amount.IsPositive() {
		return DeductionResponse{}, deductionerrors.ErrInvalidAmount
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidDate
	}

	row := &Deduction{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Amount:     req.Amount,
		Date:       date,
		Reason:     strings.TrimSpace(req.Reason),
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		emp, err := qtx.FindEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		row.Employee = emp

		if err := qtx.Create(ctx, row); err != nil {
			return err
		}

		plan := ledger.Create("deduction.created",
			ledger.DeductionContribution(row.EmployeeID, row.Amount),
		).From(sourceType, row.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("create deduction failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return DeductionResponse{}, err
	}

	log.Info("create deduction success", zap.String("deduction_id", row.ID.String()))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter DeductionFilter) ([]DeductionResponse, error) {
	employeeID := strings.TrimSpace(filter.EmployeeID)
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, deductionerrors.ErrInvalidEmployeeID
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

	rows, err := s.repo.FindAll(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]DeductionResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DeductionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidDeductionID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidDeductionID
	}
	if !req.Amount.IsPositive() {
		return DeductionResponse{}, deductionerrors.ErrInvalidAmount
	}

	var row *Deduction
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		date, err := dateutil.ParseDateOr(req.Date, cur.Date)
		if err != nil {
			return deductionerrors.ErrInvalidDate
		}

		prev := cur.Amount
		cur.Amount = req.Amount
		cur.Date = date
		cur.Reason = strings.TrimSpace(req.Reason)
		if err := qtx.Update(ctx, cur); err != nil {
			return err
		}

		plan := ledger.Diff("deduction.updated",
			ledger.DeductionContribution(cur.EmployeeID, prev),
			ledger.DeductionContribution(cur.EmployeeID, cur.Amount),
		).From(sourceType, cur.ID)
		if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}
		row = cur
		return nil
	})
	if err != nil {
		log.Warn("update deduction failed", zap.String("deduction_id", id), zap.Error(err))
		return DeductionResponse{}, err
	}

	log.Info("update deduction success", zap.String("deduction_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return deductionerrors.ErrInvalidDeductionID
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

		plan := ledger.Reverse("deduction.deleted",
			ledger.DeductionContribution(cur.EmployeeID, cur.Amount),
		).From(sourceType, cur.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete deduction failed", zap.String("deduction_id", id), zap.Error(err))
		return err
	}

	log.Info("delete deduction success", zap.String("deduction_id", id))
	return nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDate
	}
	return &t, nil
}

func mapToResponse(b Deduction) DeductionResponse {
	resp := DeductionResponse{
		ID:         b.ID.String(),
		EmployeeID: b.EmployeeID.String(),
		Amount:     b.Amount,
		Date:       dateutil.FormatDate(b.Date),
		Reason:     b.Reason,
	}
	if b.Employee != nil {
		resp.EmployeeName = b.Employee.FullName
	}
	return resp
}

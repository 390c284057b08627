package bonus

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	bonuserrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bonus/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sourceType = "bonus"

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error)
	GetAll(ctx context.Context, filter BonusFilter) ([]BonusResponse, error)
	GetByID(ctx context.Context, id string) (BonusResponse, error)
	Update(ctx context.Context, id string, req UpdateBonusRequest) (BonusResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bonuserrors.ErrBonusNotFound
	}
	return err
}

func (s *service) Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidEmployeeID
	}
	if !req.Amount.IsPositive() {
		return BonusResponse{}, bonuserrors.ErrInvalidAmount
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidDate
	}
	var custodyID *uuid.UUID
	if req.CustodyID != nil && strings.TrimSpace(*req.CustodyID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.CustodyID))
		if err != nil {
			return BonusResponse{}, bonuserrors.ErrInvalidCustodyID
		}
		custodyID = &id
	}

	row := &Bonus{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Amount:     req.Amount,
		Date:       date,
		CustodyID:  custodyID,
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

		plan := ledger.Create("bonus.created",
			ledger.BonusContribution(row.EmployeeID, row.Amount),
		).From(sourceType, row.ID)
		if custodyID != nil {
			plan = plan.WithCharge(ledger.Charge{
				CustodyID:   *custodyID,
				Amount:      row.Amount,
				Description: "Bonus for " + emp.FullName,
				Date:        row.Date,
				Source:      ledger.SourceBonus,
				SourceID:    row.ID,
			})
		}
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("create bonus failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return BonusResponse{}, err
	}

	log.Info("create bonus success", zap.String("bonus_id", row.ID.String()))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter BonusFilter) ([]BonusResponse, error) {
	employeeID := strings.TrimSpace(filter.EmployeeID)
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, bonuserrors.ErrInvalidEmployeeID
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

	res := make([]BonusResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BonusResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidBonusID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BonusResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBonusRequest) (BonusResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return BonusResponse{}, bonuserrors.ErrInvalidBonusID
	}
	if !req.Amount.IsPositive() {
		return BonusResponse{}, bonuserrors.ErrInvalidAmount
	}

	var row *Bonus
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		date, err := dateutil.ParseDateOr(req.Date, cur.Date)
		if err != nil {
			return bonuserrors.ErrInvalidDate
		}

		prev := cur.Amount
		cur.Amount = req.Amount
		cur.Date = date
		cur.Reason = strings.TrimSpace(req.Reason)
		if err := qtx.Update(ctx, cur); err != nil {
			return err
		}

		plan := ledger.Diff("bonus.updated",
			ledger.BonusContribution(cur.EmployeeID, prev),
			ledger.BonusContribution(cur.EmployeeID, cur.Amount),
		).From(sourceType, cur.ID)
		if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}
		row = cur
		return nil
	})
	if err != nil {
		log.Warn("update bonus failed", zap.String("bonus_id", id), zap.Error(err))
		return BonusResponse{}, err
	}

	log.Info("update bonus success", zap.String("bonus_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return bonuserrors.ErrInvalidBonusID
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

		plan := ledger.Reverse("bonus.deleted",
			ledger.BonusContribution(cur.EmployeeID, cur.Amount),
		).From(sourceType, cur.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete bonus failed", zap.String("bonus_id", id), zap.Error(err))
		return err
	}

	log.Info("delete bonus success", zap.String("bonus_id", id))
	return nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return nil, bonuserrors.ErrInvalidDate
	}
	return &t, nil
}

func mapToResponse(b Bonus) BonusResponse {
	resp := BonusResponse{
		ID:         b.ID.String(),
		EmployeeID: b.EmployeeID.String(),
		Amount:     b.Amount,
		Date:       dateutil.FormatDate(b.Date),
		Reason:     b.Reason,
	}
	if b.CustodyID != nil {
		id := b.CustodyID.String()
		resp.CustodyID = &id
	}
	if b.Employee != nil {
		resp.EmployeeName = b.Employee.FullName
	}
	return resp
}

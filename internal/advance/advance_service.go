package advance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	advanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/advance/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sourceType = "advance"

//go:generate mockgen -source=advance_service.go -destination=mock/advance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	GetAll(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error)
	GetByID(ctx context.Context, id string) (AdvanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAdvanceRequest) (AdvanceResponse, error)
	Repay(ctx context.Context, id string) (AdvanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("advance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("advance.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l, now: time.Now}
}

func contribution(a *Advance) []ledger.Delta {
	return ledger.AdvanceContribution(a.EmployeeID, a.Amount, a.IsRepaid())
}

// Create holds the amount against the employee budget. When a custody paid
// the advance out, the custody is charged and an expense row records it.
func (s *service) Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create advance requested", zap.String("employee_id", req.EmployeeID))

	employeeID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidEmployeeID
	}
	if !req.Amount.IsPositive() {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAmount
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidDate
	}
	var custodyID *uuid.UUID
	if req.CustodyID != nil && strings.TrimSpace(*req.CustodyID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.CustodyID))
		if err != nil {
			return AdvanceResponse{}, advanceerrors.ErrInvalidCustodyID
		}
		custodyID = &id
	}

	row := &Advance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Amount:     req.Amount,
		Date:       date,
		Status:     StatusPending,
		CustodyID:  custodyID,
		Notes:      strings.TrimSpace(req.Notes),
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		emp, err := s.findEmployee(ctx, qtx, employeeID)
		if err != nil {
			return err
		}
		row.Employee = emp

		if err := qtx.Create(ctx, row); err != nil {
			log.Error("create advance persist failed", zap.Error(err))
			return err
		}

		plan := ledger.Create("advance.created", contribution(row)).From(sourceType, row.ID)
		if custodyID != nil {
			plan = plan.WithCharge(ledger.Charge{
				CustodyID:   *custodyID,
				Amount:      row.Amount,
				Description: "Advance to " + emp.FullName,
				Date:        row.Date,
				Source:      ledger.SourceAdvance,
				SourceID:    row.ID,
			})
		}
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("create advance failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AdvanceResponse{}, err
	}

	log.Info("create advance success",
		zap.String("advance_id", row.ID.String()),
		zap.String("amount", row.Amount.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error) {
	q := Query{
		EmployeeID: strings.TrimSpace(filter.EmployeeID),
		Status:     strings.ToLower(strings.TrimSpace(filter.Status)),
	}
	if q.EmployeeID != "" {
		if _, err := uuid.Parse(q.EmployeeID); err != nil {
			return nil, advanceerrors.ErrInvalidEmployeeID
		}
	}
	if q.Status != "" && q.Status != StatusPending && q.Status != StatusRepaid {
		return nil, advanceerrors.ErrInvalidStatus
	}
	if filter.From != "" {
		from, err := dateutil.ParseDate(filter.From)
		if err != nil {
			return nil, advanceerrors.ErrInvalidDate
		}
		q.From = &from
	}
	if filter.To != "" {
		to, err := dateutil.ParseDate(filter.To)
		if err != nil {
			return nil, advanceerrors.ErrInvalidDate
		}
		q.To = &to
	}

	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all advances failed", zap.Error(err))
		return nil, err
	}

	res := make([]AdvanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AdvanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAdvanceID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AdvanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// Update diffs the stored contribution against the new one, so a status
// change to repaid releases the old amount and a change back to pending
// holds the new amount again. The custody charge made on create is final.
func (s *service) Update(ctx context.Context, id string, req UpdateAdvanceRequest) (AdvanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update advance requested", zap.String("advance_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAdvanceID
	}
	if !req.Amount.IsPositive() {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAmount
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != "" && status != StatusPending && status != StatusRepaid {
		return AdvanceResponse{}, advanceerrors.ErrInvalidStatus
	}

	var row *Advance
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		date, err := dateutil.ParseDateOr(req.Date, cur.Date)
		if err != nil {
			return advanceerrors.ErrInvalidDate
		}

		prev := contribution(cur)
		cur.Amount = req.Amount
		cur.Date = date
		cur.Notes = strings.TrimSpace(req.Notes)
		if status != "" && status != cur.Status {
			s.setStatus(cur, status)
		}

		if err := qtx.Update(ctx, cur); err != nil {
			log.Error("update advance persist failed", zap.Error(err))
			return err
		}

		plan := ledger.Diff("advance.updated", prev, contribution(cur)).From(sourceType, cur.ID)
		if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}

		row = cur
		return nil
	})
	if err != nil {
		log.Warn("update advance failed", zap.String("advance_id", id), zap.Error(err))
		return AdvanceResponse{}, err
	}

	log.Info("update advance success", zap.String("advance_id", id), zap.String("status", row.Status))
	return mapToResponse(*row), nil
}

// Repay marks a pending advance as settled and releases it from the
// employee budget.
func (s *service) Repay(ctx context.Context, id string) (AdvanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAdvanceID
	}

	var row *Advance
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if cur.IsRepaid() {
			return advanceerrors.ErrAlreadyRepaid
		}

		prev := contribution(cur)
		s.setStatus(cur, StatusRepaid)
		if err := qtx.Update(ctx, cur); err != nil {
			return err
		}

		plan := ledger.Diff("advance.repaid", prev, contribution(cur)).From(sourceType, cur.ID)
		if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}
		row = cur
		return nil
	})
	if err != nil {
		log.Warn("repay advance failed", zap.String("advance_id", id), zap.Error(err))
		return AdvanceResponse{}, err
	}

	log.Info("repay advance success", zap.String("advance_id", id))
	return mapToResponse(*row), nil
}

// Delete releases a pending advance from the employee budget. Money paid out
// of a custody stays spent.
func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return advanceerrors.ErrInvalidAdvanceID
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

		plan := ledger.Reverse("advance.deleted", contribution(cur)).From(sourceType, cur.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete advance failed", zap.String("advance_id", id), zap.Error(err))
		return err
	}

	log.Info("delete advance success", zap.String("advance_id", id))
	return nil
}

func (s *service) setStatus(a *Advance, status string) {
	a.Status = status
	if status == StatusRepaid {
		now := s.now().UTC()
		a.RepaidAt = &now
		return
	}
	a.RepaidAt = nil
}

func (s *service) findEmployee(ctx context.Context, qtx Repository, id uuid.UUID) (*domain.EmployeeRef, error) {
	emp, err := qtx.FindEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, advanceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func mapToResponse(a Advance) AdvanceResponse {
	resp := AdvanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Amount:     a.Amount,
		Date:       dateutil.FormatDate(a.Date),
		Status:     a.Status,
		RepaidAt:   dateutil.FormatOptional(a.RepaidAt, dateutil.DateTimeLayout),
		Notes:      a.Notes,
	}
	if a.CustodyID != nil {
		id := a.CustodyID.String()
		resp.CustodyID = &id
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.Custody != nil {
		resp.CustodyName = a.Custody.Name
	}
	return resp
}

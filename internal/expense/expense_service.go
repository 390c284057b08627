package expense

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	expenseerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sourceType = "expense"

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, filter ExpenseFilter) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	Update(ctx context.Context, id string, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l}
}

type entry struct {
	custodyID   uuid.UUID
	projectID   *uuid.UUID
	amount      decimal.Decimal
	description string
	date        time.Time
}

func parseEntry(custodyID string, projectID *string, amount decimal.Decimal, description, date string) (entry, error) {
	cid, err := uuid.Parse(strings.TrimSpace(custodyID))
	if err != nil {
		return entry{}, expenseerrors.ErrInvalidCustodyID
	}
	if !amount.IsPositive() {
		return entry{}, expenseerrors.ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entry{}, expenseerrors.ErrDescriptionRequired
	}
	day, err := dateutil.ParseDateOr(date, dateutil.Today())
	if err != nil {
		return entry{}, expenseerrors.ErrInvalidDate
	}

	e := entry{custodyID: cid, amount: amount, description: description, date: day}
	if projectID != nil && strings.TrimSpace(*projectID) != "" {
		pid, err := uuid.Parse(strings.TrimSpace(*projectID))
		if err != nil {
			return entry{}, expenseerrors.ErrInvalidProjectID
		}
		e.projectID = &pid
	}
	return e, nil
}

func (s *service) Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create expense requested", zap.String("custody_id", req.CustodyID))

	en, err := parseEntry(req.CustodyID, req.ProjectID, req.Amount, req.Description, req.Date)
	if err != nil {
		log.Warn("create expense validation failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	row := &Expense{
		ID:          uuid.New(),
		CustodyID:   en.custodyID,
		ProjectID:   en.projectID,
		Amount:      en.amount,
		Description: en.description,
		Date:        en.date,
		Source:      string(ledger.SourceManual),
	}

	var remaining decimal.Decimal
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		project, err := s.findProject(ctx, qtx, en.projectID)
		if err != nil {
			return err
		}
		row.Project = project

		if err := qtx.Create(ctx, row); err != nil {
			log.Error("create expense persist failed", zap.Error(err))
			return err
		}

		plan := ledger.Create("expense.created",
			ledger.ExpenseContribution(row.CustodyID, row.Amount),
		).From(sourceType, row.ID)
		res, err := s.poster.WithTx(tx).Apply(ctx, plan)
		if err != nil {
			return err
		}
		remaining, _ = res.Balance(ledger.CustodyRemaining, row.CustodyID)
		return nil
	})
	if err != nil {
		log.Warn("create expense failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	log.Info("create expense success",
		zap.String("expense_id", row.ID.String()),
		zap.String("amount", row.Amount.String()),
		zap.String("custody_remaining", remaining.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter ExpenseFilter) ([]ExpenseResponse, error) {
	q := Query{
		CustodyID: strings.TrimSpace(filter.CustodyID),
		ProjectID: strings.TrimSpace(filter.ProjectID),
		Source:    strings.TrimSpace(filter.Source),
	}
	if q.CustodyID != "" {
		if _, err := uuid.Parse(q.CustodyID); err != nil {
			return nil, expenseerrors.ErrInvalidCustodyID
		}
	}
	if q.ProjectID != "" {
		if _, err := uuid.Parse(q.ProjectID); err != nil {
			return nil, expenseerrors.ErrInvalidProjectID
		}
	}
	if filter.From != "" {
		from, err := dateutil.ParseDate(filter.From)
		if err != nil {
			return nil, expenseerrors.ErrInvalidDate
		}
		q.From = &from
	}
	if filter.To != "" {
		to, err := dateutil.ParseDate(filter.To)
		if err != nil {
			return nil, expenseerrors.ErrInvalidDate
		}
		q.To = &to
	}

	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all expenses failed", zap.Error(err))
		return nil, err
	}

	res := make([]ExpenseResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExpenseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidExpenseID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ExpenseResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// Update moves the difference between the stored and the new amount. When
// the custody changes, the old custody is refunded and the new one charged.
func (s *service) Update(ctx context.Context, id string, req UpdateExpenseRequest) (ExpenseResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update expense requested", zap.String("expense_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidExpenseID
	}
	en, err := parseEntry(req.CustodyID, req.ProjectID, req.Amount, req.Description, req.Date)
	if err != nil {
		log.Warn("update expense validation failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	var row *Expense
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if cur.Source != string(ledger.SourceManual) {
			return expenseerrors.ErrGeneratedExpense
		}
		project, err := s.findProject(ctx, qtx, en.projectID)
		if err != nil {
			return err
		}

		prev := ledger.ExpenseContribution(cur.CustodyID, cur.Amount)
		cur.CustodyID = en.custodyID
		cur.ProjectID = en.projectID
		cur.Amount = en.amount
		cur.Description = en.description
		cur.Date = en.date

		if err := qtx.Update(ctx, cur); err != nil {
			log.Error("update expense persist failed", zap.Error(err))
			return err
		}

		plan := ledger.Diff("expense.updated",
			prev,
			ledger.ExpenseContribution(cur.CustodyID, cur.Amount),
		).From(sourceType, cur.ID)
		if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}

		cur.Project = project
		row = cur
		return nil
	})
	if err != nil {
		log.Warn("update expense failed", zap.String("expense_id", id), zap.Error(err))
		return ExpenseResponse{}, err
	}

	log.Info("update expense success", zap.String("expense_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return expenseerrors.ErrInvalidExpenseID
	}

	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if cur.Source != string(ledger.SourceManual) {
			return expenseerrors.ErrGeneratedExpense
		}
		if err := qtx.Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		plan := ledger.Reverse("expense.deleted",
			ledger.ExpenseContribution(cur.CustodyID, cur.Amount),
		).From(sourceType, cur.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete expense failed", zap.String("expense_id", id), zap.Error(err))
		return err
	}

	log.Info("delete expense success", zap.String("expense_id", id))
	return nil
}

func (s *service) findProject(ctx context.Context, qtx Repository, id *uuid.UUID) (*domain.ProjectRef, error) {
	if id == nil {
		return nil, nil
	}
	p, err := qtx.FindProject(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expenseerrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func mapToResponse(e Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		CustodyID:   e.CustodyID.String(),
		Amount:      e.Amount,
		Description: e.Description,
		Date:        dateutil.FormatDate(e.Date),
		Source:      e.Source,
	}
	if e.ProjectID != nil {
		pid := e.ProjectID.String()
		resp.ProjectID = &pid
	}
	if e.SourceID != nil {
		sid := e.SourceID.String()
		resp.SourceID = &sid
	}
	if e.Custody != nil {
		resp.CustodyName = e.Custody.Name
	}
	if e.Project != nil {
		resp.ProjectName = e.Project.Name
	}
	return resp
}

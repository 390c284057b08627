package custody

import (
	"context"
	"database/sql"
	"strings"

	custodyerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sourceType = "custody_addition"

//go:generate mockgen -source=custody_service.go -destination=mock/custody_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCustodyRequest) (CustodyResponse, error)
	GetAll(ctx context.Context) ([]CustodyResponse, error)
	GetByID(ctx context.Context, id string) (CustodyResponse, error)
	Update(ctx context.Context, id string, req UpdateCustodyRequest) (CustodyResponse, error)
	AddAmount(ctx context.Context, custodyID string, req AddAmountRequest) (AdditionResponse, error)
	GetAdditions(ctx context.Context, custodyID string) ([]AdditionResponse, error)
	DeleteAddition(ctx context.Context, custodyID, additionID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("custody.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("custody.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l}
}

// Create opens a custody. A positive initial amount is booked as its first
// addition in the same transaction.
func (s *service) Create(ctx context.Context, req CreateCustodyRequest) (CustodyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CustodyResponse{}, custodyerrors.ErrNameRequired
	}
	if req.InitialAmount.IsNegative() {
		return CustodyResponse{}, custodyerrors.ErrInvalidAmount
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return CustodyResponse{}, custodyerrors.ErrInvalidDate
	}

	c := &Custody{
		ID:     uuid.New(),
		Name:   name,
		Holder: strings.TrimSpace(req.Holder),
		Notes:  strings.TrimSpace(req.Notes),
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Create(ctx, c); err != nil {
			log.Error("create custody persist failed", zap.Error(err))
			return err
		}
		if !req.InitialAmount.IsPositive() {
			return nil
		}

		add := &Addition{
			ID:        uuid.New(),
			CustodyID: c.ID,
			Amount:    req.InitialAmount,
			Date:      date,
			Notes:     "initial amount",
		}
		res, err := s.addAmount(ctx, tx, qtx, add)
		if err != nil {
			return err
		}
		c.Budget, _ = res.Balance(ledger.CustodyBudget, c.ID)
		c.Remaining, _ = res.Balance(ledger.CustodyRemaining, c.ID)
		return nil
	})
	if err != nil {
		return CustodyResponse{}, err
	}

	log.Info("create custody success",
		zap.String("custody_id", c.ID.String()),
		zap.String("budget", c.Budget.String()),
	)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CustodyResponse, error) {
	custodies, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all custodies failed", zap.Error(err))
		return nil, err
	}

	res := make([]CustodyResponse, len(custodies))
	for i, c := range custodies {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CustodyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CustodyResponse{}, custodyerrors.ErrInvalidCustodyID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustodyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

// Update edits descriptive fields only; balances move through additions and
// charges.
func (s *service) Update(ctx context.Context, id string, req UpdateCustodyRequest) (CustodyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CustodyResponse{}, custodyerrors.ErrInvalidCustodyID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CustodyResponse{}, custodyerrors.ErrNameRequired
	}

	var c *Custody
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		cur.Name = name
		cur.Holder = strings.TrimSpace(req.Holder)
		cur.Notes = strings.TrimSpace(req.Notes)
		if err := qtx.Update(ctx, cur); err != nil {
			return mapRepositoryError(err)
		}
		c = cur
		return nil
	})
	if err != nil {
		return CustodyResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) AddAmount(ctx context.Context, custodyID string, req AddAmountRequest) (AdditionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("add custody amount requested", zap.String("custody_id", custodyID))

	id, err := uuid.Parse(custodyID)
	if err != nil {
		return AdditionResponse{}, custodyerrors.ErrInvalidCustodyID
	}
	if !req.Amount.IsPositive() {
		return AdditionResponse{}, custodyerrors.ErrInvalidAmount
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return AdditionResponse{}, custodyerrors.ErrInvalidDate
	}

	add := &Addition{
		ID:        uuid.New(),
		CustodyID: id,
		Amount:    req.Amount,
		Date:      date,
		Notes:     strings.TrimSpace(req.Notes),
	}

	var res ledger.Result
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		res, err = s.addAmount(ctx, tx, s.repo.WithTx(tx), add)
		return err
	})
	if err != nil {
		log.Warn("add custody amount failed", zap.String("custody_id", custodyID), zap.Error(err))
		return AdditionResponse{}, err
	}

	resp := mapAdditionToResponse(*add)
	if budget, ok := res.Balance(ledger.CustodyBudget, id); ok {
		resp.CustodyBudget = &budget
	}
	if remaining, ok := res.Balance(ledger.CustodyRemaining, id); ok {
		resp.CustodyRemaining = &remaining
	}

	log.Info("add custody amount success",
		zap.String("custody_id", custodyID),
		zap.String("amount", add.Amount.String()),
	)
	return resp, nil
}

func (s *service) addAmount(ctx context.Context, tx *sql.Tx, qtx Repository, add *Addition) (ledger.Result, error) {
	// The poster locks the custody row and reports a missing custody, but
	// the addition row must not be written for one.
	if _, err := s.poster.WithTx(tx).Balance(ctx, ledger.CustodyRemaining, add.CustodyID); err != nil {
		return ledger.Result{}, err
	}
	if err := qtx.CreateAddition(ctx, add); err != nil {
		return ledger.Result{}, err
	}

	plan := ledger.Create("custody.amount_added",
		ledger.CustodyAdditionContribution(add.CustodyID, add.Amount),
	).From(sourceType, add.ID)
	return s.poster.WithTx(tx).Apply(ctx, plan)
}

func (s *service) GetAdditions(ctx context.Context, custodyID string) ([]AdditionResponse, error) {
	id, err := uuid.Parse(custodyID)
	if err != nil {
		return nil, custodyerrors.ErrInvalidCustodyID
	}
	if _, err := s.repo.FindByID(ctx, custodyID); err != nil {
		return nil, mapRepositoryError(err)
	}

	additions, err := s.repo.FindAdditions(ctx, id)
	if err != nil {
		return nil, err
	}

	res := make([]AdditionResponse, len(additions))
	for i, a := range additions {
		res[i] = mapAdditionToResponse(a)
	}
	return res, nil
}

// DeleteAddition withdraws a top-up from both balances. It fails when the
// money has already been spent.
func (s *service) DeleteAddition(ctx context.Context, custodyID, additionID string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	id, err := uuid.Parse(custodyID)
	if err != nil {
		return custodyerrors.ErrInvalidCustodyID
	}
	if _, err := uuid.Parse(additionID); err != nil {
		return custodyerrors.ErrInvalidAdditionID
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		add, err := qtx.FindAdditionForUpdate(ctx, id, additionID)
		if err != nil {
			return mapAdditionError(err)
		}
		if err := qtx.DeleteAddition(ctx, add.ID); err != nil {
			return mapAdditionError(err)
		}

		plan := ledger.Reverse("custody.amount_removed",
			ledger.CustodyAdditionContribution(add.CustodyID, add.Amount),
		).From(sourceType, add.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete custody addition failed",
			zap.String("custody_id", custodyID),
			zap.String("addition_id", additionID),
			zap.Error(err),
		)
		return err
	}

	log.Info("delete custody addition success", zap.String("addition_id", additionID))
	return nil
}

func mapToResponse(c Custody) CustodyResponse {
	return CustodyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Holder:    c.Holder,
		Budget:    c.Budget,
		Remaining: c.Remaining,
		Notes:     c.Notes,
		CreatedAt: dateutil.FormatDateTime(c.CreatedAt),
	}
}

func mapAdditionToResponse(a Addition) AdditionResponse {
	return AdditionResponse{
		ID:        a.ID.String(),
		CustodyID: a.CustodyID.String(),
		Amount:    a.Amount,
		Date:      dateutil.FormatDate(a.Date),
		Notes:     a.Notes,
	}
}

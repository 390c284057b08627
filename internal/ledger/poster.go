package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/events"
	ledgererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/messaging/kafka"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Poster applies plans. It must be bound to the caller's transaction with
// WithTx so the record mutation and its balance changes commit together.
//
//go:generate mockgen -source=poster.go -destination=mock/poster_mock.go -package=mock
type Poster interface {
	WithTx(tx *sql.Tx) Poster
	Apply(ctx context.Context, plan Plan) (Result, error)
	Balance(ctx context.Context, account Account, ownerID uuid.UUID) (decimal.Decimal, error)
}

type poster struct {
	db     *gorm.DB
	tx     *sql.Tx
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewPoster(db *gorm.DB, logger ...*zap.Logger) Poster {
	return NewPosterWithOutbox(db, nil, logger...)
}

// NewPosterWithOutbox also queues one balance_changed event per applied delta.
func NewPosterWithOutbox(db *gorm.DB, outbox kafka.OutboxRepository, logger ...*zap.Logger) Poster {
	l := zap.L().Named("ledger.poster")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &poster{db: db, outbox: outbox, logger: l, now: time.Now}
}

func (p *poster) WithTx(tx *sql.Tx) Poster {
	return &poster{
		db:     dbtx.Bind(p.db, tx),
		tx:     tx,
		outbox: p.outbox,
		logger: p.logger,
		now:    p.now,
	}
}

type balanceRow struct {
	Value decimal.Decimal
}

// chargeRow mirrors the expenses table for ledger-generated expenses.
type chargeRow struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	CustodyID   uuid.UUID
	ProjectID   *uuid.UUID
	Amount      decimal.Decimal `gorm:"type:decimal(14,2)"`
	Description string
	Date        time.Time
	Source      string
	SourceID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (chargeRow) TableName() string {
	return "expenses"
}

func (p *poster) Apply(ctx context.Context, plan Plan) (Result, error) {
	log := contextutil.GetLogger(ctx, p.logger)
	deltas := net(plan.Deltas)
	result := Result{Balances: make(map[Key]decimal.Decimal, len(deltas))}
	if len(deltas) == 0 && len(plan.Charges) == 0 {
		return result, nil
	}

	db := p.db.WithContext(ctx)

	// Lock every row first, in a fixed order, then check guards before writing.
	current := make([]decimal.Decimal, len(deltas))
	for i, d := range deltas {
		value, err := p.readBalance(db, d.Account, d.OwnerID, true)
		if err != nil {
			return Result{}, err
		}
		current[i] = value
	}

	for i, d := range deltas {
		if d.Guard && d.Amount.IsNegative() && current[i].Add(d.Amount).IsNegative() {
			log.Warn("ledger guard rejected plan",
				zap.String("reason", plan.Reason),
				zap.String("account", string(d.Account)),
				zap.String("owner_id", d.OwnerID.String()),
				zap.String("balance", current[i].String()),
				zap.String("delta", d.Amount.String()),
			)
			return Result{}, insufficientBalance(d.Account)
		}
	}

	now := p.now()
	for i, d := range deltas {
		col := columns[d.Account]
		err := db.Table(col.table).
			Where("id = ?", d.OwnerID).
			Updates(map[string]any{
				col.name:     gorm.Expr(col.name+" + ?", d.Amount),
				"updated_at": now,
			}).Error
		if err != nil {
			return Result{}, err
		}
		result.Balances[Key{Account: d.Account, OwnerID: d.OwnerID}] = current[i].Add(d.Amount)
	}

	for _, c := range plan.Charges {
		id, err := p.insertCharge(db, c, now)
		if err != nil {
			return Result{}, err
		}
		result.ChargeIDs = append(result.ChargeIDs, id)
	}

	if p.outbox != nil {
		if err := p.queueEvents(ctx, plan, deltas, result, now); err != nil {
			return Result{}, err
		}
	}

	log.Debug("ledger plan applied",
		zap.String("reason", plan.Reason),
		zap.String("source_type", plan.SourceType),
		zap.Int("deltas", len(deltas)),
		zap.Int("charges", len(plan.Charges)),
	)

	return result, nil
}

// Balance reads a balance without locking it. A missing or deleted owner
// yields the owner's NotFound error.
func (p *poster) Balance(ctx context.Context, account Account, ownerID uuid.UUID) (decimal.Decimal, error) {
	return p.readBalance(p.db.WithContext(ctx), account, ownerID, false)
}

func (p *poster) readBalance(db *gorm.DB, account Account, ownerID uuid.UUID, lock bool) (decimal.Decimal, error) {
	col, ok := columns[account]
	if !ok {
		return decimal.Zero, fmt.Errorf("ledger: unknown account %q", account)
	}

	q := db.Table(col.table).Select(col.name + " AS value")
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row balanceRow
	err := q.Where("id = ? AND deleted_at IS NULL", ownerID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ownerNotFound(account)
		}
		return decimal.Zero, err
	}
	return row.Value, nil
}

func (p *poster) insertCharge(db *gorm.DB, c Charge, now time.Time) (uuid.UUID, error) {
	if !c.Amount.IsPositive() {
		return uuid.Nil, ledgererrors.ErrInvalidAmount
	}

	row := chargeRow{
		ID:          uuid.New(),
		CustodyID:   c.CustodyID,
		ProjectID:   c.ProjectID,
		Amount:      c.Amount,
		Description: c.Description,
		Date:        c.Date,
		Source:      string(c.Source),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.SourceID != uuid.Nil {
		sourceID := c.SourceID
		row.SourceID = &sourceID
	}
	if row.Date.IsZero() {
		row.Date = now
	}

	if err := db.Create(&row).Error; err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (p *poster) queueEvents(ctx context.Context, plan Plan, deltas []Delta, result Result, now time.Time) error {
	outbox := p.outbox
	if p.tx != nil {
		outbox = outbox.WithTx(p.tx)
	}

	requestID := contextutil.GetRequestID(ctx)
	for _, d := range deltas {
		balance, _ := result.Balance(d.Account, d.OwnerID)
		evt := events.BalanceChangedEvent{
			EventType:  events.BalanceChangedEventType,
			Account:    string(d.Account),
			OwnerID:    d.OwnerID.String(),
			Delta:      d.Amount.String(),
			Balance:    balance.String(),
			Reason:     plan.Reason,
			SourceType: plan.SourceType,
			RequestID:  requestID,
			OccurredAt: now.UTC(),
		}
		if plan.SourceID != uuid.Nil {
			evt.SourceID = plan.SourceID.String()
		}

		outboxEvent, err := kafka.NewEvent(
			requestID,
			string(d.Account),
			d.OwnerID.String(),
			events.BalanceChangedEventType,
			events.BalanceChangedTopic,
			evt,
		)
		if err != nil {
			return err
		}
		if err := outbox.Create(ctx, outboxEvent); err != nil {
			return err
		}
	}
	return nil
}

func ownerNotFound(account Account) error {
	switch account {
	case EmployeeBudget:
		return ledgererrors.ErrEmployeeNotFound
	case CustodyBudget, CustodyRemaining:
		return ledgererrors.ErrCustodyNotFound
	case SupplierBalance:
		return ledgererrors.ErrSupplierNotFound
	default:
		return fmt.Errorf("ledger: unknown account %q", account)
	}
}

func insufficientBalance(account Account) error {
	switch account {
	case EmployeeBudget:
		return ledgererrors.ErrInsufficientEmployeeBudget
	case CustodyBudget, CustodyRemaining:
		return ledgererrors.ErrInsufficientCustodyBalance
	default:
		return ledgererrors.ErrInsufficientBalance
	}
}

package custody_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody"
	custodyerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	ledgererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type env struct {
	db     *gorm.DB
	svc    custody.Service
	poster ledger.Poster
}

func setup(t *testing.T) env {
	db, sqlDB := testdb.Open(t, &custody.Custody{}, &custody.Addition{})
	poster := ledger.NewPoster(db)
	return env{
		db:     db,
		svc:    custody.NewService(sqlDB, custody.NewRepository(db), poster),
		poster: poster,
	}
}

func (e env) balances(t *testing.T, id string) (string, string) {
	t.Helper()
	var c custody.Custody
	require.NoError(t, e.db.First(&c, "id = ?", id).Error)
	return c.Budget.String(), c.Remaining.String()
}

// spend moves money out of the custody the way an expense would.
func (e env) spend(t *testing.T, id string, amount int64) {
	t.Helper()
	sqlDB, err := e.db.DB()
	require.NoError(t, err)
	err = dbtx.WithinTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		_, err := e.poster.WithTx(tx).Apply(context.Background(),
			ledger.Create("test.spend", ledger.ExpenseContribution(uuid.MustParse(id), decimal.NewFromInt(amount))))
		return err
	})
	require.NoError(t, err)
}

func TestCustody_InitialAmountAndAdditions(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	created, err := e.svc.Create(ctx, custody.CreateCustodyRequest{
		Name:          "Site A petty cash",
		Holder:        "Hassan",
		InitialAmount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "1000", created.Budget.String())
	assert.Equal(t, "1000", created.Remaining.String())

	added, err := e.svc.AddAmount(ctx, created.ID, custody.AddAmountRequest{
		Amount: decimal.RequireFromString("500.50"),
		Date:   "2026-04-02",
	})
	require.NoError(t, err)
	require.NotNil(t, added.CustodyRemaining)
	assert.Equal(t, "1500.5", added.CustodyRemaining.String())

	budget, remaining := e.balances(t, created.ID)
	assert.Equal(t, "1500.5", budget)
	assert.Equal(t, "1500.5", remaining)

	additions, err := e.svc.GetAdditions(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, additions, 2)

	require.NoError(t, e.svc.DeleteAddition(ctx, created.ID, added.ID))
	budget, remaining = e.balances(t, created.ID)
	assert.Equal(t, "1000", budget)
	assert.Equal(t, "1000", remaining)
}

func TestCustody_DeleteSpentAdditionIsRejected(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	created, err := e.svc.Create(ctx, custody.CreateCustodyRequest{Name: "Site B"})
	require.NoError(t, err)
	assert.True(t, created.Budget.IsZero())

	added, err := e.svc.AddAmount(ctx, created.ID, custody.AddAmountRequest{Amount: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	e.spend(t, created.ID, 900)

	err = e.svc.DeleteAddition(ctx, created.ID, added.ID)
	assert.ErrorIs(t, err, ledgererrors.ErrInsufficientCustodyBalance)
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientBalance))

	budget, remaining := e.balances(t, created.ID)
	assert.Equal(t, "1000", budget)
	assert.Equal(t, "100", remaining)

	additions, err := e.svc.GetAdditions(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, additions, 1)
}

func TestCustody_AddAmountToUnknownCustody(t *testing.T) {
	e := setup(t)

	_, err := e.svc.AddAmount(context.Background(), uuid.NewString(), custody.AddAmountRequest{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ledgererrors.ErrCustodyNotFound)

	var count int64
	require.NoError(t, e.db.Model(&custody.Addition{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCustody_UpdateKeepsBalances(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	created, err := e.svc.Create(ctx, custody.CreateCustodyRequest{Name: "Main", InitialAmount: decimal.NewFromInt(250)})
	require.NoError(t, err)

	updated, err := e.svc.Update(ctx, created.ID, custody.UpdateCustodyRequest{Name: "Main office", Holder: "Samir"})
	require.NoError(t, err)
	assert.Equal(t, "Main office", updated.Name)
	assert.Equal(t, "250", updated.Budget.String())

	_, err = e.svc.Update(ctx, uuid.NewString(), custody.UpdateCustodyRequest{Name: "x"})
	assert.ErrorIs(t, err, custodyerrors.ErrCustodyNotFound)
}

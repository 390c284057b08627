package bonus_test

import (
	"context"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bonus"
	bonuserrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bonus/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonus_LifecycleWithCustodyPayout(t *testing.T) {
	db, sqlDB := testdb.Open(t, &employee.Employee{}, &custody.Custody{}, &expense.Expense{}, &bonus.Bonus{})
	svc := bonus.NewService(sqlDB, bonus.NewRepository(db), ledger.NewPoster(db))
	ctx := context.Background()

	empID, custodyID := uuid.New(), uuid.New()
	require.NoError(t, db.Create(&employee.Employee{ID: empID, FullName: "Omar", Budget: decimal.NewFromInt(1000)}).Error)
	require.NoError(t, db.Create(&custody.Custody{ID: custodyID, Name: "Yard", Budget: decimal.NewFromInt(500), Remaining: decimal.NewFromInt(500)}).Error)

	budget := func() string {
		var e employee.Employee
		require.NoError(t, db.First(&e, "id = ?", empID).Error)
		return e.Budget.String()
	}
	remaining := func() string {
		var c custody.Custody
		require.NoError(t, db.First(&c, "id = ?", custodyID).Error)
		return c.Remaining.String()
	}

	cid := custodyID.String()
	created, err := svc.Create(ctx, bonus.CreateBonusRequest{
		EmployeeID: empID.String(),
		Amount:     decimal.NewFromInt(200),
		CustodyID:  &cid,
		Reason:     "finished slab early",
	})
	require.NoError(t, err)
	assert.Equal(t, "1200", budget())
	assert.Equal(t, "300", remaining())

	var charge expense.Expense
	require.NoError(t, db.First(&charge, "source = ?", "bonus").Error)
	assert.Equal(t, "Bonus for Omar", charge.Description)

	_, err = svc.Update(ctx, created.ID, bonus.UpdateBonusRequest{Amount: decimal.NewFromInt(350)})
	require.NoError(t, err)
	assert.Equal(t, "1350", budget())

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, "1000", budget())
	assert.Equal(t, "300", remaining())

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, bonuserrors.ErrBonusNotFound)
}

func TestBonus_UnknownEmployee(t *testing.T) {
	db, sqlDB := testdb.Open(t, &employee.Employee{}, &bonus.Bonus{})
	svc := bonus.NewService(sqlDB, bonus.NewRepository(db), ledger.NewPoster(db))

	_, err := svc.Create(context.Background(), bonus.CreateBonusRequest{
		EmployeeID: uuid.NewString(),
		Amount:     decimal.NewFromInt(50),
	})

	assert.ErrorIs(t, err, bonuserrors.ErrEmployeeNotFound)
}

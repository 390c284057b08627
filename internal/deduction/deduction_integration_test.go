package deduction_test

import (
	"context"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/deduction"
	deductionerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/deduction/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduction_Lifecycle(t *testing.T) {
	db, sqlDB := testdb.Open(t, &employee.Employee{}, &deduction.Deduction{})
	svc := deduction.NewService(sqlDB, deduction.NewRepository(db), ledger.NewPoster(db))
	ctx := context.Background()

	empID := uuid.New()
	require.NoError(t, db.Create(&employee.Employee{ID: empID, FullName: "Youssef"}).Error)
	budget := func() string {
		var e employee.Employee
		require.NoError(t, db.First(&e, "id = ?", empID).Error)
		return e.Budget.String()
	}

	created, err := svc.Create(ctx, deduction.CreateDeductionRequest{
		EmployeeID: empID.String(),
		Amount:     decimal.NewFromInt(100),
		Date:       "2026-07-01",
		Reason:     "damaged tools",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", created.Date)
	assert.Equal(t, "-100", budget())

	updated, err := svc.Update(ctx, created.ID, deduction.UpdateDeductionRequest{Amount: decimal.NewFromInt(40)})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", updated.Date)
	assert.Equal(t, "-40", budget())

	list, err := svc.GetAll(ctx, deduction.DeductionFilter{EmployeeID: empID.String(), From: "2026-07-01", To: "2026-07-01"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, "0", budget())
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), deductionerrors.ErrDeductionNotFound)
}

func TestDeduction_Validation(t *testing.T) {
	db, sqlDB := testdb.Open(t, &employee.Employee{}, &deduction.Deduction{})
	svc := deduction.NewService(sqlDB, deduction.NewRepository(db), ledger.NewPoster(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, deduction.CreateDeductionRequest{EmployeeID: uuid.NewString(), Amount: decimal.Zero})
	assert.ErrorIs(t, err, deductionerrors.ErrInvalidAmount)

	_, err = svc.Create(ctx, deduction.CreateDeductionRequest{EmployeeID: uuid.NewString(), Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, deductionerrors.ErrEmployeeNotFound)

	_, err = svc.GetByID(ctx, "42")
	assert.ErrorIs(t, err, deductionerrors.ErrInvalidDeductionID)

	_, err = svc.GetAll(ctx, deduction.DeductionFilter{To: "tomorrow"})
	assert.ErrorIs(t, err, deductionerrors.ErrInvalidDate)
}

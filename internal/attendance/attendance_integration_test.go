package attendance_test

import (
	"context"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/attendance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, attendance.Service, uuid.UUID) {
	db, sqlDB := testdb.Open(t, &employee.Employee{}, &attendance.Attendance{})

	empID := uuid.New()
	require.NoError(t, db.Create(&employee.Employee{
		ID:          empID,
		FullName:    "Karim",
		DailySalary: decimal.NewFromInt(800),
	}).Error)

	svc := attendance.NewService(sqlDB, attendance.NewRepository(db), ledger.NewPoster(db))
	return db, svc, empID
}

func budgetOf(t *testing.T, db *gorm.DB, id uuid.UUID) string {
	t.Helper()
	var e employee.Employee
	require.NoError(t, db.First(&e, "id = ?", id).Error)
	return e.Budget.String()
}

func strPtr(s string) *string { return &s }

func TestAttendanceLifecycle_KeepsBudgetInSync(t *testing.T) {
	db, svc, empID := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: empID.String(),
		CheckIn:    "2026-03-01T08:00:00Z",
		CheckOut:   strPtr("2026-03-01T17:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "950", budgetOf(t, db, empID))

	_, err = svc.Update(ctx, created.ID, attendance.UpdateAttendanceRequest{
		CheckIn:  "2026-03-01T08:00:00Z",
		CheckOut: strPtr("2026-03-01T15:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "800", budgetOf(t, db, empID))

	// Same times again: nothing moves.
	_, err = svc.Update(ctx, created.ID, attendance.UpdateAttendanceRequest{
		CheckIn:  "2026-03-01T08:00:00Z",
		CheckOut: strPtr("2026-03-01T15:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "800", budgetOf(t, db, empID))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Karim", got.EmployeeName)
	assert.Equal(t, "800", got.AppliedPay.String())

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, "0", budgetOf(t, db, empID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.Error(t, err)
}

func TestAttendance_CheckOutAddedLater(t *testing.T) {
	db, svc, empID := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: empID.String(),
		CheckIn:    "2026-03-02T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", budgetOf(t, db, empID))

	_, err = svc.Update(ctx, created.ID, attendance.UpdateAttendanceRequest{
		CheckIn:  "2026-03-02T08:00:00Z",
		CheckOut: strPtr("2026-03-02T13:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "500", budgetOf(t, db, empID))
}

func TestAttendance_ListFiltersByEmployeeAndRange(t *testing.T) {
	db, svc, empID := setup(t)
	ctx := context.Background()

	other := uuid.New()
	require.NoError(t, db.Create(&employee.Employee{ID: other, FullName: "Other", DailySalary: decimal.NewFromInt(100)}).Error)

	for _, in := range []string{"2026-03-01T08:00:00Z", "2026-03-15T08:00:00Z", "2026-04-01T08:00:00Z"} {
		_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{EmployeeID: empID.String(), CheckIn: in})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{EmployeeID: other.String(), CheckIn: "2026-03-10T08:00:00Z"})
	require.NoError(t, err)

	rows, err := svc.GetAll(ctx, attendance.AttendanceFilter{
		EmployeeID: empID.String(),
		From:       "2026-03-01",
		To:         "2026-03-31",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-15", rows[0].Date)
	assert.Equal(t, "2026-03-01", rows[1].Date)
}

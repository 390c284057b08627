package maintenance_test

import (
	"context"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	ledgererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/maintenance"
	maintenanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/maintenance/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMaintenanceDB(t *testing.T) (*gorm.DB, maintenance.Service) {
	t.Helper()
	db, sqlDB := testdb.Open(t,
		&custody.Custody{},
		&expense.Expense{},
		&equipment.Equipment{},
		&maintenance.Maintenance{},
	)
	svc := maintenance.NewService(sqlDB,
		maintenance.NewRepository(db),
		equipment.NewRepository(db),
		ledger.NewPoster(db),
	)
	return db, svc
}

func seedEquipment(t *testing.T, db *gorm.DB, name string, qty int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&equipment.Equipment{ID: id, Name: name, Quantity: qty, Status: equipment.StatusAvailable}).Error)
	return id
}

func loadEquipment(t *testing.T, db *gorm.DB, id string) equipment.Equipment {
	t.Helper()
	var e equipment.Equipment
	require.NoError(t, db.Unscoped().First(&e, "id = ?", id).Error)
	return e
}

func TestMaintenance_WholeRowRoundTrip(t *testing.T) {
	db, svc := openMaintenanceDB(t)
	ctx := context.Background()
	mixerID := seedEquipment(t, db, "Mixer", 2)

	sent, err := svc.Send(ctx, maintenance.SendRequest{EquipmentID: mixerID.String(), Quantity: 2, SentAt: "2026-05-01"})
	require.NoError(t, err)
	assert.Equal(t, mixerID.String(), sent.EquipmentID)
	assert.Equal(t, mixerID.String(), sent.SourceEquipmentID)
	assert.Equal(t, 2, sent.PendingQuantity)
	assert.Equal(t, maintenance.StatusOpen, sent.Status)
	assert.Equal(t, equipment.StatusUnderMaintenance, loadEquipment(t, db, mixerID.String()).Status)

	done, err := svc.Return(ctx, sent.ID, maintenance.ReturnRequest{WorkingQuantity: 2, Date: "2026-05-03"})
	require.NoError(t, err)
	assert.Equal(t, maintenance.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, "2026-05-03", *done.CompletedAt)

	mixer := loadEquipment(t, db, mixerID.String())
	assert.Equal(t, equipment.StatusAvailable, mixer.Status)
	assert.Equal(t, 2, mixer.Quantity)

	var rows int64
	require.NoError(t, db.Model(&equipment.Equipment{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestMaintenance_SplitSendAndPartialReturns(t *testing.T) {
	db, svc := openMaintenanceDB(t)
	ctx := context.Background()
	scaffoldID := seedEquipment(t, db, "Scaffold", 10)
	custodyID := uuid.New()
	require.NoError(t, db.Create(&custody.Custody{ID: custodyID, Name: "Workshop", Budget: decimal.NewFromInt(1000), Remaining: decimal.NewFromInt(1000)}).Error)

	sent, err := svc.Send(ctx, maintenance.SendRequest{EquipmentID: scaffoldID.String(), Quantity: 4})
	require.NoError(t, err)
	assert.NotEqual(t, scaffoldID.String(), sent.EquipmentID)
	assert.Equal(t, "Scaffold", sent.EquipmentName)
	assert.Equal(t, 6, loadEquipment(t, db, scaffoldID.String()).Quantity)

	held := loadEquipment(t, db, sent.EquipmentID)
	assert.Equal(t, 4, held.Quantity)
	assert.Equal(t, equipment.StatusUnderMaintenance, held.Status)
	require.NotNil(t, held.ParentID)
	assert.Equal(t, scaffoldID, *held.ParentID)

	cid := custodyID.String()
	partial, err := svc.Return(ctx, sent.ID, maintenance.ReturnRequest{
		WorkingQuantity: 1,
		BrokenQuantity:  1,
		PendingQuantity: 2,
		Cost:            decimal.NewFromInt(300),
		CustodyID:       &cid,
		Date:            "2026-05-10",
	})
	require.NoError(t, err)
	assert.Equal(t, maintenance.StatusOpen, partial.Status)
	assert.Equal(t, 2, partial.PendingQuantity)
	assert.Equal(t, 1, partial.WorkingQuantity)
	assert.Equal(t, 1, partial.BrokenQuantity)
	assert.Nil(t, partial.CompletedAt)
	require.NotNil(t, partial.CustodyID)

	assert.Equal(t, 7, loadEquipment(t, db, scaffoldID.String()).Quantity)
	assert.Equal(t, 2, loadEquipment(t, db, sent.EquipmentID).Quantity)

	var broken equipment.Equipment
	require.NoError(t, db.First(&broken, "status = ?", equipment.StatusBroken).Error)
	assert.Equal(t, 1, broken.Quantity)
	require.NotNil(t, broken.ParentID)
	assert.Equal(t, scaffoldID, *broken.ParentID)

	var c custody.Custody
	require.NoError(t, db.First(&c, "id = ?", custodyID).Error)
	assert.Equal(t, "700", c.Remaining.String())

	var charge expense.Expense
	require.NoError(t, db.First(&charge, "source = ?", "maintenance").Error)
	assert.Equal(t, "Maintenance of Scaffold", charge.Description)
	assert.Equal(t, "300", charge.Amount.String())

	done, err := svc.Return(ctx, sent.ID, maintenance.ReturnRequest{WorkingQuantity: 2})
	require.NoError(t, err)
	assert.Equal(t, maintenance.StatusCompleted, done.Status)
	assert.Equal(t, 3, done.WorkingQuantity)
	assert.Equal(t, 0, done.PendingQuantity)
	assert.Equal(t, "300", done.Cost.String())

	assert.Equal(t, 9, loadEquipment(t, db, scaffoldID.String()).Quantity)
	assert.True(t, loadEquipment(t, db, sent.EquipmentID).DeletedAt.Valid)

	_, err = svc.Return(ctx, sent.ID, maintenance.ReturnRequest{WorkingQuantity: 1})
	assert.ErrorIs(t, err, maintenanceerrors.ErrMaintenanceClosed)
}

func TestMaintenance_ReturnRejectsMismatchedSplit(t *testing.T) {
	db, svc := openMaintenanceDB(t)
	ctx := context.Background()
	pumpID := seedEquipment(t, db, "Pump", 5)

	sent, err := svc.Send(ctx, maintenance.SendRequest{EquipmentID: pumpID.String(), Quantity: 4})
	require.NoError(t, err)

	_, err = svc.Return(ctx, sent.ID, maintenance.ReturnRequest{WorkingQuantity: 1, BrokenQuantity: 1})
	assert.ErrorIs(t, err, maintenanceerrors.ErrQuantityMismatch)

	_, err = svc.Return(ctx, sent.ID, maintenance.ReturnRequest{PendingQuantity: 4})
	assert.ErrorIs(t, err, maintenanceerrors.ErrNothingReturned)

	got, err := svc.GetByID(ctx, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.PendingQuantity)
	assert.Equal(t, 1, loadEquipment(t, db, pumpID.String()).Quantity)
}

func TestMaintenance_CostBeyondCustodyRollsBack(t *testing.T) {
	db, svc := openMaintenanceDB(t)
	ctx := context.Background()
	drillID := seedEquipment(t, db, "Drill", 1)
	custodyID := uuid.New()
	require.NoError(t, db.Create(&custody.Custody{ID: custodyID, Name: "Petty", Budget: decimal.NewFromInt(100), Remaining: decimal.NewFromInt(100)}).Error)

	sent, err := svc.Send(ctx, maintenance.SendRequest{EquipmentID: drillID.String(), Quantity: 1})
	require.NoError(t, err)

	cid := custodyID.String()
	_, err = svc.Return(ctx, sent.ID, maintenance.ReturnRequest{
		WorkingQuantity: 1,
		Cost:            decimal.NewFromInt(250),
		CustodyID:       &cid,
	})
	assert.ErrorIs(t, err, ledgererrors.ErrInsufficientCustodyBalance)

	got, err := svc.GetByID(ctx, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, maintenance.StatusOpen, got.Status)
	assert.Equal(t, equipment.StatusUnderMaintenance, loadEquipment(t, db, drillID.String()).Status)

	var expenses int64
	require.NoError(t, db.Model(&expense.Expense{}).Count(&expenses).Error)
	assert.Zero(t, expenses)
}

func TestMaintenance_SendValidation(t *testing.T) {
	db, svc := openMaintenanceDB(t)
	ctx := context.Background()
	craneID := seedEquipment(t, db, "Crane", 1)

	_, err := svc.Send(ctx, maintenance.SendRequest{EquipmentID: craneID.String(), Quantity: 2})
	assert.ErrorIs(t, err, maintenanceerrors.ErrInsufficientQuantity)

	_, err = svc.Send(ctx, maintenance.SendRequest{EquipmentID: craneID.String(), Quantity: 0})
	assert.ErrorIs(t, err, maintenanceerrors.ErrInvalidQuantity)

	_, err = svc.Send(ctx, maintenance.SendRequest{EquipmentID: uuid.NewString(), Quantity: 1})
	assert.ErrorIs(t, err, maintenanceerrors.ErrEquipmentNotFound)

	_, err = svc.Send(ctx, maintenance.SendRequest{EquipmentID: craneID.String(), Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Send(ctx, maintenance.SendRequest{EquipmentID: craneID.String(), Quantity: 1})
	assert.ErrorIs(t, err, maintenanceerrors.ErrEquipmentNotAvailable)

	open, err := svc.GetAll(ctx, maintenance.MaintenanceFilter{Status: "open", EquipmentID: craneID.String()})
	require.NoError(t, err)
	assert.Len(t, open, 1)

	_, err = svc.GetAll(ctx, maintenance.MaintenanceFilter{Status: "lost"})
	assert.ErrorIs(t, err, maintenanceerrors.ErrInvalidStatus)
}

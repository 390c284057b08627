package equipment_test

import (
	"context"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment"
	equipmenterrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEquipment_CRUD(t *testing.T) {
	db, sqlDB := testdb.Open(t, &equipment.Equipment{})
	svc := equipment.NewService(sqlDB, equipment.NewRepository(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, equipment.CreateEquipmentRequest{Name: " Concrete Mixer ", Code: strPtr("MX-1"), Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "Concrete Mixer", created.Name)
	assert.Equal(t, equipment.StatusAvailable, created.Status)

	_, err = svc.Create(ctx, equipment.CreateEquipmentRequest{Name: "Other", Code: strPtr("MX-1")})
	assert.ErrorIs(t, err, equipmenterrors.ErrCodeExists)

	_, err = svc.Create(ctx, equipment.CreateEquipmentRequest{Name: "Blank code", Code: strPtr("  ")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, equipment.CreateEquipmentRequest{Name: "Another blank", Code: strPtr("")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, equipment.CreateEquipmentRequest{Name: "Bad", Status: equipment.StatusUnderMaintenance})
	assert.ErrorIs(t, err, equipmenterrors.ErrInvalidStatus)

	_, err = svc.Create(ctx, equipment.CreateEquipmentRequest{Name: "Bad", Quantity: -1})
	assert.ErrorIs(t, err, equipmenterrors.ErrInvalidQuantity)

	updated, err := svc.Update(ctx, created.ID, equipment.UpdateEquipmentRequest{Name: "Concrete Mixer", Quantity: 2, Status: "Broken"})
	require.NoError(t, err)
	assert.Equal(t, equipment.StatusBroken, updated.Status)
	assert.Equal(t, 2, updated.Quantity)
	assert.Nil(t, updated.Code)

	broken, err := svc.GetAll(ctx, equipment.EquipmentFilter{Status: "broken"})
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, created.ID, broken[0].ID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, equipmenterrors.ErrEquipmentNotFound)

	_, err = svc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, equipmenterrors.ErrInvalidEquipmentID)
}

func TestEquipment_UnderMaintenanceIsLocked(t *testing.T) {
	db, sqlDB := testdb.Open(t, &equipment.Equipment{})
	svc := equipment.NewService(sqlDB, equipment.NewRepository(db))
	ctx := context.Background()

	rootID, heldID := uuid.New(), uuid.New()
	require.NoError(t, db.Create(&equipment.Equipment{ID: rootID, Name: "Scaffold", Quantity: 6, Status: equipment.StatusAvailable}).Error)
	require.NoError(t, db.Create(&equipment.Equipment{ID: heldID, Name: "Scaffold", Quantity: 4, Status: equipment.StatusUnderMaintenance, ParentID: &rootID}).Error)

	_, err := svc.Update(ctx, heldID.String(), equipment.UpdateEquipmentRequest{Name: "Scaffold", Quantity: 5})
	assert.ErrorIs(t, err, equipmenterrors.ErrUnderMaintenance)

	renamed, err := svc.Update(ctx, heldID.String(), equipment.UpdateEquipmentRequest{Name: "Scaffold frame", Quantity: 4, Notes: "at workshop"})
	require.NoError(t, err)
	assert.Equal(t, "Scaffold frame", renamed.Name)
	assert.Equal(t, equipment.StatusUnderMaintenance, renamed.Status)

	assert.ErrorIs(t, svc.Delete(ctx, heldID.String()), equipmenterrors.ErrUnderMaintenance)

	family, err := svc.GetAll(ctx, equipment.EquipmentFilter{ParentID: rootID.String()})
	require.NoError(t, err)
	assert.Len(t, family, 2)
}

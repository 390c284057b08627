package equipment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAvailable        = "available"
	StatusUnderMaintenance = "under_maintenance"
	StatusBroken           = "broken"
)

// Equipment is a quantity of identical items in one state. Rows split off
// an original row for maintenance or breakage carry its ID in ParentID.
type Equipment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"size:150;not null"`
	Code      *string    `gorm:"size:50;uniqueIndex:uq_equipment_code"`
	Quantity  int        `gorm:"not null;default:0"`
	Status    string     `gorm:"size:30;not null;default:available;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Notes     string     `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Equipment) TableName() string {
	return "equipment"
}

// RootID is the original row this one descends from.
func (e Equipment) RootID() uuid.UUID {
	if e.ParentID != nil {
		return *e.ParentID
	}
	return e.ID
}

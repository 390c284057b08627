package maintenance

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusOpen      = "open"
	StatusCompleted = "completed"
)

// Maintenance tracks a quantity sent out for repair. EquipmentID is the row
// holding the items while they are away; SourceEquipmentID is the row they
// came from and return to. The two are the same when the whole row was sent.
//
// Invariant: WorkingQuantity + BrokenQuantity + PendingQuantity == SentQuantity.
type Maintenance struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EquipmentID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SourceEquipmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	SentQuantity      int             `gorm:"not null"`
	PendingQuantity   int             `gorm:"not null"`
	WorkingQuantity   int             `gorm:"not null;default:0"`
	BrokenQuantity    int             `gorm:"not null;default:0"`
	Status            string          `gorm:"size:20;not null;default:open;index"`
	Cost              decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CustodyID         *uuid.UUID      `gorm:"type:uuid;index"`
	SentAt            time.Time       `gorm:"type:date;not null"`
	CompletedAt       *time.Time      `gorm:"type:date"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt       `gorm:"index"`
	Equipment         *domain.EquipmentRef `gorm:"foreignKey:EquipmentID;references:ID;-:migration"`
}

func (Maintenance) TableName() string {
	return "maintenances"
}

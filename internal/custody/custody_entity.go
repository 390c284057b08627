package custody

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Custody is a cash imprest. Budget is everything ever granted and Remaining
// is what is left to spend; both are owned by the ledger.
type Custody struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"size:150;not null"`
	Holder    string          `gorm:"size:150"`
	Budget    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Remaining decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Custody) TableName() string {
	return "custodies"
}

type Addition struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustodyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date      time.Time       `gorm:"type:date;not null"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Addition) TableName() string {
	return "custody_additions"
}

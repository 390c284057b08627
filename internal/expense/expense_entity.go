package expense

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense rows are written here for manual spending and by the ledger for
// charges raised by advances, bonuses, payrolls, supplier payments and
// maintenance. Source tells them apart.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustodyID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProjectID   *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Source      string          `gorm:"size:30;not null;default:manual;index"`
	SourceID    *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt     `gorm:"index"`
	Custody     *domain.CustodyRef `gorm:"foreignKey:CustodyID;references:ID;-:migration"`
	Project     *domain.ProjectRef `gorm:"foreignKey:ProjectID;references:ID;-:migration"`
}

func (Expense) TableName() string {
	return "expenses"
}

package bonus

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Bonus struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CustodyID  *uuid.UUID      `gorm:"type:uuid;index"`
	Reason     string          `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt      `gorm:"index"`
	Employee   *domain.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;-:migration"`
}

func (Bonus) TableName() string {
	return "bonuses"
}

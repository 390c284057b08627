package deduction

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Deduction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Reason     string          `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt      `gorm:"index"`
	Employee   *domain.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;-:migration"`
}

func (Deduction) TableName() string {
	return "deductions"
}

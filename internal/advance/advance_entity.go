package advance

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending = "pending"
	StatusRepaid  = "repaid"
)

// Advance is money paid to an employee ahead of payroll. While pending it is
// held against the employee budget. CustodyID names the custody that paid
// it out, if any.
type Advance struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Status     string          `gorm:"size:20;not null;default:pending;index"`
	CustodyID  *uuid.UUID      `gorm:"type:uuid;index"`
	Notes      string          `gorm:"type:text"`
	RepaidAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt      `gorm:"index"`
	Employee   *domain.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;-:migration"`
	Custody    *domain.CustodyRef  `gorm:"foreignKey:CustodyID;references:ID;-:migration"`
}

func (a Advance) IsRepaid() bool {
	return a.Status == StatusRepaid
}

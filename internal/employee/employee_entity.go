package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee.Budget is owned by the ledger; repositories never write it.
type Employee struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FullName    string          `gorm:"size:150;not null"`
	JobTitle    string          `gorm:"size:100"`
	Phone       string          `gorm:"size:30"`
	NationalID  *string         `gorm:"size:30;uniqueIndex:uq_employee_national_id"`
	DailySalary decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Budget      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	HiredAt     *time.Time      `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

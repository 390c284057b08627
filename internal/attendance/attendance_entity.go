package attendance

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Attendance is one worked shift of an employee.
type Attendance struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID           `gorm:"column:employee_id;type:uuid;not null;index"`
	Date       time.Time           `gorm:"column:date;type:date;not null;index"`
	CheckIn    time.Time           `gorm:"column:check_in;not null"`
	CheckOut   *time.Time          `gorm:"column:check_out"`
	// AppliedPay is the pay credited to the employee budget. Updates and
	// deletes reverse exactly this amount.
	AppliedPay decimal.Decimal     `gorm:"column:applied_pay;type:decimal(14,2);not null;default:0"`
	Notes      string              `gorm:"column:notes;type:text"`
	CreatedAt  time.Time           `gorm:"column:created_at"`
	UpdatedAt  time.Time           `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"column:deleted_at;index"`
	Employee   *domain.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;-:migration"`
}

func (Attendance) TableName() string {
	return "attendances"
}

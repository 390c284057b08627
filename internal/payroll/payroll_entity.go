package payroll

import (
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payroll stores the period summary as it was computed when the payroll was
// created. Only PaidAmount reaches the employee budget.
type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_payroll_employee_period"`

	PeriodStart time.Time `gorm:"type:date;not null;index:idx_payroll_employee_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null;index:idx_payroll_employee_period"`

	DailySalary decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	DaysWorked  int             `gorm:"not null;default:0"`
	TotalSalary decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Bonuses     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Deductions  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Advances    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	NetSalary   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	CustodyID *uuid.UUID `gorm:"type:uuid;index"`
	Notes     string     `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt      `gorm:"index"`
	Employee  *domain.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;-:migration"`
}

// Summary is the computed salary breakdown for one employee and period.
type Summary struct {
	DailySalary decimal.Decimal
	DaysWorked  int
	TotalSalary decimal.Decimal
	Bonuses     decimal.Decimal
	Deductions  decimal.Decimal
	Advances    decimal.Decimal
	NetSalary   decimal.Decimal
}

func (s Summary) compute() Summary {
	s.TotalSalary = s.DailySalary.Mul(decimal.NewFromInt(int64(s.DaysWorked)))
	s.NetSalary = s.TotalSalary.Add(s.Bonuses).Sub(s.Deductions).Sub(s.Advances)
	return s
}

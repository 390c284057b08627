package app

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/advance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/attendance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bonus"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/deduction"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/maintenance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/messaging/kafka"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/project"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/counter"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier"

	"gorm.io/gorm"
)

// models lists every table the service owns, parents before children.
func models() []any {
	return []any{
		&employee.Employee{},
		&custody.Custody{},
		&custody.Addition{},
		&project.Project{},
		&expense.Expense{},
		&attendance.Attendance{},
		&advance.Advance{},
		&bonus.Bonus{},
		&deduction.Deduction{},
		&payroll.Payroll{},
		&supplier.Supplier{},
		&supplier.Invoice{},
		&supplier.InvoiceItem{},
		&supplier.Payment{},
		&equipment.Equipment{},
		&maintenance.Maintenance{},
		&counter.DocumentCounter{},
		&kafka.OutboxRecord{},
		&rbac.RolePermissionRow{},
		&rbac.RoleParentRow{},
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}

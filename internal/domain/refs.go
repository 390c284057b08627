package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The Ref types are read-only views of rows owned by other packages. Record
// packages preload them for display names and existence checks; they are
// never written through.

type EmployeeRef struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FullName    string          `gorm:"column:full_name"`
	DailySalary decimal.Decimal `gorm:"column:daily_salary"`
	DeletedAt   gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type CustodyRef struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (CustodyRef) TableName() string {
	return "custodies"
}

type ProjectRef struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (ProjectRef) TableName() string {
	return "projects"
}

type SupplierRef struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (SupplierRef) TableName() string {
	return "suppliers"
}

// EquipmentRef carries the stock quantity so suppliers can restock equipment
// from invoice lines.
type EquipmentRef struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"column:name"`
	Quantity  int            `gorm:"column:quantity"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (EquipmentRef) TableName() string {
	return "equipment"
}

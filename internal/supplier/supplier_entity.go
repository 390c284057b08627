package supplier

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Supplier.Balance is what the company owes the supplier. Only the ledger
// writes it.
type Supplier struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"size:150;not null;uniqueIndex:uq_supplier_name"`
	Phone     string          `gorm:"size:30"`
	Address   string          `gorm:"type:text"`
	Balance   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceNumber string          `gorm:"size:50;not null;uniqueIndex:uq_supplier_invoice_number"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
	Items         []InvoiceItem  `gorm:"foreignKey:InvoiceID"`
}

func (Invoice) TableName() string {
	return "supplier_invoices"
}

// InvoiceItem with an EquipmentID restocks that equipment by Quantity.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	EquipmentID *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"size:255;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt   time.Time
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

type Payment struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CustodyID  *uuid.UUID      `gorm:"type:uuid;index"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Payment) TableName() string {
	return "supplier_payments"
}

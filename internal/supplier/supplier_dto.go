package supplier

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SupplierResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
}

type InvoiceItemRequest struct {
	EquipmentID *string         `json:"equipment_id"`
	Description string          `json:"description" binding:"required"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// InvoiceNumber is generated when left blank.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number"`
	Date          string               `json:"date"`
	Notes         string               `json:"notes"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	EquipmentID *string         `json:"equipment_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type InvoiceResponse struct {
	ID              string                `json:"id"`
	SupplierID      string                `json:"supplier_id"`
	InvoiceNumber   string                `json:"invoice_number"`
	Date            string                `json:"date"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	Notes           string                `json:"notes,omitempty"`
	Items           []InvoiceItemResponse `json:"items"`
	SupplierBalance *decimal.Decimal      `json:"supplier_balance,omitempty"`
}

type CreatePaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	CustodyID *string         `json:"custody_id"`
	Notes     string          `json:"notes"`
}

type PaymentResponse struct {
	ID              string           `json:"id"`
	SupplierID      string           `json:"supplier_id"`
	Amount          decimal.Decimal  `json:"amount"`
	Date            string           `json:"date"`
	CustodyID       *string          `json:"custody_id,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	SupplierBalance *decimal.Decimal `json:"supplier_balance,omitempty"`
}

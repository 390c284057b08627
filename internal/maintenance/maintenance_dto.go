package maintenance

import "github.com/shopspring/decimal"

type SendRequest struct {
	EquipmentID string `json:"equipment_id" binding:"required"`
	Quantity    int    `json:"quantity"`
	SentAt      string `json:"sent_at"`
	Notes       string `json:"notes"`
}

// ReturnRequest splits the pending quantity. Cost is charged to CustodyID
// when both are given.
type ReturnRequest struct {
	WorkingQuantity int             `json:"working_quantity"`
	BrokenQuantity  int             `json:"broken_quantity"`
	PendingQuantity int             `json:"pending_quantity"`
	Cost            decimal.Decimal `json:"cost"`
	CustodyID       *string         `json:"custody_id"`
	Date            string          `json:"date"`
	Notes           string          `json:"notes"`
}

type MaintenanceFilter struct {
	Status      string `form:"status"`
	EquipmentID string `form:"equipment_id"`
}

type MaintenanceResponse struct {
	ID                string          `json:"id"`
	EquipmentID       string          `json:"equipment_id"`
	EquipmentName     string          `json:"equipment_name,omitempty"`
	SourceEquipmentID string          `json:"source_equipment_id"`
	SentQuantity      int             `json:"sent_quantity"`
	PendingQuantity   int             `json:"pending_quantity"`
	WorkingQuantity   int             `json:"working_quantity"`
	BrokenQuantity    int             `json:"broken_quantity"`
	Status            string          `json:"status"`
	Cost              decimal.Decimal `json:"cost"`
	CustodyID         *string         `json:"custody_id,omitempty"`
	SentAt            string          `json:"sent_at"`
	CompletedAt       *string         `json:"completed_at,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

package bonus

import "github.com/shopspring/decimal"

type CreateBonusRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	CustodyID  *string         `json:"custody_id"`
	Reason     string          `json:"reason"`
}

type UpdateBonusRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Reason string          `json:"reason"`
}

type BonusFilter struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
}

type BonusResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	CustodyID    *string         `json:"custody_id,omitempty"`
	Reason       string          `json:"reason,omitempty"`
}

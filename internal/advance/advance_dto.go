package advance

import "github.com/shopspring/decimal"

type CreateAdvanceRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	CustodyID  *string         `json:"custody_id"`
	Notes      string          `json:"notes"`
}

// UpdateAdvanceRequest leaves the status alone when Status is empty.
type UpdateAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Status string          `json:"status"`
	Notes  string          `json:"notes"`
}

type AdvanceFilter struct {
	EmployeeID string `form:"employee_id"`
	Status     string `form:"status"`
	From       string `form:"from"`
	To         string `form:"to"`
}

type AdvanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	CustodyID    *string         `json:"custody_id,omitempty"`
	CustodyName  string          `json:"custody_name,omitempty"`
	RepaidAt     *string         `json:"repaid_at,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

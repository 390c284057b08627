package deduction

import "github.com/shopspring/decimal"

type CreateDeductionRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Reason     string          `json:"reason"`
}

type UpdateDeductionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Reason string          `json:"reason"`
}

type DeductionFilter struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
}

type DeductionResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Reason       string          `json:"reason,omitempty"`
}

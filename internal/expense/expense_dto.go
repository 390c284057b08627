package expense

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	CustodyID   string          `json:"custody_id" binding:"required"`
	ProjectID   *string         `json:"project_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	Date        string          `json:"date"`
}

type UpdateExpenseRequest struct {
	CustodyID   string          `json:"custody_id" binding:"required"`
	ProjectID   *string         `json:"project_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	Date        string          `json:"date"`
}

type ExpenseFilter struct {
	CustodyID string `form:"custody_id"`
	ProjectID string `form:"project_id"`
	Source    string `form:"source"`
	From      string `form:"from"`
	To        string `form:"to"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	CustodyID   string          `json:"custody_id"`
	CustodyName string          `json:"custody_name,omitempty"`
	ProjectID   *string         `json:"project_id,omitempty"`
	ProjectName string          `json:"project_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Source      string          `json:"source"`
	SourceID    *string         `json:"source_id,omitempty"`
}

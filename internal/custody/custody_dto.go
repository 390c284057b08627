package custody

import "github.com/shopspring/decimal"

type CreateCustodyRequest struct {
	Name          string          `json:"name" binding:"required"`
	Holder        string          `json:"holder"`
	InitialAmount decimal.Decimal `json:"initial_amount"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes"`
}

type UpdateCustodyRequest struct {
	Name   string `json:"name" binding:"required"`
	Holder string `json:"holder"`
	Notes  string `json:"notes"`
}

type AddAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Notes  string          `json:"notes"`
}

type CustodyResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Holder    string          `json:"holder,omitempty"`
	Budget    decimal.Decimal `json:"budget"`
	Remaining decimal.Decimal `json:"remaining"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type AdditionResponse struct {
	ID        string          `json:"id"`
	CustodyID string          `json:"custody_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes,omitempty"`

	// Set on create: the custody balances right after the top-up.
	CustodyBudget    *decimal.Decimal `json:"custody_budget,omitempty"`
	CustodyRemaining *decimal.Decimal `json:"custody_remaining,omitempty"`
}

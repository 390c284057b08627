package payroll

import "github.com/shopspring/decimal"

type CreatePayrollRequest struct {
	EmployeeID  string          `json:"employee_id" binding:"required"`
	PeriodStart string          `json:"period_start" binding:"required"`
	PeriodEnd   string          `json:"period_end" binding:"required"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	CustodyID   *string         `json:"custody_id"`
	Notes       string          `json:"notes"`
}

type UpdatePayrollRequest struct {
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Notes      string          `json:"notes"`
}

type PayrollFilter struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
}

type PreviewRequest struct {
	EmployeeID  string `form:"employee_id" binding:"required"`
	PeriodStart string `form:"period_start" binding:"required"`
	PeriodEnd   string `form:"period_end" binding:"required"`
}

type PreviewResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	DailySalary  decimal.Decimal `json:"daily_salary"`
	DaysWorked   int             `json:"days_worked"`
	TotalSalary  decimal.Decimal `json:"total_salary"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Deductions   decimal.Decimal `json:"deductions"`
	Advances     decimal.Decimal `json:"advances"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Budget       decimal.Decimal `json:"budget"`
}

type PayrollResponse struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeName   string           `json:"employee_name,omitempty"`
	PeriodStart    string           `json:"period_start"`
	PeriodEnd      string           `json:"period_end"`
	DailySalary    decimal.Decimal  `json:"daily_salary"`
	DaysWorked     int              `json:"days_worked"`
	TotalSalary    decimal.Decimal  `json:"total_salary"`
	Bonuses        decimal.Decimal  `json:"bonuses"`
	Deductions     decimal.Decimal  `json:"deductions"`
	Advances       decimal.Decimal  `json:"advances"`
	NetSalary      decimal.Decimal  `json:"net_salary"`
	PaidAmount     decimal.Decimal  `json:"paid_amount"`
	CustodyID      *string          `json:"custody_id,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	EmployeeBudget *decimal.Decimal `json:"employee_budget,omitempty"`
}

package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FullName    string          `json:"full_name" binding:"required"`
	JobTitle    string          `json:"job_title"`
	Phone       string          `json:"phone"`
	NationalID  *string         `json:"national_id"`
	DailySalary decimal.Decimal `json:"daily_salary"`
	HiredAt     string          `json:"hired_at"`
}

type UpdateEmployeeRequest struct {
	FullName    string          `json:"full_name" binding:"required"`
	JobTitle    string          `json:"job_title"`
	Phone       string          `json:"phone"`
	NationalID  *string         `json:"national_id"`
	DailySalary decimal.Decimal `json:"daily_salary"`
	HiredAt     string          `json:"hired_at"`
}

type EmployeeFilter struct {
	Search string `form:"q"`
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	JobTitle    string          `json:"job_title,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	NationalID  *string         `json:"national_id,omitempty"`
	DailySalary decimal.Decimal `json:"daily_salary"`
	Budget      decimal.Decimal `json:"budget"`
	HiredAt     string          `json:"hired_at,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// EmployeeOptionResponse feeds select boxes. It is cached, so it carries no
// balances.
type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title,omitempty"`
}

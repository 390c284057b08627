package attendance

import "github.com/shopspring/decimal"

// CheckIn and CheckOut are RFC 3339 timestamps. Date defaults to the
// check-in day.
type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   *string `json:"check_out"`
	Notes      string  `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Date     string  `json:"date"`
	CheckIn  string  `json:"check_in" binding:"required"`
	CheckOut *string `json:"check_out"`
	Notes    string  `json:"notes"`
}

type AttendanceFilter struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Date         string          `json:"date"`
	CheckIn      string          `json:"check_in"`
	CheckOut     *string         `json:"check_out,omitempty"`
	AppliedPay   decimal.Decimal `json:"applied_pay"`
	Notes        string          `json:"notes,omitempty"`
}

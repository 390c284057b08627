package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	standardDayMinutes = 480
	fullDayMinutes     = 390
)

var (
	standardDay  = decimal.NewFromInt(standardDayMinutes)
	overtimeRate = decimal.NewFromFloat(1.5)
)

// ComputePay converts a worked interval into pay. The interval is measured in
// whole minutes. At least 8 hours earns the daily salary plus overtime at
// 1.5x the hourly rate, 6.5 up to 8 hours earns the daily salary, and anything
// shorter is paid pro rata. A check-out at or before check-in pays nothing.
//
// Every tier divides once, by the minutes in a standard day, so a pay that is
// exactly representable comes out exact.
func ComputePay(checkIn, checkOut time.Time, dailySalary decimal.Decimal) decimal.Decimal {
	if !checkOut.After(checkIn) {
		return decimal.Zero
	}

	minutes := int64(checkOut.Sub(checkIn) / time.Minute)

	switch {
	case minutes >= standardDayMinutes:
		extra := decimal.NewFromInt(minutes - standardDayMinutes)
		overtime := extra.Mul(dailySalary).Mul(overtimeRate).Div(standardDay)
		return dailySalary.Add(overtime)
	case minutes >= fullDayMinutes:
		return dailySalary
	default:
		return decimal.NewFromInt(minutes).Mul(dailySalary).Div(standardDay)
	}
}

// RoundPay rounds to the nearest whole currency unit, halves away from zero.
func RoundPay(pay decimal.Decimal) decimal.Decimal {
	return pay.Round(0)
}

// AttendancePay is the amount an attendance row contributes to the budget.
// Rows without a check-out contribute nothing.
func AttendancePay(checkIn time.Time, checkOut *time.Time, dailySalary decimal.Decimal) decimal.Decimal {
	if checkOut == nil {
		return decimal.Zero
	}
	return RoundPay(ComputePay(checkIn, *checkOut, dailySalary))
}

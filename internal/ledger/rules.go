package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The functions below return what a stored record contributes to the shared
// balances while it exists. Services combine them with Create, Diff and
// Reverse so updates are always computed against the stored row.

// AdvanceContribution: an outstanding advance lowers the employee budget;
// a repaid one no longer does.
func AdvanceContribution(employeeID uuid.UUID, amount decimal.Decimal, repaid bool) []Delta {
	if repaid {
		return nil
	}
	return []Delta{{Account: EmployeeBudget, OwnerID: employeeID, Amount: amount.Neg()}}
}

func BonusContribution(employeeID uuid.UUID, amount decimal.Decimal) []Delta {
	return []Delta{{Account: EmployeeBudget, OwnerID: employeeID, Amount: amount}}
}

func DeductionContribution(employeeID uuid.UUID, amount decimal.Decimal) []Delta {
	return []Delta{{Account: EmployeeBudget, OwnerID: employeeID, Amount: amount.Neg()}}
}

// PayrollContribution pays out of the employee budget, which must cover it.
func PayrollContribution(employeeID uuid.UUID, paidAmount decimal.Decimal) []Delta {
	return []Delta{{Account: EmployeeBudget, OwnerID: employeeID, Amount: paidAmount.Neg(), Guard: true}}
}

// AttendanceContribution credits the rounded pay stored on the attendance row.
func AttendanceContribution(employeeID uuid.UUID, appliedPay decimal.Decimal) []Delta {
	return []Delta{{Account: EmployeeBudget, OwnerID: employeeID, Amount: appliedPay}}
}

func ExpenseContribution(custodyID uuid.UUID, amount decimal.Decimal) []Delta {
	return []Delta{{Account: CustodyRemaining, OwnerID: custodyID, Amount: amount.Neg(), Guard: true}}
}

// CustodyAdditionContribution tops up both the grant and the spendable part.
func CustodyAdditionContribution(custodyID uuid.UUID, amount decimal.Decimal) []Delta {
	return []Delta{
		{Account: CustodyBudget, OwnerID: custodyID, Amount: amount},
		{Account: CustodyRemaining, OwnerID: custodyID, Amount: amount, Guard: true},
	}
}

func SupplierInvoiceContribution(supplierID uuid.UUID, total decimal.Decimal) []Delta {
	return []Delta{{Account: SupplierBalance, OwnerID: supplierID, Amount: total}}
}

func SupplierPaymentContribution(supplierID uuid.UUID, amount decimal.Decimal) []Delta {
	return []Delta{{Account: SupplierBalance, OwnerID: supplierID, Amount: amount.Neg()}}
}

package employeeerrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNationalIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same national id already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeHasBalance = apperror.New(
		apperror.CodeInvalidState,
		"Employee with a non-zero budget cannot be deleted",
		http.StatusBadRequest,
	)
	ErrEmployeeHasRecords = apperror.New(
		apperror.CodeInvalidState,
		"Employee still has attendance, advance, bonus, deduction or payroll records",
		http.StatusBadRequest,
	)
	ErrFullNameRequired   = apperror.RequiredField("Full Name")
	ErrInvalidDailySalary = apperror.New(
		apperror.CodeInvalidInput,
		"Daily salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidHiredAt = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hired_at format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

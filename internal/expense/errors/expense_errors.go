package expenseerrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense not found",
		http.StatusNotFound,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrInvalidExpenseID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expense ID",
		http.StatusBadRequest,
	)
	ErrInvalidCustodyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid custody ID",
		http.StatusBadRequest,
	)
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrDescriptionRequired = apperror.RequiredField("Description")
	ErrGeneratedExpense    = apperror.New(
		apperror.CodeInvalidState,
		"Expense was generated by another record and cannot be changed directly",
		http.StatusBadRequest,
	)
)

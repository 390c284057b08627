package ledgererrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrCustodyNotFound = apperror.New(
		apperror.CodeNotFound,
		"custody not found",
		http.StatusNotFound,
	)
	ErrSupplierNotFound = apperror.New(
		apperror.CodeNotFound,
		"supplier not found",
		http.StatusNotFound,
	)
	ErrInsufficientCustodyBalance = apperror.InsufficientBalance(
		"custody remaining balance is insufficient",
	)
	ErrInsufficientEmployeeBudget = apperror.InsufficientBalance(
		"employee budget is insufficient for this payout",
	)
	ErrInsufficientBalance = apperror.InsufficientBalance(
		"balance is insufficient",
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
)

package advanceerrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrAdvanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Advance not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidAdvanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid advance ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCustodyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid custody ID",
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
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be pending or repaid",
		http.StatusBadRequest,
	)
	ErrAlreadyRepaid = apperror.New(
		apperror.CodeInvalidState,
		"Advance is already repaid",
		http.StatusBadRequest,
	)
)

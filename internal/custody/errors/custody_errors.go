package custodyerrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrCustodyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Custody not found",
		http.StatusNotFound,
	)
	ErrAdditionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Custody addition not found",
		http.StatusNotFound,
	)
	ErrInvalidCustodyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid custody ID",
		http.StatusBadRequest,
	)
	ErrInvalidAdditionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid custody addition ID",
		http.StatusBadRequest,
	)
	ErrNameRequired  = apperror.RequiredField("Name")
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
)

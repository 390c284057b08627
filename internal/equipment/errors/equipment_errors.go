package equipmenterrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrEquipmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment not found",
		http.StatusNotFound,
	)
	ErrInvalidEquipmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid equipment ID",
		http.StatusBadRequest,
	)
	ErrNameRequired = apperror.RequiredField("Name")
	ErrCodeExists   = apperror.New(
		apperror.CodeConflict,
		"Equipment code already exists",
		http.StatusConflict,
	)
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of available, broken",
		http.StatusBadRequest,
	)
	ErrUnderMaintenance = apperror.New(
		apperror.CodeInvalidState,
		"Equipment is under maintenance",
		http.StatusBadRequest,
	)
)

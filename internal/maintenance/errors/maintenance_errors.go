package maintenanceerrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrMaintenanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Maintenance not found",
		http.StatusNotFound,
	)
	ErrEquipmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment not found",
		http.StatusNotFound,
	)
	ErrInvalidMaintenanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid maintenance ID",
		http.StatusBadRequest,
	)
	ErrInvalidEquipmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid equipment ID",
		http.StatusBadRequest,
	)
	ErrInvalidCustodyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid custody ID",
		http.StatusBadRequest,
	)
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidCost = apperror.New(
		apperror.CodeInvalidInput,
		"Cost cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of open, completed",
		http.StatusBadRequest,
	)
	ErrNothingReturned = apperror.New(
		apperror.CodeInvalidInput,
		"Return at least one working or broken item",
		http.StatusBadRequest,
	)
	ErrEquipmentNotAvailable = apperror.New(
		apperror.CodeInvalidState,
		"Only available equipment can be sent to maintenance",
		http.StatusBadRequest,
	)
	ErrInsufficientQuantity = apperror.New(
		apperror.CodeConflict,
		"Quantity exceeds the equipment stock",
		http.StatusBadRequest,
	)
	ErrQuantityMismatch = apperror.New(
		apperror.CodeConflict,
		"Working, broken and pending quantities must add up to the pending quantity",
		http.StatusBadRequest,
	)
	ErrMaintenanceClosed = apperror.New(
		apperror.CodeInvalidState,
		"Maintenance is already completed",
		http.StatusBadRequest,
	)
)

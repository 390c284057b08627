package attendanceerrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrCheckInRequired = apperror.RequiredField("Check In")
	ErrInvalidCheckIn  = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid check_in, expected an RFC 3339 timestamp",
		http.StatusBadRequest,
	)
	ErrInvalidCheckOut = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid check_out, expected an RFC 3339 timestamp",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

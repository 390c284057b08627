package suppliererrors

import (
	"net/http"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"
)

var (
	ErrSupplierNotFound = apperror.New(
		apperror.CodeNotFound,
		"Supplier not found",
		http.StatusNotFound,
	)
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment not found",
		http.StatusNotFound,
	)
	ErrEquipmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment not found",
		http.StatusNotFound,
	)
	ErrInvalidSupplierID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid supplier ID",
		http.StatusBadRequest,
	)
	ErrInvalidInvoiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid invoice ID",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment ID",
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
	ErrNameRequired = apperror.RequiredField("Name")
	ErrNameExists   = apperror.New(
		apperror.CodeConflict,
		"Supplier name already exists",
		http.StatusConflict,
	)
	ErrInvoiceNumberExists = apperror.New(
		apperror.CodeConflict,
		"Invoice number already exists",
		http.StatusConflict,
	)
	ErrItemsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Invoice needs at least one item",
		http.StatusBadRequest,
	)
	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Invoice items need a description, a positive quantity and a non-negative unit price",
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
	ErrStockInUse = apperror.New(
		apperror.CodeInvalidState,
		"Invoiced equipment is no longer in stock",
		http.StatusBadRequest,
	)
	ErrSupplierHasBalance = apperror.New(
		apperror.CodeInvalidState,
		"Supplier with an open balance cannot be deleted",
		http.StatusBadRequest,
	)
)

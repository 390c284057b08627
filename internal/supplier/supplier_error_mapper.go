package supplier

import (
	"errors"
	"strings"

	suppliererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suppliererrors.ErrSupplierNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_supplier_name":
			return suppliererrors.ErrNameExists
		case "uq_supplier_invoice_number":
			return suppliererrors.ErrInvoiceNumberExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique") {
		switch {
		case strings.Contains(errMsg, "invoice_number"):
			return suppliererrors.ErrInvoiceNumberExists
		case strings.Contains(errMsg, "name"):
			return suppliererrors.ErrNameExists
		}
	}

	return err
}

func mapInvoiceError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suppliererrors.ErrInvoiceNotFound
	}
	return mapRepositoryError(err)
}

func mapPaymentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suppliererrors.ErrPaymentNotFound
	}
	return err
}

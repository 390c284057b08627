package payroll

import (
	"errors"

	payrollerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	return err
}

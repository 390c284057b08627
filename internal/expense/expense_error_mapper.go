package expense

import (
	"errors"

	expenseerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}
	return err
}

package custody

import (
	"errors"

	custodyerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return custodyerrors.ErrCustodyNotFound
	}
	return err
}

func mapAdditionError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return custodyerrors.ErrAdditionNotFound
	}
	return err
}

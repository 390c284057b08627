package advance

import (
	"errors"

	advanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/advance/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return advanceerrors.ErrAdvanceNotFound
	}
	return err
}

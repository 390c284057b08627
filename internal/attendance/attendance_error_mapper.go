package attendance

import (
	"errors"

	attendanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/attendance/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}
	return err
}

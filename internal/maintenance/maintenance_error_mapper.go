package maintenance

import (
	"errors"

	maintenanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/maintenance/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return maintenanceerrors.ErrMaintenanceNotFound
	}
	return err
}

func mapEquipmentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return maintenanceerrors.ErrEquipmentNotFound
	}
	return err
}

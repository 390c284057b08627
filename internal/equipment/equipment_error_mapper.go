package equipment

import (
	"errors"
	"strings"

	equipmenterrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return equipmenterrors.ErrEquipmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_equipment_code" {
		return equipmenterrors.ErrCodeExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique") && strings.Contains(errMsg, "code") {
		return equipmenterrors.ErrCodeExists
	}

	return err
}

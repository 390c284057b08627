package project

import (
	"errors"
	"strings"

	projecterrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/project/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_project_name" {
		return projecterrors.ErrProjectNameExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique") && strings.Contains(errMsg, "name") {
		return projecterrors.ErrProjectNameExists
	}

	return err
}

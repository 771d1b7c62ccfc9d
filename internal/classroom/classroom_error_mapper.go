package classroom

import (
	"errors"
	"strings"

	classroomerrors "go-school/internal/classroom/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return classroomerrors.ErrClassNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_classes_name_section" {
		return classroomerrors.ErrClassAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_classes_name_section") {
		return classroomerrors.ErrClassAlreadyExists
	}

	return err
}

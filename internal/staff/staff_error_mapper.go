package staff

import (
	"errors"
	"strings"

	"go-school/internal/auth"
	stafferrors "go-school/internal/staff/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stafferrors.ErrStaffNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_staff_school_staff_no" {
			return stafferrors.ErrStaffNumberAlreadyExists
		}
		return auth.MapRepositoryError(err)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_staff_school_staff_no") {
		return stafferrors.ErrStaffNumberAlreadyExists
	}

	return auth.MapRepositoryError(err)
}

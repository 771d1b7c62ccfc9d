package fee

import (
	"errors"
	"strings"

	feeerrors "go-school/internal/fee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError maps not-found to notFound and the per-student transport
// unique index to a conflict.
func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_transport_assignment_student" {
		return feeerrors.ErrTransportAlreadyAssigned
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_transport_assignment_student") {
		return feeerrors.ErrTransportAlreadyAssigned
	}

	return err
}

package auth

import (
	"errors"
	"strings"

	autherrors "go-school/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates user persistence errors. Staff creation reuses it.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_username":
			return autherrors.ErrUsernameTaken
		case "uq_users_staff_id", "uq_users_student_id":
			return autherrors.ErrRecordAlreadyLinked
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_username") {
		return autherrors.ErrUsernameTaken
	}

	return err
}

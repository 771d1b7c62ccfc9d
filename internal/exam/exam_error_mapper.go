package exam

import (
	"errors"

	examerrors "go-school/internal/exam/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return examerrors.ErrExamNotFound
	}
	return err
}

package salary

import (
	"errors"
	"strings"

	salaryerrors "go-school/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var uniqueConstraints = map[string]error{
	"uq_salary_structure_effective": salaryerrors.ErrStructureAlreadyExists,
	"uq_salary_record_period":       salaryerrors.ErrRecordAlreadyExists,
}

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if mapped, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return mapped
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for name, mapped := range uniqueConstraints {
			if strings.Contains(errMsg, name) {
				return mapped
			}
		}
	}

	return err
}

package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employee/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates persistence failures into the domain
// taxonomy. The unique index on employee_registration is the final authority
// on the check-then-create race: a concurrent duplicate surfaces here as the
// same error the pre-check produces.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_registration" {
			return employeeerrors.ErrRegistrationTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_registration") {
		return employeeerrors.ErrRegistrationTaken
	}

	return err
}

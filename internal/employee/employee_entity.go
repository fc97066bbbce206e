package employee

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	employeeerrors "go-employee/internal/employee/errors"

	"github.com/google/uuid"
)

var (
	// Letters (including Latin-1 accented), spaces, apostrophes, hyphens.
	nameAllowList = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)
	// Letters, digits, spaces, hyphens.
	jobRoleAllowList = regexp.MustCompile(`^[a-zA-Z0-9\s-]+$`)
)

// Employee is the aggregate root. Every reachable instance satisfies all
// field validations: construction and each mutator validate before touching
// state, so a failed operation leaves the previous state intact. Fields are
// unexported; mutation happens only through the named update operations.
type Employee struct {
	id           uuid.UUID
	name         string
	jobRole      string
	salary       Salary
	registration Registration
	createdAt    time.Time
	updatedAt    time.Time
}

// New builds a validated Employee with fresh timestamps. The id stays zero
// until the repository persists the aggregate.
func New(name, jobRole string, salaryAmount float64, registrationValue int) (*Employee, error) {
	now := time.Now().UTC()
	return newEmployee(uuid.Nil, name, jobRole, salaryAmount, registrationValue, now, now)
}

// Rehydrate rebuilds an aggregate from persisted scalars, running the same
// validations as New. A stored row that no longer passes them (e.g. a legacy
// 5-digit registration) surfaces as an error instead of loading silently.
func Rehydrate(
	id uuid.UUID,
	name, jobRole string,
	salaryAmount float64,
	registrationValue int,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	return newEmployee(id, name, jobRole, salaryAmount, registrationValue, createdAt, updatedAt)
}

func newEmployee(
	id uuid.UUID,
	name, jobRole string,
	salaryAmount float64,
	registrationValue int,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	// Validation order is fixed (name, job role, salary, registration) so the
	// first error reported is deterministic.
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	jobRole = strings.TrimSpace(jobRole)
	if err := validateJobRole(jobRole); err != nil {
		return nil, err
	}

	salary, err := NewSalary(salaryAmount)
	if err != nil {
		return nil, err
	}

	registration, err := NewRegistration(registrationValue)
	if err != nil {
		return nil, err
	}

	return &Employee{
		id:           id,
		name:         name,
		jobRole:      jobRole,
		salary:       salary,
		registration: registration,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return employeeerrors.ErrNameRequired
	}
	if utf8.RuneCountInString(name) < 2 {
		return employeeerrors.ErrNameTooShort
	}
	if utf8.RuneCountInString(name) > 100 {
		return employeeerrors.ErrNameTooLong
	}
	if !nameAllowList.MatchString(name) {
		return employeeerrors.ErrNameInvalidChars
	}
	return nil
}

func validateJobRole(jobRole string) error {
	if jobRole == "" {
		return employeeerrors.ErrJobRoleRequired
	}
	if utf8.RuneCountInString(jobRole) < 2 {
		return employeeerrors.ErrJobRoleTooShort
	}
	if utf8.RuneCountInString(jobRole) > 50 {
		return employeeerrors.ErrJobRoleTooLong
	}
	if !jobRoleAllowList.MatchString(jobRole) {
		return employeeerrors.ErrJobRoleInvalidChars
	}
	return nil
}

func (e *Employee) ID() uuid.UUID { return e.id }

func (e *Employee) Name() string { return e.name }

func (e *Employee) JobRole() string { return e.jobRole }

func (e *Employee) Salary() Salary { return e.salary }

func (e *Employee) Registration() Registration { return e.registration }

func (e *Employee) CreatedAt() time.Time { return e.createdAt }

func (e *Employee) UpdatedAt() time.Time { return e.updatedAt }

// UpdateName replaces the name after re-validation. Setting the current name
// again is allowed and still advances updatedAt.
func (e *Employee) UpdateName(newName string) error {
	newName = strings.TrimSpace(newName)
	if err := validateName(newName); err != nil {
		return err
	}
	e.name = newName
	e.touch()
	return nil
}

func (e *Employee) UpdateJobRole(newJobRole string) error {
	newJobRole = strings.TrimSpace(newJobRole)
	if err := validateJobRole(newJobRole); err != nil {
		return err
	}
	e.jobRole = newJobRole
	e.touch()
	return nil
}

func (e *Employee) UpdateSalary(newAmount float64) error {
	salary, err := NewSalary(newAmount)
	if err != nil {
		return err
	}
	e.salary = salary
	e.touch()
	return nil
}

// GiveSalaryIncrease raises the salary by pct percent via the value object,
// replacing the aggregate's reference only on success.
func (e *Employee) GiveSalaryIncrease(pct float64) error {
	raised, err := e.salary.IncreaseByPercentage(pct)
	if err != nil {
		return err
	}
	e.salary = raised
	e.touch()
	return nil
}

func (e *Employee) touch() {
	e.updatedAt = time.Now().UTC()
}

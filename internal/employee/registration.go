package employee

import (
	employeeerrors "go-employee/internal/employee/errors"
)

const (
	minRegistration = 100000
	maxRegistration = 999999
)

// Registration is the natural business key of an employee: a positive integer
// of exactly 6 digits. Uniqueness across employees is the repository's job;
// the value object only guards the shape.
type Registration struct {
	value int
}

func NewRegistration(value int) (Registration, error) {
	if value <= 0 {
		return Registration{}, employeeerrors.ErrRegistrationNotPositive
	}
	if value < minRegistration || value > maxRegistration {
		return Registration{}, employeeerrors.ErrRegistrationDigits
	}
	return Registration{value: value}, nil
}

func (r Registration) Value() int {
	return r.value
}

func (r Registration) Equal(other Registration) bool {
	return r.value == other.value
}

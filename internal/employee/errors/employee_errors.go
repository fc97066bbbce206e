package employeeerrors

import (
	"net/http"

	"go-employee/internal/shared/apperror"
)

// Every rule the Employee aggregate and its value objects enforce has its own
// error value, so callers branch with errors.Is and the transport layer maps
// straight to a response without reinterpreting messages.
var (
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name is required",
		http.StatusBadRequest,
	)
	ErrNameTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name must be at least 2 characters long",
		http.StatusBadRequest,
	)
	ErrNameTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name cannot exceed 100 characters",
		http.StatusBadRequest,
	)
	ErrNameInvalidChars = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name contains invalid characters",
		http.StatusBadRequest,
	)

	ErrJobRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee job role is required",
		http.StatusBadRequest,
	)
	ErrJobRoleTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Job role must be at least 2 characters long",
		http.StatusBadRequest,
	)
	ErrJobRoleTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Job role cannot exceed 50 characters",
		http.StatusBadRequest,
	)
	ErrJobRoleInvalidChars = apperror.New(
		apperror.CodeInvalidInput,
		"Job role contains invalid characters",
		http.StatusBadRequest,
	)

	ErrSalaryNegative = apperror.New(
		apperror.CodeInvalidInput,
		"Salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrSalaryZero = apperror.New(
		apperror.CodeInvalidInput,
		"Salary cannot be zero",
		http.StatusBadRequest,
	)
	ErrSalaryPrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must have a maximum of 2 decimal places",
		http.StatusBadRequest,
	)

	ErrAdjustmentNegative = apperror.New(
		apperror.CodeInvalidInput,
		"Adjustment must be greater than zero",
		http.StatusBadRequest,
	)
	ErrAdjustmentPrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Adjustment must have a maximum of 2 decimal places",
		http.StatusBadRequest,
	)

	ErrPercentageNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Percentage must be greater than zero",
		http.StatusBadRequest,
	)
	ErrPercentageTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Percentage cannot be greater than 100",
		http.StatusBadRequest,
	)

	ErrRegistrationNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Employee registration must be greater than 0 and not negative",
		http.StatusBadRequest,
	)
	ErrRegistrationDigits = apperror.New(
		apperror.CodeInvalidInput,
		"Employee registration must have 6 digits",
		http.StatusBadRequest,
	)

	ErrRegistrationTaken = apperror.New(
		apperror.CodeConflict,
		"Employee registration already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

package employee

import (
	employeeerrors "go-employee/internal/employee/errors"

	"github.com/shopspring/decimal"
)

// Salary is an immutable monetary amount: strictly positive, at most 2
// decimal places. Adjustments return a new Salary and never modify the
// receiver. Decimal arithmetic keeps percentage raises exact (100 + 10% is
// 110, not 110.00000000000001).
type Salary struct {
	amount decimal.Decimal
}

func NewSalary(amount float64) (Salary, error) {
	return newSalaryFromDecimal(decimal.NewFromFloat(amount))
}

func newSalaryFromDecimal(amount decimal.Decimal) (Salary, error) {
	if amount.IsNegative() {
		return Salary{}, employeeerrors.ErrSalaryNegative
	}
	if amount.IsZero() {
		return Salary{}, employeeerrors.ErrSalaryZero
	}
	if amount.Exponent() < -2 {
		return Salary{}, employeeerrors.ErrSalaryPrecision
	}
	return Salary{amount: amount}, nil
}

// Amount returns the salary as a plain number for serialization.
func (s Salary) Amount() float64 {
	f, _ := s.amount.Float64()
	return f
}

// Decimal exposes the exact amount for persistence.
func (s Salary) Decimal() decimal.Decimal {
	return s.amount
}

// AddAmount returns a new Salary raised by delta. The delta is held to the
// same rules as a salary itself: strictly positive, at most 2 decimal places.
func (s Salary) AddAmount(delta float64) (Salary, error) {
	d := decimal.NewFromFloat(delta)
	if _, err := newSalaryFromDecimal(d); err != nil {
		return Salary{}, err
	}
	return newSalaryFromDecimal(s.amount.Add(d))
}

// SubtractAmount returns a new Salary lowered by delta. A result at or below
// zero is rejected, leaving the receiver as the caller's only valid value.
func (s Salary) SubtractAmount(delta float64) (Salary, error) {
	d := decimal.NewFromFloat(delta)
	if d.IsNegative() {
		return Salary{}, employeeerrors.ErrAdjustmentNegative
	}
	if d.Exponent() < -2 {
		return Salary{}, employeeerrors.ErrAdjustmentPrecision
	}

	remaining := s.amount.Sub(d)
	if remaining.IsNegative() {
		return Salary{}, employeeerrors.ErrSalaryNegative
	}
	return newSalaryFromDecimal(remaining)
}

// IncreaseByPercentage returns a new Salary raised by pct percent, rounded
// half-up to cents. pct must be in (0, 100].
func (s Salary) IncreaseByPercentage(pct float64) (Salary, error) {
	if pct <= 0 {
		return Salary{}, employeeerrors.ErrPercentageNotPositive
	}
	if pct > 100 {
		return Salary{}, employeeerrors.ErrPercentageTooLarge
	}

	increase := s.amount.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100))
	return newSalaryFromDecimal(s.amount.Add(increase).Round(2))
}

// Equal reports numeric equality (100.50 equals 100.5).
func (s Salary) Equal(other Salary) bool {
	return s.amount.Equal(other.amount)
}

package employee

import "time"

type CreateEmployeeRequest struct {
	Name    string  `json:"name" binding:"required"`
	JobRole string  `json:"job_role" binding:"required"`
	Salary  float64 `json:"salary" binding:"required"`
	// Zero means "allocate the next free registration number".
	EmployeeRegistration int `json:"employee_registration" binding:"omitempty,min=1"`
}

// UpdateEmployeeRequest carries a partial update. Absent fields are left
// untouched. The registration number is immutable after creation and is
// deliberately not part of this shape.
type UpdateEmployeeRequest struct {
	Name    *string  `json:"name"`
	JobRole *string  `json:"job_role"`
	Salary  *float64 `json:"salary"`
}

type SalaryIncreaseRequest struct {
	Percentage float64 `json:"percentage" binding:"required"`
}

type EmployeeResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	JobRole              string    `json:"job_role"`
	Salary               float64   `json:"salary"`
	EmployeeRegistration int       `json:"employee_registration"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

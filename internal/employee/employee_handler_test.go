package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employee/internal/employee"
	employeeerrors "go-employee/internal/employee/errors"
	"go-employee/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

// fakeEmployeeService lets each test script a single method without mocking
// the whole interface.
type fakeEmployeeService struct {
	createFn             func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn             func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn            func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn             func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn             func(ctx context.Context, id string) error
	giveSalaryIncreaseFn func(ctx context.Context, id string, percentage float64) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeEmployeeService) GiveSalaryIncrease(ctx context.Context, id string, percentage float64) (employee.EmployeeResponse, error) {
	return f.giveSalaryIncreaseFn(ctx, id, percentage)
}

func setupHandlerTest(svc employee.Service) *gin.Engine {
	r := gin.New()
	h := employee.NewHandler(svc)

	r.POST("/employees", h.Create)
	r.GET("/employees", h.GetAll)
	r.GET("/employees/:id", h.GetById)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	r.POST("/employees/:id/salary-increase", h.GiveSalaryIncrease)

	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("returns 201 with the created employee", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				assert.Equal(t, "Engineer", req.JobRole)
				return employee.EmployeeResponse{
					ID:                   id,
					Name:                 req.Name,
					JobRole:              req.JobRole,
					Salary:               req.Salary,
					EmployeeRegistration: req.EmployeeRegistration,
				}, nil
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees", gin.H{
			"name":                  "John Doe",
			"job_role":              "Engineer",
			"salary":                5000,
			"employee_registration": 123456,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, true, env["ok"])
		data := env["data"].(map[string]any)
		assert.Equal(t, id, data["id"])
		assert.Equal(t, float64(123456), data["employee_registration"])
	})

	t.Run("returns 400 when required fields are missing", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called on a binding failure")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees", gin.H{
			"name": "John Doe",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, false, env["ok"])
		errObj := env["error"].(map[string]any)
		assert.Equal(t, apperror.CodeInvalidInput, errObj["code"])
	})

	t.Run("returns 409 when the registration is taken", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrRegistrationTaken
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees", gin.H{
			"name":                  "John Doe",
			"job_role":              "Engineer",
			"salary":                5000,
			"employee_registration": 123456,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w)
		errObj := env["error"].(map[string]any)
		assert.Equal(t, apperror.CodeConflict, errObj["code"])
		assert.Equal(t, "Employee registration already exists", errObj["message"])
	})

	t.Run("returns 400 for a domain validation error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrSalaryZero
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees", gin.H{
			"name":                  "John Doe",
			"job_role":              "Engineer",
			"salary":                0.009,
			"employee_registration": 123456,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		errObj := env["error"].(map[string]any)
		assert.Equal(t, "Salary cannot be zero", errObj["message"])
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: uuid.New().String(), Name: "John Doe"},
				{ID: uuid.New().String(), Name: "Jane Doe"},
			}, nil
		},
	}
	r := setupHandlerTest(svc)

	w := doJSON(r, http.MethodGet, "/employees", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, true, env["ok"])
	assert.Len(t, env["data"], 2)
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, gotID string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				return employee.EmployeeResponse{ID: id, Name: "John Doe"}, nil
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodGet, "/employees/"+id, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 404 for an unknown employee", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodGet, "/employees/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		errObj := env["error"].(map[string]any)
		assert.Equal(t, apperror.CodeNotFound, errObj["code"])
	})

	t.Run("returns 400 for a malformed id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodGet, "/employees/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			updateFn: func(ctx context.Context, gotID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				assert.NotNil(t, req.Name)
				assert.Nil(t, req.Salary)
				return employee.EmployeeResponse{ID: id, Name: *req.Name}, nil
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPut, "/employees/"+id, gin.H{"name": "Jane Doe"})

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data := env["data"].(map[string]any)
		assert.Equal(t, "Jane Doe", data["name"])
	})

	t.Run("returns 404 for an unknown employee", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPut, "/employees/"+uuid.New().String(), gin.H{"name": "Jane Doe"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, id string) error { return nil },
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodDelete, "/employees/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["deleted"])
	})

	t.Run("returns 404 for an unknown employee", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, id string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodDelete, "/employees/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_GiveSalaryIncrease(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			giveSalaryIncreaseFn: func(ctx context.Context, gotID string, percentage float64) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, float64(10), percentage)
				return employee.EmployeeResponse{ID: id, Salary: 1100}, nil
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees/"+id+"/salary-increase", gin.H{"percentage": 10})

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data := env["data"].(map[string]any)
		assert.Equal(t, float64(1100), data["salary"])
	})

	t.Run("returns 400 when the percentage is missing", func(t *testing.T) {
		svc := &fakeEmployeeService{
			giveSalaryIncreaseFn: func(ctx context.Context, id string, percentage float64) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called on a binding failure")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees/"+uuid.New().String()+"/salary-increase", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for an out-of-range percentage", func(t *testing.T) {
		svc := &fakeEmployeeService{
			giveSalaryIncreaseFn: func(ctx context.Context, id string, percentage float64) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrPercentageTooLarge
			},
		}
		r := setupHandlerTest(svc)

		w := doJSON(r, http.MethodPost, "/employees/"+uuid.New().String()+"/salary-increase", gin.H{"percentage": 150})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

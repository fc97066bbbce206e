package employee

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// Create assigns the identity and returns the stored aggregate.
	Create(ctx context.Context, empl *Employee) (*Employee, error)
	FindAll(ctx context.Context) ([]*Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	// FindByRegistration returns (nil, nil) when no employee holds the
	// registration; absence is the expected outcome of the uniqueness check.
	FindByRegistration(ctx context.Context, registration int) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// employeeRecord is the persistence shape. It stays separate from the
// aggregate so GORM never gets a mutable path into validated state.
type employeeRecord struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"size:100;not null"`
	JobRole              string          `gorm:"size:50;not null"`
	Salary               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EmployeeRegistration int             `gorm:"not null;uniqueIndex:uq_employee_registration"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (employeeRecord) TableName() string {
	return "employees"
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs the repository over an open transaction, so the employee row
// and its outbox row commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) (*Employee, error) {
	if empl.id == uuid.Nil {
		empl.id = uuid.New()
	}
	rec := toRecord(empl)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return empl, nil
}

func (r *repository) FindAll(ctx context.Context) ([]*Employee, error) {
	var recs []employeeRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}

	empls := make([]*Employee, 0, len(recs))
	for _, rec := range recs {
		empl, err := toAggregate(rec)
		if err != nil {
			return nil, err
		}
		empls = append(empls, empl)
	}
	return empls, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var rec employeeRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toAggregate(rec)
}

func (r *repository) FindByRegistration(ctx context.Context, registration int) (*Employee, error) {
	var rec employeeRecord
	err := r.db.WithContext(ctx).First(&rec, "employee_registration = ?", registration).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toAggregate(rec)
}

// Update writes the mutable columns only. employee_registration and
// created_at are never part of the update set.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	res := r.db.WithContext(ctx).
		Model(&employeeRecord{}).
		Where("id = ?", empl.ID()).
		Updates(map[string]any{
			"name":       empl.Name(),
			"job_role":   empl.JobRole(),
			"salary":     empl.Salary().Decimal(),
			"updated_at": empl.UpdatedAt(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&employeeRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toRecord(empl *Employee) employeeRecord {
	return employeeRecord{
		ID:                   empl.ID(),
		Name:                 empl.Name(),
		JobRole:              empl.JobRole(),
		Salary:               empl.Salary().Decimal(),
		EmployeeRegistration: empl.Registration().Value(),
		CreatedAt:            empl.CreatedAt(),
		UpdatedAt:            empl.UpdatedAt(),
	}
}

func toAggregate(rec employeeRecord) (*Employee, error) {
	empl, err := Rehydrate(
		rec.ID,
		rec.Name,
		rec.JobRole,
		rec.Salary.InexactFloat64(),
		rec.EmployeeRegistration,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("stored employee %s is invalid: %w", rec.ID, err)
	}
	return empl, nil
}

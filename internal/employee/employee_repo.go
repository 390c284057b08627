package employee

import (
	"context"
	"database/sql"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileColumns are the columns a profile update may touch.
var profileColumns = []string{"full_name", "job_title", "phone", "national_id", "daily_salary", "hired_at", "updated_at"}

// recordTables hold rows whose ledger contributions point at an employee.
var recordTables = []string{"attendances", "advances", "bonuses", "deductions", "payrolls"}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Employee, error)
	HasRecords(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter EmployeeFilter) ([]Employee, error) {
	var empls []Employee
	q := r.db.WithContext(ctx).Order("full_name ASC")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("full_name LIKE ? OR job_title LIKE ? OR phone LIKE ?", like, like, like)
	}
	err := q.Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "full_name", "job_title").
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) HasRecords(ctx context.Context, id string) (bool, error) {
	for _, table := range recordTables {
		var n int64
		err := r.db.WithContext(ctx).
			Table(table).
			Where("employee_id = ? AND deleted_at IS NULL", id).
			Limit(1).
			Count(&n).Error
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Update writes profile fields only. Budget is left to the ledger.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).
		Model(empl).
		Select(profileColumns).
		Updates(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

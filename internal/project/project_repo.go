package project

import (
	"context"
	"database/sql"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAll(ctx context.Context, status string) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	TotalExpenses(ctx context.Context, id string) (decimal.Decimal, error)
	Update(ctx context.Context, p *Project) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Project, error) {
	var projects []Project
	q := r.db.WithContext(ctx).Order("name ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

type totalRow struct {
	Total decimal.NullDecimal
}

// TotalExpenses sums the live expenses booked against the project.
func (r *repository) TotalExpenses(ctx context.Context, id string) (decimal.Decimal, error) {
	var row totalRow
	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("SUM(amount) AS total").
		Where("project_id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select("name", "location", "description", "status", "updated_at").
		Updates(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

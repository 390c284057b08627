package advance

import (
	"context"
	"database/sql"
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var mutableColumns = []string{"amount", "date", "status", "repaid_at", "notes", "updated_at"}

//go:generate mockgen -source=advance_repo.go -destination=mock/advance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Advance) error
	FindAll(ctx context.Context, q Query) ([]Advance, error)
	FindByID(ctx context.Context, id string) (*Advance, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Advance, error)
	FindEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeRef, error)
	Update(ctx context.Context, a *Advance) error
	Delete(ctx context.Context, id string) error
}

type Query struct {
	EmployeeID string
	Status     string
	From       *time.Time
	To         *time.Time
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

func (r *repository) Create(ctx context.Context, a *Advance) error {
	return r.db.WithContext(ctx).Omit("Employee", "Custody").Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, query Query) ([]Advance, error) {
	var rows []Advance
	q := r.db.WithContext(ctx).Preload("Employee").Preload("Custody")
	if query.EmployeeID != "" {
		q = q.Where("employee_id = ?", query.EmployeeID)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.From != nil {
		q = q.Where("date >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("date < ?", query.To.AddDate(0, 0, 1))
	}
	err := q.Order("date DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Advance, error) {
	var a Advance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Custody").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Advance, error) {
	var a Advance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeRef, error) {
	var e domain.EmployeeRef
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, a *Advance) error {
	return r.db.WithContext(ctx).
		Model(a).
		Select(mutableColumns).
		Updates(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Advance{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package expense

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

var mutableColumns = []string{"custody_id", "project_id", "amount", "description", "date", "updated_at"}

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Expense) error
	FindAll(ctx context.Context, q Query) ([]Expense, error)
	FindByID(ctx context.Context, id string) (*Expense, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Expense, error)
	FindProject(ctx context.Context, id uuid.UUID) (*domain.ProjectRef, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
}

type Query struct {
	CustodyID string
	ProjectID string
	Source    string
	From      *time.Time
	To        *time.Time
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

func (r *repository) Create(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Omit("Custody", "Project").Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, query Query) ([]Expense, error) {
	var rows []Expense
	q := r.db.WithContext(ctx).Preload("Custody").Preload("Project")
	if query.CustodyID != "" {
		q = q.Where("custody_id = ?", query.CustodyID)
	}
	if query.ProjectID != "" {
		q = q.Where("project_id = ?", query.ProjectID)
	}
	if query.Source != "" {
		q = q.Where("source = ?", query.Source)
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

func (r *repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	err := r.db.WithContext(ctx).
		Preload("Custody").
		Preload("Project").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindProject(ctx context.Context, id uuid.UUID) (*domain.ProjectRef, error) {
	var p domain.ProjectRef
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).
		Model(e).
		Select(mutableColumns).
		Updates(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Expense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

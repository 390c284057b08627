package bonus

import (
	"context"
	"database/sql"
	"errors"
	"time"

	bonuserrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bonus/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Bonus) error
	FindAll(ctx context.Context, employeeID string, from, to *time.Time) ([]Bonus, error)
	FindByID(ctx context.Context, id string) (*Bonus, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Bonus, error)
	FindEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeRef, error)
	Update(ctx context.Context, b *Bonus) error
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

func (r *repository) Create(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(b).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string, from, to *time.Time) ([]Bonus, error) {
	var rows []Bonus
	q := r.db.WithContext(ctx).Preload("Employee")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date < ?", to.AddDate(0, 0, 1))
	}
	err := q.Order("date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Bonus, error) {
	var b Bonus
	err := r.db.WithContext(ctx).Preload("Employee").First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Bonus, error) {
	var b Bonus
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeRef, error) {
	var e domain.EmployeeRef
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bonuserrors.ErrEmployeeNotFound
	}
	return &e, err
}

func (r *repository) Update(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("amount", "date", "reason", "updated_at").
		Updates(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Bonus{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

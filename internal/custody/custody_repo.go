package custody

import (
	"context"
	"database/sql"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=custody_repo.go -destination=mock/custody_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Custody) error
	FindAll(ctx context.Context) ([]Custody, error)
	FindByID(ctx context.Context, id string) (*Custody, error)
	Update(ctx context.Context, c *Custody) error
	CreateAddition(ctx context.Context, a *Addition) error
	FindAdditions(ctx context.Context, custodyID uuid.UUID) ([]Addition, error)
	FindAdditionForUpdate(ctx context.Context, custodyID uuid.UUID, id string) (*Addition, error)
	DeleteAddition(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, c *Custody) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Custody, error) {
	var custodies []Custody
	err := r.db.WithContext(ctx).Order("name ASC").Find(&custodies).Error
	return custodies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Custody, error) {
	var c Custody
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

// Update never touches budget or remaining.
func (r *repository) Update(ctx context.Context, c *Custody) error {
	res := r.db.WithContext(ctx).
		Model(c).
		Select("name", "holder", "notes", "updated_at").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateAddition(ctx context.Context, a *Addition) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAdditions(ctx context.Context, custodyID uuid.UUID) ([]Addition, error) {
	var additions []Addition
	err := r.db.WithContext(ctx).
		Where("custody_id = ?", custodyID).
		Order("date DESC, created_at DESC").
		Find(&additions).Error
	return additions, err
}

func (r *repository) FindAdditionForUpdate(ctx context.Context, custodyID uuid.UUID, id string) (*Addition, error) {
	var a Addition
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("custody_id = ?", custodyID).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) DeleteAddition(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Addition{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package maintenance

import (
	"context"
	"database/sql"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=maintenance_repo.go -destination=mock/maintenance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Maintenance) error
	FindAll(ctx context.Context, status, equipmentID string) ([]Maintenance, error)
	FindByID(ctx context.Context, id string) (*Maintenance, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Maintenance, error)
	Update(ctx context.Context, m *Maintenance) error
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

func (r *repository) Create(ctx context.Context, m *Maintenance) error {
	return r.db.WithContext(ctx).Omit("Equipment").Create(m).Error
}

func (r *repository) FindAll(ctx context.Context, status, equipmentID string) ([]Maintenance, error) {
	var rows []Maintenance
	q := r.db.WithContext(ctx).Preload("Equipment")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if equipmentID != "" {
		q = q.Where("equipment_id = ? OR source_equipment_id = ?", equipmentID, equipmentID)
	}
	err := q.Order("sent_at DESC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Maintenance, error) {
	var m Maintenance
	err := r.db.WithContext(ctx).Preload("Equipment").First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Maintenance, error) {
	var m Maintenance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) Update(ctx context.Context, m *Maintenance) error {
	return r.db.WithContext(ctx).
		Model(m).
		Select(
			"pending_quantity", "working_quantity", "broken_quantity",
			"status", "cost", "custody_id", "completed_at", "notes", "updated_at",
		).
		Updates(m).Error
}

package counter

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"gorm.io/gorm"
)

const TypeSupplierInvoice = "supplier_invoice"

// DocumentCounter holds the last number handed out per document type.
type DocumentCounter struct {
	CounterType string    `gorm:"primaryKey;size:50"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (DocumentCounter) TableName() string {
	return "document_counters"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
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

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// Single upsert so concurrent callers never receive the same value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO document_counters (counter_type, last_value, updated_at)
		VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = document_counters.last_value + 1, updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// FormatNumber renders a counter value as a document number, e.g. INV-000042.
func FormatNumber(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}

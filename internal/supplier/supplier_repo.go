package supplier

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"
	suppliererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=supplier_repo.go -destination=mock/supplier_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Supplier) error
	FindAll(ctx context.Context, search string) ([]Supplier, error)
	FindByID(ctx context.Context, id string) (*Supplier, error)
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateInvoice(ctx context.Context, inv *Invoice) error
	FindInvoices(ctx context.Context, supplierID uuid.UUID) ([]Invoice, error)
	FindInvoiceForUpdate(ctx context.Context, supplierID uuid.UUID, id string) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	CreatePayment(ctx context.Context, p *Payment) error
	FindPayments(ctx context.Context, supplierID uuid.UUID) ([]Payment, error)
	FindPaymentForUpdate(ctx context.Context, supplierID uuid.UUID, id string) (*Payment, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error

	LockEquipment(ctx context.Context, id uuid.UUID) (*domain.EquipmentRef, error)
	AdjustStock(ctx context.Context, equipmentID uuid.UUID, delta int) error
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

func (r *repository) Create(ctx context.Context, s *Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context, search string) ([]Supplier, error) {
	var suppliers []Supplier
	q := r.db.WithContext(ctx)
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+search+"%")
	}
	err := q.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Supplier, error) {
	var s Supplier
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

// Update never touches balance.
func (r *repository) Update(ctx context.Context, s *Supplier) error {
	res := r.db.WithContext(ctx).
		Model(s).
		Select("name", "phone", "address", "updated_at").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Supplier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateInvoice(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindInvoices(ctx context.Context, supplierID uuid.UUID) ([]Invoice, error) {
	var invoices []Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("supplier_id = ?", supplierID).
		Order("date DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *repository) FindInvoiceForUpdate(ctx context.Context, supplierID uuid.UUID, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&inv, "id = ? AND supplier_id = ?", id, supplierID).Error
	return &inv, err
}

func (r *repository) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreatePayment(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPayments(ctx context.Context, supplierID uuid.UUID) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("date DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindPaymentForUpdate(ctx context.Context, supplierID uuid.UUID, id string) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ? AND supplier_id = ?", id, supplierID).Error
	return &p, err
}

func (r *repository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Payment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) LockEquipment(ctx context.Context, id uuid.UUID) (*domain.EquipmentRef, error) {
	var e domain.EquipmentRef
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, suppliererrors.ErrEquipmentNotFound
	}
	return &e, err
}

func (r *repository) AdjustStock(ctx context.Context, equipmentID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Table("equipment").
		Where("id = ?", equipmentID).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

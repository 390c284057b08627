package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	payrollerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, employeeID string, from, to *time.Time) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Payroll, error)
	FindEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeRef, error)
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, id string) error
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, periodStart, periodEnd time.Time, excludePayrollID *uuid.UUID) (bool, error)
	Summarize(ctx context.Context, employeeID uuid.UUID, periodStart, periodEnd time.Time) (Summary, error)
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string, from, to *time.Time) ([]Payroll, error) {
	var payrolls []Payroll
	q := r.db.WithContext(ctx).Preload("Employee")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if from != nil {
		q = q.Where("period_end >= ?", *from)
	}
	if to != nil {
		q = q.Where("period_start < ?", to.AddDate(0, 0, 1))
	}
	err := q.Order("period_start DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).Preload("Employee").First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) FindEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeRef, error) {
	var e domain.EmployeeRef
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrEmployeeNotFound
	}
	return &e, err
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).
		Model(payroll).
		Select("paid_amount", "notes", "updated_at").
		Updates(payroll).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Payroll{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	employeeID uuid.UUID,
	periodStart time.Time,
	periodEnd time.Time,
	excludePayrollID *uuid.UUID,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd)

	if excludePayrollID != nil {
		db = db.Where("id <> ?", *excludePayrollID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

type totalRow struct {
	Total decimal.NullDecimal
}

// Summarize aggregates the period [periodStart, periodEnd] from the live
// attendance, bonus, deduction and advance rows. Only attendances with a
// check-out count as worked days.
func (r *repository) Summarize(ctx context.Context, employeeID uuid.UUID, periodStart, periodEnd time.Time) (Summary, error) {
	var sum Summary
	db := r.db.WithContext(ctx)
	end := periodEnd.AddDate(0, 0, 1)

	emp, err := r.FindEmployee(ctx, employeeID)
	if err != nil {
		return Summary{}, err
	}
	sum.DailySalary = emp.DailySalary

	var days int64
	err = db.Table("attendances").
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, periodStart, end).
		Where("check_out IS NOT NULL AND deleted_at IS NULL").
		Distinct("date").
		Count(&days).Error
	if err != nil {
		return Summary{}, err
	}
	sum.DaysWorked = int(days)

	total := func(table string, extra ...any) (decimal.Decimal, error) {
		var row totalRow
		q := db.Table(table).
			Select("SUM(amount) AS total").
			Where("employee_id = ? AND date >= ? AND date < ?", employeeID, periodStart, end).
			Where("deleted_at IS NULL")
		if len(extra) > 0 {
			q = q.Where(extra[0], extra[1:]...)
		}
		if err := q.Take(&row).Error; err != nil {
			return decimal.Zero, err
		}
		return row.Total.Decimal, nil
	}

	if sum.Bonuses, err = total("bonuses"); err != nil {
		return Summary{}, err
	}
	if sum.Deductions, err = total("deductions"); err != nil {
		return Summary{}, err
	}
	if sum.Advances, err = total("advances", "status = ?", "pending"); err != nil {
		return Summary{}, err
	}

	return sum.compute(), nil
}

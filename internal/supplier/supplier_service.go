package supplier

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/counter"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"
	suppliererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=supplier_service.go -destination=mock/supplier_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error)
	GetAll(ctx context.Context, search string) ([]SupplierResponse, error)
	GetByID(ctx context.Context, id string) (SupplierResponse, error)
	Update(ctx context.Context, id string, req UpdateSupplierRequest) (SupplierResponse, error)
	Delete(ctx context.Context, id string) error

	CreateInvoice(ctx context.Context, supplierID string, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoices(ctx context.Context, supplierID string) ([]InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, supplierID, invoiceID string) error

	CreatePayment(ctx context.Context, supplierID string, req CreatePaymentRequest) (PaymentResponse, error)
	GetPayments(ctx context.Context, supplierID string) ([]PaymentResponse, error)
	DeletePayment(ctx context.Context, supplierID, paymentID string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	poster   ledger.Poster
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counters counter.Repository,
	poster ledger.Poster,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("supplier.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("supplier.service")
	}
	return &service{db: db, repo: repo, counters: counters, poster: poster, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return SupplierResponse{}, suppliererrors.ErrNameRequired
	}

	sup := &Supplier{
		ID:      uuid.New(),
		Name:    name,
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		log.Warn("create supplier failed", zap.String("name", name), zap.Error(err))
		return SupplierResponse{}, mapRepositoryError(err)
	}

	log.Info("create supplier success", zap.String("supplier_id", sup.ID.String()))
	return mapToResponse(*sup), nil
}

func (s *service) GetAll(ctx context.Context, search string) ([]SupplierResponse, error) {
	suppliers, err := s.repo.FindAll(ctx, strings.ToLower(strings.TrimSpace(search)))
	if err != nil {
		s.logger.Error("get all suppliers failed", zap.Error(err))
		return nil, err
	}

	res := make([]SupplierResponse, len(suppliers))
	for i, sup := range suppliers {
		res[i] = mapToResponse(sup)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SupplierResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidSupplierID
	}

	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SupplierResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sup), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSupplierRequest) (SupplierResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidSupplierID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return SupplierResponse{}, suppliererrors.ErrNameRequired
	}

	var sup *Supplier
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		cur.Name = name
		cur.Phone = strings.TrimSpace(req.Phone)
		cur.Address = strings.TrimSpace(req.Address)
		if err := qtx.Update(ctx, cur); err != nil {
			return mapRepositoryError(err)
		}
		sup = cur
		return nil
	})
	if err != nil {
		return SupplierResponse{}, err
	}
	return mapToResponse(*sup), nil
}

// Delete refuses suppliers whose balance is not zero.
func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	supplierID, err := uuid.Parse(id)
	if err != nil {
		return suppliererrors.ErrInvalidSupplierID
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if !cur.Balance.IsZero() {
			return suppliererrors.ErrSupplierHasBalance
		}
		return mapRepositoryError(qtx.Delete(ctx, supplierID))
	})
	if err != nil {
		log.Warn("delete supplier failed", zap.String("supplier_id", id), zap.Error(err))
		return err
	}

	log.Info("delete supplier success", zap.String("supplier_id", id))
	return nil
}

func parseOptionalID(v *string, invalid error) (*uuid.UUID, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*v))
	if err != nil {
		return nil, invalid
	}
	return &id, nil
}

func supplierBalance(res ledger.Result, supplierID uuid.UUID) *decimal.Decimal {
	if balance, ok := res.Balance(ledger.SupplierBalance, supplierID); ok {
		return &balance
	}
	return nil
}

func mapToResponse(s Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Phone:     s.Phone,
		Address:   s.Address,
		Balance:   s.Balance,
		CreatedAt: dateutil.FormatDateTime(s.CreatedAt),
	}
}

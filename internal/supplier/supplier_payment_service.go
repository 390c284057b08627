package supplier

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"
	suppliererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const paymentSourceType = "supplier_payment"

// CreatePayment lowers the amount owed to the supplier. When a custody paid
// it, the custody is charged and an expense row records it.
func (s *service) CreatePayment(ctx context.Context, supplierID string, req CreatePaymentRequest) (PaymentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create supplier payment requested", zap.String("supplier_id", supplierID))

	supID, err := uuid.Parse(supplierID)
	if err != nil {
		return PaymentResponse{}, suppliererrors.ErrInvalidSupplierID
	}
	if !req.Amount.IsPositive() {
		return PaymentResponse{}, suppliererrors.ErrInvalidAmount
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return PaymentResponse{}, suppliererrors.ErrInvalidDate
	}
	custodyID, err := parseOptionalID(req.CustodyID, suppliererrors.ErrInvalidCustodyID)
	if err != nil {
		return PaymentResponse{}, err
	}

	pay := &Payment{
		ID:         uuid.New(),
		SupplierID: supID,
		Amount:     req.Amount,
		Date:       date,
		CustodyID:  custodyID,
		Notes:      strings.TrimSpace(req.Notes),
	}

	var res ledger.Result
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		sup, err := qtx.FindByID(ctx, supplierID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := qtx.CreatePayment(ctx, pay); err != nil {
			return err
		}

		plan := ledger.Create("supplier.payment_created",
			ledger.SupplierPaymentContribution(pay.SupplierID, pay.Amount),
		).From(paymentSourceType, pay.ID)
		if custodyID != nil {
			plan = plan.WithCharge(ledger.Charge{
				CustodyID:   *custodyID,
				Amount:      pay.Amount,
				Description: "Payment to " + sup.Name,
				Date:        pay.Date,
				Source:      ledger.SourceSupplierPayment,
				SourceID:    pay.ID,
			})
		}
		res, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("create supplier payment failed", zap.String("supplier_id", supplierID), zap.Error(err))
		return PaymentResponse{}, err
	}

	log.Info("create supplier payment success",
		zap.String("payment_id", pay.ID.String()),
		zap.String("amount", pay.Amount.String()),
	)
	resp := mapPaymentToResponse(*pay)
	resp.SupplierBalance = supplierBalance(res, supID)
	return resp, nil
}

func (s *service) GetPayments(ctx context.Context, supplierID string) ([]PaymentResponse, error) {
	supID, err := uuid.Parse(supplierID)
	if err != nil {
		return nil, suppliererrors.ErrInvalidSupplierID
	}
	if _, err := s.repo.FindByID(ctx, supplierID); err != nil {
		return nil, mapRepositoryError(err)
	}

	payments, err := s.repo.FindPayments(ctx, supID)
	if err != nil {
		return nil, err
	}

	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = mapPaymentToResponse(p)
	}
	return res, nil
}

// DeletePayment restores the amount owed. A custody charge made by the
// payment stays recorded.
func (s *service) DeletePayment(ctx context.Context, supplierID, paymentID string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	supID, err := uuid.Parse(supplierID)
	if err != nil {
		return suppliererrors.ErrInvalidSupplierID
	}
	if _, err := uuid.Parse(paymentID); err != nil {
		return suppliererrors.ErrInvalidPaymentID
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		pay, err := qtx.FindPaymentForUpdate(ctx, supID, paymentID)
		if err != nil {
			return mapPaymentError(err)
		}
		if err := qtx.DeletePayment(ctx, pay.ID); err != nil {
			return mapPaymentError(err)
		}

		plan := ledger.Reverse("supplier.payment_deleted",
			ledger.SupplierPaymentContribution(pay.SupplierID, pay.Amount),
		).From(paymentSourceType, pay.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete supplier payment failed",
			zap.String("supplier_id", supplierID),
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return err
	}

	log.Info("delete supplier payment success", zap.String("payment_id", paymentID))
	return nil
}

func mapPaymentToResponse(p Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:         p.ID.String(),
		SupplierID: p.SupplierID.String(),
		Amount:     p.Amount,
		Date:       dateutil.FormatDate(p.Date),
		Notes:      p.Notes,
	}
	if p.CustodyID != nil {
		id := p.CustodyID.String()
		resp.CustodyID = &id
	}
	return resp
}

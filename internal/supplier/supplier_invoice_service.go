package supplier

import (
	"context"
	"database/sql"
	"sort"
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

const (
	invoiceSourceType = "supplier_invoice"
	invoicePrefix     = "INV"
)

// CreateInvoice records what the company owes a supplier and restocks any
// equipment named on its lines.
func (s *service) CreateInvoice(ctx context.Context, supplierID string, req CreateInvoiceRequest) (InvoiceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create supplier invoice requested",
		zap.String("supplier_id", supplierID),
		zap.Int("items", len(req.Items)),
	)

	supID, err := uuid.Parse(supplierID)
	if err != nil {
		return InvoiceResponse{}, suppliererrors.ErrInvalidSupplierID
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return InvoiceResponse{}, suppliererrors.ErrInvalidDate
	}
	inv := &Invoice{
		ID:            uuid.New(),
		SupplierID:    supID,
		InvoiceNumber: strings.TrimSpace(req.InvoiceNumber),
		Date:          date,
		Notes:         strings.TrimSpace(req.Notes),
	}
	if err := buildItems(inv, req.Items); err != nil {
		return InvoiceResponse{}, err
	}

	var res ledger.Result
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, supplierID); err != nil {
			return mapRepositoryError(err)
		}
		if inv.InvoiceNumber == "" {
			next, err := s.counters.WithTx(tx).GetNextValue(ctx, counter.TypeSupplierInvoice)
			if err != nil {
				return err
			}
			inv.InvoiceNumber = counter.FormatNumber(invoicePrefix, next)
		}
		if err := restock(ctx, qtx, inv.Items, 1); err != nil {
			return err
		}
		if err := qtx.CreateInvoice(ctx, inv); err != nil {
			return mapInvoiceError(err)
		}

		plan := ledger.Create("supplier.invoice_created",
			ledger.SupplierInvoiceContribution(inv.SupplierID, inv.TotalAmount),
		).From(invoiceSourceType, inv.ID)
		var err error
		res, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("create supplier invoice failed", zap.String("supplier_id", supplierID), zap.Error(err))
		return InvoiceResponse{}, err
	}

	log.Info("create supplier invoice success",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("total_amount", inv.TotalAmount.String()),
	)
	resp := mapInvoiceToResponse(*inv)
	resp.SupplierBalance = supplierBalance(res, supID)
	return resp, nil
}

func (s *service) GetInvoices(ctx context.Context, supplierID string) ([]InvoiceResponse, error) {
	supID, err := uuid.Parse(supplierID)
	if err != nil {
		return nil, suppliererrors.ErrInvalidSupplierID
	}
	if _, err := s.repo.FindByID(ctx, supplierID); err != nil {
		return nil, mapRepositoryError(err)
	}

	invoices, err := s.repo.FindInvoices(ctx, supID)
	if err != nil {
		return nil, err
	}

	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = mapInvoiceToResponse(inv)
	}
	return res, nil
}

// DeleteInvoice takes the invoiced stock back out and reverses the amount
// owed. It fails when the restocked equipment has since left the stock.
func (s *service) DeleteInvoice(ctx context.Context, supplierID, invoiceID string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	supID, err := uuid.Parse(supplierID)
	if err != nil {
		return suppliererrors.ErrInvalidSupplierID
	}
	if _, err := uuid.Parse(invoiceID); err != nil {
		return suppliererrors.ErrInvalidInvoiceID
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		inv, err := qtx.FindInvoiceForUpdate(ctx, supID, invoiceID)
		if err != nil {
			return mapInvoiceError(err)
		}
		if err := restock(ctx, qtx, inv.Items, -1); err != nil {
			return err
		}
		if err := qtx.DeleteInvoice(ctx, inv.ID); err != nil {
			return mapInvoiceError(err)
		}

		plan := ledger.Reverse("supplier.invoice_deleted",
			ledger.SupplierInvoiceContribution(inv.SupplierID, inv.TotalAmount),
		).From(invoiceSourceType, inv.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete supplier invoice failed",
			zap.String("supplier_id", supplierID),
			zap.String("invoice_id", invoiceID),
			zap.Error(err),
		)
		return err
	}

	log.Info("delete supplier invoice success", zap.String("invoice_id", invoiceID))
	return nil
}

func buildItems(inv *Invoice, items []InvoiceItemRequest) error {
	if len(items) == 0 {
		return suppliererrors.ErrItemsRequired
	}

	total := decimal.Zero
	inv.Items = make([]InvoiceItem, 0, len(items))
	for _, it := range items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return suppliererrors.ErrInvalidItem
		}
		equipmentID, err := parseOptionalID(it.EquipmentID, suppliererrors.ErrInvalidEquipmentID)
		if err != nil {
			return err
		}

		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
		inv.Items = append(inv.Items, InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			EquipmentID: equipmentID,
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   line,
		})
	}
	if !total.IsPositive() {
		return suppliererrors.ErrInvalidAmount
	}
	inv.TotalAmount = total
	return nil
}

// restock moves stock by sign × quantity for every equipment line. Rows are
// locked in id order.
func restock(ctx context.Context, qtx Repository, items []InvoiceItem, sign int) error {
	qty := make(map[uuid.UUID]int)
	for _, it := range items {
		if it.EquipmentID != nil {
			qty[*it.EquipmentID] += it.Quantity
		}
	}
	ids := make([]uuid.UUID, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for _, id := range ids {
		eq, err := qtx.LockEquipment(ctx, id)
		if err != nil {
			return err
		}
		delta := sign * qty[id]
		if eq.Quantity+delta < 0 {
			return suppliererrors.ErrStockInUse
		}
		if err := qtx.AdjustStock(ctx, id, delta); err != nil {
			return err
		}
	}
	return nil
}

func mapInvoiceToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID.String(),
		SupplierID:    inv.SupplierID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		Date:          dateutil.FormatDate(inv.Date),
		TotalAmount:   inv.TotalAmount,
		Notes:         inv.Notes,
		Items:         make([]InvoiceItemResponse, len(inv.Items)),
	}
	for i, it := range inv.Items {
		item := InvoiceItemResponse{
			ID:          it.ID.String(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		}
		if it.EquipmentID != nil {
			id := it.EquipmentID.String()
			item.EquipmentID = &id
		}
		resp.Items[i] = item
	}
	return resp
}

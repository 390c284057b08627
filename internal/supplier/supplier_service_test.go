package supplier

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	ledgermock "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/mock"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/counter"
	countermock "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/counter/mock"
	suppliererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRepo overrides the calls a test needs; the rest panic.
type fakeRepo struct {
	Repository
	findByIDFn      func(ctx context.Context, id string) (*Supplier, error)
	createInvoiceFn func(ctx context.Context, inv *Invoice) error
	lockEquipmentFn func(ctx context.Context, id uuid.UUID) (*domain.EquipmentRef, error)
	adjustStockFn   func(ctx context.Context, id uuid.UUID, delta int) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Supplier, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) CreateInvoice(ctx context.Context, inv *Invoice) error {
	return f.createInvoiceFn(ctx, inv)
}
func (f *fakeRepo) LockEquipment(ctx context.Context, id uuid.UUID) (*domain.EquipmentRef, error) {
	return f.lockEquipmentFn(ctx, id)
}
func (f *fakeRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	return f.adjustStockFn(ctx, id, delta)
}

type fixture struct {
	mock     sqlmock.Sqlmock
	repo     *fakeRepo
	counters *countermock.MockRepository
	poster   *ledgermock.MockPoster
	svc      Service
}

func newFixture(t *testing.T) *fixture {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	f := &fixture{
		mock:     mock,
		repo:     &fakeRepo{},
		counters: countermock.NewMockRepository(ctrl),
		poster:   ledgermock.NewMockPoster(ctrl),
	}
	f.svc = NewService(db, f.repo, f.counters, f.poster)
	return f
}

func TestService_CreateInvoiceNumbersBlankInvoices(t *testing.T) {
	f := newFixture(t)
	supID := uuid.New()
	f.repo.findByIDFn = func(ctx context.Context, id string) (*Supplier, error) {
		return &Supplier{ID: supID, Name: "Cement Co"}, nil
	}
	var saved *Invoice
	f.repo.createInvoiceFn = func(ctx context.Context, inv *Invoice) error { saved = inv; return nil }

	f.mock.ExpectBegin()
	f.counters.EXPECT().WithTx(gomock.Any()).Return(f.counters)
	f.counters.EXPECT().GetNextValue(gomock.Any(), counter.TypeSupplierInvoice).Return(int64(42), nil)

	var plan ledger.Plan
	f.poster.EXPECT().WithTx(gomock.Any()).Return(f.poster)
	f.poster.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p ledger.Plan) (ledger.Result, error) {
			plan = p
			return ledger.Result{}, nil
		})
	f.mock.ExpectCommit()

	resp, err := f.svc.CreateInvoice(context.Background(), supID.String(), CreateInvoiceRequest{
		Items: []InvoiceItemRequest{
			{Description: "Cement bags", Quantity: 20, UnitPrice: decimal.RequireFromString("12.5")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "INV-000042", resp.InvoiceNumber)
	assert.Equal(t, "250", resp.TotalAmount.String())
	require.NotNil(t, saved)
	assert.Equal(t, "250", saved.Items[0].LineTotal.String())

	assert.Equal(t, "supplier_invoice", plan.SourceType)
	require.Len(t, plan.Deltas, 1)
	assert.Equal(t, ledger.SupplierBalance, plan.Deltas[0].Account)
	assert.Equal(t, supID, plan.Deltas[0].OwnerID)
	assert.Equal(t, "250", plan.Deltas[0].Amount.String())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_CreateInvoiceValidation(t *testing.T) {
	supID := uuid.NewString()
	bad := "not-a-uuid"

	tests := []struct {
		name    string
		req     CreateInvoiceRequest
		wantErr error
	}{
		{"no items", CreateInvoiceRequest{}, suppliererrors.ErrItemsRequired},
		{"zero quantity", CreateInvoiceRequest{Items: []InvoiceItemRequest{{Description: "x", UnitPrice: decimal.NewFromInt(1)}}}, suppliererrors.ErrInvalidItem},
		{"negative price", CreateInvoiceRequest{Items: []InvoiceItemRequest{{Description: "x", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}}, suppliererrors.ErrInvalidItem},
		{"free invoice", CreateInvoiceRequest{Items: []InvoiceItemRequest{{Description: "x", Quantity: 1}}}, suppliererrors.ErrInvalidAmount},
		{"bad equipment", CreateInvoiceRequest{Items: []InvoiceItemRequest{{EquipmentID: &bad, Description: "x", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}}, suppliererrors.ErrInvalidEquipmentID},
		{"bad date", CreateInvoiceRequest{Date: "02/04/2026", Items: []InvoiceItemRequest{{Description: "x", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}}, suppliererrors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.CreateInvoice(context.Background(), supID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, f.mock.ExpectationsWereMet())
		})
	}
}

func TestRestock_LocksInIDOrderAndGuardsStock(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	stock := map[uuid.UUID]int{a: 5, b: 1}

	var locked []uuid.UUID
	adjusted := map[uuid.UUID]int{}
	repo := &fakeRepo{
		lockEquipmentFn: func(ctx context.Context, id uuid.UUID) (*domain.EquipmentRef, error) {
			locked = append(locked, id)
			return &domain.EquipmentRef{ID: id, Quantity: stock[id]}, nil
		},
		adjustStockFn: func(ctx context.Context, id uuid.UUID, delta int) error {
			adjusted[id] += delta
			return nil
		},
	}
	items := []InvoiceItem{
		{EquipmentID: &b, Quantity: 2},
		{Description: "labour", Quantity: 9},
		{EquipmentID: &a, Quantity: 1},
		{EquipmentID: &a, Quantity: 2},
	}

	require.NoError(t, restock(context.Background(), repo, items, 1))
	assert.Equal(t, []uuid.UUID{a, b}, locked)
	assert.Equal(t, map[uuid.UUID]int{a: 3, b: 2}, adjusted)

	locked = nil
	err := restock(context.Background(), repo, items, -1)
	assert.ErrorIs(t, err, suppliererrors.ErrStockInUse)
	assert.Equal(t, []uuid.UUID{a, b}, locked)
}

package expense

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	expenseerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	ledgermock "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRepo struct {
	Repository
	findByIDForUpdateFn func(ctx context.Context, id string) (*Expense, error)
	updateFn            func(ctx context.Context, e *Expense) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) FindByIDForUpdate(ctx context.Context, id string) (*Expense, error) {
	return f.findByIDForUpdateFn(ctx, id)
}
func (f *fakeRepo) FindProject(ctx context.Context, id uuid.UUID) (*domain.ProjectRef, error) {
	return &domain.ProjectRef{ID: id}, nil
}
func (f *fakeRepo) Update(ctx context.Context, e *Expense) error { return f.updateFn(ctx, e) }

func TestService_CreateValidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, ledgermock.NewMockPoster(gomock.NewController(t)))
	custodyID := uuid.NewString()
	badProject := "p-1"

	tests := []struct {
		name string
		req  CreateExpenseRequest
		want error
	}{
		{"bad custody", CreateExpenseRequest{CustodyID: "x", Amount: decimal.NewFromInt(1), Description: "a"}, expenseerrors.ErrInvalidCustodyID},
		{"zero amount", CreateExpenseRequest{CustodyID: custodyID, Description: "a"}, expenseerrors.ErrInvalidAmount},
		{"negative amount", CreateExpenseRequest{CustodyID: custodyID, Amount: decimal.NewFromInt(-5), Description: "a"}, expenseerrors.ErrInvalidAmount},
		{"blank description", CreateExpenseRequest{CustodyID: custodyID, Amount: decimal.NewFromInt(1), Description: "  "}, expenseerrors.ErrDescriptionRequired},
		{"bad date", CreateExpenseRequest{CustodyID: custodyID, Amount: decimal.NewFromInt(1), Description: "a", Date: "03/05/2026"}, expenseerrors.ErrInvalidDate},
		{"bad project", CreateExpenseRequest{CustodyID: custodyID, ProjectID: &badProject, Amount: decimal.NewFromInt(1), Description: "a"}, expenseerrors.ErrInvalidProjectID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateAcrossCustodies(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	oldCustody, newCustody := uuid.New(), uuid.New()
	id := uuid.New()
	repo := &fakeRepo{
		findByIDForUpdateFn: func(ctx context.Context, got string) (*Expense, error) {
			return &Expense{ID: id, CustodyID: oldCustody, Amount: decimal.NewFromInt(300), Source: "manual"}, nil
		},
		updateFn: func(ctx context.Context, e *Expense) error { return nil },
	}
	poster := ledgermock.NewMockPoster(gomock.NewController(t))
	svc := NewService(db, repo, poster)

	var plan ledger.Plan
	mock.ExpectBegin()
	mock.ExpectCommit()
	poster.EXPECT().WithTx(gomock.Any()).Return(poster)
	poster.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p ledger.Plan) (ledger.Result, error) {
			plan = p
			return ledger.Result{}, nil
		})

	_, err = svc.Update(context.Background(), id.String(), UpdateExpenseRequest{
		CustodyID:   newCustody.String(),
		Amount:      decimal.NewFromInt(120),
		Description: "gravel",
	})
	require.NoError(t, err)

	require.Len(t, plan.Deltas, 2)
	amounts := map[uuid.UUID]string{}
	for _, d := range plan.Deltas {
		assert.Equal(t, ledger.CustodyRemaining, d.Account)
		amounts[d.OwnerID] = d.Amount.String()
	}
	assert.Equal(t, "300", amounts[oldCustody])
	assert.Equal(t, "-120", amounts[newCustody])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateGeneratedExpenseRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &fakeRepo{
		findByIDForUpdateFn: func(ctx context.Context, got string) (*Expense, error) {
			return &Expense{ID: uuid.New(), CustodyID: uuid.New(), Amount: decimal.NewFromInt(50), Source: "payroll"}, nil
		},
	}
	svc := NewService(db, repo, ledgermock.NewMockPoster(gomock.NewController(t)))

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = svc.Update(context.Background(), uuid.NewString(), UpdateExpenseRequest{
		CustodyID:   uuid.NewString(),
		Amount:      decimal.NewFromInt(10),
		Description: "x",
	})

	assert.ErrorIs(t, err, expenseerrors.ErrGeneratedExpense)
	assert.NoError(t, mock.ExpectationsWereMet())
}

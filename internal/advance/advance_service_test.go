package advance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	advanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/advance/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	ledgermock "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeRepo struct {
	Repository
	stored  *Advance
	updated *Advance
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) FindByIDForUpdate(ctx context.Context, id string) (*Advance, error) {
	cp := *f.stored
	return &cp, nil
}
func (f *fakeRepo) Update(ctx context.Context, a *Advance) error {
	f.updated = a
	return nil
}

func TestService_CreateValidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, ledgermock.NewMockPoster(gomock.NewController(t)))
	empID := uuid.NewString()
	badCustody := "cash-box"

	tests := []struct {
		name string
		req  CreateAdvanceRequest
		want error
	}{
		{"bad employee", CreateAdvanceRequest{EmployeeID: "1", Amount: decimal.NewFromInt(5)}, advanceerrors.ErrInvalidEmployeeID},
		{"zero amount", CreateAdvanceRequest{EmployeeID: empID}, advanceerrors.ErrInvalidAmount},
		{"bad date", CreateAdvanceRequest{EmployeeID: empID, Amount: decimal.NewFromInt(5), Date: "June 1"}, advanceerrors.ErrInvalidDate},
		{"bad custody", CreateAdvanceRequest{EmployeeID: empID, Amount: decimal.NewFromInt(5), CustodyID: &badCustody}, advanceerrors.ErrInvalidCustodyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RepayReleasesAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	empID := uuid.New()
	repo := &fakeRepo{stored: &Advance{ID: uuid.New(), EmployeeID: empID, Amount: decimal.NewFromInt(400), Status: StatusPending}}
	poster := ledgermock.NewMockPoster(gomock.NewController(t))
	fixed := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)
	svc := &service{db: db, repo: repo, poster: poster, logger: zap.NewNop(), now: func() time.Time { return fixed }}

	var plan ledger.Plan
	mock.ExpectBegin()
	mock.ExpectCommit()
	poster.EXPECT().WithTx(gomock.Any()).Return(poster)
	poster.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p ledger.Plan) (ledger.Result, error) {
			plan = p
			return ledger.Result{}, nil
		})

	resp, err := svc.Repay(context.Background(), repo.stored.ID.String())

	require.NoError(t, err)
	assert.Equal(t, StatusRepaid, resp.Status)
	require.NotNil(t, repo.updated.RepaidAt)
	assert.Equal(t, fixed, *repo.updated.RepaidAt)
	require.Len(t, plan.Deltas, 1)
	assert.Equal(t, empID, plan.Deltas[0].OwnerID)
	assert.Equal(t, "400", plan.Deltas[0].Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RepayTwiceRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &fakeRepo{stored: &Advance{ID: uuid.New(), Amount: decimal.NewFromInt(400), Status: StatusRepaid}}
	svc := NewService(db, repo, ledgermock.NewMockPoster(gomock.NewController(t)))

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = svc.Repay(context.Background(), repo.stored.ID.String())

	assert.ErrorIs(t, err, advanceerrors.ErrAlreadyRepaid)
	assert.Nil(t, repo.updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package custody_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody"
	custodyerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody/mock"
	ledgererrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger/errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := mock.NewMockService(gomock.NewController(t))
	h := custody.NewHandler(svc)

	r := gin.New()
	r.POST("/custodies", h.Create)
	r.GET("/custodies", h.GetAll)
	r.POST("/custodies/:id/additions", h.AddAmount)
	r.DELETE("/custodies/:id/additions/:additionId", h.DeleteAddition)
	return r, svc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateCustody(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := newRouter(t)
		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req custody.CreateCustodyRequest) (custody.CustodyResponse, error) {
				assert.Equal(t, "750.25", req.InitialAmount.String())
				return custody.CustodyResponse{ID: "c1", Name: req.Name, Budget: req.InitialAmount}, nil
			})

		w := do(r, http.MethodPost, "/custodies", `{"name":"Site A","initial_amount":"750.25"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"budget":"750.25"`)
	})

	t.Run("missing name", func(t *testing.T) {
		r, _ := newRouter(t)

		w := do(r, http.MethodPost, "/custodies", `{"holder":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestHandler_GetAllPaginates(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any()).Return([]custody.CustodyResponse{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}, nil)

	w := do(r, http.MethodGet, "/custodies?page=2&page_size=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []custody.CustodyResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "c", body.Data[0].ID)
}

func TestHandler_AddAmount(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := newRouter(t)
		remaining := decimal.NewFromInt(1500)
		svc.EXPECT().
			AddAmount(gomock.Any(), "c1", gomock.Any()).
			Return(custody.AdditionResponse{ID: "a1", CustodyID: "c1", CustodyRemaining: &remaining}, nil)

		w := do(r, http.MethodPost, "/custodies/c1/additions", `{"amount":500}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"custody_remaining":"1500"`)
	})

	t.Run("invalid amount", func(t *testing.T) {
		r, svc := newRouter(t)
		svc.EXPECT().
			AddAmount(gomock.Any(), "c1", gomock.Any()).
			Return(custody.AdditionResponse{}, custodyerrors.ErrInvalidAmount)

		w := do(r, http.MethodPost, "/custodies/c1/additions", `{"amount":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestHandler_DeleteAdditionInsufficientBalance(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().
		DeleteAddition(gomock.Any(), "c1", "a1").
		Return(ledgererrors.ErrInsufficientCustodyBalance)

	w := do(r, http.MethodDelete, "/custodies/c1/additions/a1", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INSUFFICIENT_BALANCE")
}

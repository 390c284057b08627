package expense_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense"
	expenseerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	expense.Service
	getAllFn func(ctx context.Context, filter expense.ExpenseFilter) ([]expense.ExpenseResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeService) GetAll(ctx context.Context, filter expense.ExpenseFilter) ([]expense.ExpenseResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestHandler_GetAllBindsFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		getAllFn: func(ctx context.Context, filter expense.ExpenseFilter) ([]expense.ExpenseResponse, error) {
			assert.Equal(t, "c-1", filter.CustodyID)
			assert.Equal(t, "p-1", filter.ProjectID)
			return []expense.ExpenseResponse{{ID: "e1"}}, nil
		},
	}
	r := gin.New()
	r.GET("/expenses", expense.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/expenses?custody_id=c-1&project_id=p-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"e1"`)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestHandler_DeleteGeneratedExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		deleteFn: func(ctx context.Context, id string) error { return expenseerrors.ErrGeneratedExpense },
	}
	r := gin.New()
	r.DELETE("/expenses/:id", expense.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/expenses/x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee"
	employeeerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOptionResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newHandlerRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(svc)
	r := gin.New()
	r.POST("/employees", h.Create)
	r.GET("/employees", h.GetAll)
	r.GET("/employees/options", h.GetOptions)
	r.GET("/employees/:id", h.GetByID)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Omar", req.FullName)
				assert.True(t, decimal.NewFromInt(250).Equal(req.DailySalary))
				return employee.EmployeeResponse{ID: uuid.New().String(), FullName: req.FullName, DailySalary: req.DailySalary}, nil
			},
		}

		w := doRequest(newHandlerRouter(svc), http.MethodPost, "/employees", `{"full_name":"Omar","daily_salary":"250"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Omar")
	})

	t.Run("validation error", func(t *testing.T) {
		w := doRequest(newHandlerRouter(&fakeEmployeeService{}), http.MethodPost, "/employees", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrNationalIDAlreadyExists
			},
		}

		w := doRequest(newHandlerRouter(svc), http.MethodPost, "/employees", `{"full_name":"Omar","daily_salary":"250"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "a", filter.Search)
			return []employee.EmployeeResponse{
				{ID: "1", FullName: "Bassem", DailySalary: decimal.NewFromInt(300)},
				{ID: "2", FullName: "adel", DailySalary: decimal.NewFromInt(500)},
				{ID: "3", FullName: "Camal", DailySalary: decimal.NewFromInt(100)},
			}, nil
		},
	}
	r := newHandlerRouter(svc)

	t.Run("sorted by name with paging", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/employees?q=a&page=1&page_size=2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 2)
		assert.Equal(t, "adel", body.Data[0].FullName)
		assert.Equal(t, "Bassem", body.Data[1].FullName)
		assert.EqualValues(t, 3, body.Meta.Total)
	})

	t.Run("sorted by salary desc", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/employees?q=a&sort_by=salary&sort_dir=desc", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 3)
		assert.Equal(t, "2", body.Data[0].ID)
		assert.Equal(t, "3", body.Data[2].ID)
	})
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}

	w := doRequest(newHandlerRouter(svc), http.MethodGet, "/employees/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_Options(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
			return []employee.EmployeeOptionResponse{{ID: "1", FullName: "Hany"}}, nil
		},
	}

	w := doRequest(newHandlerRouter(svc), http.MethodGet, "/employees/options", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hany")
}

func TestEmployeeHandler_UpdateAndDelete(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeEmployeeService{
		UpdateFn: func(ctx context.Context, gotID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, gotID)
			return employee.EmployeeResponse{ID: gotID, FullName: req.FullName}, nil
		},
		DeleteFn: func(ctx context.Context, gotID string) error {
			assert.Equal(t, id, gotID)
			return nil
		},
	}
	r := newHandlerRouter(svc)

	w := doRequest(r, http.MethodPut, "/employees/"+id, `{"full_name":"Renamed","daily_salary":"100"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Renamed")

	w = doRequest(r, http.MethodDelete, "/employees/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}

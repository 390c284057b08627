package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll"
	payrollerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	previewFn func(ctx context.Context, req payroll.PreviewRequest) (payroll.PreviewResponse, error)
	createFn  func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn  func(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error)
	getByIDFn func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	updateFn  func(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakePayrollService) Preview(ctx context.Context, req payroll.PreviewRequest) (payroll.PreviewResponse, error) {
	return f.previewFn(ctx, req)
}

func (f *fakePayrollService) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollService) Update(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakePayrollService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestPayrollHandler_Create(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		createFn: func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, "2026-02-01", req.PeriodStart)
			assert.Equal(t, "1500", req.PaidAmount.String())
			return payroll.PayrollResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, PaidAmount: req.PaidAmount}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","period_start":"2026-02-01","period_end":"2026-02-28","paid_amount":"1500"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Create_Overlap(t *testing.T) {
	svc := &fakePayrollService{
		createFn: func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollOverlap
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","period_start":"2026-02-01","period_end":"2026-02-28"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_Create_MissingPeriod(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{"employee_id":"x"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayrollHandler_Preview(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, req payroll.PreviewRequest) (payroll.PreviewResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, "2026-03-01", req.PeriodStart)
			assert.Equal(t, "2026-03-31", req.PeriodEnd)
			return payroll.PreviewResponse{
				EmployeeID: employeeID,
				DaysWorked: 20,
				NetSalary:  decimal.NewFromInt(4000),
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/preview?employee_id="+employeeID+"&period_start=2026-03-01&period_end=2026-03-31", nil)

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var data payroll.PreviewResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 20, data.DaysWorked)
	assert.Equal(t, "4000", data.NetSalary.String())
}

func TestPayrollHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, id string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/"+id, nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPayrollHandler_UpdateAndDelete(t *testing.T) {
	id := uuid.New().String()
	svc := &fakePayrollService{
		updateFn: func(ctx context.Context, pid string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, id, pid)
			return payroll.PayrollResponse{ID: pid, PaidAmount: req.PaidAmount}, nil
		},
		deleteFn: func(ctx context.Context, pid string) error {
			assert.Equal(t, id, pid)
			return nil
		},
	}

	h := payroll.NewHandler(svc)

	wUpdate := httptest.NewRecorder()
	cUpdate, _ := gin.CreateTestContext(wUpdate)
	cUpdate.Request = httptest.NewRequest(http.MethodPut, "/payrolls/"+id, strings.NewReader(`{"paid_amount":"900"}`))
	cUpdate.Request.Header.Set("Content-Type", "application/json")
	cUpdate.Params = []gin.Param{{Key: "id", Value: id}}
	h.Update(cUpdate)
	assert.Equal(t, http.StatusOK, wUpdate.Code)

	wDelete := httptest.NewRecorder()
	cDelete, _ := gin.CreateTestContext(wDelete)
	cDelete.Request = httptest.NewRequest(http.MethodDelete, "/payrolls/"+id, nil)
	cDelete.Params = []gin.Param{{Key: "id", Value: id}}
	h.Delete(cDelete)
	assert.Equal(t, http.StatusOK, wDelete.Code)
}

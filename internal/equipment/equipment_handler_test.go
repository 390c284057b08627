package equipment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment"
	equipmenterrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEquipmentService struct {
	CreateFn  func(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error)
	GetAllFn  func(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.EquipmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (equipment.EquipmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req equipment.UpdateEquipmentRequest) (equipment.EquipmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEquipmentService) Create(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEquipmentService) GetAll(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.EquipmentResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeEquipmentService) GetByID(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEquipmentService) Update(ctx context.Context, id string, req equipment.UpdateEquipmentRequest) (equipment.EquipmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEquipmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestEquipmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEquipmentService{
			CreateFn: func(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error) {
				assert.Equal(t, 4, req.Quantity)
				return equipment.EquipmentResponse{ID: uuid.New().String(), Name: req.Name, Quantity: req.Quantity}, nil
			},
		}

		h := equipment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/equipment", strings.NewReader(`{"name":"Generator","quantity":4}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate code", func(t *testing.T) {
		svc := &fakeEquipmentService{
			CreateFn: func(ctx context.Context, req equipment.CreateEquipmentRequest) (equipment.EquipmentResponse, error) {
				return equipment.EquipmentResponse{}, equipmenterrors.ErrCodeExists
			},
		}

		h := equipment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/equipment", strings.NewReader(`{"name":"Generator","code":"GN-1"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		h := equipment.NewHandler(&fakeEquipmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/equipment", strings.NewReader(`{"quantity":1}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEquipmentHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEquipmentService{
		GetAllFn: func(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.EquipmentResponse, error) {
			assert.Equal(t, "broken", filter.Status)
			return []equipment.EquipmentResponse{}, nil
		},
	}

	h := equipment.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/equipment?status=broken", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEquipmentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("under maintenance", func(t *testing.T) {
		svc := &fakeEquipmentService{
			DeleteFn: func(ctx context.Context, id string) error {
				return equipmenterrors.ErrUnderMaintenance
			},
		}

		h := equipment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/equipment/x", nil)

		h.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEquipmentService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}

		h := equipment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/equipment/x", nil)

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

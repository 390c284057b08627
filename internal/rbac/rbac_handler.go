package rbac

import (
	"net/http"
	"strings"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	req.Role = strings.TrimSpace(req.Role)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	if req.Role == "" || req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "role, resource, and action are required", nil)
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		contextutil.GetLogger(c.Request.Context(), nil).Error("rbac enforce failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{
		Allowed: allowed,
	}, nil)
}

// Me lists the permissions granted to the caller's role.
func (h *Handler) Me(c *gin.Context) {
	role := contextutil.GetRole(c.Request.Context())
	if role == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing role", nil)
		return
	}

	perms, err := h.service.PermissionsForRole(role)
	if err != nil {
		contextutil.GetLogger(c.Request.Context(), nil).Error("rbac permissions lookup failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, RolePermissionsResponse{
		Role:        role,
		Permissions: perms,
	}, nil)
}

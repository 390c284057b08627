package equipment

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	items := r.Group("/equipment")
	{
		items.GET("",
			middleware.RBACAuthorize(rbacService, "equipment", rbac.ActionRead),
			handler.GetAll,
		)
		items.GET("/:id",
			middleware.RBACAuthorize(rbacService, "equipment", rbac.ActionRead),
			handler.GetByID,
		)
		items.POST("",
			middleware.RBACAuthorize(rbacService, "equipment", rbac.ActionCreate),
			handler.Create,
		)
		items.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "equipment", rbac.ActionUpdate),
			handler.Update,
		)
		items.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "equipment", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package project

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	projects := r.Group("/projects")
	{
		projects.GET("",
			middleware.RBACAuthorize(rbacService, "project", rbac.ActionRead),
			handler.GetAll,
		)
		projects.GET("/:id",
			middleware.RBACAuthorize(rbacService, "project", rbac.ActionRead),
			handler.GetByID,
		)
		projects.POST("",
			middleware.RBACAuthorize(rbacService, "project", rbac.ActionCreate),
			handler.Create,
		)
		projects.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "project", rbac.ActionUpdate),
			handler.Update,
		)
		projects.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "project", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

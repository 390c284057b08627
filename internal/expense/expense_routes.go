package expense

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	expenses := r.Group("/expenses")
	{
		expenses.GET("",
			middleware.RBACAuthorize(rbacService, "expense", rbac.ActionRead),
			handler.GetAll,
		)
		expenses.GET("/:id",
			middleware.RBACAuthorize(rbacService, "expense", rbac.ActionRead),
			handler.GetByID,
		)
		expenses.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "expense", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		expenses.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "expense", rbac.ActionUpdate),
			handler.Update,
		)
		expenses.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "expense", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

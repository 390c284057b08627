package maintenance

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	maintenances := r.Group("/maintenances")
	{
		maintenances.GET("",
			middleware.RBACAuthorize(rbacService, "maintenance", rbac.ActionRead),
			handler.GetAll,
		)
		maintenances.GET("/:id",
			middleware.RBACAuthorize(rbacService, "maintenance", rbac.ActionRead),
			handler.GetByID,
		)
		maintenances.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "maintenance", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Send,
		)
		maintenances.POST("/:id/return",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "maintenance", rbac.ActionUpdate),
			middleware.Idempotency(rdb),
			handler.Return,
		)
	}
}

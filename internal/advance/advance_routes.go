package advance

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	advances := r.Group("/advances")
	{
		advances.GET("",
			middleware.RBACAuthorize(rbacService, "advance", rbac.ActionRead),
			handler.GetAll,
		)
		advances.GET("/:id",
			middleware.RBACAuthorize(rbacService, "advance", rbac.ActionRead),
			handler.GetByID,
		)
		advances.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "advance", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		advances.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "advance", rbac.ActionUpdate),
			handler.Update,
		)
		advances.POST("/:id/repay",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "advance", rbac.ActionUpdate),
			handler.Repay,
		)
		advances.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "advance", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package bonus

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	bonuses := r.Group("/bonuses")
	{
		bonuses.GET("",
			middleware.RBACAuthorize(rbacService, "bonus", rbac.ActionRead),
			handler.GetAll,
		)
		bonuses.GET("/:id",
			middleware.RBACAuthorize(rbacService, "bonus", rbac.ActionRead),
			handler.GetByID,
		)
		bonuses.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "bonus", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		bonuses.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "bonus", rbac.ActionUpdate),
			handler.Update,
		)
		bonuses.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "bonus", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package attendance

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("",
			middleware.RBACAuthorize(rbacService, "attendance", rbac.ActionRead),
			handler.GetAll,
		)
		attendances.GET("/:id",
			middleware.RBACAuthorize(rbacService, "attendance", rbac.ActionRead),
			handler.GetByID,
		)
		attendances.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "attendance", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		attendances.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "attendance", rbac.ActionUpdate),
			handler.Update,
		)
		attendances.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

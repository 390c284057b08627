package custody

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	custodies := r.Group("/custodies")
	{
		custodies.GET("",
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionRead),
			handler.GetAll,
		)
		custodies.GET("/:id",
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionRead),
			handler.GetByID,
		)
		custodies.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		custodies.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionUpdate),
			handler.Update,
		)

		custodies.GET("/:id/additions",
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionRead),
			handler.GetAdditions,
		)
		custodies.POST("/:id/additions",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.AddAmount,
		)
		custodies.DELETE("/:id/additions/:additionId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "custody", rbac.ActionDelete),
			handler.DeleteAddition,
		)
	}
}

package deduction

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	deductions := r.Group("/deductions")
	{
		deductions.GET("",
			middleware.RBACAuthorize(rbacService, "deduction", rbac.ActionRead),
			handler.GetAll,
		)
		deductions.GET("/:id",
			middleware.RBACAuthorize(rbacService, "deduction", rbac.ActionRead),
			handler.GetByID,
		)
		deductions.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "deduction", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		deductions.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "deduction", rbac.ActionUpdate),
			handler.Update,
		)
		deductions.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "deduction", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

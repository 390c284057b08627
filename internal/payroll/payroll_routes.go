package payroll

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("",
			middleware.RBACAuthorize(rbacService, "payroll", rbac.ActionRead),
			handler.GetAll,
		)
		payrolls.GET("/preview",
			middleware.RBACAuthorize(rbacService, "payroll", rbac.ActionRead),
			handler.Preview,
		)
		payrolls.GET("/:id",
			middleware.RBACAuthorize(rbacService, "payroll", rbac.ActionRead),
			handler.GetByID,
		)
		payrolls.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "payroll", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		payrolls.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "payroll", rbac.ActionUpdate),
			handler.Update,
		)
		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payroll", rbac.ActionDelete),
			handler.Delete,
		)
	}
}

package supplier

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("",
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionRead),
			handler.GetAll,
		)
		suppliers.GET("/:id",
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionRead),
			handler.GetByID,
		)
		suppliers.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionCreate),
			handler.Create,
		)
		suppliers.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionUpdate),
			handler.Update,
		)
		suppliers.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionDelete),
			handler.Delete,
		)

		suppliers.GET("/:id/invoices",
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionRead),
			handler.GetInvoices,
		)
		suppliers.POST("/:id/invoices",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.CreateInvoice,
		)
		suppliers.DELETE("/:id/invoices/:invoiceId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionDelete),
			handler.DeleteInvoice,
		)

		suppliers.GET("/:id/payments",
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionRead),
			handler.GetPayments,
		)
		suppliers.POST("/:id/payments",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.CreatePayment,
		)
		suppliers.DELETE("/:id/payments/:paymentId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "supplier", rbac.ActionDelete),
			handler.DeletePayment,
		)
	}
}

package subject

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	subjects := r.Group("/subjects")
	subjects.Use(middleware.AuthMiddleware())
	{
		subjects.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "subject", "read"),
			handler.GetAll,
		)
		subjects.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "subject", "read"),
			handler.GetByID,
		)
		subjects.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "subject", "create"),
			handler.Create,
		)
		subjects.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "subject", "update"),
			handler.Update,
		)
		subjects.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "subject", "delete"),
			handler.Delete,
		)
	}
}

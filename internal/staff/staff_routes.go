package staff

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	staff := r.Group("/staff")
	staff.Use(middleware.AuthMiddleware())
	staff.Use(middleware.ContextLogger(logger))
	{
		staff.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "staff", "read"),
			handler.GetAll,
		)

		staff.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "staff", "read"),
			handler.GetOptions,
		)

		staff.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "staff", "read"),
			handler.GetByID,
		)

		staff.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "staff", "create"),
			handler.Create,
		)

		staff.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "staff", "update"),
			handler.Update,
		)

		staff.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "staff", "delete"),
			handler.Delete,
		)
	}
}

package student

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, logger *zap.Logger) {
	students := r.Group("/students-admin")
	students.Use(middleware.AuthMiddleware())
	students.Use(middleware.ContextLogger(logger))
	{
		students.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "student", "read"),
			handler.GetAll,
		)
		students.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "student", "read"),
			handler.GetByID,
		)
		students.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "student", "create"),
			handler.Create,
		)
		students.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "student", "update"),
			handler.Update,
		)
		students.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "student", "delete"),
			handler.Delete,
		)
	}
}

package classroom

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	classes := r.Group("/classes")
	classes.Use(middleware.AuthMiddleware())
	{
		classes.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "class", "read"),
			handler.GetAll,
		)
		classes.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "class", "read"),
			handler.GetByID,
		)
		classes.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "class", "create"),
			handler.Create,
		)
		classes.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "class", "update"),
			handler.Update,
		)
		classes.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "class", "delete"),
			handler.Delete,
		)
	}
}

package assignment

import (
	"go-school/internal/domain"
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	assignments := r.Group("/teacher-assignments")
	assignments.Use(middleware.AuthMiddleware())
	{
		assignments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.GetAll,
		)
		assignments.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RoleMiddleware(domain.RoleTeacher),
			handler.GetMine,
		)
		assignments.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "assignment", "create"),
			handler.Create,
		)
		assignments.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "assignment", "delete"),
			handler.Delete,
		)
	}
}

package school

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	schools := r.Group("/schools")

	// Pendaftaran sekolah baru, publik
	schools.POST("/register", middleware.RateLimitByIP(0.05, 2), handler.Register)

	me := schools.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "school", "read"),
			handler.GetMe,
		)

		me.PUT("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "school", "update"),
			handler.UpdateMe,
		)

		me.POST("/join-code",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "school", "update"),
			handler.RotateJoinCode,
		)
	}
}

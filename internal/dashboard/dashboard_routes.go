package dashboard

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, logger *zap.Logger) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.ContextLogger(logger))
	dashboard.GET("/stats",
		middleware.RateLimitByUser(2, 10),
		middleware.RBACAuthorize(rbacService, "dashboard", "read"),
		handler.GetStats,
	)
}

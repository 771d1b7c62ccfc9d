package attendance

import (
	"go-school/internal/middleware"
	"go-school/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	bulk := []gin.HandlerFunc{middleware.RateLimitByUser(1, 5)}
	if len(rdb) > 0 && rdb[0] != nil {
		bulk = append(bulk, middleware.Idempotency(rdb[0]))
	}
	withBulk := func(h ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, bulk...), h...)
	}

	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetClass,
		)
		attendance.POST("/bulk", withBulk(
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			handler.MarkClass,
		)...)
		attendance.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetSummary,
		)
		attendance.GET("/staff",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "staff_read"),
			handler.GetStaff,
		)
		attendance.POST("/staff/bulk", withBulk(
			middleware.RBACAuthorize(rbacService, "attendance", "staff_mark"),
			handler.MarkStaff,
		)...)
		attendance.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "self_read"),
			handler.GetMine,
		)
	}
}

package salary

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
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}
	idempotent := func(h ...gin.HandlerFunc) []gin.HandlerFunc {
		if redisClient == nil {
			return h
		}
		return append([]gin.HandlerFunc{middleware.Idempotency(redisClient)}, h...)
	}

	salary := r.Group("/salary")
	salary.Use(middleware.AuthMiddleware())
	salary.Use(middleware.ContextLogger(logger))
	{
		salary.POST("/structure", middleware.RateLimitByUser(1, 5), middleware.RBACAuthorize(rbacService, "salary", "manage"), handler.CreateStructure)
		salary.GET("/structure", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetCurrentStructure)
		salary.GET("/structure/:staffId/versions", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.ListStructureVersions)

		salary.POST("/records/generate", idempotent(
			middleware.RateLimitByUser(1, 2),
			middleware.RBACAuthorize(rbacService, "salary", "generate"),
			handler.Generate,
		)...)
		salary.POST("/records", idempotent(middleware.RBACAuthorize(rbacService, "salary", "generate"), handler.CreateRecord)...)
		salary.GET("/records", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.ListRecords)
		salary.GET("/records/:id", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetRecord)
		salary.GET("/records/:id/breakdown", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetBreakdown)
		salary.GET("/records/:id/payslip", middleware.RBACAuthorizeAny(rbacService, "salary", "read", "self_read"), handler.DownloadPayslip)
		salary.POST("/records/:id/approve", middleware.RBACAuthorize(rbacService, "salary", "approve"), handler.Approve)
		salary.POST("/records/:id/mark-paid", idempotent(middleware.RBACAuthorize(rbacService, "salary", "pay"), handler.MarkPaid)...)
		salary.DELETE("/records/:id", middleware.RBACAuthorize(rbacService, "salary", "generate"), handler.Delete)

		salary.GET("/history/:staffId", middleware.RBACAuthorizeAny(rbacService, "salary", "read", "self_read"), handler.History)
	}
}

package fee

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
	fees := r.Group("/fees")
	fees.Use(middleware.AuthMiddleware())
	fees.Use(middleware.ContextLogger(logger))

	read := func() []gin.HandlerFunc {
		return []gin.HandlerFunc{middleware.RateLimitByUser(3, 10), middleware.RBACAuthorize(rbacService, "fee", "read")}
	}
	manage := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{middleware.RateLimitByUser(1, 5), middleware.RBACAuthorize(rbacService, "fee", "manage"), h}
	}

	classFees := fees.Group("/class-fees")
	{
		classFees.GET("", append(read(), handler.ListClassFees)...)
		classFees.POST("", manage(handler.CreateClassFee)...)
		classFees.PUT("/:id", manage(handler.UpdateClassFee)...)
		classFees.DELETE("/:id", manage(handler.DeleteClassFee)...)
	}

	customFees := fees.Group("/custom-fees")
	{
		customFees.GET("", append(read(), handler.ListCustomFees)...)
		customFees.POST("", manage(handler.CreateCustomFee)...)
		customFees.PUT("/:id", manage(handler.UpdateCustomFee)...)
		customFees.DELETE("/:id", manage(handler.DeleteCustomFee)...)
	}

	routes := fees.Group("/transport/routes")
	{
		routes.GET("", append(read(), handler.ListRoutes)...)
		routes.POST("", manage(handler.CreateRoute)...)
		routes.PUT("/:id", manage(handler.UpdateRoute)...)
		routes.DELETE("/:id", manage(handler.DeleteRoute)...)
	}

	assignments := fees.Group("/transport/assignments")
	{
		assignments.GET("", append(read(), handler.ListAssignments)...)
		assignments.POST("", manage(handler.AssignTransport)...)
		assignments.PUT("/:id", manage(handler.UpdateAssignment)...)
		assignments.DELETE("/:id", manage(handler.DeleteAssignment)...)
	}

	fees.GET("/students/:id/summary", append(read(), handler.GetStudentSummary)...)
	fees.GET("/students/:id/payments",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, "fee", "payment_read"),
		handler.ListPayments,
	)

	pay := []gin.HandlerFunc{middleware.RateLimitByUser(1, 5)}
	if len(rdb) > 0 && rdb[0] != nil {
		pay = append(pay, middleware.Idempotency(rdb[0]))
	}
	pay = append(pay, middleware.RBACAuthorize(rbacService, "fee", "payment_create"), handler.RecordPayment)
	fees.POST("/payments", pay...)
}

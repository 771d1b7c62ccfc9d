package exam

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
	exams := r.Group("/exams")
	exams.Use(middleware.AuthMiddleware())
	exams.Use(middleware.ContextLogger(logger))
	{
		exams.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "exam", "read"),
			handler.GetAll,
		)
		exams.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "exam", "read"),
			handler.GetByID,
		)
		exams.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "exam", "create"),
			handler.Create,
		)
		exams.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "exam", "update"),
			handler.Update,
		)
		exams.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "exam", "delete"),
			handler.Delete,
		)
	}

	marks := r.Group("/marks")
	marks.Use(middleware.AuthMiddleware())
	marks.Use(middleware.ContextLogger(logger))
	{
		marks.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "marks", "read"),
			handler.GetMarks,
		)
		if len(rdb) > 0 && rdb[0] != nil {
			marks.POST("/bulk",
				middleware.RateLimitByUser(1, 5),
				middleware.Idempotency(rdb[0]),
				middleware.RBACAuthorize(rbacService, "marks", "enter"),
				handler.EnterMarks,
			)
		} else {
			marks.POST("/bulk",
				middleware.RateLimitByUser(1, 5),
				middleware.RBACAuthorize(rbacService, "marks", "enter"),
				handler.EnterMarks,
			)
		}
	}
}

package middleware

import (
	"go-school/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a request-scoped logger on the request context.
// Services pick it up through contextutil.GetLogger without knowing about gin.
// Mounted after AuthMiddleware so the token's user and school are known.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString(contextutil.RequestIDKey())
		if rid == "" {
			rid = c.GetHeader(HeaderRequestID)
		}
		if !validRequestID(rid) {
			rid = uuid.NewString()
			c.Header(HeaderRequestID, rid)
		}

		userID := c.GetString(ContextUserID)
		schoolID := c.GetString(ContextSchoolID)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		if userID != "" {
			reqLogger = reqLogger.With(zap.String("user_id", userID), zap.String("school_id", schoolID))
		}

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		if userID != "" {
			ctx = contextutil.WithUserID(ctx, userID)
			ctx = contextutil.WithSchoolID(ctx, schoolID)
		}
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

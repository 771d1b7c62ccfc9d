package middleware

import (
	"context"
	"go-school/internal/domain"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/contextutil"
	"go-school/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService adalah interface lokal.
// Any package with an Enforce method satisfies it.
type RBACService interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return RBACAuthorizeAny(service, resource, action)
}

// RBACAuthorizeAny passes when the user holds at least one of the actions on resource.
// The matched action is stored under ContextPermission.
func RBACAuthorizeAny(service RBACService, resource string, actions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		schoolID := c.GetString(ContextSchoolID)

		if userID == "" || schoolID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		for _, action := range actions {
			req := domain.EnforceRequest{
				UserID:   userID,
				SchoolID: schoolID,
				Resource: resource,
				Action:   action,
			}

			allowed, err := service.Enforce(c.Request.Context(), req)
			if err != nil {
				contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
					zap.String("resource", resource),
					zap.String("action", action),
					zap.Error(err),
				)
				response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "An unexpected error occurred", nil)
				c.Abort()
				return
			}
			if allowed {
				c.Set(ContextPermission, resource+":"+action)
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
			"You do not have permission to access this resource",
			gin.H{"required": requiredList(resource, actions)},
		)
		c.Abort()
	}
}

func requiredList(resource string, actions []string) any {
	if len(actions) == 1 {
		return resource + ":" + actions[0]
	}
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = resource + ":" + a
	}
	return out
}

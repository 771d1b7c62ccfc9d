package rbac_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-school/internal/domain"
	"go-school/internal/rbac"
	rbacMock "go-school/internal/rbac/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("school_id", "school-1")
		c.Next()
	})
	return r
}

func TestHandler_Enforce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)
	handler := rbac.NewHandler(svc)

	router := newAuthedRouter()
	router.POST("/rbac/enforce", handler.Enforce)

	t.Run("uses identity from token", func(t *testing.T) {
		svc.EXPECT().
			Enforce(gomock.Any(), domain.EnforceRequest{
				UserID:   "user-1",
				SchoolID: "school-1",
				Resource: "staff",
				Action:   "read",
			}).
			Return(true, nil)

		body, _ := json.Marshal(map[string]string{"resource": " staff ", "action": "read"})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data domain.EnforceResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Allowed)
	})

	t.Run("missing action", func(t *testing.T) {
		body := []byte(`{"resource":"staff"}`)
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)
	handler := rbac.NewHandler(svc)

	router := newAuthedRouter()
	router.GET("/rbac/roles", handler.ListRoles)

	svc.EXPECT().ListRoles(gomock.Any(), "school-1").Return([]domain.RoleResponse{
		{ID: "r-1", Name: domain.RolePrincipal, Permissions: []string{"staff:read"}},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.RolePrincipal)
}

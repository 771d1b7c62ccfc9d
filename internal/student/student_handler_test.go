package student_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-school/internal/student"
	studentMock "go-school/internal/student/mock"
)

func setupStudentRouter(handler *student.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", "school-1")
		c.Next()
	})
	r.GET("/students-admin", handler.GetAll)
	r.POST("/students-admin", handler.Create)
	return r
}

func TestHandler_GetAll_ClassRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := studentMock.NewMockService(ctrl)
	router := setupStudentRouter(student.NewHandler(mockService))

	mockService.EXPECT().
		GetAll(gomock.Any(), "school-1", student.StudentFilter{ClassID: "class-1"}).
		Return([]student.StudentResponse{{ID: "s-1", FullName: "Ani"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students-admin?class_id=class-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestHandler_Create_RejectsUnknownGender(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := studentMock.NewMockService(ctrl)
	router := setupStudentRouter(student.NewHandler(mockService))

	req := httptest.NewRequest(http.MethodPost, "/students-admin", bytes.NewBufferString(`{"full_name":"Ani","gender":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

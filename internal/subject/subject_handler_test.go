package subject_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-school/internal/subject"
	subjectMock "go-school/internal/subject/mock"
)

func TestHandler_GetAll_ClassFilterKeepsSharedSubjects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := subjectMock.NewMockService(ctrl)
	handler := subject.NewHandler(mockService)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", "school-1")
		c.Next()
	})
	r.GET("/subjects", handler.GetAll)

	mockService.EXPECT().GetAll(gomock.Any(), "school-1").Return([]subject.SubjectResponse{
		{ID: "1", Name: "Matematika", ClassID: "class-a"},
		{ID: "2", Name: "Fisika", ClassID: "class-b"},
		{ID: "3", Name: "Olahraga"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/subjects?class_id=class-a", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []subject.SubjectResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, "1", body.Data[0].ID)
	assert.Equal(t, "3", body.Data[1].ID)
}

package exam_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-school/internal/exam"
	examerrors "go-school/internal/exam/errors"
	examMock "go-school/internal/exam/mock"
)

const (
	testExamID    = "0c7a4a44-3d1b-4f3e-8f7e-6a1b2c3d4e5f"
	testStudentID = "9b1f7c2e-6a3d-4e8f-b2c1-7d6e5f4a3b21"
)

func setupExamRouter(handler *exam.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", "school-1")
		c.Set("user_id", "user-1")
		c.Set("role", "TEACHER")
		c.Set("staff_id", "staff-1")
		c.Next()
	})
	r.POST("/marks/bulk", handler.EnterMarks)
	r.GET("/marks", handler.GetMarks)
	r.GET("/exams", handler.GetAll)
	return r
}

func teacherActor() exam.Actor {
	return exam.Actor{UserID: "user-1", Role: "TEACHER", StaffID: "staff-1"}
}

func postMarks(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/marks/bulk", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_EnterMarks(t *testing.T) {
	body := `{"exam_id":"` + testExamID + `","marks":[{"student_id":"` + testStudentID + `","marks_obtained":88}]}`

	t.Run("saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := examMock.NewMockService(ctrl)
		router := setupExamRouter(exam.NewHandler(svc))

		svc.EXPECT().EnterMarks(gomock.Any(), "school-1", teacherActor(), exam.BulkMarksRequest{
			ExamID: testExamID,
			Marks:  []exam.MarkEntry{{StudentID: testStudentID, MarksObtained: 88}},
		}).Return(exam.BulkMarksResponse{ExamID: testExamID, Saved: 1}, nil)

		w := postMarks(router, body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"saved":1`)
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := examMock.NewMockService(ctrl)
		router := setupExamRouter(exam.NewHandler(svc))

		svc.EXPECT().EnterMarks(gomock.Any(), "school-1", teacherActor(), gomock.Any()).
			Return(exam.BulkMarksResponse{}, examerrors.ErrMarksOutOfRange)

		w := postMarks(router, body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "exam maximum")
	})

	t.Run("teacher outside class", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := examMock.NewMockService(ctrl)
		router := setupExamRouter(exam.NewHandler(svc))

		svc.EXPECT().EnterMarks(gomock.Any(), "school-1", teacherActor(), gomock.Any()).
			Return(exam.BulkMarksResponse{}, examerrors.ErrNotClassTeacher)

		w := postMarks(router, body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty marks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := setupExamRouter(exam.NewHandler(examMock.NewMockService(ctrl)))

		w := postMarks(router, `{"exam_id":"`+testExamID+`","marks":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetMarks(t *testing.T) {
	t.Run("exam id required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := setupExamRouter(exam.NewHandler(examMock.NewMockService(ctrl)))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/marks", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := examMock.NewMockService(ctrl)
		router := setupExamRouter(exam.NewHandler(svc))

		svc.EXPECT().GetMarks(gomock.Any(), "school-1", testExamID, teacherActor()).
			Return(exam.MarksSheetResponse{Stats: exam.MarksStats{Entered: 1, Highest: 88}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/marks?exam_id="+testExamID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"highest":88`)
	})
}

func TestHandler_GetAllExams(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := examMock.NewMockService(ctrl)
	router := setupExamRouter(exam.NewHandler(svc))

	svc.EXPECT().GetAll(gomock.Any(), "school-1", exam.ExamFilter{ClassID: "class-1"}).
		Return([]exam.ExamResponse{{ID: "e1"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exams?class_id=class-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

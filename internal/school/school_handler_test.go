package school_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-school/internal/school"
	schoolerrors "go-school/internal/school/errors"
	schoolMock "go-school/internal/school/mock"
)

const testSchoolID = "6f0f7f55-8d59-4cf0-9a53-0ad4f2b0f1a1"

func setupSchoolRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", testSchoolID)
		c.Next()
	})
	return r
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := schoolMock.NewMockService(ctrl)
	handler := school.NewHandler(mockService)
	router := setupSchoolRouter()
	router.POST("/schools/register", handler.Register)

	t.Run("Success", func(t *testing.T) {
		body, _ := json.Marshal(registerRequest())

		mockService.EXPECT().
			Register(gomock.Any(), registerRequest()).
			Return(school.RegisterSchoolResponse{School: school.SchoolResponse{ID: "s-1", JoinCode: "AB12CD34"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/schools/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "AB12CD34")
	})

	t.Run("ValidationError", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/schools/register", bytes.NewBufferString(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestHandler_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := schoolMock.NewMockService(ctrl)
	handler := school.NewHandler(mockService)
	router := setupSchoolRouter()
	router.GET("/schools/me", handler.GetMe)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), testSchoolID).Return(&school.SchoolResponse{ID: testSchoolID, Name: "SD Harapan"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schools/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "SD Harapan")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), testSchoolID).Return(nil, schoolerrors.ErrSchoolNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schools/me", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_RotateJoinCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := schoolMock.NewMockService(ctrl)
	handler := school.NewHandler(mockService)
	router := setupSchoolRouter()
	router.POST("/schools/me/join-code", handler.RotateJoinCode)

	mockService.EXPECT().RotateJoinCode(gomock.Any(), testSchoolID).Return(&school.SchoolResponse{JoinCode: "ZZ99YY88"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/schools/me/join-code", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ZZ99YY88")
}

package staff_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-school/internal/staff"
	stafferrors "go-school/internal/staff/errors"
	staffMock "go-school/internal/staff/mock"
)

const testSchoolID = "0b8ad3d4-9a2f-4f0d-8a4c-0e3f5cb7e9a1"

func setupStaffRouter(handler *staff.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", testSchoolID)
		c.Next()
	})
	r.GET("/staff", handler.GetAll)
	r.POST("/staff", handler.Create)
	r.GET("/staff/:id", handler.GetByID)
	r.DELETE("/staff/:id", handler.Delete)
	return r
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := staffMock.NewMockService(ctrl)
	router := setupStaffRouter(staff.NewHandler(mockService))

	t.Run("Success", func(t *testing.T) {
		reqBody := staff.CreateStaffRequest{FullName: "Bu Sari", JoinDate: "2026-07-01"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Create(gomock.Any(), testSchoolID, reqBody).
			Return(staff.StaffResponse{ID: "st-1", StaffNo: "STF-000001"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/staff", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "STF-000001")
	})

	t.Run("invalid account role", func(t *testing.T) {
		body := `{"full_name":"X","join_date":"2026-07-01","account":{"username":"abc","password":"rahasia","role":"PRINCIPAL"}}`
		req := httptest.NewRequest(http.MethodPost, "/staff", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := staffMock.NewMockService(ctrl)
	router := setupStaffRouter(staff.NewHandler(mockService))

	mockService.EXPECT().
		GetAll(gomock.Any(), testSchoolID, staff.StaffFilter{Status: "active"}).
		Return([]staff.StaffResponse{
			{ID: "2", StaffNo: "STF-000002", FullName: "Pak Anton"},
			{ID: "1", StaffNo: "STF-000001", FullName: "Bu Sari"},
			{ID: "3", StaffNo: "STF-000003", FullName: "Bu Rina"},
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff?status=active&q=bu&page_size=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []staff.StaffResponse `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Meta.Total)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "STF-000001", body.Data[0].StaffNo)
}

func TestHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := staffMock.NewMockService(ctrl)
	router := setupStaffRouter(staff.NewHandler(mockService))

	mockService.EXPECT().GetByID(gomock.Any(), testSchoolID, "missing").Return(staff.StaffResponse{}, stafferrors.ErrInvalidStaffID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff/missing", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := staffMock.NewMockService(ctrl)
	router := setupStaffRouter(staff.NewHandler(mockService))

	mockService.EXPECT().Delete(gomock.Any(), testSchoolID, "st-1").Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/staff/st-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}

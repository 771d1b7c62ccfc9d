package salary_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-school/internal/middleware"
	"go-school/internal/shared/apperror"
	"go-school/internal/salary"
	salaryerrors "go-school/internal/salary/errors"
	salaryMock "go-school/internal/salary/mock"
)

func setupSalaryRouter(handler *salary.Handler, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", "school-1")
		c.Set("user_id", "user-1")
		c.Set("role", "TEACHER")
		c.Set("staff_id", "staff-1")
		c.Set(middleware.ContextPermission, permission)
		c.Next()
	})
	r.POST("/salary/records/generate", handler.Generate)
	r.GET("/salary/records", handler.ListRecords)
	r.GET("/salary/records/:id/payslip", handler.DownloadPayslip)
	r.GET("/salary/history/:staffId", handler.History)
	return r
}

func TestHandler_Generate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryMock.NewMockService(ctrl)
		router := setupSalaryRouter(salary.NewHandler(svc), "salary:generate")

		svc.EXPECT().GenerateRecords(gomock.Any(), "school-1", "user-1", "2026-03").
			Return(salary.GenerateResponse{Period: "2026-03", Generated: 4, Skipped: 1, Errors: []salary.GenerateError{}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/salary/records/generate", bytes.NewBufferString(`{"period":"2026-03"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"generated":4`)
	})

	t.Run("malformed period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := setupSalaryRouter(salary.NewHandler(salaryMock.NewMockService(ctrl)), "salary:generate")

		req := httptest.NewRequest(http.MethodPost, "/salary/records/generate", bytes.NewBufferString(`{"period":"03/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("period required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := setupSalaryRouter(salary.NewHandler(salaryMock.NewMockService(ctrl)), "salary:generate")

		req := httptest.NewRequest(http.MethodPost, "/salary/records/generate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := salaryMock.NewMockService(ctrl)
	router := setupSalaryRouter(salary.NewHandler(svc), "salary:read")

	svc.EXPECT().ListRecords(gomock.Any(), "school-1", salary.RecordFilter{Period: "2026-03", Status: "DRAFT"}).
		Return([]salary.RecordResponse{{ID: "r1"}, {ID: "r2"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary/records?period=2026-03&status=DRAFT", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestHandler_History(t *testing.T) {
	t.Run("self read marks actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryMock.NewMockService(ctrl)
		router := setupSalaryRouter(salary.NewHandler(svc), "salary:self_read")

		svc.EXPECT().History(gomock.Any(), "school-1", salary.Actor{UserID: "user-1", Role: "TEACHER", StaffID: "staff-1", SelfOnly: true}, "staff-2").
			Return(nil, salaryerrors.ErrNotOwnSalary)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary/history/staff-2", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("full read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryMock.NewMockService(ctrl)
		router := setupSalaryRouter(salary.NewHandler(svc), "salary:read")

		svc.EXPECT().History(gomock.Any(), "school-1", salary.Actor{UserID: "user-1", Role: "TEACHER", StaffID: "staff-1"}, "staff-2").
			Return([]salary.RecordResponse{{ID: "r1", Period: "2026-03"}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary/history/staff-2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_DownloadPayslip(t *testing.T) {
	t.Run("redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryMock.NewMockService(ctrl)
		router := setupSalaryRouter(salary.NewHandler(svc), "salary:read")

		svc.EXPECT().PayslipURL(gomock.Any(), "school-1", gomock.Any(), "r1").Return("https://bucket/p.pdf?sig=1", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary/records/r1/payslip", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "https://bucket/p.pdf?sig=1", w.Header().Get("Location"))
	})

	t.Run("not generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryMock.NewMockService(ctrl)
		router := setupSalaryRouter(salary.NewHandler(svc), "salary:read")

		svc.EXPECT().PayslipURL(gomock.Any(), "school-1", gomock.Any(), "r1").Return("", salaryerrors.ErrPayslipNotGenerated)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary/records/r1/payslip", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

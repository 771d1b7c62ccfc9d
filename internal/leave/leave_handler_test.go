package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-school/internal/leave"
	leaveerrors "go-school/internal/leave/errors"
	"go-school/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn  func(ctx context.Context, schoolID string, actor leave.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context, schoolID string, actor leave.Actor, filter leave.LeaveFilter) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, schoolID string, actor leave.Actor, id string) (leave.LeaveResponse, error)
	approveFn func(ctx context.Context, schoolID, actorID, id string) (leave.LeaveResponse, error)
	rejectFn  func(ctx context.Context, schoolID, actorID, id, reason string) (leave.LeaveResponse, error)
	cancelFn  func(ctx context.Context, schoolID string, actor leave.Actor, id string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, schoolID string, actor leave.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, schoolID, actor, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, schoolID string, actor leave.Actor, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, schoolID, actor, filter)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, schoolID string, actor leave.Actor, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, schoolID, actor, id)
}
func (f *fakeLeaveService) Approve(ctx context.Context, schoolID, actorID, id string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, schoolID, actorID, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, schoolID, actorID, id, reason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, schoolID, actorID, id, reason)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, schoolID string, actor leave.Actor, id string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, schoolID, actor, id)
}

func setupLeaveRouter(svc leave.Service, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("school_id", "school-1")
		c.Set("user_id", "user-1")
		c.Set("staff_id", "staff-1")
		c.Set(middleware.ContextPermission, permission)
		c.Next()
	})
	h := leave.NewHandler(svc)
	r.GET("/leaves", h.GetAll)
	r.POST("/leaves", h.Create)
	r.POST("/leaves/:id/approve", h.Approve)
	r.POST("/leaves/:id/reject", h.Reject)
	return r
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, schoolID string, actor leave.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, "school-1", schoolID)
				assert.Equal(t, "staff-1", actor.StaffID)
				assert.Equal(t, "SICK", req.LeaveType)
				return leave.LeaveResponse{ID: "l-1", Status: leave.StatusPending, TotalDays: 2}, nil
			},
		}
		r := setupLeaveRouter(svc, "leave:create")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"leave_type":"SICK","start_date":"2026-03-09","end_date":"2026-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		r := setupLeaveRouter(&fakeLeaveService{}, "leave:create")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"leave_type":"VACATION","start_date":"2026-03-09","end_date":"2026-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("overlap is a conflict", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, schoolID string, actor leave.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
			},
		}
		r := setupLeaveRouter(svc, "leave:create")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"leave_type":"CASUAL","start_date":"2026-03-09","end_date":"2026-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	tests := []struct {
		name       string
		permission string
		wantSelf   bool
	}{
		{name: "reader sees all", permission: "leave:read", wantSelf: false},
		{name: "requester sees own", permission: "leave:create", wantSelf: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLeaveService{
				getAllFn: func(ctx context.Context, schoolID string, actor leave.Actor, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
					assert.Equal(t, tt.wantSelf, actor.SelfOnly)
					assert.Equal(t, "PENDING", filter.Status)
					return []leave.LeaveResponse{{ID: "l-1"}}, nil
				},
			}
			r := setupLeaveRouter(svc, tt.permission)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves?status=PENDING", nil))

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestLeaveHandler_ApproveReject(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		svc := &fakeLeaveService{
			approveFn: func(ctx context.Context, schoolID, actorID, id string) (leave.LeaveResponse, error) {
				assert.Equal(t, "user-1", actorID)
				assert.Equal(t, "l-1", id)
				return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, nil
			},
		}
		r := setupLeaveRouter(svc, "leave:approve")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/approve", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject without reason", func(t *testing.T) {
		r := setupLeaveRouter(&fakeLeaveService{}, "leave:approve")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reject decided leave", func(t *testing.T) {
		svc := &fakeLeaveService{
			rejectFn: func(ctx context.Context, schoolID, actorID, id, reason string) (leave.LeaveResponse, error) {
				assert.Equal(t, "Short staffed", reason)
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
			},
		}
		r := setupLeaveRouter(svc, "leave:approve")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", strings.NewReader(`{"reason":"Short staffed"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

package staff_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-school/internal/auth"
	autherrors "go-school/internal/auth/errors"
	authMock "go-school/internal/auth/mock"
	"go-school/internal/events"
	"go-school/internal/messaging/kafka"
	kafkaMock "go-school/internal/messaging/kafka/mock"
	rbacMock "go-school/internal/rbac/mock"
	"go-school/internal/shared/contextutil"
	"go-school/internal/shared/counter"
	counterMock "go-school/internal/shared/counter/mock"
	"go-school/internal/staff"
	stafferrors "go-school/internal/staff/errors"
	staffMock "go-school/internal/staff/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   staff.Service
	repo      *staffMock.MockRepository
	counter   *counterMock.MockRepository
	userRepo  *authMock.MockRepository
	rbac      *rbacMock.MockService
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := staffMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	userRepo := authMock.NewMockRepository(ctrl)
	rbacSvc := rbacMock.NewMockService(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   staff.NewService(db, repo, counterRepo, userRepo, rbacSvc, outboxRepo, rdb),
		repo:      repo,
		counter:   counterRepo,
		userRepo:  userRepo,
		rbac:      rbacSvc,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestStaffService_Create(t *testing.T) {
	schoolID := uuid.New().String()

	t.Run("success without account queues staff_created", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		ctx := contextutil.WithRequestID(context.Background(), "req-1")

		req := staff.CreateStaffRequest{FullName: "Bu Sari", JoinDate: "2026-07-01"}
		expectTx(t, deps.sqlMock, true)

		deps.counter.EXPECT().GetNextValue(ctx, schoolID, counter.TypeStaff).Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, st *staff.Staff) error {
			assert.Equal(t, "STF-000007", st.StaffNo)
			assert.Equal(t, staff.TypeTeaching, st.StaffType)
			assert.Equal(t, staff.StatusActive, st.Status)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.StaffLifecycleTopic, e.Topic)
			assert.Equal(t, "req-1", e.RequestID)

			var payload events.StaffCreatedEvent
			assert.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, events.StaffCreatedEventType, payload.EventType)
			assert.Equal(t, "2026-07-01", payload.JoinDate)
			assert.Equal(t, schoolID, payload.SchoolID)
			return nil
		})
		deps.redismock.ExpectDel(staff.GetStaffOptionsKey(schoolID)).SetVal(1)

		resp, err := deps.service.Create(ctx, schoolID, req)

		assert.NoError(t, err)
		assert.Equal(t, "STF-000007", resp.StaffNo)
		assert.Equal(t, "2026-07-01", resp.JoinDate)
		assert.Empty(t, resp.Username)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success with teacher account", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		ctx := context.Background()

		req := staff.CreateStaffRequest{
			FullName: "Pak Anton",
			JoinDate: "2026-07-01",
			Account:  &staff.StaffAccountRequest{Username: "Pak.Anton", Password: "rahasia", Role: "TEACHER"},
		}
		expectTx(t, deps.sqlMock, true)

		var staffID uuid.UUID
		deps.userRepo.EXPECT().UsernameExists(ctx, "pak.anton").Return(false, nil)
		deps.counter.EXPECT().GetNextValue(ctx, schoolID, counter.TypeStaff).Return(int64(1), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, st *staff.Staff) error {
			staffID = st.ID
			return nil
		})
		deps.userRepo.EXPECT().WithTx(gomock.Any()).Return(deps.userRepo)
		deps.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, staffID, *u.StaffID)
			assert.Equal(t, "TEACHER", u.Role)
			return nil
		})
		deps.rbac.EXPECT().AssignRole(ctx, gomock.Any(), schoolID, gomock.Any(), "TEACHER").Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(staff.GetStaffOptionsKey(schoolID)).SetVal(1)

		resp, err := deps.service.Create(ctx, schoolID, req)

		assert.NoError(t, err)
		assert.Equal(t, "pak.anton", resp.Username)
		assert.NotEmpty(t, resp.UserID)
	})

	t.Run("username taken stops before numbering", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		ctx := context.Background()

		deps.userRepo.EXPECT().UsernameExists(ctx, "pak.anton").Return(true, nil)

		_, err := deps.service.Create(ctx, schoolID, staff.CreateStaffRequest{
			FullName: "Pak Anton",
			JoinDate: "2026-07-01",
			Account:  &staff.StaffAccountRequest{Username: "pak.anton", Password: "rahasia", Role: "TEACHER"},
		})
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	})

	t.Run("invalid join date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(context.Background(), schoolID, staff.CreateStaffRequest{FullName: "X", JoinDate: "01/07/2026"})
		assert.ErrorIs(t, err, stafferrors.ErrInvalidJoinDate)
	})

	t.Run("duplicate staff number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		ctx := context.Background()
		expectTx(t, deps.sqlMock, false)

		deps.counter.EXPECT().GetNextValue(ctx, schoolID, counter.TypeStaff).Return(int64(2), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_staff_school_staff_no"})

		_, err := deps.service.Create(ctx, schoolID, staff.CreateStaffRequest{FullName: "X", JoinDate: "2026-07-01"})
		assert.ErrorIs(t, err, stafferrors.ErrStaffNumberAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		ctx := context.Background()
		expectTx(t, deps.sqlMock, false)

		deps.counter.EXPECT().GetNextValue(ctx, schoolID, counter.TypeStaff).Return(int64(3), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Create(ctx, schoolID, staff.CreateStaffRequest{FullName: "X", JoinDate: "2026-07-01"})
		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestStaffService_GetOptions(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := `[{"id":"s-1","staff_no":"STF-000001","full_name":"Bu Sari"}]`
		deps.redismock.ExpectGet(staff.GetStaffOptionsKey(schoolID)).SetVal(cached)

		resp, err := deps.service.GetOptions(ctx, schoolID)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Bu Sari", resp[0].FullName)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		rows := []staff.Staff{{ID: id, StaffNo: "STF-000002", FullName: "Pak Anton"}}
		expected := []staff.StaffOptionResponse{{ID: id.String(), StaffNo: "STF-000002", FullName: "Pak Anton"}}
		payload, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(staff.GetStaffOptionsKey(schoolID)).RedisNil()
		deps.repo.EXPECT().FindOptionsBySchool(ctx, schoolID).Return(rows, nil)
		deps.redismock.ExpectSet(staff.GetStaffOptionsKey(schoolID), payload, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, schoolID)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})
}

func TestStaffService_GetByID(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByIDAndSchool(ctx, schoolID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, schoolID, id)
		assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, schoolID, "abc")
		assert.ErrorIs(t, err, stafferrors.ErrInvalidStaffID)
	})
}

func TestStaffService_Update(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New()

	t.Run("deactivation disables login", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndSchool(ctx, schoolID, id.String()).
			Return(&staff.Staff{ID: id, StaffNo: "STF-000001", StaffType: staff.TypeTeaching, Status: staff.StatusActive}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().DeactivateAccount(ctx, schoolID, id.String()).Return(nil)
		deps.redismock.ExpectDel(staff.GetStaffOptionsKey(schoolID)).SetVal(1)

		resp, err := deps.service.Update(ctx, schoolID, id.String(), staff.UpdateStaffRequest{
			FullName: "Bu Sari",
			JoinDate: "2026-07-01",
			Status:   staff.StatusInactive,
		})

		assert.NoError(t, err)
		assert.Equal(t, staff.StatusInactive, resp.Status)
		assert.Equal(t, staff.TypeTeaching, resp.StaffType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestStaffService_Delete(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, schoolID, id).Return(nil)
		deps.repo.EXPECT().DeactivateAccount(ctx, schoolID, id).Return(nil)
		deps.redismock.ExpectDel(staff.GetStaffOptionsKey(schoolID)).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, schoolID, id))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, schoolID, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, schoolID, id), stafferrors.ErrStaffNotFound)
	})
}

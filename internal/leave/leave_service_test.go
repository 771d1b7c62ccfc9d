package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-school/internal/attendance"
	attendanceMock "go-school/internal/attendance/mock"
	"go-school/internal/leave"
	leaveerrors "go-school/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn     func(ctx context.Context, l *leave.Leave) error
	findAllFn    func(ctx context.Context, schoolID string, filter leave.LeaveFilter) ([]leave.Leave, error)
	findByIDFn   func(ctx context.Context, schoolID, id string) (*leave.Leave, error)
	lockByIDFn   func(ctx context.Context, schoolID, id string) (*leave.Leave, error)
	updateFn     func(ctx context.Context, l *leave.Leave) error
	hasOverlapFn func(ctx context.Context, schoolID, staffID string, startDate, endDate time.Time) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, schoolID string, filter leave.LeaveFilter) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, schoolID, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, schoolID, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, schoolID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) LockByID(ctx context.Context, schoolID, id string) (*leave.Leave, error) {
	if f.lockByIDFn != nil {
		return f.lockByIDFn(ctx, schoolID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, schoolID, staffID string, startDate, endDate time.Time) (bool, error) {
	if f.hasOverlapFn != nil {
		return f.hasOverlapFn(ctx, schoolID, staffID, startDate, endDate)
	}
	return false, nil
}

type leaveServiceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    leave.Service
	repo       *fakeLeaveRepository
	attendance *attendanceMock.MockRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	att := attendanceMock.NewMockRepository(gomock.NewController(t))
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	svc := leave.NewService(db, repo, att, weekdays)
	leave.SetClock(svc, func() time.Time { return time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC) })

	return &leaveServiceDeps{
		db:         db,
		sqlMock:    sqlMock,
		service:    svc,
		repo:       repo,
		attendance: att,
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

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	actor := leave.Actor{UserID: uuid.New().String(), StaffID: uuid.New().String()}

	t.Run("counts working days only", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, actor.StaffID, l.StaffID.String())
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := deps.service.Create(ctx, schoolID, actor, leave.CreateLeaveRequest{
			LeaveType: "CASUAL",
			StartDate: "2026-03-09",
			EndDate:   "2026-03-15",
			Reason:    "  Family event ",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, "Family event", resp.Reason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("weekend only", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, schoolID, actor, leave.CreateLeaveRequest{
			LeaveType: "SICK", StartDate: "2026-03-07", EndDate: "2026-03-08",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNoWorkingDays)
	})

	t.Run("overlap", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.hasOverlapFn = func(ctx context.Context, sid, staffID string, start, end time.Time) (bool, error) {
			assert.Equal(t, date("2026-03-09"), start)
			return true, nil
		}

		_, err := deps.service.Create(ctx, schoolID, actor, leave.CreateLeaveRequest{
			LeaveType: "CASUAL", StartDate: "2026-03-09", EndDate: "2026-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("account without staff profile", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, schoolID, leave.Actor{UserID: actor.UserID}, leave.CreateLeaveRequest{
			LeaveType: "CASUAL", StartDate: "2026-03-09", EndDate: "2026-03-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNoStaffProfile)
	})

	t.Run("invalid range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, schoolID, actor, leave.CreateLeaveRequest{
			LeaveType: "CASUAL", StartDate: "2026-03-10", EndDate: "2026-03-09",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)

		_, err = deps.service.Create(ctx, schoolID, actor, leave.CreateLeaveRequest{
			LeaveType: "CASUAL", StartDate: "2026-03-01", EndDate: "2026-06-01",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrRangeTooLong)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	staffID := uuid.New()
	actorID := uuid.New().String()
	leaveID := uuid.New()

	pending := func() *leave.Leave {
		return &leave.Leave{
			ID: leaveID, SchoolID: schoolID, StaffID: staffID, LeaveType: "SICK",
			StartDate: date("2026-03-06"), EndDate: date("2026-03-10"), TotalDays: 3, Status: leave.StatusPending,
		}
	}

	t.Run("writes leave attendance for working days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.lockByIDFn = func(ctx context.Context, sid, id string) (*leave.Leave, error) {
			return pending(), nil
		}
		deps.attendance.EXPECT().WithTx(gomock.Any()).Return(deps.attendance)
		deps.attendance.EXPECT().UpsertLeave(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, recs []attendance.Record) error {
			assert.Len(t, recs, 3)
			for _, r := range recs {
				assert.Equal(t, attendance.StatusLeave, r.Status)
				assert.Equal(t, attendance.SubjectStaff, r.SubjectType)
				assert.Equal(t, staffID, r.SubjectID)
				assert.NotEqual(t, time.Saturday, r.AttendanceDate.Weekday())
				assert.NotEqual(t, time.Sunday, r.AttendanceDate.Weekday())
			}
			return nil
		})

		resp, err := deps.service.Approve(ctx, schoolID.String(), actorID, leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, actorID, *resp.ApprovedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("attendance failure rolls back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.lockByIDFn = func(ctx context.Context, sid, id string) (*leave.Leave, error) {
			return pending(), nil
		}
		updated := false
		deps.repo.updateFn = func(ctx context.Context, l *leave.Leave) error {
			updated = true
			return nil
		}
		deps.attendance.EXPECT().WithTx(gomock.Any()).Return(deps.attendance)
		deps.attendance.EXPECT().UpsertLeave(ctx, gomock.Any()).Return(errors.New("deadlock"))

		_, err := deps.service.Approve(ctx, schoolID.String(), actorID, leaveID.String())

		assert.Error(t, err)
		assert.False(t, updated)
	})

	t.Run("already decided", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.lockByIDFn = func(ctx context.Context, sid, id string) (*leave.Leave, error) {
			l := pending()
			l.Status = leave.StatusRejected
			return l, nil
		}

		_, err := deps.service.Approve(ctx, schoolID.String(), actorID, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, schoolID.String(), actorID, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_RejectAndCancel(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	staffID := uuid.New()
	leaveID := uuid.New().String()

	lock := func(ctx context.Context, sid, id string) (*leave.Leave, error) {
		return &leave.Leave{ID: uuid.MustParse(leaveID), StaffID: staffID, Status: leave.StatusPending}, nil
	}

	t.Run("reject requires reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Reject(ctx, schoolID, uuid.New().String(), leaveID, "   ")
		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("reject stores reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.lockByIDFn = lock

		resp, err := deps.service.Reject(ctx, schoolID, uuid.New().String(), leaveID, "Exam week")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "Exam week", *resp.RejectionReason)
	})

	t.Run("cancel someone else's", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.lockByIDFn = lock

		_, err := deps.service.Cancel(ctx, schoolID, leave.Actor{StaffID: uuid.New().String()}, leaveID)
		assert.ErrorIs(t, err, leaveerrors.ErrNotOwnLeave)
	})

	t.Run("cancel own", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.lockByIDFn = lock

		resp, err := deps.service.Cancel(ctx, schoolID, leave.Actor{StaffID: staffID.String()}, leaveID)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	t.Run("self service sees own requests", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context, sid string, filter leave.LeaveFilter) ([]leave.Leave, error) {
			assert.Equal(t, "staff-1", filter.StaffID)
			assert.Equal(t, leave.StatusPending, filter.Status)
			return []leave.Leave{{ID: uuid.New()}}, nil
		}

		items, err := deps.service.GetAll(ctx, schoolID, leave.Actor{StaffID: "staff-1", SelfOnly: true}, leave.LeaveFilter{Status: "pending", StaffID: "staff-2"})
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("bad status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, schoolID, leave.Actor{}, leave.LeaveFilter{Status: "DONE"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})
}

package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-school/internal/attendance"
	attendanceerrors "go-school/internal/attendance/errors"
	attendanceMock "go-school/internal/attendance/mock"
	"go-school/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *attendanceMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := attendanceMock.NewMockRepository(ctrl)

	svc := attendance.NewService(db, repo, time.UTC)
	attendance.SetClock(svc, func() time.Time { return fixedNow })

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func roster(ids ...string) []attendance.RosterMember {
	members := make([]attendance.RosterMember, len(ids))
	for i, id := range ids {
		members[i] = attendance.RosterMember{ID: id, Name: "Student " + id}
	}
	return members
}

func TestAttendanceService_MarkClass(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	classID := uuid.New().String()
	actorID := uuid.New().String()
	s1, s2, s3 := uuid.New().String(), uuid.New().String(), uuid.New().String()

	t.Run("no toggles writes present for every student", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.repo.EXPECT().ClassRoster(ctx, schoolID, classID).Return(roster(s1, s2, s3), nil)
		deps.repo.EXPECT().FindStatuses(ctx, schoolID, attendance.SubjectStudent, gomock.Any(), gomock.Any()).Return(map[string]string{}, nil)
		deps.repo.EXPECT().UpsertMarks(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []attendance.Record) error {
			assert.Len(t, records, 3)
			for _, r := range records {
				assert.Equal(t, attendance.StatusPresent, r.Status)
				assert.Equal(t, attendance.SubjectStudent, r.SubjectType)
				assert.Equal(t, classID, r.ClassID.String())
				assert.Equal(t, actorID, r.MarkedBy.String())
				assert.Equal(t, "2026-03-09", r.AttendanceDate.Format("2006-01-02"))
			}
			return nil
		})

		resp, err := deps.service.MarkClass(ctx, schoolID, attendance.Actor{UserID: actorID, Role: domain.RolePrincipal},
			attendance.BulkStudentAttendanceRequest{ClassID: classID, Date: "2026-03-09"})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Saved)
		assert.Equal(t, attendance.StatusCounts{Present: 3, Total: 3}, resp.Counts)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("teacher assigned to class applies toggles", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		staffID := uuid.New().String()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.repo.EXPECT().TeachesClass(ctx, schoolID, staffID, classID).Return(true, nil)
		deps.repo.EXPECT().ClassRoster(ctx, schoolID, classID).Return(roster(s1, s2, s3), nil)
		deps.repo.EXPECT().FindStatuses(ctx, schoolID, attendance.SubjectStudent, gomock.Any(), gomock.Any()).Return(map[string]string{}, nil)
		deps.repo.EXPECT().UpsertMarks(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.MarkClass(ctx, schoolID,
			attendance.Actor{UserID: actorID, Role: domain.RoleTeacher, StaffID: staffID},
			attendance.BulkStudentAttendanceRequest{
				ClassID: classID,
				Date:    "2026-03-10",
				Records: []attendance.StudentMarkRequest{
					{StudentID: s2, Status: attendance.StatusAbsent},
					{StudentID: s3, Status: attendance.StatusLate},
				},
			})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusCounts{Present: 1, Absent: 1, Late: 1, Total: 3}, resp.Counts)
	})

	t.Run("teacher outside class is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.repo.EXPECT().TeachesClass(ctx, schoolID, "staff-1", classID).Return(false, nil)

		_, err := deps.service.MarkClass(ctx, schoolID,
			attendance.Actor{UserID: actorID, Role: domain.RoleTeacher, StaffID: "staff-1"},
			attendance.BulkStudentAttendanceRequest{ClassID: classID, Date: "2026-03-10"})

		assert.ErrorIs(t, err, attendanceerrors.ErrNotClassTeacher)
	})

	t.Run("student from another class rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.repo.EXPECT().ClassRoster(ctx, schoolID, classID).Return(roster(s1), nil)

		_, err := deps.service.MarkClass(ctx, schoolID, attendance.Actor{UserID: actorID, Role: domain.RolePrincipal},
			attendance.BulkStudentAttendanceRequest{
				ClassID: classID,
				Date:    "2026-03-10",
				Records: []attendance.StudentMarkRequest{{StudentID: s2, Status: attendance.StatusAbsent}},
			})

		assert.ErrorIs(t, err, attendanceerrors.ErrNotInRoster)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown class", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(false, nil)

		_, err := deps.service.MarkClass(ctx, schoolID, attendance.Actor{UserID: actorID},
			attendance.BulkStudentAttendanceRequest{ClassID: classID, Date: "2026-03-10"})

		assert.ErrorIs(t, err, attendanceerrors.ErrClassNotFound)
	})

	t.Run("future date is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.MarkClass(ctx, schoolID, attendance.Actor{UserID: actorID},
			attendance.BulkStudentAttendanceRequest{ClassID: classID, Date: "2026-03-11"})

		assert.ErrorIs(t, err, attendanceerrors.ErrFutureDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("upsert failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.repo.EXPECT().ClassRoster(ctx, schoolID, classID).Return(roster(s1), nil)
		deps.repo.EXPECT().FindStatuses(ctx, schoolID, attendance.SubjectStudent, []string{s1}, gomock.Any()).Return(map[string]string{}, nil)
		deps.repo.EXPECT().UpsertMarks(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.MarkClass(ctx, schoolID, attendance.Actor{UserID: actorID},
			attendance.BulkStudentAttendanceRequest{ClassID: classID, Date: "2026-03-10"})

		assert.EqualError(t, err, "db down")
	})
}

func TestAttendanceService_GetClassAttendance(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	classID := uuid.New().String()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
	deps.repo.EXPECT().ClassRoster(ctx, schoolID, classID).Return(roster("a", "b", "c"), nil)
	deps.repo.EXPECT().
		FindStatuses(ctx, schoolID, attendance.SubjectStudent, []string{"a", "b", "c"}, day).
		Return(map[string]string{"b": attendance.StatusLate}, nil)

	resp, err := deps.service.GetClassAttendance(ctx, schoolID, classID, "2026-03-09")

	assert.NoError(t, err)
	assert.Len(t, resp.Entries, 3)
	assert.False(t, resp.Entries[0].Marked)
	assert.Equal(t, attendance.StatusPresent, resp.Entries[0].Status)
	assert.True(t, resp.Entries[1].Marked)
	assert.Equal(t, attendance.StatusCounts{Present: 2, Late: 1, Total: 3}, resp.Counts)
}

func TestAttendanceService_MarkStaff(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	t1, t2 := uuid.New().String(), uuid.New().String()

	t.Run("absent toggle on staff grid", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().StaffRoster(ctx, schoolID).Return(roster(t1, t2), nil)
		deps.repo.EXPECT().FindStatuses(ctx, schoolID, attendance.SubjectStaff, []string{t1, t2}, gomock.Any()).Return(map[string]string{}, nil)
		deps.repo.EXPECT().UpsertMarks(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []attendance.Record) error {
			assert.Nil(t, records[0].ClassID)
			assert.Equal(t, attendance.SubjectStaff, records[0].SubjectType)
			assert.Equal(t, attendance.StatusAbsent, records[1].Status)
			return nil
		})

		resp, err := deps.service.MarkStaff(ctx, schoolID, attendance.Actor{UserID: "not-a-uuid"},
			attendance.BulkStaffAttendanceRequest{
				Date:    "2026-03-10",
				Records: []attendance.StaffMarkRequest{{StaffID: t2, Status: attendance.StatusAbsent}},
			})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusCounts{Present: 1, Absent: 1, Total: 2}, resp.Counts)
	})

	t.Run("staff on approved leave are reported as leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().StaffRoster(ctx, schoolID).Return(roster(t1, t2), nil)
		deps.repo.EXPECT().
			FindStatuses(ctx, schoolID, attendance.SubjectStaff, []string{t1, t2}, day).
			Return(map[string]string{t1: attendance.StatusLeave, t2: attendance.StatusPresent}, nil)
		deps.repo.EXPECT().UpsertMarks(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []attendance.Record) error {
			assert.Len(t, records, 1)
			assert.Equal(t, t2, records[0].SubjectID.String())
			return nil
		})

		resp, err := deps.service.MarkStaff(ctx, schoolID, attendance.Actor{},
			attendance.BulkStaffAttendanceRequest{
				Date:    "2026-03-10",
				Records: []attendance.StaffMarkRequest{{StaffID: t1, Status: attendance.StatusAbsent}},
			})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Saved)
		assert.Equal(t, attendance.StatusCounts{Present: 1, Leave: 1, Total: 2}, resp.Counts)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("late is not a staff status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().StaffRoster(ctx, schoolID).Return(roster(t1), nil)

		_, err := deps.service.MarkStaff(ctx, schoolID, attendance.Actor{},
			attendance.BulkStaffAttendanceRequest{
				Date:    "2026-03-10",
				Records: []attendance.StaffMarkRequest{{StaffID: t1, Status: attendance.StatusLate}},
			})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
	})
}

func TestAttendanceService_GetSummary(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	classID := uuid.New().String()

	t.Run("counts per student", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.repo.EXPECT().ClassRoster(ctx, schoolID, classID).Return(roster("a", "b"), nil)
		deps.repo.EXPECT().CountByClass(ctx, schoolID, classID, from, to).Return([]attendance.SubjectStatusCount{
			{SubjectID: "a", Status: attendance.StatusPresent, Total: 6},
			{SubjectID: "a", Status: attendance.StatusAbsent, Total: 1},
		}, nil)

		// Empty range defaults to the month so far.
		resp, err := deps.service.GetSummary(ctx, schoolID, classID, "", "")

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-01", resp.From)
		assert.Equal(t, attendance.StatusCounts{Present: 6, Absent: 1, Total: 7}, resp.Totals)
		assert.Equal(t, 7, resp.Students[0].Counts.Total)
		assert.Equal(t, 0, resp.Students[1].Counts.Total)
	})

	t.Run("inverted range", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetSummary(ctx, schoolID, classID, "2026-03-10", "2026-03-01")
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRange)
	})
}

func TestAttendanceService_GetMine(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	t.Run("requires student profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetMine(ctx, schoolID, "", "", "")
		assert.ErrorIs(t, err, attendanceerrors.ErrNoStudentProfile)
	})

	t.Run("lists recorded days", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().FindBySubject(ctx, schoolID, attendance.SubjectStudent, "stu-1", from, to).Return([]attendance.Record{
			{AttendanceDate: from, Status: attendance.StatusPresent},
			{AttendanceDate: to, Status: attendance.StatusAbsent},
		}, nil)

		resp, err := deps.service.GetMine(ctx, schoolID, "stu-1", "2026-03-01", "2026-03-05")

		assert.NoError(t, err)
		assert.Len(t, resp.Records, 2)
		assert.Equal(t, "2026-03-05", resp.Records[1].Date)
		assert.Equal(t, 1, resp.Counts.Absent)
	})
}

func TestAttendanceService_CountStaffAbsences(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().CountStatus(ctx, "school-1", attendance.SubjectStaff, "staff-1", attendance.StatusAbsent, from, to).Return(2, nil)

	n, err := deps.service.CountStaffAbsences(ctx, "school-1", "staff-1", from, to)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAttendanceService_TodayFollowsSchoolTimezone(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()

	ctrl := gomock.NewController(t)
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := attendanceMock.NewMockRepository(ctrl)

	// 23:30 UTC on the 10th is 06:30 on the 11th for a UTC+7 school.
	svc := attendance.NewService(db, repo, time.FixedZone("WIB", 7*60*60))
	attendance.SetClock(svc, func() time.Time { return time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC) })

	localDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().StaffRoster(ctx, schoolID).Return(roster("a"), nil)
	repo.EXPECT().
		FindStatuses(ctx, schoolID, attendance.SubjectStaff, []string{"a"}, localDay).
		Return(map[string]string{}, nil)

	resp, err := svc.GetStaffAttendance(ctx, schoolID, "")
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-11", resp.Date)

	_, err = svc.MarkStaff(ctx, schoolID, attendance.Actor{}, attendance.BulkStaffAttendanceRequest{Date: "2026-03-12"})
	assert.ErrorIs(t, err, attendanceerrors.ErrFutureDate)
}

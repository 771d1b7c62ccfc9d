package student_test

import (
	"context"
	"database/sql"
	"testing"

	"go-school/internal/shared/counter"
	counterMock "go-school/internal/shared/counter/mock"
	"go-school/internal/student"
	studenterrors "go-school/internal/student/errors"
	studentMock "go-school/internal/student/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service student.Service
	repo    *studentMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := studentMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: student.NewService(db, repo, counterRepo),
		repo:    repo,
		counter: counterRepo,
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

func TestStudentService_Create(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	classID := uuid.New().String()

	t.Run("success numbers admission", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(true, nil)
		deps.counter.EXPECT().GetNextValue(ctx, schoolID, counter.TypeStudent).Return(int64(42), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *student.Student) error {
			assert.Equal(t, "ADM-000042", s.AdmissionNo)
			assert.Equal(t, student.StatusActive, s.Status)
			return nil
		})

		resp, err := deps.service.Create(ctx, schoolID, student.CreateStudentRequest{
			FullName: "Ani", ClassID: classID, DateOfBirth: "2014-03-09", GuardianName: "Budi",
		})

		assert.NoError(t, err)
		assert.Equal(t, "ADM-000042", resp.AdmissionNo)
		assert.Equal(t, "2014-03-09", resp.DateOfBirth)
		assert.Equal(t, classID, resp.ClassID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("bad birth date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, schoolID, student.CreateStudentRequest{FullName: "Ani", DateOfBirth: "09-03-2014"})
		assert.ErrorIs(t, err, studenterrors.ErrInvalidDateOfBirth)
	})

	t.Run("class from another school", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ClassExists(ctx, schoolID, classID).Return(false, nil)

		_, err := deps.service.Create(ctx, schoolID, student.CreateStudentRequest{FullName: "Ani", ClassID: classID})
		assert.ErrorIs(t, err, studenterrors.ErrClassNotFound)
	})

	t.Run("admission number collision", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().GetNextValue(ctx, schoolID, counter.TypeStudent).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_students_school_admission_no"})

		_, err := deps.service.Create(ctx, schoolID, student.CreateStudentRequest{FullName: "Ani"})
		assert.ErrorIs(t, err, studenterrors.ErrAdmissionNoExists)
	})
}

func TestStudentService_GetAll_Roster(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	classID := uuid.New()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	filter := student.StudentFilter{ClassID: classID.String()}
	deps.repo.EXPECT().FindAll(ctx, schoolID, filter).Return([]student.Student{
		{ID: uuid.New(), FullName: "Ani", ClassID: &classID, ClassName: "VII A"},
		{ID: uuid.New(), FullName: "Budi", ClassID: &classID, ClassName: "VII A"},
	}, nil)

	resp, err := deps.service.GetAll(ctx, schoolID, filter)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "VII A", resp[0].ClassName)
}

func TestStudentService_Update_GraduationDisablesLogin(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New()
	deps := setupServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, true)

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDAndSchool(ctx, schoolID, id.String()).Return(&student.Student{ID: id, Status: student.StatusActive}, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	deps.repo.EXPECT().DeactivateAccount(ctx, schoolID, id.String()).Return(nil)

	resp, err := deps.service.Update(ctx, schoolID, id.String(), student.UpdateStudentRequest{FullName: "Ani", Status: student.StatusGraduated})

	assert.NoError(t, err)
	assert.Equal(t, student.StatusGraduated, resp.Status)
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New().String()
	deps := setupServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, false)

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Delete(ctx, schoolID, id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, deps.service.Delete(ctx, schoolID, id), studenterrors.ErrStudentNotFound)
}

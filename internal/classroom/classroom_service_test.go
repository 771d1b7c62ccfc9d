package classroom_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-school/internal/classroom"
	classroomerrors "go-school/internal/classroom/errors"
	classroomMock "go-school/internal/classroom/mock"

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
	service   classroom.Service
	repo      *classroomMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := classroomMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   classroom.NewService(db, repo, rdb),
		repo:      repo,
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

func TestClassroomService_Create(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	teacherID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().StaffExists(ctx, schoolID, teacherID).Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *classroom.Classroom) error {
			assert.Equal(t, "VII", c.Name)
			assert.Equal(t, "A", c.Section)
			return nil
		})
		deps.redismock.ExpectDel(classroom.GetClassAllKey(schoolID)).SetVal(1)

		resp, err := deps.service.Create(ctx, schoolID, classroom.CreateClassRequest{
			Name: " VII ", Section: "A", AcademicYear: "2026/2027", ClassTeacherID: teacherID,
		})

		assert.NoError(t, err)
		assert.Equal(t, teacherID, resp.ClassTeacherID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown class teacher", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().StaffExists(ctx, schoolID, teacherID).Return(false, nil)

		_, err := deps.service.Create(ctx, schoolID, classroom.CreateClassRequest{Name: "VII", ClassTeacherID: teacherID})
		assert.ErrorIs(t, err, classroomerrors.ErrClassTeacherNotFound)
	})

	t.Run("duplicate name and section", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_classes_name_section"})

		_, err := deps.service.Create(ctx, schoolID, classroom.CreateClassRequest{Name: "VII", Section: "A"})
		assert.ErrorIs(t, err, classroomerrors.ErrClassAlreadyExists)
	})
}

func TestClassroomService_GetAll(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	cacheKey := classroom.GetClassAllKey(schoolID)

	t.Run("Hit Cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(cacheKey).SetVal(`[{"id":"c-1","name":"VII","section":"A"}]`)

		resp, err := deps.service.GetAll(ctx, schoolID)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "VII", resp[0].Name)
	})

	t.Run("Miss Cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rows := []classroom.Classroom{{ID: uuid.New(), Name: "VIII", StudentCount: 31}}
		payload, _ := json.Marshal([]classroom.ClassResponse{{
			ID: rows[0].ID.String(), SchoolID: uuid.Nil.String(), Name: "VIII", StudentCount: 31,
		}})

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllBySchool(ctx, schoolID).Return(rows, nil)
		deps.redismock.ExpectSet(cacheKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, schoolID)
		assert.NoError(t, err)
		assert.Equal(t, int64(31), resp[0].StudentCount)
	})

	t.Run("Database Error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllBySchool(ctx, schoolID).Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx, schoolID)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestClassroomService_Update(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New()
	deps := setupServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, true)

	oldTeacher := uuid.New()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDAndSchool(ctx, schoolID, id.String()).
		Return(&classroom.Classroom{ID: id, Name: "VII", ClassTeacherID: &oldTeacher}, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	deps.redismock.ExpectDel(classroom.GetClassAllKey(schoolID)).SetVal(1)

	resp, err := deps.service.Update(ctx, schoolID, id.String(), classroom.UpdateClassRequest{Name: "VII", Section: "B"})

	assert.NoError(t, err)
	assert.Equal(t, "B", resp.Section)
	assert.Empty(t, resp.ClassTeacherID)
}

func TestClassroomService_Delete(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	id := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, schoolID, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, schoolID, id), classroomerrors.ErrClassNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		assert.ErrorIs(t, deps.service.Delete(ctx, schoolID, "x"), classroomerrors.ErrInvalidClassID)
	})
}

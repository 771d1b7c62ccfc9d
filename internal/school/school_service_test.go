package school_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-school/internal/auth"
	autherrors "go-school/internal/auth/errors"
	authMock "go-school/internal/auth/mock"
	"go-school/internal/domain"
	rbacMock "go-school/internal/rbac/mock"
	"go-school/internal/school"
	schoolerrors "go-school/internal/school/errors"
	schoolMock "go-school/internal/school/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  school.Service
	repo     *schoolMock.MockRepository
	userRepo *authMock.MockRepository
	rbac     *rbacMock.MockService
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := schoolMock.NewMockRepository(ctrl)
	userRepo := authMock.NewMockRepository(ctrl)
	rbacSvc := rbacMock.NewMockService(ctrl)

	svc := school.NewService(db, repo, userRepo, rbacSvc)
	school.SetCodeGenerator(svc, func() (string, error) { return "AB12CD34", nil })

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		userRepo: userRepo,
		rbac:     rbacSvc,
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

func registerRequest() school.RegisterSchoolRequest {
	return school.RegisterSchoolRequest{
		Name:          "SD Harapan",
		AcademicYear:  "2026/2027",
		PrincipalName: "Pak Budi",
		Username:      "Kepsek.Budi",
		Password:      "rahasia123",
	}
}

func TestSchoolService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		var created *school.School
		var principal *auth.User

		deps.userRepo.EXPECT().UsernameExists(ctx, "kepsek.budi").Return(false, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().JoinCodeExists(ctx, "AB12CD34").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *school.School) error {
			created = s
			return nil
		})
		deps.rbac.EXPECT().SeedDefaultRoles(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.userRepo.EXPECT().WithTx(gomock.Any()).Return(deps.userRepo)
		deps.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			principal = u
			return nil
		})
		deps.rbac.EXPECT().AssignRole(ctx, gomock.Any(), gomock.Any(), gomock.Any(), domain.RolePrincipal).Return(nil)

		resp, err := deps.service.Register(ctx, registerRequest())

		assert.NoError(t, err)
		assert.Equal(t, "AB12CD34", resp.School.JoinCode)
		assert.Equal(t, created.ID.String(), resp.School.ID)
		assert.Equal(t, created.ID, principal.SchoolID)
		assert.Equal(t, domain.RolePrincipal, principal.Role)
		assert.Equal(t, "kepsek.budi", resp.Principal.Username)
		assert.NotEqual(t, "rahasia123", principal.Password)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.userRepo.EXPECT().UsernameExists(ctx, "kepsek.budi").Return(true, nil)

		_, err := deps.service.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	})

	t.Run("InvalidUsername", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := registerRequest()
		req.Username = "kepsek budi!"

		_, err := deps.service.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrInvalidUsername)
	})

	t.Run("SeedFailureRollsBack", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.userRepo.EXPECT().UsernameExists(ctx, gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().JoinCodeExists(ctx, gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.rbac.EXPECT().SeedDefaultRoles(ctx, gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Register(ctx, registerRequest())
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("JoinCodeExhausted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.userRepo.EXPECT().UsernameExists(ctx, gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().JoinCodeExists(ctx, "AB12CD34").Return(true, nil).Times(5)

		_, err := deps.service.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, schoolerrors.ErrJoinCodeExhausted)
	})
}

func TestSchoolService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().GetByID(ctx, id).Return(&school.School{ID: id, Name: "SD Harapan", JoinCode: "AB12CD34"}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "SD Harapan", resp.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, schoolerrors.ErrSchoolNotFound)
	})

	t.Run("InvalidID", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "bukan-uuid")
		assert.ErrorIs(t, err, schoolerrors.ErrInvalidSchoolID)
	})
}

func TestSchoolService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	address := "Jl. Merdeka 1"
	deps.repo.EXPECT().GetByID(ctx, id).Return(&school.School{ID: id, Name: "SD Lama", Phone: "021"}, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.Update(ctx, id.String(), school.UpdateSchoolRequest{Name: " SD Baru ", Address: &address})

	assert.NoError(t, err)
	assert.Equal(t, "SD Baru", resp.Name)
	assert.Equal(t, address, resp.Address)
	assert.Equal(t, "021", resp.Phone)
}

func TestSchoolService_RotateJoinCode(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	deps := setupServiceTest(t)
	defer deps.db.Close()
	expectTx(t, deps.sqlMock, true)

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().GetByID(ctx, id).Return(&school.School{ID: id, JoinCode: "OLDCODE1"}, nil)
	deps.repo.EXPECT().JoinCodeExists(ctx, "AB12CD34").Return(false, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.RotateJoinCode(ctx, id.String())

	assert.NoError(t, err)
	assert.Equal(t, "AB12CD34", resp.JoinCode)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerateJoinCode(t *testing.T) {
	code, err := school.GenerateJoinCode()
	assert.NoError(t, err)
	assert.Len(t, code, school.JoinCodeLength)
	assert.Regexp(t, "^[A-Z0-9]{8}$", code)
}

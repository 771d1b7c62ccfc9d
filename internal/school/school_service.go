package school

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-school/internal/auth"
	autherrors "go-school/internal/auth/errors"
	"go-school/internal/domain"
	"go-school/internal/rbac"
	schoolerrors "go-school/internal/school/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxJoinCodeAttempts = 5

//go:generate mockgen -source=school_service.go -destination=mock/school_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterSchoolRequest) (RegisterSchoolResponse, error)
	GetByID(ctx context.Context, id string) (*SchoolResponse, error)
	Update(ctx context.Context, id string, req UpdateSchoolRequest) (*SchoolResponse, error)
	RotateJoinCode(ctx context.Context, id string) (*SchoolResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	userRepo auth.Repository
	rbac     rbac.Service
	newCode  func() (string, error)
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, userRepo auth.Repository, rbacService rbac.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("school.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("school.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
		rbac:     rbacService,
		newCode:  GenerateJoinCode,
		logger:   l,
	}
}

// Register creates the school, its roles and the principal account in one transaction.
func (s *service) Register(ctx context.Context, req RegisterSchoolRequest) (RegisterSchoolResponse, error) {
	username := auth.NormalizeUsername(req.Username)
	if !auth.ValidUsername(username) {
		return RegisterSchoolResponse{}, autherrors.ErrInvalidUsername
	}

	exists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return RegisterSchoolResponse{}, err
	}
	if exists {
		return RegisterSchoolResponse{}, autherrors.ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return RegisterSchoolResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RegisterSchoolResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	joinCode, err := s.allocateJoinCode(ctx, qtx)
	if err != nil {
		return RegisterSchoolResponse{}, err
	}

	school := &School{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		AcademicYear: req.AcademicYear,
		JoinCode:     joinCode,
	}
	if err := qtx.Create(ctx, school); err != nil {
		s.logger.Error("register school persist failed", zap.Error(err))
		return RegisterSchoolResponse{}, err
	}

	schoolID := school.ID.String()
	if err := s.rbac.SeedDefaultRoles(ctx, tx, schoolID); err != nil {
		s.logger.Error("register school seed roles failed", zap.String("school_id", schoolID), zap.Error(err))
		return RegisterSchoolResponse{}, err
	}

	principal := &auth.User{
		ID:       uuid.New(),
		SchoolID: school.ID,
		Username: username,
		Name:     strings.TrimSpace(req.PrincipalName),
		Password: hashed,
		Role:     domain.RolePrincipal,
		IsActive: true,
	}
	if err := s.userRepo.WithTx(tx).Create(ctx, principal); err != nil {
		return RegisterSchoolResponse{}, auth.MapRepositoryError(err)
	}

	if err := s.rbac.AssignRole(ctx, tx, schoolID, principal.ID.String(), domain.RolePrincipal); err != nil {
		return RegisterSchoolResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RegisterSchoolResponse{}, err
	}

	s.logger.Info("school registered",
		zap.String("school_id", schoolID),
		zap.String("principal_id", principal.ID.String()),
	)

	return RegisterSchoolResponse{
		School: mapToResponse(school),
		Principal: auth.AuthResponse{
			ID:       principal.ID.String(),
			SchoolID: schoolID,
			Username: principal.Username,
			Name:     principal.Name,
			Role:     principal.Role,
		},
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*SchoolResponse, error) {
	school, err := s.find(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(school)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSchoolRequest) (*SchoolResponse, error) {
	school, err := s.find(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		school.Name = name
	}
	if req.Address != nil {
		school.Address = *req.Address
	}
	if req.Phone != nil {
		school.Phone = *req.Phone
	}
	if req.Email != nil {
		school.Email = *req.Email
	}
	if req.AcademicYear != nil {
		school.AcademicYear = *req.AcademicYear
	}

	if err := s.repo.Update(ctx, school); err != nil {
		return nil, err
	}

	resp := mapToResponse(school)
	return &resp, nil
}

// RotateJoinCode invalidates the old code; accounts already registered are unaffected.
func (s *service) RotateJoinCode(ctx context.Context, id string) (*SchoolResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	school, err := s.find(ctx, qtx, id)
	if err != nil {
		return nil, err
	}

	code, err := s.allocateJoinCode(ctx, qtx)
	if err != nil {
		return nil, err
	}
	school.JoinCode = code

	if err := qtx.Update(ctx, school); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("join code rotated", zap.String("school_id", id))

	resp := mapToResponse(school)
	return &resp, nil
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*School, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, schoolerrors.ErrInvalidSchoolID
	}

	school, err := repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schoolerrors.ErrSchoolNotFound
		}
		return nil, err
	}
	return school, nil
}

func (s *service) allocateJoinCode(ctx context.Context, repo Repository) (string, error) {
	for i := 0; i < maxJoinCodeAttempts; i++ {
		code, err := s.newCode()
		if err != nil {
			return "", err
		}
		taken, err := repo.JoinCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", schoolerrors.ErrJoinCodeExhausted
}

func mapToResponse(s *School) SchoolResponse {
	return SchoolResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Address:      s.Address,
		Phone:        s.Phone,
		Email:        s.Email,
		AcademicYear: s.AcademicYear,
		JoinCode:     s.JoinCode,
	}
}

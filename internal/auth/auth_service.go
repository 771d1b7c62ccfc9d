package auth

import (
	"context"
	"database/sql"
	"strings"
	"time"

	autherrors "go-school/internal/auth/errors"
	"go-school/internal/domain"
	"go-school/internal/rbac"
	"go-school/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	UsernameAvailable(ctx context.Context, username string) (UsernameAvailabilityResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	rbac      rbac.Service
	jwtSecret []byte
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rbacService rbac.Service, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		rbac:      rbacService,
		jwtSecret: []byte(jwtSecret),
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !CheckPassword(user.Password, password) {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	accessToken, refreshToken, err := s.issueTokens(user)
	if err != nil {
		s.logger.Error("login token generation failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", user.ID.String()),
		zap.String("school_id", user.SchoolID.String()),
	)

	return accessToken, refreshToken, mapToResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != tokenTypeRefresh {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	newAccessToken, newRefreshToken, err := s.issueTokens(user)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	username := NormalizeUsername(req.Username)
	if !ValidUsername(username) {
		return AuthResponse{}, autherrors.ErrInvalidUsername
	}

	schoolID, err := s.repo.FindSchoolIDByJoinCode(ctx, strings.ToUpper(strings.TrimSpace(req.JoinCode)))
	if err != nil {
		return AuthResponse{}, err
	}
	if schoolID == "" {
		return AuthResponse{}, autherrors.ErrInvalidJoinCode
	}

	user := &User{
		ID:       uuid.New(),
		SchoolID: uuid.MustParse(schoolID),
		Username: username,
		Name:     strings.TrimSpace(req.Name),
		Role:     req.Role,
		IsActive: true,
	}

	switch req.Role {
	case domain.RoleTeacher:
		staffID, err := s.resolveStaff(ctx, schoolID, req.StaffNo)
		if err != nil {
			return AuthResponse{}, err
		}
		user.StaffID = &staffID
	case domain.RoleStudent:
		studentID, err := s.resolveStudent(ctx, schoolID, req.AdmissionNo)
		if err != nil {
			return AuthResponse{}, err
		}
		user.StudentID = &studentID
	default:
		return AuthResponse{}, autherrors.ErrInvalidRegisterRole
	}

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return AuthResponse{}, err
	}
	if exists {
		return AuthResponse{}, autherrors.ErrUsernameTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return AuthResponse{}, err
	}
	user.Password = hashed

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		return AuthResponse{}, MapRepositoryError(err)
	}

	if err := s.rbac.AssignRole(ctx, tx, schoolID, user.ID.String(), req.Role); err != nil {
		s.logger.Error("register assign role failed", zap.String("school_id", schoolID), zap.Error(err))
		return AuthResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("user_id", user.ID.String()),
		zap.String("school_id", schoolID),
		zap.String("role", req.Role),
	)

	return mapToResponse(user), nil
}

func (s *service) UsernameAvailable(ctx context.Context, username string) (UsernameAvailabilityResponse, error) {
	normalized := NormalizeUsername(username)
	if !ValidUsername(normalized) {
		return UsernameAvailabilityResponse{}, autherrors.ErrInvalidUsername
	}

	exists, err := s.repo.UsernameExists(ctx, normalized)
	if err != nil {
		return UsernameAvailabilityResponse{}, err
	}

	return UsernameAvailabilityResponse{Username: normalized, Available: !exists}, nil
}

func (s *service) resolveStaff(ctx context.Context, schoolID, staffNo string) (uuid.UUID, error) {
	staffNo = strings.TrimSpace(staffNo)
	if staffNo == "" {
		return uuid.Nil, autherrors.ErrLinkedRecordNotFound
	}

	rec, err := s.repo.FindStaffByNumber(ctx, schoolID, staffNo)
	if err != nil {
		return uuid.Nil, err
	}
	// inactive or non-teaching staff cannot hold a TEACHER account
	if !rec.CanLinkTeacher() {
		return uuid.Nil, autherrors.ErrLinkedRecordNotFound
	}
	staffID := rec.ID

	linked, err := s.repo.StaffHasAccount(ctx, staffID)
	if err != nil {
		return uuid.Nil, err
	}
	if linked {
		return uuid.Nil, autherrors.ErrRecordAlreadyLinked
	}

	return uuid.MustParse(staffID), nil
}

func (s *service) resolveStudent(ctx context.Context, schoolID, admissionNo string) (uuid.UUID, error) {
	admissionNo = strings.TrimSpace(admissionNo)
	if admissionNo == "" {
		return uuid.Nil, autherrors.ErrLinkedRecordNotFound
	}

	rec, err := s.repo.FindStudentByAdmissionNo(ctx, schoolID, admissionNo)
	if err != nil {
		return uuid.Nil, err
	}
	if !rec.CanLinkStudent() {
		return uuid.Nil, autherrors.ErrLinkedRecordNotFound
	}
	studentID := rec.ID

	linked, err := s.repo.StudentHasAccount(ctx, studentID)
	if err != nil {
		return uuid.Nil, err
	}
	if linked {
		return uuid.Nil, autherrors.ErrRecordAlreadyLinked
	}

	return uuid.MustParse(studentID), nil
}

func (s *service) issueTokens(user *User) (string, string, error) {
	access, err := s.generateToken(user, tokenTypeAccess, AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.generateToken(user, tokenTypeRefresh, RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *service) generateToken(user *User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    user.ID.String(),
		"school_id":  user.SchoolID.String(),
		"role":       user.Role,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	if user.StaffID != nil {
		claims["staff_id"] = user.StaffID.String()
	}
	if user.StudentID != nil {
		claims["student_id"] = user.StudentID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func mapToResponse(u *User) AuthResponse {
	resp := AuthResponse{
		ID:       u.ID.String(),
		SchoolID: u.SchoolID.String(),
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
	if u.StaffID != nil {
		resp.StaffID = u.StaffID.String()
	}
	if u.StudentID != nil {
		resp.StudentID = u.StudentID.String()
	}
	return resp
}

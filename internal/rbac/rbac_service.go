package rbac

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"go-school/internal/domain"
	rbacerrors "go-school/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadSchoolPolicy(ctx context.Context, schoolID string) error
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	ListRoles(ctx context.Context, schoolID string) ([]domain.RoleResponse, error)
	ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error)

	// Both run inside the caller's transaction.
	SeedDefaultRoles(ctx context.Context, tx *sql.Tx, schoolID string) error
	AssignRole(ctx context.Context, tx *sql.Tx, schoolID, userID, roleName string) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadSchoolPolicy(ctx context.Context, schoolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadSchoolPolicyUnlocked(ctx, schoolID)
}

// loadSchoolPolicyUnlocked replaces the in-memory policy with the one of schoolID.
func (s *service) loadSchoolPolicyUnlocked(ctx context.Context, schoolID string) error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles(ctx, schoolID)
	if err != nil {
		return err
	}

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, schoolID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, schoolID)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, schoolID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("school_id", schoolID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadSchoolPolicyUnlocked(ctx, req.SchoolID); err != nil {
		s.logger.Error("rbac load policy failed", zap.String("school_id", req.SchoolID), zap.Error(err))
		return false, rbacerrors.ErrPolicyLoadFailed
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.SchoolID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("school_id", req.SchoolID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context, schoolID string) ([]domain.RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		perms, err := s.repo.GetPermissionsByRoleID(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		keys := make([]string, len(perms))
		for i, p := range perms {
			keys[i] = p.Resource + ":" + p.Action
		}
		res = append(res, domain.RoleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: keys,
		})
	}
	return res, nil
}

func (s *service) ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PermissionResponse, len(perms))
	for i, p := range perms {
		res[i] = domain.PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	return res, nil
}

func (s *service) SeedDefaultRoles(ctx context.Context, tx *sql.Tx, schoolID string) error {
	qtx := s.repo.WithTx(tx)

	perms, err := qtx.ListPermissions(ctx)
	if err != nil {
		return err
	}

	for _, def := range defaultRoles {
		role := &RoleRow{
			SchoolID:    schoolID,
			Name:        def.Name,
			Description: def.Description,
		}
		if err := qtx.CreateRole(ctx, role); err != nil {
			return err
		}
		if err := qtx.AddRolePermissions(ctx, role.ID, resolveGrants(def.Grants, perms)); err != nil {
			return err
		}
	}

	s.logger.Info("default roles seeded", zap.String("school_id", schoolID), zap.Int("roles", len(defaultRoles)))
	return nil
}

func (s *service) AssignRole(ctx context.Context, tx *sql.Tx, schoolID, userID, roleName string) error {
	qtx := s.repo.WithTx(tx)

	role, err := qtx.GetRoleByName(ctx, schoolID, roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rbacerrors.ErrRoleNotFound
		}
		return err
	}

	return qtx.AssignUserRole(ctx, userID, role.ID)
}

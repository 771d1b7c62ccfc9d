package rbac

import (
	"context"
	"database/sql"
	"testing"

	"go-school/internal/domain"
	"go-school/internal/rbac/infra"
	rbacerrors "go-school/internal/rbac/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// =========================================
// Fake Repository
// =========================================

type fakeRepo struct {
	Repository
	roles       map[string]*RoleRow
	permissions []PermissionRow
	granted     map[string][]string
	assigned    map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		roles:    map[string]*RoleRow{},
		granted:  map[string][]string{},
		assigned: map[string]string{},
		permissions: []PermissionRow{
			{ID: "p-1", Resource: "staff", Action: "read"},
			{ID: "p-2", Resource: "salary", Action: "manage"},
			{ID: "p-3", Resource: "attendance", Action: "self_read"},
		},
	}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) GetUserRoles(ctx context.Context, schoolID string) ([]UserRoleRow, error) {
	if schoolID != "school-1" {
		return nil, nil
	}
	return []UserRoleRow{{UserID: "user-1", RoleID: "role-clerk"}}, nil
}

func (f *fakeRepo) GetRolePermissions(ctx context.Context, schoolID string) ([]RolePermissionRow, error) {
	if schoolID != "school-1" {
		return nil, nil
	}
	return []RolePermissionRow{{RoleID: "role-clerk", Resource: "staff", Action: "read"}}, nil
}

func (f *fakeRepo) ListPermissions(ctx context.Context) ([]PermissionRow, error) {
	return f.permissions, nil
}

func (f *fakeRepo) CreateRole(ctx context.Context, role *RoleRow) error {
	role.ID = "role-" + role.Name
	f.roles[role.Name] = role
	return nil
}

func (f *fakeRepo) AddRolePermissions(ctx context.Context, roleID string, permIDs []string) error {
	f.granted[roleID] = permIDs
	return nil
}

func (f *fakeRepo) GetRoleByName(ctx context.Context, schoolID, name string) (*RoleRow, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (f *fakeRepo) AssignUserRole(ctx context.Context, userID, roleID string) error {
	f.assigned[userID] = roleID
	return nil
}

func newTestEnforcerService(t *testing.T, repo Repository) Service {
	t.Helper()
	e, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return NewService(repo, e)
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestEnforcerService(t, newFakeRepo())
	ctx := context.Background()

	allowed, err := svc.Enforce(ctx, domain.EnforceRequest{
		UserID: "user-1", SchoolID: "school-1", Resource: "staff", Action: "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(ctx, domain.EnforceRequest{
		UserID: "user-1", SchoolID: "school-1", Resource: "salary", Action: "manage",
	})
	assert.NoError(t, err)
	assert.False(t, denied)

	// same user id in another school has no grants there
	otherSchool, err := svc.Enforce(ctx, domain.EnforceRequest{
		UserID: "user-1", SchoolID: "school-2", Resource: "staff", Action: "read",
	})
	assert.NoError(t, err)
	assert.False(t, otherSchool)
}

func TestRBACService_SeedDefaultRoles(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestEnforcerService(t, repo)

	err := svc.SeedDefaultRoles(context.Background(), nil, "school-1")
	assert.NoError(t, err)

	assert.Len(t, repo.roles, 4)
	assert.ElementsMatch(t, []string{"p-1", "p-2", "p-3"}, repo.granted["role-"+domain.RolePrincipal])
	assert.ElementsMatch(t, []string{"p-1", "p-2"}, repo.granted["role-"+domain.RoleClerk])
	assert.ElementsMatch(t, []string{"p-3"}, repo.granted["role-"+domain.RoleStudent])
}

func TestRBACService_AssignRole(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestEnforcerService(t, repo)
	ctx := context.Background()

	err := svc.AssignRole(ctx, nil, "school-1", "user-9", domain.RoleTeacher)
	assert.ErrorIs(t, err, rbacerrors.ErrRoleNotFound)

	assert.NoError(t, svc.SeedDefaultRoles(ctx, nil, "school-1"))
	assert.NoError(t, svc.AssignRole(ctx, nil, "school-1", "user-9", domain.RoleTeacher))
	assert.Equal(t, "role-"+domain.RoleTeacher, repo.assigned["user-9"])
}

func TestResolveGrants(t *testing.T) {
	perms := []PermissionRow{
		{ID: "a", Resource: "staff", Action: "read"},
		{ID: "b", Resource: "fee", Action: "manage"},
	}

	assert.Equal(t, []string{"b"}, resolveGrants([]string{"fee:manage", "unknown:thing"}, perms))
	assert.Equal(t, []string{"a", "b"}, resolveGrants([]string{allPermissions}, perms))
}

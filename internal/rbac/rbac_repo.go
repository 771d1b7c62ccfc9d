package rbac

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetUserRoles(ctx context.Context, schoolID string) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context, schoolID string) ([]RolePermissionRow, error)

	ListRoles(ctx context.Context, schoolID string) ([]RoleRow, error)
	GetRoleByName(ctx context.Context, schoolID, name string) (*RoleRow, error)
	CreateRole(ctx context.Context, role *RoleRow) error
	ListPermissions(ctx context.Context) ([]PermissionRow, error)
	GetPermissionsByRoleID(ctx context.Context, roleID string) ([]PermissionRow, error)
	AddRolePermissions(ctx context.Context, roleID string, permIDs []string) error
	AssignUserRole(ctx context.Context, userID, roleID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.WithSQLTx(r.db, tx)}
}

func (r *repository) GetUserRoles(ctx context.Context, schoolID string) ([]UserRoleRow, error) {
	var result []UserRoleRow

	err := r.db.WithContext(ctx).
		Table("user_roles").
		Select("user_roles.user_id, user_roles.role_id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Joins("JOIN users ON users.id = user_roles.user_id").
		Where("roles.school_id = ?", schoolID).
		Where("users.is_active = TRUE AND users.deleted_at IS NULL").
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context, schoolID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.school_id = ?", schoolID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(ctx context.Context, schoolID string) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("name").
		Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByName(ctx context.Context, schoolID, name string) (*RoleRow, error) {
	var result RoleRow
	err := r.db.WithContext(ctx).
		Where("school_id = ? AND name = ?", schoolID, name).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *RoleRow) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) ListPermissions(ctx context.Context) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.WithContext(ctx).Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Scan(&result).Error
	return result, err
}

func (r *repository) AddRolePermissions(ctx context.Context, roleID string, permIDs []string) error {
	for _, pID := range permIDs {
		err := r.db.WithContext(ctx).
			Exec("INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?) ON CONFLICT DO NOTHING", roleID, pID).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) AssignUserRole(ctx context.Context, userID, roleID string) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING", userID, roleID).Error
}

package staff

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, staff *Staff) error
	FindAllBySchool(ctx context.Context, schoolID string, filter StaffFilter) ([]Staff, error)
	FindOptionsBySchool(ctx context.Context, schoolID string) ([]Staff, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Staff, error)
	Update(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, schoolID, id string) error
	DeactivateAccount(ctx context.Context, schoolID, staffID string) error
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

func (r *repository) withAccount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Staff{}).
		Select("staff.*, users.id AS user_id, users.username AS username").
		Joins("LEFT JOIN users ON users.staff_id = staff.id AND users.deleted_at IS NULL")
}

func (r *repository) Create(ctx context.Context, staff *Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string, filter StaffFilter) ([]Staff, error) {
	var staff []Staff
	q := r.withAccount(ctx).Where("staff.school_id = ?", schoolID)
	if filter.Status != "" {
		q = q.Where("staff.status = ?", filter.Status)
	}
	if filter.StaffType != "" {
		q = q.Where("staff.staff_type = ?", filter.StaffType)
	}
	err := q.Order("staff.staff_no ASC").Find(&staff).Error
	return staff, err
}

func (r *repository) FindOptionsBySchool(ctx context.Context, schoolID string) ([]Staff, error) {
	var staff []Staff
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Select("id", "staff_no", "full_name").
		Where("status = ?", StatusActive).
		Order("full_name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Staff, error) {
	var staff Staff
	err := r.withAccount(ctx).
		Where("staff.school_id = ?", schoolID).
		Where("staff.id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *repository) Update(ctx context.Context, staff *Staff) error {
	return r.db.WithContext(ctx).
		Model(&Staff{}).
		Where("id = ? AND school_id = ?", staff.ID, staff.SchoolID).
		Updates(map[string]interface{}{
			"full_name":   staff.FullName,
			"email":       staff.Email,
			"phone":       staff.Phone,
			"designation": staff.Designation,
			"staff_type":  staff.StaffType,
			"join_date":   staff.JoinDate,
			"status":      staff.Status,
		}).Error
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&Staff{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeactivateAccount(ctx context.Context, schoolID, staffID string) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("school_id = ? AND staff_id = ?", schoolID, staffID).
		Update("is_active", false).Error
}

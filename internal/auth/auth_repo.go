package auth

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	FindSchoolIDByJoinCode(ctx context.Context, joinCode string) (string, error)
	FindStaffByNumber(ctx context.Context, schoolID, staffNo string) (LinkedRecord, error)
	FindStudentByAdmissionNo(ctx context.Context, schoolID, admissionNo string) (LinkedRecord, error)
	StaffHasAccount(ctx context.Context, staffID string) (bool, error)
	StudentHasAccount(ctx context.Context, studentID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("LOWER(username) = ?", NormalizeUsername(username)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("LOWER(username) = ?", NormalizeUsername(username)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindSchoolIDByJoinCode(ctx context.Context, joinCode string) (string, error) {
	var schoolID string
	err := r.db.WithContext(ctx).
		Table("schools").
		Select("id").
		Where("join_code = ?", joinCode).
		Where("deleted_at IS NULL").
		Scan(&schoolID).Error
	return schoolID, err
}

func (r *repository) FindStaffByNumber(ctx context.Context, schoolID, staffNo string) (LinkedRecord, error) {
	var rec LinkedRecord
	err := r.db.WithContext(ctx).
		Table("staff").
		Select("id, status, staff_type").
		Where("school_id = ? AND staff_no = ?", schoolID, staffNo).
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(&rec).Error
	return rec, err
}

func (r *repository) FindStudentByAdmissionNo(ctx context.Context, schoolID, admissionNo string) (LinkedRecord, error) {
	var rec LinkedRecord
	err := r.db.WithContext(ctx).
		Table("students").
		Select("id, status").
		Where("school_id = ? AND admission_no = ?", schoolID, admissionNo).
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(&rec).Error
	return rec, err
}

func (r *repository) StaffHasAccount(ctx context.Context, staffID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("staff_id = ?", staffID).Count(&count).Error
	return count > 0, err
}

func (r *repository) StudentHasAccount(ctx context.Context, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}

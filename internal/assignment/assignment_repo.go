package assignment

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *TeacherAssignment) error
	FindAll(ctx context.Context, schoolID string, filter AssignmentFilter) ([]TeacherAssignment, error)
	Delete(ctx context.Context, schoolID, id string) error
	StaffActive(ctx context.Context, schoolID, staffID string) (bool, error)
	ClassExists(ctx context.Context, schoolID, classID string) (bool, error)
	SubjectAvailableInClass(ctx context.Context, schoolID, subjectID, classID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, a *TeacherAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, schoolID string, filter AssignmentFilter) ([]TeacherAssignment, error) {
	var rows []TeacherAssignment
	q := r.db.WithContext(ctx).
		Model(&TeacherAssignment{}).
		Select(`teacher_assignments.*,
			staff.full_name AS staff_name,
			classes.name AS class_name,
			classes.section AS class_section,
			subjects.name AS subject_name`).
		Joins("JOIN staff ON staff.id = teacher_assignments.staff_id").
		Joins("JOIN classes ON classes.id = teacher_assignments.class_id").
		Joins("JOIN subjects ON subjects.id = teacher_assignments.subject_id").
		Where("teacher_assignments.school_id = ?", schoolID)

	if filter.StaffID != "" {
		q = q.Where("teacher_assignments.staff_id = ?", filter.StaffID)
	}
	if filter.ClassID != "" {
		q = q.Where("teacher_assignments.class_id = ?", filter.ClassID)
	}

	err := q.Order("classes.name ASC, classes.section ASC, subjects.name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&TeacherAssignment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) StaffActive(ctx context.Context, schoolID, staffID string) (bool, error) {
	return r.exists(ctx, "staff", "id = ? AND school_id = ? AND status = 'active' AND deleted_at IS NULL", staffID, schoolID)
}

func (r *repository) ClassExists(ctx context.Context, schoolID, classID string) (bool, error) {
	return r.exists(ctx, "classes", "id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID)
}

func (r *repository) SubjectAvailableInClass(ctx context.Context, schoolID, subjectID, classID string) (bool, error) {
	return r.exists(ctx, "subjects",
		"id = ? AND school_id = ? AND (class_id IS NULL OR class_id = ?) AND deleted_at IS NULL",
		subjectID, schoolID, classID,
	)
}

func (r *repository) exists(ctx context.Context, table, cond string, args ...interface{}) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where(cond, args...).Count(&count).Error
	return count > 0, err
}

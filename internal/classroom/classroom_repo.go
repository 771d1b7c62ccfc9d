package classroom

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=classroom_repo.go -destination=mock/classroom_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, class *Classroom) error
	FindAllBySchool(ctx context.Context, schoolID string) ([]Classroom, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Classroom, error)
	StaffExists(ctx context.Context, schoolID, staffID string) (bool, error)
	Update(ctx context.Context, class *Classroom) error
	Delete(ctx context.Context, schoolID, id string) error
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

func (r *repository) Create(ctx context.Context, class *Classroom) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *repository) withStudentCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Classroom{}).
		Select(`classes.*, (
			SELECT COUNT(*) FROM students
			WHERE students.class_id = classes.id AND students.deleted_at IS NULL AND students.status = 'active'
		) AS student_count`)
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string) ([]Classroom, error) {
	var classes []Classroom
	err := r.withStudentCount(ctx).
		Where("classes.school_id = ?", schoolID).
		Order("classes.name ASC, classes.section ASC").
		Find(&classes).Error
	return classes, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Classroom, error) {
	var class Classroom
	err := r.withStudentCount(ctx).
		Where("classes.school_id = ?", schoolID).
		Where("classes.id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *repository) StaffExists(ctx context.Context, schoolID, staffID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("staff").
		Where("id = ? AND school_id = ?", staffID, schoolID).
		Where("status = 'active' AND deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, class *Classroom) error {
	return r.db.WithContext(ctx).
		Model(&Classroom{}).
		Scopes(tenant.Scope(class.SchoolID.String())).
		Where("id = ?", class.ID).
		Updates(map[string]interface{}{
			"name":             class.Name,
			"section":          class.Section,
			"academic_year":    class.AcademicYear,
			"class_teacher_id": class.ClassTeacherID,
		}).Error
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&Classroom{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

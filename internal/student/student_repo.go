package student

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=student_repo.go -destination=mock/student_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, student *Student) error
	FindAll(ctx context.Context, schoolID string, filter StudentFilter) ([]Student, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Student, error)
	ClassExists(ctx context.Context, schoolID, classID string) (bool, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, schoolID, id string) error
	DeactivateAccount(ctx context.Context, schoolID, studentID string) error
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

func (r *repository) withClass(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Student{}).
		Select("students.*, TRIM(CONCAT(classes.name, ' ', classes.section)) AS class_name").
		Joins("LEFT JOIN classes ON classes.id = students.class_id")
}

func (r *repository) Create(ctx context.Context, student *Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *repository) FindAll(ctx context.Context, schoolID string, filter StudentFilter) ([]Student, error) {
	var students []Student
	q := r.withClass(ctx).Where("students.school_id = ?", schoolID)
	if filter.ClassID != "" {
		q = q.Where("students.class_id = ?", filter.ClassID)
	}
	if filter.Status != "" {
		q = q.Where("students.status = ?", filter.Status)
	}
	err := q.Order("students.roll_no ASC, students.full_name ASC").Find(&students).Error
	return students, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Student, error) {
	var student Student
	err := r.withClass(ctx).
		Where("students.school_id = ? AND students.id = ?", schoolID, id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *repository) ClassExists(ctx context.Context, schoolID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, student *Student) error {
	return r.db.WithContext(ctx).
		Model(&Student{}).
		Scopes(tenant.Scope(student.SchoolID.String())).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"full_name":      student.FullName,
			"class_id":       student.ClassID,
			"roll_no":        student.RollNo,
			"gender":         student.Gender,
			"date_of_birth":  student.DateOfBirth,
			"guardian_name":  student.GuardianName,
			"guardian_phone": student.GuardianPhone,
			"address":        student.Address,
			"status":         student.Status,
		}).Error
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&Student{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeactivateAccount(ctx context.Context, schoolID, studentID string) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("school_id = ? AND student_id = ?", schoolID, studentID).
		Update("is_active", false).Error
}

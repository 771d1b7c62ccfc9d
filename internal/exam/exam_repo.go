package exam

import (
	"context"
	"database/sql"

	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=exam_repo.go -destination=mock/exam_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, exam *Exam) error
	FindAll(ctx context.Context, schoolID string, filter ExamFilter) ([]Exam, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Exam, error)
	Update(ctx context.Context, exam *Exam) error
	Delete(ctx context.Context, schoolID, id string) error
	ClassExists(ctx context.Context, schoolID, classID string) (bool, error)
	SubjectAvailableInClass(ctx context.Context, schoolID, subjectID, classID string) (bool, error)
	TeachesClass(ctx context.Context, schoolID, staffID, classID string) (bool, error)
	ClassRoster(ctx context.Context, schoolID, classID string) ([]RosterStudent, error)
	FindMarks(ctx context.Context, schoolID, examID string) ([]Mark, error)
	UpsertMarks(ctx context.Context, marks []Mark) error
	HighestMark(ctx context.Context, schoolID, examID string) (decimal.Decimal, error)
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

func (r *repository) withNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Exam{}).
		Select("exams.*, TRIM(CONCAT(classes.name, ' ', classes.section)) AS class_name, subjects.name AS subject_name").
		Joins("LEFT JOIN classes ON classes.id = exams.class_id").
		Joins("LEFT JOIN subjects ON subjects.id = exams.subject_id")
}

func (r *repository) Create(ctx context.Context, exam *Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *repository) FindAll(ctx context.Context, schoolID string, filter ExamFilter) ([]Exam, error) {
	var exams []Exam
	q := r.withNames(ctx).Where("exams.school_id = ?", schoolID)
	if filter.ClassID != "" {
		q = q.Where("exams.class_id = ?", filter.ClassID)
	}
	if filter.SubjectID != "" {
		q = q.Where("exams.subject_id = ?", filter.SubjectID)
	}
	err := q.Order("exams.exam_date DESC, exams.name ASC").Find(&exams).Error
	return exams, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Exam, error) {
	var exam Exam
	err := r.withNames(ctx).
		Where("exams.school_id = ? AND exams.id = ?", schoolID, id).
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *repository) Update(ctx context.Context, exam *Exam) error {
	return r.db.WithContext(ctx).
		Model(&Exam{}).
		Scopes(tenant.Scope(exam.SchoolID.String())).
		Where("id = ?", exam.ID).
		Updates(map[string]interface{}{
			"name":      exam.Name,
			"max_marks": exam.MaxMarks,
			"exam_date": exam.ExamDate,
		}).Error
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&Exam{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ClassExists(ctx context.Context, schoolID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SubjectAvailableInClass(ctx context.Context, schoolID, subjectID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("subjects").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", subjectID, schoolID).
		Where("class_id IS NULL OR class_id = ?", classID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) TeachesClass(ctx context.Context, schoolID, staffID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Where("class_teacher_id = ? OR EXISTS (SELECT 1 FROM teacher_assignments ta WHERE ta.class_id = classes.id AND ta.staff_id = ?)", staffID, staffID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ClassRoster(ctx context.Context, schoolID, classID string) ([]RosterStudent, error) {
	var students []RosterStudent
	err := r.db.WithContext(ctx).
		Table("students").
		Select("id, full_name, admission_no").
		Where("school_id = ? AND class_id = ? AND status = 'active' AND deleted_at IS NULL", schoolID, classID).
		Order("roll_no ASC, full_name ASC").
		Scan(&students).Error
	return students, err
}

func (r *repository) FindMarks(ctx context.Context, schoolID, examID string) ([]Mark, error) {
	var marks []Mark
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("exam_id = ?", examID).
		Find(&marks).Error
	return marks, err
}

func (r *repository) UpsertMarks(ctx context.Context, marks []Mark) error {
	if len(marks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "exam_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"marks_obtained", "is_absent", "remarks", "entered_by", "updated_at"}),
		}).
		Create(&marks).Error
}

func (r *repository) HighestMark(ctx context.Context, schoolID, examID string) (decimal.Decimal, error) {
	var highest decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&Mark{}).
		Scopes(tenant.Scope(schoolID)).
		Where("exam_id = ?", examID).
		Select("MAX(marks_obtained)").
		Scan(&highest).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !highest.Valid {
		return decimal.Zero, nil
	}
	return highest.Decimal, nil
}

package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-school/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ClassExists(ctx context.Context, schoolID, classID string) (bool, error)
	TeachesClass(ctx context.Context, schoolID, staffID, classID string) (bool, error)
	ClassRoster(ctx context.Context, schoolID, classID string) ([]RosterMember, error)
	StaffRoster(ctx context.Context, schoolID string) ([]RosterMember, error)
	FindStatuses(ctx context.Context, schoolID, subjectType string, subjectIDs []string, date time.Time) (map[string]string, error)
	UpsertMarks(ctx context.Context, records []Record) error
	UpsertLeave(ctx context.Context, records []Record) error
	CountByClass(ctx context.Context, schoolID, classID string, from, to time.Time) ([]SubjectStatusCount, error)
	FindBySubject(ctx context.Context, schoolID, subjectType, subjectID string, from, to time.Time) ([]Record, error)
	CountStatus(ctx context.Context, schoolID, subjectType, subjectID, status string, from, to time.Time) (int, error)
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

func (r *repository) ClassExists(ctx context.Context, schoolID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Count(&count).Error
	return count > 0, err
}

// TeachesClass reports whether staffID is the class teacher or holds any
// assignment in the class.
func (r *repository) TeachesClass(ctx context.Context, schoolID, staffID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Where("class_teacher_id = ? OR EXISTS (SELECT 1 FROM teacher_assignments ta WHERE ta.class_id = classes.id AND ta.staff_id = ?)", staffID, staffID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ClassRoster(ctx context.Context, schoolID, classID string) ([]RosterMember, error) {
	var members []RosterMember
	err := r.db.WithContext(ctx).
		Table("students").
		Select("id, full_name AS name, admission_no AS number").
		Where("school_id = ? AND class_id = ? AND status = 'active' AND deleted_at IS NULL", schoolID, classID).
		Order("roll_no ASC, full_name ASC").
		Scan(&members).Error
	return members, err
}

func (r *repository) StaffRoster(ctx context.Context, schoolID string) ([]RosterMember, error) {
	var members []RosterMember
	err := r.db.WithContext(ctx).
		Table("staff").
		Select("id, full_name AS name, staff_no AS number").
		Where("school_id = ? AND status = 'active' AND deleted_at IS NULL", schoolID).
		Order("full_name ASC").
		Scan(&members).Error
	return members, err
}

func (r *repository) FindStatuses(ctx context.Context, schoolID, subjectType string, subjectIDs []string, date time.Time) (map[string]string, error) {
	statuses := make(map[string]string, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return statuses, nil
	}

	var rows []Record
	err := r.db.WithContext(ctx).
		Select("subject_id, status").
		Where("school_id = ? AND subject_type = ? AND attendance_date = ?", schoolID, subjectType, date.Format(dateLayout)).
		Where("subject_id IN ?", subjectIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		statuses[row.SubjectID.String()] = row.Status
	}
	return statuses, nil
}

func conflictTarget() []clause.Column {
	return []clause.Column{{Name: "school_id"}, {Name: "subject_type"}, {Name: "subject_id"}, {Name: "attendance_date"}}
}

// UpsertMarks writes daily marks. Days already recorded as leave keep their status.
func (r *repository) UpsertMarks(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   conflictTarget(),
			DoUpdates: clause.AssignmentColumns([]string{"status", "class_id", "marked_by", "updated_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "attendance_records.status <> ?", Vars: []interface{}{StatusLeave}},
			}},
		}).
		Create(&records).Error
}

// UpsertLeave writes leave days and overrides whatever was marked before.
func (r *repository) UpsertLeave(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   conflictTarget(),
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "remarks", "updated_at"}),
		}).
		Create(&records).Error
}

func (r *repository) CountByClass(ctx context.Context, schoolID, classID string, from, to time.Time) ([]SubjectStatusCount, error) {
	var rows []SubjectStatusCount
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select("subject_id, status, COUNT(*) AS total").
		Where("school_id = ? AND subject_type = ? AND class_id = ?", schoolID, SubjectStudent, classID).
		Where("attendance_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Group("subject_id, status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindBySubject(ctx context.Context, schoolID, subjectType, subjectID string, from, to time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("school_id = ? AND subject_type = ? AND subject_id = ?", schoolID, subjectType, subjectID).
		Where("attendance_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountStatus(ctx context.Context, schoolID, subjectType, subjectID, status string, from, to time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("school_id = ? AND subject_type = ? AND subject_id = ? AND status = ?", schoolID, subjectType, subjectID, status).
		Where("attendance_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Count(&count).Error
	return int(count), err
}

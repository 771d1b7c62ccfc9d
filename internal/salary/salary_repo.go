package salary

import (
	"context"
	"database/sql"
	"time"

	"go-school/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	SchoolName(ctx context.Context, schoolID string) (string, error)
	FindStaff(ctx context.Context, schoolID, staffID string) (StaffRef, error)
	ActiveStaff(ctx context.Context, schoolID string) ([]StaffRef, error)

	CreateStructure(ctx context.Context, s *Structure) error
	FindCurrentStructure(ctx context.Context, schoolID, staffID string, asOf time.Time) (Structure, error)
	FindStructureVersions(ctx context.Context, schoolID, staffID string) ([]Structure, error)
	StructuresEffectiveBy(ctx context.Context, schoolID string, asOf time.Time) (map[string]Structure, error)

	RecordedStaff(ctx context.Context, schoolID, period string) (map[string]bool, error)
	CreateRecord(ctx context.Context, rec *Record) error
	InsertRecords(ctx context.Context, records []Record) (int64, error)
	FindRecords(ctx context.Context, schoolID string, filter RecordFilter) ([]Record, error)
	FindRecordByID(ctx context.Context, schoolID, id string) (Record, error)
	LockRecord(ctx context.Context, schoolID, id string) (Record, error)
	UpdateRecord(ctx context.Context, rec *Record) error
	DeleteRecord(ctx context.Context, schoolID, id string) error
	SetPayslip(ctx context.Context, schoolID, id, path string, at time.Time) error
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

func (r *repository) SchoolName(ctx context.Context, schoolID string) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("schools").
		Select("name").
		Where("id = ? AND deleted_at IS NULL", schoolID).
		Limit(1).
		Scan(&name).Error
	return name, err
}

func (r *repository) staffQuery(ctx context.Context, schoolID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("staff").
		Select("id, full_name, staff_no, join_date").
		Where("school_id = ? AND deleted_at IS NULL", schoolID)
}

func (r *repository) FindStaff(ctx context.Context, schoolID, staffID string) (StaffRef, error) {
	var st StaffRef
	err := r.staffQuery(ctx, schoolID).Where("id = ?", staffID).Take(&st).Error
	return st, err
}

func (r *repository) ActiveStaff(ctx context.Context, schoolID string) ([]StaffRef, error) {
	var rows []StaffRef
	err := r.staffQuery(ctx, schoolID).
		Where("status = ?", "active").
		Order("staff_no ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CreateStructure(ctx context.Context, s *Structure) error {
	return r.db.WithContext(ctx).Omit("StaffName").Create(s).Error
}

func (r *repository) structureQuery(ctx context.Context, schoolID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("salary_structures ss").
		Select("ss.*, st.full_name AS staff_name").
		Joins("JOIN staff st ON st.id = ss.staff_id").
		Where("ss.school_id = ?", schoolID)
}

func (r *repository) FindCurrentStructure(ctx context.Context, schoolID, staffID string, asOf time.Time) (Structure, error) {
	var s Structure
	err := r.structureQuery(ctx, schoolID).
		Where("ss.staff_id = ? AND ss.effective_date <= ?", staffID, asOf.Format(dateLayout)).
		Order("ss.effective_date DESC").
		Take(&s).Error
	return s, err
}

func (r *repository) FindStructureVersions(ctx context.Context, schoolID, staffID string) ([]Structure, error) {
	var rows []Structure
	err := r.structureQuery(ctx, schoolID).
		Where("ss.staff_id = ?", staffID).
		Order("ss.effective_date DESC").
		Find(&rows).Error
	return rows, err
}

// StructuresEffectiveBy returns, per staff id, the latest version effective on or before asOf.
func (r *repository) StructuresEffectiveBy(ctx context.Context, schoolID string, asOf time.Time) (map[string]Structure, error) {
	var rows []Structure
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (staff_id) *
		FROM salary_structures
		WHERE school_id = ? AND effective_date <= ?
		ORDER BY staff_id, effective_date DESC`,
		schoolID, asOf.Format(dateLayout),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]Structure, len(rows))
	for _, s := range rows {
		out[s.StaffID.String()] = s
	}
	return out, nil
}

func (r *repository) RecordedStaff(ctx context.Context, schoolID, period string) (map[string]bool, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("school_id = ? AND period = ?", schoolID, period).
		Pluck("staff_id", &ids).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *repository) CreateRecord(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Omit("StaffName", "StaffNo").Create(rec).Error
}

// InsertRecords skips staff that already have a record for the period and
// reports how many rows were written.
func (r *repository) InsertRecords(ctx context.Context, records []Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Omit("StaffName", "StaffNo").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "school_id"}, {Name: "staff_id"}, {Name: "period"}},
			DoNothing: true,
		}).
		Create(&records)
	return res.RowsAffected, res.Error
}

func (r *repository) recordQuery(ctx context.Context, schoolID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("salary_records sr").
		Select("sr.*, st.full_name AS staff_name, st.staff_no").
		Joins("JOIN staff st ON st.id = sr.staff_id").
		Where("sr.school_id = ?", schoolID)
}

func (r *repository) FindRecords(ctx context.Context, schoolID string, filter RecordFilter) ([]Record, error) {
	q := r.recordQuery(ctx, schoolID)
	if filter.Period != "" {
		q = q.Where("sr.period = ?", filter.Period)
	}
	if filter.Status != "" {
		q = q.Where("sr.status = ?", filter.Status)
	}
	if filter.StaffID != "" {
		q = q.Where("sr.staff_id = ?", filter.StaffID)
	}

	var rows []Record
	err := q.Order("sr.period DESC").Order("st.staff_no ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindRecordByID(ctx context.Context, schoolID, id string) (Record, error) {
	var rec Record
	err := r.recordQuery(ctx, schoolID).Where("sr.id = ?", id).Take(&rec).Error
	return rec, err
}

func (r *repository) LockRecord(ctx context.Context, schoolID, id string) (Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&rec).Error
	return rec, err
}

func (r *repository) UpdateRecord(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Omit("StaffName", "StaffNo").Save(rec).Error
}

func (r *repository) DeleteRecord(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND school_id = ? AND status = ?", id, schoolID, StatusDraft).
		Delete(&Record{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SetPayslip(ctx context.Context, schoolID, id, path string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ? AND school_id = ?", id, schoolID).
		Updates(map[string]any{
			"payslip_path":         path,
			"payslip_generated_at": at,
			"updated_at":           at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

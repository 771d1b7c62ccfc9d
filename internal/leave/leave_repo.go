package leave

import (
	"context"
	"database/sql"
	"time"

	"go-school/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, schoolID string, filter LeaveFilter) ([]Leave, error)
	FindByID(ctx context.Context, schoolID, id string) (*Leave, error)
	LockByID(ctx context.Context, schoolID, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	HasOverlappingPeriod(ctx context.Context, schoolID, staffID string, startDate, endDate time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) withStaff(ctx context.Context, schoolID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Leave{}).
		Select("leaves.*, staff.full_name AS staff_name").
		Joins("JOIN staff ON staff.id = leaves.staff_id").
		Where("leaves.school_id = ?", schoolID)
}

func (r *repository) FindAll(ctx context.Context, schoolID string, filter LeaveFilter) ([]Leave, error) {
	q := r.withStaff(ctx, schoolID)
	if filter.Status != "" {
		q = q.Where("leaves.status = ?", filter.Status)
	}
	if filter.StaffID != "" {
		q = q.Where("leaves.staff_id = ?", filter.StaffID)
	}

	var leaves []Leave
	err := q.Order("leaves.start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, schoolID, id string) (*Leave, error) {
	var l Leave
	err := r.withStaff(ctx, schoolID).
		Where("leaves.id = ?", id).
		Take(&l).Error
	return &l, err
}

func (r *repository) LockByID(ctx context.Context, schoolID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("school_id = ?", schoolID).
		Take(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// HasOverlappingPeriod ignores rejected and cancelled requests.
func (r *repository) HasOverlappingPeriod(ctx context.Context, schoolID, staffID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("school_id = ?", schoolID).
		Where("staff_id = ?", staffID).
		Where("status NOT IN ?", []string{StatusRejected, StatusCancelled}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate.Format(dateLayout), endDate.Format(dateLayout)).
		Count(&count).Error
	return count > 0, err
}

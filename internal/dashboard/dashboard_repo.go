package dashboard

import (
	"context"
	"time"

	"go-school/internal/shared/money"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Counts struct {
	Students int64
	Staff    int64
	Classes  int64
}

// MonthlyFeeRow is one monthly class fee with the number of active students it applies to.
type MonthlyFeeRow struct {
	BaseAmount int64
	Discount   int64
	IsExempt   bool
	Students   int64
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	Counts(ctx context.Context, schoolID string) (Counts, error)
	StatusCounts(ctx context.Context, schoolID, subjectType string, date time.Time) (map[string]int, error)
	SalaryNetTotal(ctx context.Context, schoolID, period string) (int64, error)
	MonthlyClassFees(ctx context.Context, schoolID string) ([]MonthlyFeeRow, error)
	FeesCollected(ctx context.Context, schoolID string, from, to time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context, schoolID string) (Counts, error) {
	var c Counts
	db := r.db.WithContext(ctx)

	if err := db.Table("students").
		Where("school_id = ? AND status = ? AND deleted_at IS NULL", schoolID, "active").
		Count(&c.Students).Error; err != nil {
		return c, err
	}
	if err := db.Table("staff").
		Where("school_id = ? AND status = ? AND deleted_at IS NULL", schoolID, "active").
		Count(&c.Staff).Error; err != nil {
		return c, err
	}
	err := db.Table("classes").
		Where("school_id = ? AND deleted_at IS NULL", schoolID).
		Count(&c.Classes).Error
	return c, err
}

func (r *repository) StatusCounts(ctx context.Context, schoolID, subjectType string, date time.Time) (map[string]int, error) {
	var rows []struct {
		Status string
		Total  int
	}
	err := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("status, COUNT(*) AS total").
		Where("school_id = ? AND subject_type = ? AND attendance_date = ?", schoolID, subjectType, date.Format(dateLayout)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}

func (r *repository) SalaryNetTotal(ctx context.Context, schoolID, period string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("salary_records").
		Select("COALESCE(SUM(net), 0)").
		Where("school_id = ? AND period = ?", schoolID, period).
		Scan(&total).Error
	return total, err
}

func (r *repository) MonthlyClassFees(ctx context.Context, schoolID string) ([]MonthlyFeeRow, error) {
	var rows []MonthlyFeeRow
	err := r.db.WithContext(ctx).
		Table("class_fees cf").
		Select("cf.base_amount, cf.discount, cf.is_exempt, COUNT(s.id) AS students").
		Joins("JOIN students s ON s.class_id = cf.class_id AND s.status = ? AND s.deleted_at IS NULL", "active").
		Where("cf.school_id = ? AND cf.cycle = ? AND cf.deleted_at IS NULL", schoolID, string(money.CycleMonthly)).
		Group("cf.id, cf.base_amount, cf.discount, cf.is_exempt").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FeesCollected(ctx context.Context, schoolID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("fee_payments").
		Select("COALESCE(SUM(amount), 0)").
		Where("school_id = ? AND paid_on BETWEEN ? AND ?", schoolID, from.Format(dateLayout), to.Format(dateLayout)).
		Scan(&total).Error
	return total, err
}

package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go-school/internal/attendance"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/clock"
	"go-school/internal/shared/money"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StatsKeyPrefix = "dashboard:stats:"
	statsTTL       = 60 * time.Second
)

// StatsKey is scoped to the day so cached numbers never cross midnight.
func StatsKey(schoolID string, day time.Time) string {
	return StatsKeyPrefix + schoolID + ":" + day.Format(dateLayout)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context, schoolID string) (StatsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, loc: loc, now: time.Now, logger: l}
}

func (s *service) GetStats(ctx context.Context, schoolID string) (StatsResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return StatsResponse{}, apperror.ErrInvalidSchoolID
	}

	today := clock.Today(s.now(), s.loc)
	cacheKey := StatsKey(schoolID, today)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.compute(ctx, schoolID, today)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, statsTTL).Err(); err != nil {
					s.logger.Warn("cache dashboard stats failed", zap.String("school_id", schoolID), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}
	return v.(StatsResponse), nil
}

// compute treats unmarked people as present, matching the attendance roster default.
func (s *service) compute(ctx context.Context, schoolID string, today time.Time) (StatsResponse, error) {
	counts, err := s.repo.Counts(ctx, schoolID)
	if err != nil {
		return StatsResponse{}, err
	}
	students, err := s.repo.StatusCounts(ctx, schoolID, attendance.SubjectStudent, today)
	if err != nil {
		return StatsResponse{}, err
	}
	staff, err := s.repo.StatusCounts(ctx, schoolID, attendance.SubjectStaff, today)
	if err != nil {
		return StatsResponse{}, err
	}

	period := today.Format("2006-01")
	salaryNet, err := s.repo.SalaryNetTotal(ctx, schoolID, period)
	if err != nil {
		return StatsResponse{}, err
	}

	fees, err := s.repo.MonthlyClassFees(ctx, schoolID)
	if err != nil {
		return StatsResponse{}, err
	}
	var monthlyFees int64
	for _, f := range fees {
		monthlyFees += money.ResolveFinalAmount(f.BaseAmount, f.Discount, f.IsExempt) * f.Students
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	collected, err := s.repo.FeesCollected(ctx, schoolID, monthStart, today)
	if err != nil {
		return StatsResponse{}, err
	}

	studentAbsent := students[attendance.StatusAbsent]
	studentLate := students[attendance.StatusLate]
	staffAbsent := staff[attendance.StatusAbsent]
	staffLeave := staff[attendance.StatusLeave]

	return StatsResponse{
		Date:          today.Format(dateLayout),
		TotalStudents: counts.Students,
		TotalStaff:    counts.Staff,
		TotalClasses:  counts.Classes,
		StudentAttendance: StudentAttendanceToday{
			Present: nonNegative(int(counts.Students) - studentAbsent - studentLate),
			Absent:  studentAbsent,
			Late:    studentLate,
		},
		StaffAttendance: StaffAttendanceToday{
			Present: nonNegative(int(counts.Staff) - staffAbsent - staffLeave),
			Absent:  staffAbsent,
			OnLeave: staffLeave,
		},
		SalaryPeriod:    period,
		SalaryNetTotal:  salaryNet,
		MonthlyFeeTotal: monthlyFees,
		FeesCollected:   collected,
	}, nil
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

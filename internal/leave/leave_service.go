package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-school/internal/attendance"
	leaveerrors "go-school/internal/leave/errors"
	"go-school/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"

	dateLayout   = "2006-01-02"
	maxLeaveDays = 60
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, actor Actor, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, schoolID string, actor Actor, filter LeaveFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, schoolID string, actor Actor, id string) (LeaveResponse, error)
	Approve(ctx context.Context, schoolID, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, schoolID, actorID, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, schoolID string, actor Actor, id string) (LeaveResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	attendance attendance.Repository
	weekdays   []time.Weekday
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, attendanceRepo attendance.Repository, weekdays []time.Weekday, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, attendance: attendanceRepo, weekdays: weekdays, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, actor Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("school_id", schoolID),
		zap.String("staff_id", actor.StaffID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return LeaveResponse{}, apperror.ErrInvalidSchoolID
	}
	staffUUID, err := uuid.Parse(actor.StaffID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrNoStaffProfile
	}
	createdBy, err := uuid.Parse(actor.UserID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	days := attendance.WorkingDates(startDate, endDate, s.weekdays)
	if len(days) == 0 {
		return LeaveResponse{}, leaveerrors.ErrNoWorkingDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, schoolID, actor.StaffID, startDate, endDate)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("school_id", schoolID),
			zap.String("staff_id", actor.StaffID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:        uuid.New(),
		SchoolID:  schoolUUID,
		StaffID:   staffUUID,
		LeaveType: req.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		TotalDays: len(days),
		Reason:    strings.TrimSpace(req.Reason),
		Status:    StatusPending,
		CreatedBy: createdBy,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("staff_id", actor.StaffID),
		zap.Int("total_days", l.TotalDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, actor Actor, filter LeaveFilter) ([]LeaveResponse, error) {
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	switch filter.Status {
	case "", StatusPending, StatusApproved, StatusRejected, StatusCancelled:
	default:
		return nil, leaveerrors.ErrInvalidStatus
	}
	if actor.SelfOnly {
		if actor.StaffID == "" {
			return nil, leaveerrors.ErrNoStaffProfile
		}
		filter.StaffID = actor.StaffID
	}

	leaves, err := s.repo.FindAll(ctx, schoolID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, schoolID string, actor Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, schoolID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if actor.SelfOnly && l.StaffID.String() != actor.StaffID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

// Approve marks the request approved and writes a leave attendance mark for
// every working day it covers, replacing any present/absent mark already there.
func (s *service) Approve(ctx context.Context, schoolID, actorID, id string) (LeaveResponse, error) {
	approver, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	return s.transition(ctx, schoolID, id, StatusApproved, func(tx *sql.Tx, l *Leave) error {
		now := s.now().UTC()
		l.ApprovedBy = &approver
		l.ApprovedAt = &now
		l.RejectionReason = nil

		days := attendance.WorkingDates(l.StartDate, l.EndDate, s.weekdays)
		records := make([]attendance.Record, len(days))
		for i, d := range days {
			records[i] = attendance.Record{
				ID:             uuid.New(),
				SchoolID:       l.SchoolID,
				SubjectType:    attendance.SubjectStaff,
				SubjectID:      l.StaffID,
				AttendanceDate: d,
				Status:         attendance.StatusLeave,
				MarkedBy:       &approver,
				Remarks:        l.LeaveType,
			}
		}
		if err := s.attendance.WithTx(tx).UpsertLeave(ctx, records); err != nil {
			s.logger.Error("approve leave attendance write failed",
				zap.String("leave_id", id),
				zap.Int("days", len(records)),
				zap.Error(err),
			)
			return err
		}
		return nil
	})
}

func (s *service) Reject(ctx context.Context, schoolID, actorID, id, reason string) (LeaveResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.transition(ctx, schoolID, id, StatusRejected, func(_ *sql.Tx, l *Leave) error {
		l.RejectionReason = &reason
		return nil
	})
}

// Cancel withdraws the caller's own pending request.
func (s *service) Cancel(ctx context.Context, schoolID string, actor Actor, id string) (LeaveResponse, error) {
	return s.transition(ctx, schoolID, id, StatusCancelled, func(_ *sql.Tx, l *Leave) error {
		if l.StaffID.String() != actor.StaffID {
			return leaveerrors.ErrNotOwnLeave
		}
		return nil
	})
}

func (s *service) transition(ctx context.Context, schoolID, id, target string, apply func(tx *sql.Tx, l *Leave) error) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.LockByID(ctx, schoolID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", target),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = target
	if err := apply(tx, l); err != nil {
		return LeaveResponse{}, err
	}
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", target),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", target),
	)
	return mapToResponse(*l), nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if endDate.Sub(startDate) >= maxLeaveDays*24*time.Hour {
		return time.Time{}, time.Time{}, leaveerrors.ErrRangeTooLong
	}
	return startDate, endDate, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		StaffID:         l.StaffID.String(),
		StaffName:       l.StaffName,
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format(dateLayout),
		EndDate:         l.EndDate.Format(dateLayout),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		CreatedBy:       l.CreatedBy.String(),
		RejectionReason: l.RejectionReason,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

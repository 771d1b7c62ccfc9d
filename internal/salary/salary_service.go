package salary

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-school/internal/attendance"
	"go-school/internal/bootstrap"
	"go-school/internal/events"
	"go-school/internal/messaging/kafka"
	salaryerrors "go-school/internal/salary/errors"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/clock"
	"go-school/internal/shared/contextutil"
	"go-school/internal/shared/money"
	"go-school/internal/shared/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout   = "2006-01-02"
	periodLayout = "2006-01"

	payslipURLExpiry = 15 * time.Minute
)

var ErrStorageUnavailable = errors.New("object storage is not configured")

// AbsenceCounter counts a staff member's explicit absent days in a date range.
type AbsenceCounter interface {
	CountStaffAbsences(ctx context.Context, schoolID, staffID string, from, to time.Time) (int, error)
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	CreateStructure(ctx context.Context, schoolID string, req StructureRequest) (StructureResponse, error)
	GetCurrentStructure(ctx context.Context, schoolID, staffID string) (StructureResponse, error)
	ListStructureVersions(ctx context.Context, schoolID, staffID string) ([]StructureResponse, error)
	CreateDefaultStructure(ctx context.Context, schoolID, staffID, effectiveDate string) error

	GenerateRecords(ctx context.Context, schoolID, actorID, period string) (GenerateResponse, error)
	CreateRecord(ctx context.Context, schoolID, actorID string, req CreateRecordRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, schoolID string, filter RecordFilter) ([]RecordResponse, error)
	GetRecord(ctx context.Context, schoolID, id string) (RecordResponse, error)
	GetBreakdown(ctx context.Context, schoolID, id string) (BreakdownResponse, error)
	Approve(ctx context.Context, schoolID, actorID, id string) (RecordResponse, error)
	MarkPaid(ctx context.Context, schoolID, actorID, id string) (RecordResponse, error)
	Delete(ctx context.Context, schoolID, id string) error
	History(ctx context.Context, schoolID string, actor Actor, staffID string) ([]RecordResponse, error)

	PayslipURL(ctx context.Context, schoolID string, actor Actor, id string) (string, error)
	GeneratePayslip(ctx context.Context, schoolID, recordID string) (string, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	absences AbsenceCounter
	outbox   kafka.OutboxRepository
	store    storage.ObjectStore
	audit    bootstrap.AuditLogger
	weekdays []time.Weekday
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	absences AbsenceCounter,
	outbox kafka.OutboxRepository,
	store storage.ObjectStore,
	audit bootstrap.AuditLogger,
	weekdays []time.Weekday,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		absences: absences,
		outbox:   outbox,
		store:    store,
		audit:    audit,
		weekdays: weekdays,
		loc:      loc,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) today() time.Time {
	return clock.Today(s.now(), s.loc)
}

// parsePeriod returns the first and last day of a YYYY-MM period.
func parsePeriod(period string) (time.Time, time.Time, error) {
	if len(period) != len(periodLayout) {
		return time.Time{}, time.Time{}, salaryerrors.ErrInvalidPeriod
	}
	start, err := time.Parse(periodLayout, period)
	if err != nil {
		return time.Time{}, time.Time{}, salaryerrors.ErrInvalidPeriod
	}
	return start, start.AddDate(0, 1, -1), nil
}

func parseStatus(v string) (string, error) {
	st := strings.ToUpper(strings.TrimSpace(v))
	switch st {
	case "", StatusDraft, StatusProcessed, StatusPaid:
		return st, nil
	}
	return "", salaryerrors.ErrInvalidStatus
}

func authorizeStaff(actor Actor, staffID string) error {
	if !actor.SelfOnly {
		return nil
	}
	if actor.StaffID == "" {
		return salaryerrors.ErrNoStaffProfile
	}
	if actor.StaffID != staffID {
		return salaryerrors.ErrNotOwnSalary
	}
	return nil
}

func optionalUUID(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func (s *service) CreateStructure(ctx context.Context, schoolID string, req StructureRequest) (StructureResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return StructureResponse{}, apperror.ErrInvalidSchoolID
	}
	staffUUID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return StructureResponse{}, salaryerrors.ErrInvalidStaffID
	}

	cycle := money.CycleMonthly
	if strings.TrimSpace(req.Cycle) != "" {
		if cycle, err = money.ParseCycle(req.Cycle); err != nil {
			return StructureResponse{}, salaryerrors.ErrInvalidCycle
		}
	}

	effective := s.today()
	if req.EffectiveDate != "" {
		if effective, err = time.Parse(dateLayout, req.EffectiveDate); err != nil {
			return StructureResponse{}, apperror.ErrInvalidDateFormat
		}
	}

	staff, err := s.repo.FindStaff(ctx, schoolID, req.StaffID)
	if err != nil {
		return StructureResponse{}, mapRepositoryError(err, salaryerrors.ErrStaffNotFound)
	}

	st := &Structure{
		ID:                       uuid.New(),
		SchoolID:                 schoolUUID,
		StaffID:                  staffUUID,
		BaseSalary:               req.BaseSalary,
		HRA:                      req.HRA,
		OtherAllowances:          req.OtherAllowances,
		FixedDeductions:          req.FixedDeductions,
		AttendanceBasedDeduction: req.AttendanceBasedDeduction,
		Cycle:                    string(cycle),
		EffectiveDate:            effective,
	}
	if err := s.repo.CreateStructure(ctx, st); err != nil {
		s.logger.Warn("create salary structure failed", zap.String("staff_id", req.StaffID), zap.Error(err))
		return StructureResponse{}, mapRepositoryError(err, salaryerrors.ErrStaffNotFound)
	}
	st.StaffName = staff.FullName

	contextutil.GetLogger(ctx, s.logger).Info("salary structure created",
		zap.String("staff_id", req.StaffID),
		zap.String("effective_date", effective.Format(dateLayout)),
	)
	return mapStructure(*st), nil
}

func (s *service) GetCurrentStructure(ctx context.Context, schoolID, staffID string) (StructureResponse, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return StructureResponse{}, salaryerrors.ErrInvalidStaffID
	}
	st, err := s.repo.FindCurrentStructure(ctx, schoolID, staffID, s.today())
	if err != nil {
		return StructureResponse{}, mapRepositoryError(err, salaryerrors.ErrStructureNotFound)
	}
	return mapStructure(st), nil
}

func (s *service) ListStructureVersions(ctx context.Context, schoolID, staffID string) ([]StructureResponse, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, salaryerrors.ErrInvalidStaffID
	}
	rows, err := s.repo.FindStructureVersions(ctx, schoolID, staffID)
	if err != nil {
		return nil, err
	}
	out := make([]StructureResponse, len(rows))
	for i, st := range rows {
		out[i] = mapStructure(st)
	}
	return out, nil
}

// CreateDefaultStructure gives a new staff member a zero structure starting on
// their join date so they show up in salary generation.
func (s *service) CreateDefaultStructure(ctx context.Context, schoolID, staffID, effectiveDate string) error {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return apperror.ErrInvalidSchoolID
	}
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return salaryerrors.ErrInvalidStaffID
	}

	effective := s.today()
	if effectiveDate != "" {
		if effective, err = time.Parse(dateLayout, effectiveDate); err != nil {
			return apperror.ErrInvalidDateFormat
		}
	}

	err = s.repo.CreateStructure(ctx, &Structure{
		ID:            uuid.New(),
		SchoolID:      schoolUUID,
		StaffID:       staffUUID,
		Cycle:         string(money.CycleMonthly),
		EffectiveDate: effective,
	})
	return mapRepositoryError(err, salaryerrors.ErrStaffNotFound)
}

// buildRecord snapshots the structure into a DRAFT record for the period.
// A non-nil override replaces the attendance estimate and always applies.
func (s *service) buildRecord(
	ctx context.Context,
	st Structure,
	period string,
	from, to time.Time,
	workingDays int,
	override *int64,
	createdBy *uuid.UUID,
) (Record, error) {
	absent, err := s.absences.CountStaffAbsences(ctx, st.SchoolID.String(), st.StaffID.String(), from, to)
	if err != nil {
		return Record{}, err
	}

	ms := st.Money()
	deduction := money.EstimateAttendanceDeduction(ms.Gross(), workingDays, absent)
	if override != nil {
		ms.AttendanceBasedDeduction = true
		deduction = *override
	}
	b := money.ResolveSalary(ms, deduction)

	structureID := st.ID
	return Record{
		ID:                  uuid.New(),
		SchoolID:            st.SchoolID,
		StaffID:             st.StaffID,
		StructureID:         &structureID,
		Period:              period,
		WorkingDays:         workingDays,
		AbsentDays:          absent,
		BaseSalary:          st.BaseSalary,
		HRA:                 st.HRA,
		OtherAllowances:     st.OtherAllowances,
		Gross:               b.Gross,
		FixedDeductions:     b.FixedDeductions,
		AttendanceDeduction: b.AttendanceDeduction,
		Net:                 b.Net,
		Status:              StatusDraft,
		CreatedBy:           createdBy,
	}, nil
}

func (s *service) GenerateRecords(ctx context.Context, schoolID, actorID, period string) (GenerateResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return GenerateResponse{}, apperror.ErrInvalidSchoolID
	}
	from, to, err := parsePeriod(period)
	if err != nil {
		return GenerateResponse{}, err
	}
	log := contextutil.GetLogger(ctx, s.logger)

	staff, err := s.repo.ActiveStaff(ctx, schoolID)
	if err != nil {
		return GenerateResponse{}, err
	}
	structures, err := s.repo.StructuresEffectiveBy(ctx, schoolID, to)
	if err != nil {
		return GenerateResponse{}, err
	}
	existing, err := s.repo.RecordedStaff(ctx, schoolID, period)
	if err != nil {
		return GenerateResponse{}, err
	}

	workingDays := len(attendance.WorkingDates(from, to, s.weekdays))
	createdBy := optionalUUID(actorID)

	resp := GenerateResponse{Period: period, Errors: []GenerateError{}}
	batch := make([]Record, 0, len(staff))
	for _, member := range staff {
		st, ok := structures[member.ID]
		if existing[member.ID] || !ok {
			resp.Skipped++
			continue
		}
		rec, err := s.buildRecord(ctx, st, period, from, to, workingDays, nil, createdBy)
		if err != nil {
			log.Warn("salary record build failed", zap.String("staff_id", member.ID), zap.Error(err))
			resp.Errors = append(resp.Errors, GenerateError{StaffID: member.ID, Message: err.Error()})
			continue
		}
		batch = append(batch, rec)
	}

	if len(batch) == 0 {
		return resp, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GenerateResponse{}, err
	}
	defer tx.Rollback()

	inserted, err := s.repo.WithTx(tx).InsertRecords(ctx, batch)
	if err != nil {
		log.Error("insert salary records failed", zap.String("period", period), zap.Error(err))
		return GenerateResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return GenerateResponse{}, err
	}

	resp.Generated = int(inserted)
	resp.Skipped += len(batch) - int(inserted)

	log.Info("salary records generated",
		zap.String("period", period),
		zap.Int("generated", resp.Generated),
		zap.Int("skipped", resp.Skipped),
		zap.Int("errors", len(resp.Errors)),
	)
	return resp, nil
}

func (s *service) CreateRecord(ctx context.Context, schoolID, actorID string, req CreateRecordRequest) (RecordResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return RecordResponse{}, apperror.ErrInvalidSchoolID
	}
	if _, err := uuid.Parse(req.StaffID); err != nil {
		return RecordResponse{}, salaryerrors.ErrInvalidStaffID
	}
	from, to, err := parsePeriod(req.Period)
	if err != nil {
		return RecordResponse{}, err
	}
	if req.AttendanceDeduction != nil && *req.AttendanceDeduction < 0 {
		return RecordResponse{}, apperror.InvalidField("attendance_deduction")
	}

	staff, err := s.repo.FindStaff(ctx, schoolID, req.StaffID)
	if err != nil {
		return RecordResponse{}, mapRepositoryError(err, salaryerrors.ErrStaffNotFound)
	}
	st, err := s.repo.FindCurrentStructure(ctx, schoolID, req.StaffID, to)
	if err != nil {
		return RecordResponse{}, mapRepositoryError(err, salaryerrors.ErrStructureNotFound)
	}

	workingDays := len(attendance.WorkingDates(from, to, s.weekdays))
	rec, err := s.buildRecord(ctx, st, req.Period, from, to, workingDays, req.AttendanceDeduction, optionalUUID(actorID))
	if err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateRecord(ctx, &rec); err != nil {
		return RecordResponse{}, mapRepositoryError(err, salaryerrors.ErrStaffNotFound)
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	rec.StaffName = staff.FullName
	rec.StaffNo = staff.StaffNo
	return mapRecord(rec), nil
}

func (s *service) ListRecords(ctx context.Context, schoolID string, filter RecordFilter) ([]RecordResponse, error) {
	if filter.Period != "" {
		if _, _, err := parsePeriod(filter.Period); err != nil {
			return nil, err
		}
	}
	status, err := parseStatus(filter.Status)
	if err != nil {
		return nil, err
	}
	filter.Status = status

	rows, err := s.repo.FindRecords(ctx, schoolID, filter)
	if err != nil {
		return nil, err
	}
	return mapRecords(rows), nil
}

func (s *service) findRecord(ctx context.Context, schoolID, id string) (Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Record{}, salaryerrors.ErrInvalidID
	}
	rec, err := s.repo.FindRecordByID(ctx, schoolID, id)
	if err != nil {
		return Record{}, mapRepositoryError(err, salaryerrors.ErrRecordNotFound)
	}
	return rec, nil
}

func (s *service) GetRecord(ctx context.Context, schoolID, id string) (RecordResponse, error) {
	rec, err := s.findRecord(ctx, schoolID, id)
	if err != nil {
		return RecordResponse{}, err
	}
	return mapRecord(rec), nil
}

func (s *service) GetBreakdown(ctx context.Context, schoolID, id string) (BreakdownResponse, error) {
	rec, err := s.findRecord(ctx, schoolID, id)
	if err != nil {
		return BreakdownResponse{}, err
	}
	return BreakdownResponse{
		RecordID:    rec.ID.String(),
		Period:      rec.Period,
		Status:      rec.Status,
		WorkingDays: rec.WorkingDays,
		AbsentDays:  rec.AbsentDays,
		Earnings:    earningLines(rec),
		Deductions:  deductionLines(rec),
		Gross:       rec.Gross,
		Deducted:    rec.FixedDeductions + rec.AttendanceDeduction,
		Net:         rec.Net,
	}, nil
}

// transition locks the record, requires status from, then applies and persists
// the change. extra runs further writes in the same transaction.
func (s *service) transition(
	ctx context.Context,
	schoolID, id, from string,
	wrongState error,
	apply func(rec *Record),
	extra func(tx *sql.Tx, rec Record) error,
) (Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Record{}, salaryerrors.ErrInvalidID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.LockRecord(ctx, schoolID, id)
	if err != nil {
		return Record{}, mapRepositoryError(err, salaryerrors.ErrRecordNotFound)
	}
	if rec.Status != from {
		return Record{}, wrongState
	}

	apply(&rec)
	if err := qtx.UpdateRecord(ctx, &rec); err != nil {
		return Record{}, err
	}
	if extra != nil {
		if err := extra(tx, rec); err != nil {
			return Record{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *service) Approve(ctx context.Context, schoolID, actorID, id string) (RecordResponse, error) {
	now := s.now().UTC()
	rec, err := s.transition(ctx, schoolID, id, StatusDraft, salaryerrors.ErrNotDraft, func(r *Record) {
		r.Status = StatusProcessed
		r.ApprovedBy = optionalUUID(actorID)
		r.ProcessedAt = &now
		r.UpdatedAt = now
	}, nil)
	if err != nil {
		return RecordResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("salary record approved",
		zap.String("record_id", id),
		zap.String("approved_by", actorID),
	)
	return mapRecord(rec), nil
}

func (s *service) MarkPaid(ctx context.Context, schoolID, actorID, id string) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.now().UTC()

	rec, err := s.transition(ctx, schoolID, id, StatusProcessed, salaryerrors.ErrNotProcessed, func(r *Record) {
		r.Status = StatusPaid
		r.PaidAt = &now
		r.UpdatedAt = now
	}, func(tx *sql.Tx, r Record) error {
		event, err := kafka.NewEvent(rid, "salary_record", r.ID.String(),
			events.SalaryPayslipRequestedEventType, events.SalaryPayslipRequestedTopic,
			events.SalaryPayslipRequestedEvent{
				EventType:      events.SalaryPayslipRequestedEventType,
				RequestID:      rid,
				SalaryRecordID: r.ID.String(),
				SchoolID:       schoolID,
				RequestedBy:    actorID,
				OccurredAt:     now,
			})
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("salary payslip outbox persist failed",
				zap.String("record_id", r.ID.String()),
				zap.Error(err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return RecordResponse{}, err
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "SALARY_MARKED_PAID",
			Message: fmt.Sprintf("salary %s for period %s marked paid", rec.ID, rec.Period),
			Meta: map[string]any{
				"school_id":  schoolID,
				"record_id":  rec.ID.String(),
				"staff_id":   rec.StaffID.String(),
				"net":        rec.Net,
				"actor_id":   actorID,
				"request_id": rid,
			},
		})
	}
	return mapRecord(rec), nil
}

func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salaryerrors.ErrInvalidID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.LockRecord(ctx, schoolID, id)
	if err != nil {
		return mapRepositoryError(err, salaryerrors.ErrRecordNotFound)
	}
	if rec.Status != StatusDraft {
		return salaryerrors.ErrNotDraft
	}
	if err := qtx.DeleteRecord(ctx, schoolID, id); err != nil {
		return mapRepositoryError(err, salaryerrors.ErrRecordNotFound)
	}
	return tx.Commit()
}

func (s *service) History(ctx context.Context, schoolID string, actor Actor, staffID string) ([]RecordResponse, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, salaryerrors.ErrInvalidStaffID
	}
	if err := authorizeStaff(actor, staffID); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindRecords(ctx, schoolID, RecordFilter{StaffID: staffID})
	if err != nil {
		return nil, err
	}
	return mapRecords(rows), nil
}

func (s *service) PayslipURL(ctx context.Context, schoolID string, actor Actor, id string) (string, error) {
	rec, err := s.findRecord(ctx, schoolID, id)
	if err != nil {
		return "", err
	}
	if err := authorizeStaff(actor, rec.StaffID.String()); err != nil {
		return "", err
	}
	if rec.PayslipPath == nil || *rec.PayslipPath == "" || s.store == nil {
		return "", salaryerrors.ErrPayslipNotGenerated
	}
	return s.store.GeneratePresignedURL(ctx, *rec.PayslipPath, payslipURLExpiry)
}

func payslipObjectPath(rec Record) string {
	return fmt.Sprintf("payslips/%s/%s/%s.pdf", rec.SchoolID, rec.Period, rec.ID)
}

// GeneratePayslip renders the record as a PDF, uploads it and stores the object path.
func (s *service) GeneratePayslip(ctx context.Context, schoolID, recordID string) (string, error) {
	if s.store == nil {
		return "", ErrStorageUnavailable
	}
	rec, err := s.findRecord(ctx, schoolID, recordID)
	if err != nil {
		return "", err
	}
	schoolName, err := s.repo.SchoolName(ctx, schoolID)
	if err != nil {
		return "", err
	}

	pdf := renderPayslipPDF(payslipRows(schoolName, rec))
	path := payslipObjectPath(rec)
	if _, err := s.store.Upload(ctx, path, bytes.NewReader(pdf), "application/pdf", int64(len(pdf))); err != nil {
		s.logger.Error("upload payslip failed", zap.String("record_id", recordID), zap.Error(err))
		return "", err
	}

	if err := s.repo.SetPayslip(ctx, schoolID, recordID, path, s.now().UTC()); err != nil {
		return "", mapRepositoryError(err, salaryerrors.ErrRecordNotFound)
	}
	return path, nil
}

func earningLines(rec Record) []BreakdownLine {
	lines := []BreakdownLine{{Label: "Base salary", Amount: rec.BaseSalary}}
	if rec.HRA != 0 {
		lines = append(lines, BreakdownLine{Label: "HRA", Amount: rec.HRA})
	}
	if rec.OtherAllowances != 0 {
		lines = append(lines, BreakdownLine{Label: "Other allowances", Amount: rec.OtherAllowances})
	}
	return lines
}

func deductionLines(rec Record) []BreakdownLine {
	lines := []BreakdownLine{}
	if rec.FixedDeductions != 0 {
		lines = append(lines, BreakdownLine{Label: "Fixed deductions", Amount: rec.FixedDeductions})
	}
	if rec.AttendanceDeduction != 0 {
		lines = append(lines, BreakdownLine{
			Label:  fmt.Sprintf("Attendance (%d of %d days absent)", rec.AbsentDays, rec.WorkingDays),
			Amount: rec.AttendanceDeduction,
		})
	}
	return lines
}

func mapStructure(st Structure) StructureResponse {
	b := money.ResolveSalary(st.Money(), 0)
	return StructureResponse{
		ID:                       st.ID.String(),
		StaffID:                  st.StaffID.String(),
		StaffName:                st.StaffName,
		BaseSalary:               st.BaseSalary,
		HRA:                      st.HRA,
		OtherAllowances:          st.OtherAllowances,
		FixedDeductions:          st.FixedDeductions,
		AttendanceBasedDeduction: st.AttendanceBasedDeduction,
		Cycle:                    st.Cycle,
		EffectiveDate:            st.EffectiveDate.Format(dateLayout),
		Gross:                    b.Gross,
		NetBeforeAttendance:      b.Net,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapRecord(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:                  rec.ID.String(),
		StaffID:             rec.StaffID.String(),
		StaffName:           rec.StaffName,
		StaffNo:             rec.StaffNo,
		Period:              rec.Period,
		WorkingDays:         rec.WorkingDays,
		AbsentDays:          rec.AbsentDays,
		BaseSalary:          rec.BaseSalary,
		HRA:                 rec.HRA,
		OtherAllowances:     rec.OtherAllowances,
		Gross:               rec.Gross,
		FixedDeductions:     rec.FixedDeductions,
		AttendanceDeduction: rec.AttendanceDeduction,
		Net:                 rec.Net,
		Status:              rec.Status,
		ProcessedAt:         formatTime(rec.ProcessedAt),
		PaidAt:              formatTime(rec.PaidAt),
		PayslipAvailable:    rec.PayslipPath != nil && *rec.PayslipPath != "",
	}
	if rec.ApprovedBy != nil {
		v := rec.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}

func mapRecords(rows []Record) []RecordResponse {
	out := make([]RecordResponse, len(rows))
	for i, rec := range rows {
		out[i] = mapRecord(rec)
	}
	return out
}

package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "go-school/internal/attendance/errors"
	"go-school/internal/domain"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/clock"
	"go-school/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxRangeDays = 366

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetClassAttendance(ctx context.Context, schoolID, classID, date string) (RosterAttendanceResponse, error)
	MarkClass(ctx context.Context, schoolID string, actor Actor, req BulkStudentAttendanceRequest) (BulkAttendanceResponse, error)
	GetStaffAttendance(ctx context.Context, schoolID, date string) (RosterAttendanceResponse, error)
	MarkStaff(ctx context.Context, schoolID string, actor Actor, req BulkStaffAttendanceRequest) (BulkAttendanceResponse, error)
	GetSummary(ctx context.Context, schoolID, classID, from, to string) (SummaryResponse, error)
	GetMine(ctx context.Context, schoolID, studentID, from, to string) (MyAttendanceResponse, error)
	CountStaffAbsences(ctx context.Context, schoolID, staffID string, from, to time.Time) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewService reads "today" in loc, the school's timezone. Nil means UTC.
func NewService(db *sql.DB, repo Repository, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, loc: loc, now: time.Now, logger: l}
}

func (s *service) GetClassAttendance(ctx context.Context, schoolID, classID, date string) (RosterAttendanceResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return RosterAttendanceResponse{}, apperror.ErrInvalidSchoolID
	}
	day, err := s.parseDay(date)
	if err != nil {
		return RosterAttendanceResponse{}, err
	}
	if err := s.ensureClass(ctx, s.repo, schoolID, classID); err != nil {
		return RosterAttendanceResponse{}, err
	}

	roster, err := s.repo.ClassRoster(ctx, schoolID, classID)
	if err != nil {
		return RosterAttendanceResponse{}, err
	}
	stored, err := s.repo.FindStatuses(ctx, schoolID, SubjectStudent, memberIDs(roster), day)
	if err != nil {
		return RosterAttendanceResponse{}, err
	}

	entries := MergeRoster(roster, stored)
	return RosterAttendanceResponse{
		ClassID: classID,
		Date:    day.Format(dateLayout),
		Entries: entries,
		Counts:  CountStatuses(entries),
	}, nil
}

func (s *service) MarkClass(ctx context.Context, schoolID string, actor Actor, req BulkStudentAttendanceRequest) (BulkAttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return BulkAttendanceResponse{}, apperror.ErrInvalidSchoolID
	}
	day, err := s.parseMarkDay(req.Date)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}

	toggles := make([]Mark, len(req.Records))
	for i, rec := range req.Records {
		toggles[i] = Mark{SubjectID: rec.StudentID, Status: rec.Status}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.ensureClass(ctx, qtx, schoolID, req.ClassID); err != nil {
		return BulkAttendanceResponse{}, err
	}
	if actor.Role == domain.RoleTeacher {
		ok, err := qtx.TeachesClass(ctx, schoolID, actor.StaffID, req.ClassID)
		if err != nil {
			return BulkAttendanceResponse{}, err
		}
		if !ok {
			return BulkAttendanceResponse{}, attendanceerrors.ErrNotClassTeacher
		}
	}

	roster, err := qtx.ClassRoster(ctx, schoolID, req.ClassID)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}
	marks, err := FillDefaults(FlowStudent, memberIDs(roster), toggles)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}

	stored, err := qtx.FindStatuses(ctx, schoolID, SubjectStudent, memberIDs(roster), day)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}
	marks, writable := splitLeave(marks, stored)

	classUUID := uuid.MustParse(req.ClassID)
	records := buildRecords(schoolUUID, SubjectStudent, &classUUID, day, actor.UserID, writable)
	if err := qtx.UpsertMarks(ctx, records); err != nil {
		s.logger.Error("mark class attendance failed",
			zap.String("request_id", rid),
			zap.String("class_id", req.ClassID),
			zap.Error(err),
		)
		return BulkAttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BulkAttendanceResponse{}, err
	}

	s.logger.Info("class attendance saved",
		zap.String("request_id", rid),
		zap.String("class_id", req.ClassID),
		zap.String("date", day.Format(dateLayout)),
		zap.Int("count", len(records)),
	)
	return bulkResponse(day, marks, len(records)), nil
}

func (s *service) GetStaffAttendance(ctx context.Context, schoolID, date string) (RosterAttendanceResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return RosterAttendanceResponse{}, apperror.ErrInvalidSchoolID
	}
	day, err := s.parseDay(date)
	if err != nil {
		return RosterAttendanceResponse{}, err
	}

	roster, err := s.repo.StaffRoster(ctx, schoolID)
	if err != nil {
		return RosterAttendanceResponse{}, err
	}
	stored, err := s.repo.FindStatuses(ctx, schoolID, SubjectStaff, memberIDs(roster), day)
	if err != nil {
		return RosterAttendanceResponse{}, err
	}

	entries := MergeRoster(roster, stored)
	return RosterAttendanceResponse{
		Date:    day.Format(dateLayout),
		Entries: entries,
		Counts:  CountStatuses(entries),
	}, nil
}

func (s *service) MarkStaff(ctx context.Context, schoolID string, actor Actor, req BulkStaffAttendanceRequest) (BulkAttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return BulkAttendanceResponse{}, apperror.ErrInvalidSchoolID
	}
	day, err := s.parseMarkDay(req.Date)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}

	toggles := make([]Mark, len(req.Records))
	for i, rec := range req.Records {
		toggles[i] = Mark{SubjectID: rec.StaffID, Status: rec.Status}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	roster, err := qtx.StaffRoster(ctx, schoolID)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}
	marks, err := FillDefaults(FlowStaff, memberIDs(roster), toggles)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}

	stored, err := qtx.FindStatuses(ctx, schoolID, SubjectStaff, memberIDs(roster), day)
	if err != nil {
		return BulkAttendanceResponse{}, err
	}
	marks, writable := splitLeave(marks, stored)

	records := buildRecords(schoolUUID, SubjectStaff, nil, day, actor.UserID, writable)
	if err := qtx.UpsertMarks(ctx, records); err != nil {
		s.logger.Error("mark staff attendance failed", zap.String("request_id", rid), zap.Error(err))
		return BulkAttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BulkAttendanceResponse{}, err
	}

	s.logger.Info("staff attendance saved",
		zap.String("request_id", rid),
		zap.String("date", day.Format(dateLayout)),
		zap.Int("count", len(records)),
	)
	return bulkResponse(day, marks, len(records)), nil
}

func (s *service) GetSummary(ctx context.Context, schoolID, classID, from, to string) (SummaryResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return SummaryResponse{}, apperror.ErrInvalidSchoolID
	}
	start, end, err := s.parseRange(from, to)
	if err != nil {
		return SummaryResponse{}, err
	}
	if err := s.ensureClass(ctx, s.repo, schoolID, classID); err != nil {
		return SummaryResponse{}, err
	}

	roster, err := s.repo.ClassRoster(ctx, schoolID, classID)
	if err != nil {
		return SummaryResponse{}, err
	}
	rows, err := s.repo.CountByClass(ctx, schoolID, classID, start, end)
	if err != nil {
		return SummaryResponse{}, err
	}

	perStudent := make(map[string]*StatusCounts, len(roster))
	for _, row := range rows {
		c, ok := perStudent[row.SubjectID]
		if !ok {
			c = &StatusCounts{}
			perStudent[row.SubjectID] = c
		}
		c.add(row.Status, row.Total)
	}

	resp := SummaryResponse{
		ClassID:  classID,
		From:     start.Format(dateLayout),
		To:       end.Format(dateLayout),
		Students: make([]StudentSummary, 0, len(roster)),
	}
	for _, row := range rows {
		resp.Totals.add(row.Status, row.Total)
	}
	for _, m := range roster {
		var counts StatusCounts
		if c, ok := perStudent[m.ID]; ok {
			counts = *c
		}
		resp.Students = append(resp.Students, StudentSummary{StudentID: m.ID, Name: m.Name, Counts: counts})
	}
	return resp, nil
}

func (s *service) GetMine(ctx context.Context, schoolID, studentID, from, to string) (MyAttendanceResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return MyAttendanceResponse{}, apperror.ErrInvalidSchoolID
	}
	if studentID == "" {
		return MyAttendanceResponse{}, attendanceerrors.ErrNoStudentProfile
	}
	start, end, err := s.parseRange(from, to)
	if err != nil {
		return MyAttendanceResponse{}, err
	}

	rows, err := s.repo.FindBySubject(ctx, schoolID, SubjectStudent, studentID, start, end)
	if err != nil {
		return MyAttendanceResponse{}, err
	}

	resp := MyAttendanceResponse{
		From:    start.Format(dateLayout),
		To:      end.Format(dateLayout),
		Records: make([]DayRecord, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Records = append(resp.Records, DayRecord{
			Date:    row.AttendanceDate.Format(dateLayout),
			Status:  row.Status,
			Remarks: row.Remarks,
		})
		resp.Counts.add(row.Status, 1)
	}
	return resp, nil
}

// CountStaffAbsences counts explicit absences. Unmarked days and leave days are not absences.
func (s *service) CountStaffAbsences(ctx context.Context, schoolID, staffID string, from, to time.Time) (int, error) {
	return s.repo.CountStatus(ctx, schoolID, SubjectStaff, staffID, StatusAbsent, from, to)
}

func (s *service) ensureClass(ctx context.Context, repo Repository, schoolID, classID string) error {
	if _, err := uuid.Parse(classID); err != nil {
		return apperror.InvalidField("class_id")
	}
	ok, err := repo.ClassExists(ctx, schoolID, classID)
	if err != nil {
		return err
	}
	if !ok {
		return attendanceerrors.ErrClassNotFound
	}
	return nil
}

func (s *service) today() time.Time {
	return clock.Today(s.now(), s.loc)
}

// parseDay reads a YYYY-MM-DD date. Empty means today.
func (s *service) parseDay(value string) (time.Time, error) {
	if value == "" {
		return s.today(), nil
	}
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.ErrInvalidDateFormat
	}
	return day, nil
}

func (s *service) parseMarkDay(value string) (time.Time, error) {
	day, err := s.parseDay(value)
	if err != nil {
		return time.Time{}, err
	}
	if day.After(s.today()) {
		return time.Time{}, attendanceerrors.ErrFutureDate
	}
	return day, nil
}

// parseRange defaults to the current month up to today.
func (s *service) parseRange(from, to string) (time.Time, time.Time, error) {
	today := s.today()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := today

	var err error
	if from != "" {
		if start, err = time.Parse(dateLayout, from); err != nil {
			return time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
		}
	}
	if to != "" {
		if end, err = time.Parse(dateLayout, to); err != nil {
			return time.Time{}, time.Time{}, apperror.ErrInvalidDateFormat
		}
	}
	if start.After(end) || end.Sub(start) > maxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidRange
	}
	return start, end, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func memberIDs(roster []RosterMember) []string {
	ids := make([]string, len(roster))
	for i, m := range roster {
		ids[i] = m.ID
	}
	return ids
}

func buildRecords(schoolID uuid.UUID, subjectType string, classID *uuid.UUID, day time.Time, actorID string, marks []Mark) []Record {
	var markedBy *uuid.UUID
	if id, err := uuid.Parse(actorID); err == nil {
		markedBy = &id
	}

	records := make([]Record, 0, len(marks))
	for _, m := range marks {
		records = append(records, Record{
			ID:             uuid.New(),
			SchoolID:       schoolID,
			SubjectType:    subjectType,
			SubjectID:      uuid.MustParse(m.SubjectID),
			ClassID:        classID,
			AttendanceDate: day,
			Status:         m.Status,
			MarkedBy:       markedBy,
		})
	}
	return records
}

// splitLeave reports days already on approved leave as leave. Only the
// other marks are written; the upsert never overwrites leave anyway.
func splitLeave(marks []Mark, stored map[string]string) (reported, writable []Mark) {
	reported = make([]Mark, len(marks))
	writable = make([]Mark, 0, len(marks))
	for i, m := range marks {
		if stored[m.SubjectID] == StatusLeave {
			m.Status = StatusLeave
		} else {
			writable = append(writable, m)
		}
		reported[i] = m
	}
	return reported, writable
}

func bulkResponse(day time.Time, marks []Mark, saved int) BulkAttendanceResponse {
	resp := BulkAttendanceResponse{Date: day.Format(dateLayout), Saved: saved}
	for _, m := range marks {
		resp.Counts.add(m.Status, 1)
	}
	return resp
}

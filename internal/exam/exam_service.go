package exam

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-school/internal/domain"
	examerrors "go-school/internal/exam/errors"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=exam_service.go -destination=mock/exam_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, actor Actor, req CreateExamRequest) (ExamResponse, error)
	GetAll(ctx context.Context, schoolID string, filter ExamFilter) ([]ExamResponse, error)
	GetByID(ctx context.Context, schoolID, id string) (ExamResponse, error)
	Update(ctx context.Context, schoolID, id string, actor Actor, req UpdateExamRequest) (ExamResponse, error)
	Delete(ctx context.Context, schoolID, id string) error
	EnterMarks(ctx context.Context, schoolID string, actor Actor, req BulkMarksRequest) (BulkMarksResponse, error)
	GetMarks(ctx context.Context, schoolID, examID string, actor Actor) (MarksSheetResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("exam.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exam.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, actor Actor, req CreateExamRequest) (ExamResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return ExamResponse{}, apperror.ErrInvalidSchoolID
	}
	examDate, err := time.Parse(dateLayout, req.ExamDate)
	if err != nil {
		return ExamResponse{}, apperror.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.ClassExists(ctx, schoolID, req.ClassID)
	if err != nil {
		return ExamResponse{}, err
	}
	if !ok {
		return ExamResponse{}, examerrors.ErrClassNotFound
	}
	ok, err = qtx.SubjectAvailableInClass(ctx, schoolID, req.SubjectID, req.ClassID)
	if err != nil {
		return ExamResponse{}, err
	}
	if !ok {
		return ExamResponse{}, examerrors.ErrSubjectNotInClass
	}
	if err := s.ensureTeaches(ctx, qtx, schoolID, actor, req.ClassID); err != nil {
		return ExamResponse{}, err
	}

	exam := &Exam{
		ID:        uuid.New(),
		SchoolID:  schoolUUID,
		ClassID:   uuid.MustParse(req.ClassID),
		SubjectID: uuid.MustParse(req.SubjectID),
		Name:      strings.TrimSpace(req.Name),
		MaxMarks:  decimal.NewFromFloat(req.MaxMarks).Round(2),
		ExamDate:  examDate,
	}
	if err := qtx.Create(ctx, exam); err != nil {
		s.logger.Error("create exam failed", zap.String("request_id", rid), zap.Error(err))
		return ExamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExamResponse{}, err
	}

	return mapToResponse(*exam), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, filter ExamFilter) ([]ExamResponse, error) {
	exams, err := s.repo.FindAll(ctx, schoolID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(exams), nil
}

func (s *service) GetByID(ctx context.Context, schoolID, id string) (ExamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExamResponse{}, examerrors.ErrInvalidExamID
	}
	exam, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return ExamResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*exam), nil
}

func (s *service) Update(ctx context.Context, schoolID, id string, actor Actor, req UpdateExamRequest) (ExamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExamResponse{}, examerrors.ErrInvalidExamID
	}
	examDate, err := time.Parse(dateLayout, req.ExamDate)
	if err != nil {
		return ExamResponse{}, apperror.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exam, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return ExamResponse{}, mapRepositoryError(err)
	}
	if err := s.ensureTeaches(ctx, qtx, schoolID, actor, exam.ClassID.String()); err != nil {
		return ExamResponse{}, err
	}

	maxMarks := decimal.NewFromFloat(req.MaxMarks).Round(2)
	if maxMarks.LessThan(exam.MaxMarks) {
		highest, err := qtx.HighestMark(ctx, schoolID, id)
		if err != nil {
			return ExamResponse{}, err
		}
		if highest.GreaterThan(maxMarks) {
			return ExamResponse{}, examerrors.ErrMaxBelowEntered
		}
	}

	exam.Name = strings.TrimSpace(req.Name)
	exam.MaxMarks = maxMarks
	exam.ExamDate = examDate

	if err := qtx.Update(ctx, exam); err != nil {
		return ExamResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ExamResponse{}, err
	}

	return mapToResponse(*exam), nil
}

func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return examerrors.ErrInvalidExamID
	}
	return mapRepositoryError(s.repo.Delete(ctx, schoolID, id))
}

func (s *service) EnterMarks(ctx context.Context, schoolID string, actor Actor, req BulkMarksRequest) (BulkMarksResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return BulkMarksResponse{}, apperror.ErrInvalidSchoolID
	}
	if _, err := uuid.Parse(req.ExamID); err != nil {
		return BulkMarksResponse{}, examerrors.ErrInvalidExamID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkMarksResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exam, err := qtx.FindByIDAndSchool(ctx, schoolID, req.ExamID)
	if err != nil {
		return BulkMarksResponse{}, mapRepositoryError(err)
	}
	classID := exam.ClassID.String()
	if err := s.ensureTeaches(ctx, qtx, schoolID, actor, classID); err != nil {
		return BulkMarksResponse{}, err
	}

	roster, err := qtx.ClassRoster(ctx, schoolID, classID)
	if err != nil {
		return BulkMarksResponse{}, err
	}
	scored, err := ScoreEntries(exam.MaxMarks, roster, req.Marks)
	if err != nil {
		return BulkMarksResponse{}, err
	}

	var enteredBy *uuid.UUID
	if id, err := uuid.Parse(actor.UserID); err == nil {
		enteredBy = &id
	}

	marks := make([]Mark, 0, len(scored))
	for _, e := range scored {
		marks = append(marks, Mark{
			ID:            uuid.New(),
			SchoolID:      schoolUUID,
			ExamID:        exam.ID,
			StudentID:     uuid.MustParse(e.StudentID),
			MarksObtained: e.Marks,
			IsAbsent:      e.IsAbsent,
			Remarks:       e.Remarks,
			EnteredBy:     enteredBy,
		})
	}

	if err := qtx.UpsertMarks(ctx, marks); err != nil {
		s.logger.Error("enter marks failed",
			zap.String("request_id", rid),
			zap.String("exam_id", req.ExamID),
			zap.Error(err),
		)
		return BulkMarksResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BulkMarksResponse{}, err
	}

	s.logger.Info("marks saved",
		zap.String("request_id", rid),
		zap.String("exam_id", req.ExamID),
		zap.Int("count", len(marks)),
	)
	return BulkMarksResponse{ExamID: req.ExamID, Saved: len(marks)}, nil
}

// GetMarks returns the exam's marks sheet. Students only see their own row.
func (s *service) GetMarks(ctx context.Context, schoolID, examID string, actor Actor) (MarksSheetResponse, error) {
	if _, err := uuid.Parse(examID); err != nil {
		return MarksSheetResponse{}, examerrors.ErrInvalidExamID
	}

	exam, err := s.repo.FindByIDAndSchool(ctx, schoolID, examID)
	if err != nil {
		return MarksSheetResponse{}, mapRepositoryError(err)
	}
	roster, err := s.repo.ClassRoster(ctx, schoolID, exam.ClassID.String())
	if err != nil {
		return MarksSheetResponse{}, err
	}
	marks, err := s.repo.FindMarks(ctx, schoolID, examID)
	if err != nil {
		return MarksSheetResponse{}, err
	}

	sheet := BuildSheet(*exam, roster, marks)
	if actor.Role == domain.RoleStudent {
		own := make([]StudentMarkResponse, 0, 1)
		for _, row := range sheet.Students {
			if row.StudentID == actor.StudentID {
				own = append(own, row)
			}
		}
		sheet.Students = own
	}
	return sheet, nil
}

// ensureTeaches limits teachers to classes they teach. Other roles pass.
func (s *service) ensureTeaches(ctx context.Context, repo Repository, schoolID string, actor Actor, classID string) error {
	if actor.Role != domain.RoleTeacher {
		return nil
	}
	ok, err := repo.TeachesClass(ctx, schoolID, actor.StaffID, classID)
	if err != nil {
		return err
	}
	if !ok {
		return examerrors.ErrNotClassTeacher
	}
	return nil
}

func mapToResponse(e Exam) ExamResponse {
	return ExamResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		ClassID:     e.ClassID.String(),
		ClassName:   e.ClassName,
		SubjectID:   e.SubjectID.String(),
		SubjectName: e.SubjectName,
		MaxMarks:    e.MaxMarks.InexactFloat64(),
		ExamDate:    e.ExamDate.Format(dateLayout),
	}
}

func mapToListResponse(exams []Exam) []ExamResponse {
	out := make([]ExamResponse, 0, len(exams))
	for _, e := range exams {
		out = append(out, mapToResponse(e))
	}
	return out
}

package assignment

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	assignmenterrors "go-school/internal/assignment/errors"
	"go-school/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAll(ctx context.Context, schoolID string, filter AssignmentFilter) ([]AssignmentResponse, error)
	GetMine(ctx context.Context, schoolID, staffID string) ([]AssignmentResponse, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, req CreateAssignmentRequest) (AssignmentResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return AssignmentResponse{}, apperror.ErrInvalidSchoolID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if ok, err := qtx.StaffActive(ctx, schoolID, req.StaffID); err != nil {
		return AssignmentResponse{}, err
	} else if !ok {
		return AssignmentResponse{}, assignmenterrors.ErrStaffNotFound
	}
	if ok, err := qtx.ClassExists(ctx, schoolID, req.ClassID); err != nil {
		return AssignmentResponse{}, err
	} else if !ok {
		return AssignmentResponse{}, assignmenterrors.ErrClassNotFound
	}
	if ok, err := qtx.SubjectAvailableInClass(ctx, schoolID, req.SubjectID, req.ClassID); err != nil {
		return AssignmentResponse{}, err
	} else if !ok {
		return AssignmentResponse{}, assignmenterrors.ErrSubjectNotInClass
	}

	a := &TeacherAssignment{
		ID:        uuid.New(),
		SchoolID:  schoolUUID,
		StaffID:   uuid.MustParse(req.StaffID),
		ClassID:   uuid.MustParse(req.ClassID),
		SubjectID: uuid.MustParse(req.SubjectID),
	}
	if err := qtx.Create(ctx, a); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("teacher assigned",
		zap.String("school_id", schoolID),
		zap.String("staff_id", req.StaffID),
		zap.String("class_id", req.ClassID),
		zap.String("subject_id", req.SubjectID),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, filter AssignmentFilter) ([]AssignmentResponse, error) {
	rows, err := s.repo.FindAll(ctx, schoolID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetMine(ctx context.Context, schoolID, staffID string) ([]AssignmentResponse, error) {
	if staffID == "" {
		return nil, assignmenterrors.ErrNoStaffProfile
	}
	return s.GetAll(ctx, schoolID, AssignmentFilter{StaffID: staffID})
}

func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return assignmenterrors.ErrAssignmentNotFound
	}
	if err := s.repo.Delete(ctx, schoolID, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrAssignmentNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return assignmenterrors.ErrAssignmentExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "uq_teacher_assignment") {
		return assignmenterrors.ErrAssignmentExists
	}
	return err
}

func mapToResponse(a TeacherAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID.String(),
		StaffID:      a.StaffID.String(),
		StaffName:    a.StaffName,
		ClassID:      a.ClassID.String(),
		ClassName:    a.ClassName,
		ClassSection: a.ClassSection,
		SubjectID:    a.SubjectID.String(),
		SubjectName:  a.SubjectName,
	}
}

func mapToListResponse(rows []TeacherAssignment) []AssignmentResponse {
	res := make([]AssignmentResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

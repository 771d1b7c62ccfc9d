package student

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-school/internal/shared/apperror"
	"go-school/internal/shared/contextutil"
	"go-school/internal/shared/counter"
	studenterrors "go-school/internal/student/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	admissionPrefix = "ADM"
	dateLayout      = "2006-01-02"
)

//go:generate mockgen -source=student_service.go -destination=mock/student_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, req CreateStudentRequest) (StudentResponse, error)
	GetAll(ctx context.Context, schoolID string, filter StudentFilter) ([]StudentResponse, error)
	GetByID(ctx context.Context, schoolID, id string) (StudentResponse, error)
	Update(ctx context.Context, schoolID, id string, req UpdateStudentRequest) (StudentResponse, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("student.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("student.service")
	}
	return &service{db: db, repo: repo, counter: counter, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, req CreateStudentRequest) (StudentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return StudentResponse{}, apperror.ErrInvalidSchoolID
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return StudentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StudentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	classID, err := s.resolveClass(ctx, qtx, schoolID, req.ClassID)
	if err != nil {
		return StudentResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, schoolID, counter.TypeStudent)
	if err != nil {
		s.logger.Error("create student generate admission number failed", zap.String("request_id", rid), zap.Error(err))
		return StudentResponse{}, err
	}

	st := &Student{
		ID:            uuid.New(),
		SchoolID:      schoolUUID,
		ClassID:       classID,
		AdmissionNo:   counter.Format(admissionPrefix, nextVal),
		FullName:      strings.TrimSpace(req.FullName),
		RollNo:        req.RollNo,
		Gender:        req.Gender,
		DateOfBirth:   dob,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Address:       req.Address,
		Status:        StatusActive,
	}

	if err := qtx.Create(ctx, st); err != nil {
		s.logger.Error("create student persist failed", zap.String("request_id", rid), zap.Error(err))
		return StudentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StudentResponse{}, err
	}

	s.logger.Info("create student success",
		zap.String("request_id", rid),
		zap.String("student_id", st.ID.String()),
		zap.String("admission_no", st.AdmissionNo),
	)

	return mapToResponse(*st), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, filter StudentFilter) ([]StudentResponse, error) {
	rows, err := s.repo.FindAll(ctx, schoolID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, schoolID, id string) (StudentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StudentResponse{}, studenterrors.ErrInvalidStudentID
	}

	st, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, schoolID, id string, req UpdateStudentRequest) (StudentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StudentResponse{}, studenterrors.ErrInvalidStudentID
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return StudentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StudentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	classID, err := s.resolveClass(ctx, qtx, schoolID, req.ClassID)
	if err != nil {
		return StudentResponse{}, err
	}

	st.FullName = strings.TrimSpace(req.FullName)
	st.ClassID = classID
	st.RollNo = req.RollNo
	st.Gender = req.Gender
	st.DateOfBirth = dob
	st.GuardianName = req.GuardianName
	st.GuardianPhone = req.GuardianPhone
	st.Address = req.Address
	if req.Status != "" {
		st.Status = req.Status
	}

	if err := qtx.Update(ctx, st); err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	if st.Status != StatusActive {
		if err := qtx.DeactivateAccount(ctx, schoolID, id); err != nil {
			return StudentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return StudentResponse{}, err
	}

	return mapToResponse(*st), nil
}

func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return studenterrors.ErrInvalidStudentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, schoolID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.DeactivateAccount(ctx, schoolID, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete student success", zap.String("student_id", id))
	return nil
}

func (s *service) resolveClass(ctx context.Context, repo Repository, schoolID, classID string) (*uuid.UUID, error) {
	if classID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, studenterrors.ErrClassNotFound
	}
	ok, err := repo.ClassExists(ctx, schoolID, classID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, studenterrors.ErrClassNotFound
	}
	return &id, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, studenterrors.ErrInvalidDateOfBirth
	}
	return &t, nil
}

func mapToResponse(st Student) StudentResponse {
	resp := StudentResponse{
		ID:            st.ID.String(),
		AdmissionNo:   st.AdmissionNo,
		FullName:      st.FullName,
		ClassName:     st.ClassName,
		RollNo:        st.RollNo,
		Gender:        st.Gender,
		GuardianName:  st.GuardianName,
		GuardianPhone: st.GuardianPhone,
		Address:       st.Address,
		Status:        st.Status,
	}
	if st.ClassID != nil {
		resp.ClassID = st.ClassID.String()
	}
	if st.DateOfBirth != nil {
		resp.DateOfBirth = st.DateOfBirth.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(rows []Student) []StudentResponse {
	res := make([]StudentResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

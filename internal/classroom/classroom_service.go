package classroom

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	classroomerrors "go-school/internal/classroom/errors"
	"go-school/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ClassAllKeyPrefix = "classes:all:"

func GetClassAllKey(schoolID string) string {
	return ClassAllKeyPrefix + schoolID
}

//go:generate mockgen -source=classroom_service.go -destination=mock/classroom_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, req CreateClassRequest) (ClassResponse, error)
	GetAll(ctx context.Context, schoolID string) ([]ClassResponse, error)
	GetByID(ctx context.Context, schoolID, id string) (ClassResponse, error)
	Update(ctx context.Context, schoolID, id string, req UpdateClassRequest) (ClassResponse, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("classroom.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("classroom.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, req CreateClassRequest) (ClassResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return ClassResponse{}, apperror.ErrInvalidSchoolID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClassResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	teacherID, err := s.resolveClassTeacher(ctx, qtx, schoolID, req.ClassTeacherID)
	if err != nil {
		return ClassResponse{}, err
	}

	class := &Classroom{
		ID:             uuid.New(),
		SchoolID:       schoolUUID,
		Name:           strings.TrimSpace(req.Name),
		Section:        strings.TrimSpace(req.Section),
		AcademicYear:   strings.TrimSpace(req.AcademicYear),
		ClassTeacherID: teacherID,
	}

	if err := qtx.Create(ctx, class); err != nil {
		s.logger.Warn("create class persist failed", zap.Error(err))
		return ClassResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ClassResponse{}, err
	}

	s.invalidate(ctx, schoolID)
	return mapToResponse(*class), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string) ([]ClassResponse, error) {
	cacheKey := GetClassAllKey(schoolID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ClassResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		classes, err := s.repo.FindAllBySchool(ctx, schoolID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(classes)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ClassResponse), nil
}

func (s *service) GetByID(ctx context.Context, schoolID, id string) (ClassResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClassResponse{}, classroomerrors.ErrInvalidClassID
	}

	class, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return ClassResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*class), nil
}

func (s *service) Update(ctx context.Context, schoolID, id string, req UpdateClassRequest) (ClassResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClassResponse{}, classroomerrors.ErrInvalidClassID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClassResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	class, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return ClassResponse{}, mapRepositoryError(err)
	}

	teacherID, err := s.resolveClassTeacher(ctx, qtx, schoolID, req.ClassTeacherID)
	if err != nil {
		return ClassResponse{}, err
	}

	class.Name = strings.TrimSpace(req.Name)
	class.Section = strings.TrimSpace(req.Section)
	class.AcademicYear = strings.TrimSpace(req.AcademicYear)
	class.ClassTeacherID = teacherID

	if err := qtx.Update(ctx, class); err != nil {
		return ClassResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ClassResponse{}, err
	}

	s.invalidate(ctx, schoolID)
	return mapToResponse(*class), nil
}

func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return classroomerrors.ErrInvalidClassID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, schoolID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, schoolID)
	s.logger.Info("class deleted", zap.String("school_id", schoolID), zap.String("class_id", id))
	return nil
}

func (s *service) resolveClassTeacher(ctx context.Context, repo Repository, schoolID, staffID string) (*uuid.UUID, error) {
	if staffID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(staffID)
	if err != nil {
		return nil, classroomerrors.ErrClassTeacherNotFound
	}
	ok, err := repo.StaffExists(ctx, schoolID, staffID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, classroomerrors.ErrClassTeacherNotFound
	}
	return &id, nil
}

func (s *service) invalidate(ctx context.Context, schoolID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetClassAllKey(schoolID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate class cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

func mapToResponse(c Classroom) ClassResponse {
	resp := ClassResponse{
		ID:           c.ID.String(),
		SchoolID:     c.SchoolID.String(),
		Name:         c.Name,
		Section:      c.Section,
		AcademicYear: c.AcademicYear,
		StudentCount: c.StudentCount,
	}
	if c.ClassTeacherID != nil {
		resp.ClassTeacherID = c.ClassTeacherID.String()
	}
	return resp
}

func mapToListResponse(classes []Classroom) []ClassResponse {
	res := make([]ClassResponse, len(classes))
	for i, c := range classes {
		res[i] = mapToResponse(c)
	}
	return res
}

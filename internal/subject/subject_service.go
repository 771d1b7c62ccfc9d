package subject

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-school/internal/shared/apperror"
	subjecterrors "go-school/internal/subject/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const SubjectAllKeyPrefix = "subjects:all:"

func GetSubjectAllKey(schoolID string) string {
	return SubjectAllKeyPrefix + schoolID
}

//go:generate mockgen -source=subject_service.go -destination=mock/subject_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, req CreateSubjectRequest) (SubjectResponse, error)
	GetAll(ctx context.Context, schoolID string) ([]SubjectResponse, error)
	GetByID(ctx context.Context, schoolID, id string) (SubjectResponse, error)
	Update(ctx context.Context, schoolID, id string, req UpdateSubjectRequest) (SubjectResponse, error)
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
	l := zap.L().Named("subject.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("subject.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, schoolID string, req CreateSubjectRequest) (SubjectResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return SubjectResponse{}, apperror.ErrInvalidSchoolID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	classID, err := s.resolveClass(ctx, qtx, schoolID, req.ClassID)
	if err != nil {
		return SubjectResponse{}, err
	}

	subj := &Subject{
		ID:       uuid.New(),
		SchoolID: schoolUUID,
		ClassID:  classID,
		Name:     strings.TrimSpace(req.Name),
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
	}

	if err := qtx.Create(ctx, subj); err != nil {
		return SubjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SubjectResponse{}, err
	}

	s.invalidate(ctx, schoolID)
	return mapToResponse(*subj), nil
}

func (s *service) GetAll(ctx context.Context, schoolID string) ([]SubjectResponse, error) {
	cacheKey := fmt.Sprintf("%s%s", SubjectAllKeyPrefix, schoolID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []SubjectResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		subjects, err := s.repo.FindAllBySchool(ctx, schoolID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(subjects)

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

	return v.([]SubjectResponse), nil
}

func (s *service) GetByID(ctx context.Context, schoolID, id string) (SubjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SubjectResponse{}, subjecterrors.ErrInvalidSubjectID
	}

	subj, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return SubjectResponse{}, mapNotFound(err)
	}

	return mapToResponse(*subj), nil
}

func (s *service) Update(ctx context.Context, schoolID, id string, req UpdateSubjectRequest) (SubjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SubjectResponse{}, subjecterrors.ErrInvalidSubjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	subj, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return SubjectResponse{}, mapNotFound(err)
	}

	classID, err := s.resolveClass(ctx, qtx, schoolID, req.ClassID)
	if err != nil {
		return SubjectResponse{}, err
	}

	subj.Name = strings.TrimSpace(req.Name)
	subj.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	subj.ClassID = classID

	if err := qtx.Update(ctx, subj); err != nil {
		return SubjectResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SubjectResponse{}, err
	}

	s.invalidate(ctx, schoolID)
	return mapToResponse(*subj), nil
}

func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return subjecterrors.ErrInvalidSubjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, schoolID, id); err != nil {
		return mapNotFound(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, schoolID)
	return nil
}

func (s *service) resolveClass(ctx context.Context, repo Repository, schoolID, classID string) (*uuid.UUID, error) {
	if classID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, subjecterrors.ErrClassNotFound
	}
	ok, err := repo.ClassExists(ctx, schoolID, classID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, subjecterrors.ErrClassNotFound
	}
	return &id, nil
}

func (s *service) invalidate(ctx context.Context, schoolID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetSubjectAllKey(schoolID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate subject cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return subjecterrors.ErrSubjectNotFound
	}
	return err
}

func mapToResponse(subj Subject) SubjectResponse {
	resp := SubjectResponse{
		ID:       subj.ID.String(),
		SchoolID: subj.SchoolID.String(),
		Name:     subj.Name,
		Code:     subj.Code,
	}
	if subj.ClassID != nil {
		resp.ClassID = subj.ClassID.String()
	}
	return resp
}

func mapToListResponse(subjects []Subject) []SubjectResponse {
	res := make([]SubjectResponse, len(subjects))
	for i, s := range subjects {
		res[i] = mapToResponse(s)
	}
	return res
}

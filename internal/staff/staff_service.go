package staff

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-school/internal/auth"
	autherrors "go-school/internal/auth/errors"
	"go-school/internal/events"
	"go-school/internal/messaging/kafka"
	"go-school/internal/rbac"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/contextutil"
	"go-school/internal/shared/counter"
	stafferrors "go-school/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StaffOptionsKeyPrefix = "staff:options:"
	staffNoPrefix         = "STF"
	dateLayout            = "2006-01-02"
)

func GetStaffOptionsKey(schoolID string) string {
	return StaffOptionsKeyPrefix + schoolID
}

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, schoolID string, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context, schoolID string, filter StaffFilter) ([]StaffResponse, error)
	GetOptions(ctx context.Context, schoolID string) ([]StaffOptionResponse, error)
	GetByID(ctx context.Context, schoolID, id string) (StaffResponse, error)
	Update(ctx context.Context, schoolID, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, schoolID, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	userRepo auth.Repository
	rbac     rbac.Service
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	userRepo auth.Repository,
	rbacService rbac.Service,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counter,
		userRepo: userRepo,
		rbac:     rbacService,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, schoolID string, req CreateStaffRequest) (StaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create staff requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.Bool("with_account", req.Account != nil),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return StaffResponse{}, apperror.ErrInvalidSchoolID
	}

	joinDate, err := time.Parse(dateLayout, req.JoinDate)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidJoinDate
	}

	var account *auth.User
	if req.Account != nil {
		account, err = s.prepareAccount(ctx, schoolUUID, req)
		if err != nil {
			return StaffResponse{}, err
		}
	}

	nextVal, err := s.counter.GetNextValue(ctx, schoolID, counter.TypeStaff)
	if err != nil {
		s.logger.Error("create staff generate number failed", zap.Error(err))
		return StaffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create staff begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	st := &Staff{
		ID:          uuid.New(),
		SchoolID:    schoolUUID,
		StaffNo:     counter.Format(staffNoPrefix, nextVal),
		FullName:    strings.TrimSpace(req.FullName),
		Email:       req.Email,
		Phone:       req.Phone,
		Designation: req.Designation,
		StaffType:   defaultString(req.StaffType, TypeTeaching),
		JoinDate:    joinDate,
		Status:      StatusActive,
	}

	if err := s.repo.WithTx(tx).Create(ctx, st); err != nil {
		s.logger.Error("create staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}

	if account != nil {
		account.StaffID = &st.ID
		if err := s.userRepo.WithTx(tx).Create(ctx, account); err != nil {
			s.logger.Warn("create staff account persist failed", zap.Error(err))
			return StaffResponse{}, mapRepositoryError(err)
		}
		if err := s.rbac.AssignRole(ctx, tx, schoolID, account.ID.String(), account.Role); err != nil {
			s.logger.Error("create staff assign role failed", zap.Error(err))
			return StaffResponse{}, err
		}
		st.UserID = &account.ID
		st.Username = &account.Username
	}

	event, err := kafka.NewEvent(rid, "staff", st.ID.String(), events.StaffCreatedEventType, events.StaffLifecycleTopic,
		events.StaffCreatedEvent{
			EventType:  events.StaffCreatedEventType,
			RequestID:  rid,
			StaffID:    st.ID.String(),
			SchoolID:   schoolID,
			JoinDate:   req.JoinDate,
			OccurredAt: time.Now().UTC(),
		})
	if err != nil {
		return StaffResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("create staff outbox persist failed",
			zap.String("staff_id", st.ID.String()),
			zap.Error(err),
		)
		return StaffResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return StaffResponse{}, err
	}

	s.invalidateOptions(ctx, schoolID)

	s.logger.Info("create staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", st.ID.String()),
		zap.String("staff_no", st.StaffNo),
	)

	return mapToResponse(*st), nil
}

func (s *service) prepareAccount(ctx context.Context, schoolID uuid.UUID, req CreateStaffRequest) (*auth.User, error) {
	role := strings.ToUpper(req.Account.Role)
	if role != "TEACHER" && role != "CLERK" {
		return nil, stafferrors.ErrInvalidAccountRole
	}

	username := auth.NormalizeUsername(req.Account.Username)
	if !auth.ValidUsername(username) {
		return nil, autherrors.ErrInvalidUsername
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, autherrors.ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(req.Account.Password)
	if err != nil {
		return nil, err
	}

	return &auth.User{
		ID:       uuid.New(),
		SchoolID: schoolID,
		Username: username,
		Name:     strings.TrimSpace(req.FullName),
		Password: hashed,
		Role:     role,
		IsActive: true,
	}, nil
}

func (s *service) GetAll(ctx context.Context, schoolID string, filter StaffFilter) ([]StaffResponse, error) {
	s.logger.Debug("get all staff requested", zap.String("school_id", schoolID))
	rows, err := s.repo.FindAllBySchool(ctx, schoolID, filter)
	if err != nil {
		s.logger.Error("get all staff failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetOptions(ctx context.Context, schoolID string) ([]StaffOptionResponse, error) {
	cacheKey := GetStaffOptionsKey(schoolID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []StaffOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Form pickers open in bursts; collapse concurrent misses.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptionsBySchool(ctx, schoolID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]StaffOptionResponse, len(rows))
		for i, r := range rows {
			resp[i] = StaffOptionResponse{ID: r.ID.String(), StaffNo: r.StaffNo, FullName: r.FullName}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]StaffOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, schoolID, id string) (StaffResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}

	st, err := s.repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, schoolID, id string, req UpdateStaffRequest) (StaffResponse, error) {
	s.logger.Debug("update staff requested",
		zap.String("school_id", schoolID),
		zap.String("staff_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}

	joinDate, err := time.Parse(dateLayout, req.JoinDate)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidJoinDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update staff begin tx failed", zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	st.FullName = strings.TrimSpace(req.FullName)
	st.Email = req.Email
	st.Phone = req.Phone
	st.Designation = req.Designation
	st.StaffType = defaultString(req.StaffType, st.StaffType)
	st.JoinDate = joinDate
	st.Status = defaultString(req.Status, st.Status)

	if err := qtx.Update(ctx, st); err != nil {
		s.logger.Error("update staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}

	if st.Status == StatusInactive {
		if err := qtx.DeactivateAccount(ctx, schoolID, id); err != nil {
			return StaffResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update staff commit failed", zap.Error(err))
		return StaffResponse{}, err
	}

	s.invalidateOptions(ctx, schoolID)
	s.logger.Info("update staff success", zap.String("staff_id", id))

	return mapToResponse(*st), nil
}

// Delete soft-deletes the staff row and disables its login.
func (s *service) Delete(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return stafferrors.ErrInvalidStaffID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete staff begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, schoolID, id); err != nil {
		s.logger.Error("delete staff failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := qtx.DeactivateAccount(ctx, schoolID, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete staff commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx, schoolID)
	s.logger.Info("delete staff success", zap.String("staff_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, schoolID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetStaffOptionsKey(schoolID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate staff options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(st Staff) StaffResponse {
	resp := StaffResponse{
		ID:          st.ID.String(),
		SchoolID:    st.SchoolID.String(),
		StaffNo:     st.StaffNo,
		FullName:    st.FullName,
		Email:       st.Email,
		Phone:       st.Phone,
		Designation: st.Designation,
		StaffType:   st.StaffType,
		JoinDate:    st.JoinDate.Format(dateLayout),
		Status:      st.Status,
	}
	if st.UserID != nil {
		resp.UserID = st.UserID.String()
	}
	if st.Username != nil {
		resp.Username = *st.Username
	}
	return resp
}

func mapToListResponse(rows []Staff) []StaffResponse {
	res := make([]StaffResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

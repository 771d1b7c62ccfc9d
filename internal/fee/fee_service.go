package fee

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	feeerrors "go-school/internal/fee/errors"
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/contextutil"
	"go-school/internal/shared/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=fee_service.go -destination=mock/fee_service_mock.go -package=mock
type Service interface {
	CreateClassFee(ctx context.Context, schoolID string, req FeeItemRequest) (FeeItemResponse, error)
	ListClassFees(ctx context.Context, schoolID, classID string) ([]FeeItemResponse, error)
	UpdateClassFee(ctx context.Context, schoolID, id string, req FeeItemRequest) (FeeItemResponse, error)
	DeleteClassFee(ctx context.Context, schoolID, id string) error

	CreateCustomFee(ctx context.Context, schoolID string, req FeeItemRequest) (FeeItemResponse, error)
	ListCustomFees(ctx context.Context, schoolID, classID string) ([]FeeItemResponse, error)
	UpdateCustomFee(ctx context.Context, schoolID, id string, req FeeItemRequest) (FeeItemResponse, error)
	DeleteCustomFee(ctx context.Context, schoolID, id string) error

	CreateRoute(ctx context.Context, schoolID string, req RouteRequest) (RouteResponse, error)
	ListRoutes(ctx context.Context, schoolID string) ([]RouteResponse, error)
	UpdateRoute(ctx context.Context, schoolID, id string, req RouteRequest) (RouteResponse, error)
	DeleteRoute(ctx context.Context, schoolID, id string) error

	AssignTransport(ctx context.Context, schoolID string, req AssignmentRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, schoolID, routeID string) ([]AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, schoolID, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, schoolID, id string) error

	GetStudentSummary(ctx context.Context, schoolID, studentID, year string) (StudentFeeSummary, error)
	RecordPayment(ctx context.Context, schoolID, actorID string, req PaymentRequest) (PaymentResponse, error)
	ListPayments(ctx context.Context, schoolID, studentID string) ([]PaymentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("fee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fee.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

// normalizeItem validates the cycle and clamps the discount to [0, base].
func normalizeItem(req FeeItemRequest) (FeeItemRequest, error) {
	cycle, err := money.ParseCycle(req.Cycle)
	if err != nil {
		return req, feeerrors.ErrInvalidCycle
	}
	req.Cycle = string(cycle)
	req.Name = strings.TrimSpace(req.Name)
	req.Discount = money.ClampDiscount(req.BaseAmount, req.Discount)
	return req, nil
}

func (s *service) ensureClass(ctx context.Context, repo Repository, schoolID, classID string) error {
	ok, err := repo.ClassExists(ctx, schoolID, classID)
	if err != nil {
		return err
	}
	if !ok {
		return feeerrors.ErrClassNotFound
	}
	return nil
}

func (s *service) CreateClassFee(ctx context.Context, schoolID string, req FeeItemRequest) (FeeItemResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return FeeItemResponse{}, apperror.ErrInvalidSchoolID
	}
	if req.ClassID == "" {
		return FeeItemResponse{}, feeerrors.ErrClassRequired
	}
	if req, err = normalizeItem(req); err != nil {
		return FeeItemResponse{}, err
	}
	if err := s.ensureClass(ctx, s.repo, schoolID, req.ClassID); err != nil {
		return FeeItemResponse{}, err
	}

	fee := &ClassFee{
		ID:         uuid.New(),
		SchoolID:   schoolUUID,
		ClassID:    uuid.MustParse(req.ClassID),
		Name:       req.Name,
		BaseAmount: req.BaseAmount,
		Discount:   req.Discount,
		IsExempt:   req.IsExempt,
		Cycle:      req.Cycle,
	}
	if err := s.repo.CreateClassFee(ctx, fee); err != nil {
		s.logger.Error("create class fee failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return FeeItemResponse{}, err
	}
	return mapClassFee(*fee), nil
}

func (s *service) ListClassFees(ctx context.Context, schoolID, classID string) ([]FeeItemResponse, error) {
	fees, err := s.repo.FindClassFees(ctx, schoolID, classID)
	if err != nil {
		return nil, err
	}
	out := make([]FeeItemResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, mapClassFee(f))
	}
	return out, nil
}

func (s *service) UpdateClassFee(ctx context.Context, schoolID, id string, req FeeItemRequest) (FeeItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FeeItemResponse{}, feeerrors.ErrInvalidID
	}
	req, err := normalizeItem(req)
	if err != nil {
		return FeeItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeeItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	fee, err := qtx.FindClassFee(ctx, schoolID, id)
	if err != nil {
		return FeeItemResponse{}, mapRepositoryError(err, feeerrors.ErrFeeNotFound)
	}
	if req.ClassID != "" && req.ClassID != fee.ClassID.String() {
		if err := s.ensureClass(ctx, qtx, schoolID, req.ClassID); err != nil {
			return FeeItemResponse{}, err
		}
		fee.ClassID = uuid.MustParse(req.ClassID)
	}

	fee.Name = req.Name
	fee.BaseAmount = req.BaseAmount
	fee.Discount = req.Discount
	fee.IsExempt = req.IsExempt
	fee.Cycle = req.Cycle

	if err := qtx.UpdateClassFee(ctx, fee); err != nil {
		return FeeItemResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return FeeItemResponse{}, err
	}
	return mapClassFee(*fee), nil
}

func (s *service) DeleteClassFee(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feeerrors.ErrInvalidID
	}
	return mapRepositoryError(s.repo.DeleteClassFee(ctx, schoolID, id), feeerrors.ErrFeeNotFound)
}

func (s *service) resolveOptionalClass(ctx context.Context, repo Repository, schoolID, classID string) (*uuid.UUID, error) {
	if classID == "" {
		return nil, nil
	}
	if err := s.ensureClass(ctx, repo, schoolID, classID); err != nil {
		return nil, err
	}
	id := uuid.MustParse(classID)
	return &id, nil
}

func (s *service) CreateCustomFee(ctx context.Context, schoolID string, req FeeItemRequest) (FeeItemResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return FeeItemResponse{}, apperror.ErrInvalidSchoolID
	}
	if req, err = normalizeItem(req); err != nil {
		return FeeItemResponse{}, err
	}
	classID, err := s.resolveOptionalClass(ctx, s.repo, schoolID, req.ClassID)
	if err != nil {
		return FeeItemResponse{}, err
	}

	fee := &CustomFee{
		ID:         uuid.New(),
		SchoolID:   schoolUUID,
		ClassID:    classID,
		Name:       req.Name,
		BaseAmount: req.BaseAmount,
		Discount:   req.Discount,
		IsExempt:   req.IsExempt,
		Cycle:      req.Cycle,
	}
	if err := s.repo.CreateCustomFee(ctx, fee); err != nil {
		s.logger.Error("create custom fee failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return FeeItemResponse{}, err
	}
	return mapCustomFee(*fee), nil
}

func (s *service) ListCustomFees(ctx context.Context, schoolID, classID string) ([]FeeItemResponse, error) {
	fees, err := s.repo.FindCustomFees(ctx, schoolID, classID)
	if err != nil {
		return nil, err
	}
	out := make([]FeeItemResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, mapCustomFee(f))
	}
	return out, nil
}

func (s *service) UpdateCustomFee(ctx context.Context, schoolID, id string, req FeeItemRequest) (FeeItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FeeItemResponse{}, feeerrors.ErrInvalidID
	}
	req, err := normalizeItem(req)
	if err != nil {
		return FeeItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeeItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	fee, err := qtx.FindCustomFee(ctx, schoolID, id)
	if err != nil {
		return FeeItemResponse{}, mapRepositoryError(err, feeerrors.ErrFeeNotFound)
	}
	classID, err := s.resolveOptionalClass(ctx, qtx, schoolID, req.ClassID)
	if err != nil {
		return FeeItemResponse{}, err
	}

	fee.ClassID = classID
	fee.Name = req.Name
	fee.BaseAmount = req.BaseAmount
	fee.Discount = req.Discount
	fee.IsExempt = req.IsExempt
	fee.Cycle = req.Cycle

	if err := qtx.UpdateCustomFee(ctx, fee); err != nil {
		return FeeItemResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return FeeItemResponse{}, err
	}
	return mapCustomFee(*fee), nil
}

func (s *service) DeleteCustomFee(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feeerrors.ErrInvalidID
	}
	return mapRepositoryError(s.repo.DeleteCustomFee(ctx, schoolID, id), feeerrors.ErrFeeNotFound)
}

func (s *service) CreateRoute(ctx context.Context, schoolID string, req RouteRequest) (RouteResponse, error) {
	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return RouteResponse{}, apperror.ErrInvalidSchoolID
	}
	cycle, err := money.ParseCycle(req.Cycle)
	if err != nil {
		return RouteResponse{}, feeerrors.ErrInvalidCycle
	}

	route := &TransportRoute{
		ID:         uuid.New(),
		SchoolID:   schoolUUID,
		Name:       strings.TrimSpace(req.Name),
		BaseAmount: req.BaseAmount,
		Cycle:      string(cycle),
	}
	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return RouteResponse{}, err
	}
	return mapRoute(*route), nil
}

func (s *service) ListRoutes(ctx context.Context, schoolID string) ([]RouteResponse, error) {
	routes, err := s.repo.FindRoutes(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, mapRoute(r))
	}
	return out, nil
}

func (s *service) UpdateRoute(ctx context.Context, schoolID, id string, req RouteRequest) (RouteResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RouteResponse{}, feeerrors.ErrInvalidID
	}
	cycle, err := money.ParseCycle(req.Cycle)
	if err != nil {
		return RouteResponse{}, feeerrors.ErrInvalidCycle
	}

	route, err := s.repo.FindRoute(ctx, schoolID, id)
	if err != nil {
		return RouteResponse{}, mapRepositoryError(err, feeerrors.ErrRouteNotFound)
	}
	route.Name = strings.TrimSpace(req.Name)
	route.BaseAmount = req.BaseAmount
	route.Cycle = string(cycle)

	if err := s.repo.UpdateRoute(ctx, route); err != nil {
		return RouteResponse{}, err
	}
	return mapRoute(*route), nil
}

func (s *service) DeleteRoute(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feeerrors.ErrInvalidID
	}
	return mapRepositoryError(s.repo.DeleteRoute(ctx, schoolID, id), feeerrors.ErrRouteNotFound)
}

func (s *service) AssignTransport(ctx context.Context, schoolID string, req AssignmentRequest) (AssignmentResponse, error) {
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

	student, err := qtx.FindStudent(ctx, schoolID, req.StudentID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, feeerrors.ErrStudentNotFound)
	}
	route, err := qtx.FindRoute(ctx, schoolID, req.RouteID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, feeerrors.ErrRouteNotFound)
	}

	a := &TransportAssignment{
		ID:          uuid.New(),
		SchoolID:    schoolUUID,
		StudentID:   uuid.MustParse(req.StudentID),
		RouteID:     route.ID,
		Discount:    money.ClampDiscount(route.BaseAmount, req.Discount),
		IsExempt:    req.IsExempt,
		StudentName: student.FullName,
		RouteName:   route.Name,
		BaseAmount:  route.BaseAmount,
		Cycle:       route.Cycle,
	}
	if err := qtx.CreateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, feeerrors.ErrAssignmentNotFound)
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}
	return mapAssignment(*a), nil
}

func (s *service) ListAssignments(ctx context.Context, schoolID, routeID string) ([]AssignmentResponse, error) {
	rows, err := s.repo.FindAssignments(ctx, schoolID, routeID)
	if err != nil {
		return nil, err
	}
	out := make([]AssignmentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, mapAssignment(a))
	}
	return out, nil
}

func (s *service) UpdateAssignment(ctx context.Context, schoolID, id string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AssignmentResponse{}, feeerrors.ErrInvalidID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindAssignment(ctx, schoolID, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, feeerrors.ErrAssignmentNotFound)
	}
	route, err := qtx.FindRoute(ctx, schoolID, req.RouteID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err, feeerrors.ErrRouteNotFound)
	}

	a.RouteID = route.ID
	a.RouteName = route.Name
	a.BaseAmount = route.BaseAmount
	a.Cycle = route.Cycle
	a.Discount = money.ClampDiscount(route.BaseAmount, req.Discount)
	a.IsExempt = req.IsExempt

	if err := qtx.UpdateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}
	return mapAssignment(*a), nil
}

func (s *service) DeleteAssignment(ctx context.Context, schoolID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feeerrors.ErrInvalidID
	}
	return mapRepositoryError(s.repo.DeleteAssignment(ctx, schoolID, id), feeerrors.ErrAssignmentNotFound)
}

func (s *service) GetStudentSummary(ctx context.Context, schoolID, studentID, year string) (StudentFeeSummary, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return StudentFeeSummary{}, feeerrors.ErrInvalidID
	}

	y := s.now().Year()
	if year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil || parsed < 1900 || parsed > 9999 {
			return StudentFeeSummary{}, feeerrors.ErrInvalidYear
		}
		y = parsed
	}

	student, err := s.repo.FindStudent(ctx, schoolID, studentID)
	if err != nil {
		return StudentFeeSummary{}, mapRepositoryError(err, feeerrors.ErrStudentNotFound)
	}

	classID := ""
	if student.ClassID != nil {
		classID = *student.ClassID
	}

	var classFees []ClassFee
	if classID != "" {
		if classFees, err = s.repo.FindClassFees(ctx, schoolID, classID); err != nil {
			return StudentFeeSummary{}, err
		}
	}
	customFees, err := s.repo.FindCustomFees(ctx, schoolID, classID)
	if err != nil {
		return StudentFeeSummary{}, err
	}

	transport, err := s.repo.FindAssignmentByStudent(ctx, schoolID, studentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return StudentFeeSummary{}, err
		}
		transport = nil
	}

	from := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	paid, err := s.repo.SumPayments(ctx, schoolID, studentID, from, to)
	if err != nil {
		return StudentFeeSummary{}, err
	}

	return BuildSummary(*student, y, classFees, customFees, transport, paid), nil
}

func (s *service) RecordPayment(ctx context.Context, schoolID, actorID string, req PaymentRequest) (PaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return PaymentResponse{}, apperror.ErrInvalidSchoolID
	}
	if req.Amount <= 0 {
		return PaymentResponse{}, apperror.InvalidField("amount")
	}

	paidOn := s.now().UTC()
	if req.PaidOn != "" {
		if paidOn, err = time.Parse(dateLayout, req.PaidOn); err != nil {
			return PaymentResponse{}, apperror.ErrInvalidDateFormat
		}
	}
	method := req.Method
	if method == "" {
		method = "cash"
	}

	if _, err := s.repo.FindStudent(ctx, schoolID, req.StudentID); err != nil {
		return PaymentResponse{}, mapRepositoryError(err, feeerrors.ErrStudentNotFound)
	}

	var recordedBy *uuid.UUID
	if id, err := uuid.Parse(actorID); err == nil {
		recordedBy = &id
	}

	p := &Payment{
		ID:         uuid.New(),
		SchoolID:   schoolUUID,
		StudentID:  uuid.MustParse(req.StudentID),
		Amount:     req.Amount,
		PaidOn:     paidOn,
		Method:     method,
		Reference:  strings.TrimSpace(req.Reference),
		Note:       strings.TrimSpace(req.Note),
		RecordedBy: recordedBy,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		s.logger.Error("record fee payment failed", zap.String("request_id", rid), zap.Error(err))
		return PaymentResponse{}, err
	}

	s.logger.Info("fee payment recorded",
		zap.String("request_id", rid),
		zap.String("student_id", req.StudentID),
		zap.Int64("amount", req.Amount),
	)
	return mapPayment(*p), nil
}

func (s *service) ListPayments(ctx context.Context, schoolID, studentID string) ([]PaymentResponse, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return nil, feeerrors.ErrInvalidID
	}
	payments, err := s.repo.FindPayments(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, mapPayment(p))
	}
	return out, nil
}

func mapClassFee(f ClassFee) FeeItemResponse {
	classID := f.ClassID.String()
	li := f.LineItem()
	return FeeItemResponse{
		ID:           f.ID.String(),
		ClassID:      &classID,
		ClassName:    f.ClassName,
		Name:         f.Name,
		BaseAmount:   f.BaseAmount,
		Discount:     f.Discount,
		IsExempt:     f.IsExempt,
		Cycle:        f.Cycle,
		FinalAmount:  li.FinalAmount(),
		AnnualAmount: li.AnnualAmount(),
	}
}

func mapCustomFee(f CustomFee) FeeItemResponse {
	var classID *string
	if f.ClassID != nil {
		id := f.ClassID.String()
		classID = &id
	}
	li := f.LineItem()
	return FeeItemResponse{
		ID:           f.ID.String(),
		ClassID:      classID,
		ClassName:    f.ClassName,
		Name:         f.Name,
		BaseAmount:   f.BaseAmount,
		Discount:     f.Discount,
		IsExempt:     f.IsExempt,
		Cycle:        f.Cycle,
		FinalAmount:  li.FinalAmount(),
		AnnualAmount: li.AnnualAmount(),
	}
}

func mapRoute(r TransportRoute) RouteResponse {
	return RouteResponse{ID: r.ID.String(), Name: r.Name, BaseAmount: r.BaseAmount, Cycle: r.Cycle}
}

func mapAssignment(a TransportAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID.String(),
		StudentID:   a.StudentID.String(),
		StudentName: a.StudentName,
		RouteID:     a.RouteID.String(),
		RouteName:   a.RouteName,
		BaseAmount:  a.BaseAmount,
		Discount:    a.Discount,
		IsExempt:    a.IsExempt,
		Cycle:       a.Cycle,
		FinalAmount: a.LineItem().FinalAmount(),
	}
}

func mapPayment(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		StudentID: p.StudentID.String(),
		Amount:    p.Amount,
		PaidOn:    p.PaidOn.Format(dateLayout),
		Method:    p.Method,
		Reference: p.Reference,
		Note:      p.Note,
	}
}

package fee

import (
	"context"
	"database/sql"
	"time"

	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=fee_repo.go -destination=mock/fee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ClassExists(ctx context.Context, schoolID, classID string) (bool, error)
	FindStudent(ctx context.Context, schoolID, studentID string) (*StudentRef, error)

	CreateClassFee(ctx context.Context, fee *ClassFee) error
	FindClassFees(ctx context.Context, schoolID, classID string) ([]ClassFee, error)
	FindClassFee(ctx context.Context, schoolID, id string) (*ClassFee, error)
	UpdateClassFee(ctx context.Context, fee *ClassFee) error
	DeleteClassFee(ctx context.Context, schoolID, id string) error

	CreateCustomFee(ctx context.Context, fee *CustomFee) error
	FindCustomFees(ctx context.Context, schoolID, classID string) ([]CustomFee, error)
	FindCustomFee(ctx context.Context, schoolID, id string) (*CustomFee, error)
	UpdateCustomFee(ctx context.Context, fee *CustomFee) error
	DeleteCustomFee(ctx context.Context, schoolID, id string) error

	CreateRoute(ctx context.Context, route *TransportRoute) error
	FindRoutes(ctx context.Context, schoolID string) ([]TransportRoute, error)
	FindRoute(ctx context.Context, schoolID, id string) (*TransportRoute, error)
	UpdateRoute(ctx context.Context, route *TransportRoute) error
	DeleteRoute(ctx context.Context, schoolID, id string) error

	CreateAssignment(ctx context.Context, a *TransportAssignment) error
	FindAssignments(ctx context.Context, schoolID, routeID string) ([]TransportAssignment, error)
	FindAssignment(ctx context.Context, schoolID, id string) (*TransportAssignment, error)
	FindAssignmentByStudent(ctx context.Context, schoolID, studentID string) (*TransportAssignment, error)
	UpdateAssignment(ctx context.Context, a *TransportAssignment) error
	DeleteAssignment(ctx context.Context, schoolID, id string) error

	CreatePayment(ctx context.Context, p *Payment) error
	FindPayments(ctx context.Context, schoolID, studentID string) ([]Payment, error)
	SumPayments(ctx context.Context, schoolID, studentID string, from, to time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.WithSQLTx(r.db, tx)}
}

func (r *repository) softDelete(ctx context.Context, model any, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ClassExists(ctx context.Context, schoolID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindStudent(ctx context.Context, schoolID, studentID string) (*StudentRef, error) {
	var ref StudentRef
	res := r.db.WithContext(ctx).
		Table("students").
		Select("id, full_name, class_id").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", studentID, schoolID).
		Limit(1).
		Scan(&ref)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ref, nil
}

func (r *repository) classFees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&ClassFee{}).
		Select("class_fees.*, TRIM(CONCAT(classes.name, ' ', classes.section)) AS class_name").
		Joins("LEFT JOIN classes ON classes.id = class_fees.class_id")
}

func (r *repository) CreateClassFee(ctx context.Context, fee *ClassFee) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *repository) FindClassFees(ctx context.Context, schoolID, classID string) ([]ClassFee, error) {
	var fees []ClassFee
	q := r.classFees(ctx).Where("class_fees.school_id = ?", schoolID)
	if classID != "" {
		q = q.Where("class_fees.class_id = ?", classID)
	}
	err := q.Order("class_fees.name ASC").Find(&fees).Error
	return fees, err
}

func (r *repository) FindClassFee(ctx context.Context, schoolID, id string) (*ClassFee, error) {
	var fee ClassFee
	if err := r.classFees(ctx).Where("class_fees.school_id = ? AND class_fees.id = ?", schoolID, id).First(&fee).Error; err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *repository) UpdateClassFee(ctx context.Context, fee *ClassFee) error {
	return r.db.WithContext(ctx).
		Model(&ClassFee{}).
		Scopes(tenant.Scope(fee.SchoolID.String())).
		Where("id = ?", fee.ID).
		Updates(map[string]interface{}{
			"class_id":    fee.ClassID,
			"name":        fee.Name,
			"base_amount": fee.BaseAmount,
			"discount":    fee.Discount,
			"is_exempt":   fee.IsExempt,
			"cycle":       fee.Cycle,
		}).Error
}

func (r *repository) DeleteClassFee(ctx context.Context, schoolID, id string) error {
	return r.softDelete(ctx, &ClassFee{}, schoolID, id)
}

func (r *repository) customFees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&CustomFee{}).
		Select("custom_fees.*, TRIM(CONCAT(classes.name, ' ', classes.section)) AS class_name").
		Joins("LEFT JOIN classes ON classes.id = custom_fees.class_id")
}

func (r *repository) CreateCustomFee(ctx context.Context, fee *CustomFee) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

// FindCustomFees with a class id also returns the fees that apply to every class.
func (r *repository) FindCustomFees(ctx context.Context, schoolID, classID string) ([]CustomFee, error) {
	var fees []CustomFee
	q := r.customFees(ctx).Where("custom_fees.school_id = ?", schoolID)
	if classID != "" {
		q = q.Where("custom_fees.class_id IS NULL OR custom_fees.class_id = ?", classID)
	}
	err := q.Order("custom_fees.name ASC").Find(&fees).Error
	return fees, err
}

func (r *repository) FindCustomFee(ctx context.Context, schoolID, id string) (*CustomFee, error) {
	var fee CustomFee
	if err := r.customFees(ctx).Where("custom_fees.school_id = ? AND custom_fees.id = ?", schoolID, id).First(&fee).Error; err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *repository) UpdateCustomFee(ctx context.Context, fee *CustomFee) error {
	return r.db.WithContext(ctx).
		Model(&CustomFee{}).
		Scopes(tenant.Scope(fee.SchoolID.String())).
		Where("id = ?", fee.ID).
		Updates(map[string]interface{}{
			"class_id":    fee.ClassID,
			"name":        fee.Name,
			"base_amount": fee.BaseAmount,
			"discount":    fee.Discount,
			"is_exempt":   fee.IsExempt,
			"cycle":       fee.Cycle,
		}).Error
}

func (r *repository) DeleteCustomFee(ctx context.Context, schoolID, id string) error {
	return r.softDelete(ctx, &CustomFee{}, schoolID, id)
}

func (r *repository) CreateRoute(ctx context.Context, route *TransportRoute) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) FindRoutes(ctx context.Context, schoolID string) ([]TransportRoute, error) {
	var routes []TransportRoute
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Order("name ASC").
		Find(&routes).Error
	return routes, err
}

func (r *repository) FindRoute(ctx context.Context, schoolID, id string) (*TransportRoute, error) {
	var route TransportRoute
	if err := r.db.WithContext(ctx).Scopes(tenant.Scope(schoolID)).Where("id = ?", id).First(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *repository) UpdateRoute(ctx context.Context, route *TransportRoute) error {
	return r.db.WithContext(ctx).
		Model(&TransportRoute{}).
		Scopes(tenant.Scope(route.SchoolID.String())).
		Where("id = ?", route.ID).
		Updates(map[string]interface{}{
			"name":        route.Name,
			"base_amount": route.BaseAmount,
			"cycle":       route.Cycle,
		}).Error
}

func (r *repository) DeleteRoute(ctx context.Context, schoolID, id string) error {
	return r.softDelete(ctx, &TransportRoute{}, schoolID, id)
}

func (r *repository) assignments(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&TransportAssignment{}).
		Select(`transport_assignments.*, students.full_name AS student_name, transport_routes.name AS route_name,
			transport_routes.base_amount AS route_base_amount, transport_routes.cycle AS route_cycle`).
		Joins("JOIN students ON students.id = transport_assignments.student_id").
		Joins("JOIN transport_routes ON transport_routes.id = transport_assignments.route_id AND transport_routes.deleted_at IS NULL")
}

func (r *repository) CreateAssignment(ctx context.Context, a *TransportAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAssignments(ctx context.Context, schoolID, routeID string) ([]TransportAssignment, error) {
	var rows []TransportAssignment
	q := r.assignments(ctx).Where("transport_assignments.school_id = ?", schoolID)
	if routeID != "" {
		q = q.Where("transport_assignments.route_id = ?", routeID)
	}
	err := q.Order("students.full_name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAssignment(ctx context.Context, schoolID, id string) (*TransportAssignment, error) {
	var a TransportAssignment
	if err := r.assignments(ctx).Where("transport_assignments.school_id = ? AND transport_assignments.id = ?", schoolID, id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAssignmentByStudent(ctx context.Context, schoolID, studentID string) (*TransportAssignment, error) {
	var a TransportAssignment
	err := r.assignments(ctx).
		Where("transport_assignments.school_id = ? AND transport_assignments.student_id = ?", schoolID, studentID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateAssignment(ctx context.Context, a *TransportAssignment) error {
	return r.db.WithContext(ctx).
		Model(&TransportAssignment{}).
		Scopes(tenant.Scope(a.SchoolID.String())).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"route_id":  a.RouteID,
			"discount":  a.Discount,
			"is_exempt": a.IsExempt,
		}).Error
}

func (r *repository) DeleteAssignment(ctx context.Context, schoolID, id string) error {
	return r.softDelete(ctx, &TransportAssignment{}, schoolID, id)
}

func (r *repository) CreatePayment(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPayments(ctx context.Context, schoolID, studentID string) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("student_id = ?", studentID).
		Order("paid_on DESC, created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) SumPayments(ctx context.Context, schoolID, studentID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Payment{}).
		Scopes(tenant.Scope(schoolID)).
		Where("student_id = ?", studentID).
		Where("paid_on BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

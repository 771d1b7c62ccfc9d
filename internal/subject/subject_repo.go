package subject

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"
	"go-school/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=subject_repo.go -destination=mock/subject_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, subject *Subject) error
	FindAllBySchool(ctx context.Context, schoolID string) ([]Subject, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Subject, error)
	ClassExists(ctx context.Context, schoolID, classID string) (bool, error)
	Update(ctx context.Context, subject *Subject) error
	Delete(ctx context.Context, schoolID, id string) error
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

func (r *repository) Create(ctx context.Context, subject *Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *repository) FindAllBySchool(ctx context.Context, schoolID string) ([]Subject, error) {
	var subjects []Subject
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Order("name ASC").
		Find(&subjects).Error
	return subjects, err
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Subject, error) {
	var subject Subject
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&subject, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *repository) ClassExists(ctx context.Context, schoolID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("classes").
		Where("id = ? AND school_id = ? AND deleted_at IS NULL", classID, schoolID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, subject *Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&Subject{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

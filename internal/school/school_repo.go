package school

import (
	"context"
	"database/sql"
	"go-school/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=school_repo.go -destination=mock/school_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, school *School) error
	GetByID(ctx context.Context, id uuid.UUID) (*School, error)
	Update(ctx context.Context, school *School) error
	JoinCodeExists(ctx context.Context, code string) (bool, error)
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

func (r *repository) Create(ctx context.Context, school *School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*School, error) {
	var school School
	err := r.db.WithContext(ctx).First(&school, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *repository) Update(ctx context.Context, school *School) error {
	return r.db.WithContext(ctx).Save(school).Error
}

func (r *repository) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&School{}).Where("join_code = ?", code).Count(&count).Error
	return count > 0, err
}

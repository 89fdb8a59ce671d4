package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/types"
)

type MistakeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Mistake) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Mistake, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Mistake, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Mistake) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type mistakeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMistakeRepo(db *gorm.DB, baseLog *logger.Logger) MistakeRepo {
	return &mistakeRepo{db: db, log: baseLog.With("repo", "MistakeRepo")}
}

func (r *mistakeRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Mistake) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(row).Error
}

// GetByID returns (nil, nil) when no row matches; the service layer decides
// how absence surfaces.
func (r *mistakeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Mistake, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Mistake
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetAll returns every mistake, newest first.
func (r *mistakeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Mistake, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Mistake
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mistakeRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Mistake) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Save(row).Error
}

func (r *mistakeRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Mistake{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

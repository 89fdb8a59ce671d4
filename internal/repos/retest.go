package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/types"
)

type RetestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Retest) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Retest, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Retest, error)
	GetByMistakeID(ctx context.Context, tx *gorm.DB, mistakeID uuid.UUID) ([]*types.Retest, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Retest) error
	DeleteByMistakeID(ctx context.Context, tx *gorm.DB, mistakeID uuid.UUID) error
}

type retestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRetestRepo(db *gorm.DB, baseLog *logger.Logger) RetestRepo {
	return &retestRepo{db: db, log: baseLog.With("repo", "RetestRepo")}
}

func (r *retestRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Retest) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).Create(&rows).Error
}

// GetByID returns (nil, nil) when no row matches.
func (r *retestRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Retest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Retest
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

// GetAll returns every retest, ascending by due-date.
func (r *retestRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Retest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Retest
	if err := transaction.WithContext(ctx).
		Order("scheduled_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *retestRepo) GetByMistakeID(ctx context.Context, tx *gorm.DB, mistakeID uuid.UUID) ([]*types.Retest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Retest
	if mistakeID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("mistake_id = ?", mistakeID).
		Order("scheduled_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *retestRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Retest) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Save(row).Error
}

func (r *retestRepo) DeleteByMistakeID(ctx context.Context, tx *gorm.DB, mistakeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if mistakeID == uuid.Nil {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("mistake_id = ?", mistakeID).
		Delete(&types.Retest{}).Error
}

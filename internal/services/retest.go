package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/pkg/apperr"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/repos"
	"github.com/relearnhq/relearn-backend/internal/spacing"
	"github.com/relearnhq/relearn-backend/internal/types"
)

type RetestService interface {
	List(ctx context.Context) ([]*types.Retest, error)
	Complete(ctx context.Context, id uuid.UUID, result types.RetestResult) (*types.Retest, error)
}

type retestService struct {
	db       *gorm.DB
	log      *logger.Logger
	mistakes repos.MistakeRepo
	retests  repos.RetestRepo
}

func NewRetestService(db *gorm.DB, baseLog *logger.Logger, mistakes repos.MistakeRepo, retests repos.RetestRepo) RetestService {
	return &retestService{
		db:       db,
		log:      baseLog.With("service", "RetestService"),
		mistakes: mistakes,
		retests:  retests,
	}
}

func (s *retestService) List(ctx context.Context) ([]*types.Retest, error) {
	return s.retests.GetAll(ctx, nil)
}

// Complete runs the whole completion state machine in one transaction:
// mark the retest done, bump the owning mistake's count and last-reviewed
// time, re-evaluate mastery (applied OR-only so the flag stays monotone),
// and on a failure of a not-yet-mastered mistake schedule exactly one
// follow-up retest one day out. A completed retest is terminal.
func (s *retestService) Complete(ctx context.Context, id uuid.UUID, result types.RetestResult) (*types.Retest, error) {
	if !result.Valid() {
		return nil, apperr.Invalidf("unknown result %q", result)
	}

	var row *types.Retest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		retest, err := s.retests.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if retest == nil {
			return apperr.NotFoundf("retest %s", id)
		}
		if retest.Completed {
			return apperr.Invalidf("retest %s is already completed", id)
		}

		now := time.Now().UTC()
		retest.Completed = true
		retest.Result = result
		retest.CompletedAt = &now
		if err := s.retests.Update(ctx, tx, retest); err != nil {
			return err
		}

		mistake, err := s.mistakes.GetByID(ctx, tx, retest.MistakeID)
		if err != nil {
			return err
		}
		if mistake != nil {
			mistake.RetestCount++
			mistake.LastReviewedAt = &now

			history, err := s.retests.GetByMistakeID(ctx, tx, mistake.ID)
			if err != nil {
				return err
			}
			// Apply only a positive evaluation; mastery never reverts.
			if spacing.IsMastered(history) {
				mistake.Mastered = true
			}
			if err := s.mistakes.Update(ctx, tx, mistake); err != nil {
				return err
			}

			if result == types.ResultIncorrect && !mistake.Mastered {
				followUp := &types.Retest{
					ID:            uuid.New(),
					MistakeID:     mistake.ID,
					ScheduledDate: spacing.RescheduleAfterFailure(now),
				}
				if err := s.retests.Create(ctx, tx, []*types.Retest{followUp}); err != nil {
					return err
				}
			}
		}

		row = retest
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Retest completed", "retest_id", row.ID, "mistake_id", row.MistakeID, "result", result)
	return row, nil
}

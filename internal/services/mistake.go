package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/pkg/apperr"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/repos"
	"github.com/relearnhq/relearn-backend/internal/spacing"
	"github.com/relearnhq/relearn-backend/internal/types"
)

// MistakeInput is the request shape shared by create and update.
type MistakeInput struct {
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           types.Category `json:"category"`
	RootCause          string         `json:"rootCause"`
	CorrectedPrinciple string         `json:"correctedPrinciple"`
}

func (in MistakeInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Invalidf("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return apperr.Invalidf("description is required")
	}
	if !in.Category.Valid() {
		return apperr.Invalidf("unknown category %q", in.Category)
	}
	return nil
}

type MistakeService interface {
	List(ctx context.Context) ([]*types.Mistake, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Mistake, error)
	Create(ctx context.Context, in MistakeInput) (*types.Mistake, error)
	Update(ctx context.Context, id uuid.UUID, in MistakeInput) (*types.Mistake, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mistakeService struct {
	db       *gorm.DB
	log      *logger.Logger
	mistakes repos.MistakeRepo
	retests  repos.RetestRepo
}

func NewMistakeService(db *gorm.DB, baseLog *logger.Logger, mistakes repos.MistakeRepo, retests repos.RetestRepo) MistakeService {
	return &mistakeService{
		db:       db,
		log:      baseLog.With("service", "MistakeService"),
		mistakes: mistakes,
		retests:  retests,
	}
}

func (s *mistakeService) List(ctx context.Context) ([]*types.Mistake, error) {
	return s.mistakes.GetAll(ctx, nil)
}

func (s *mistakeService) Get(ctx context.Context, id uuid.UUID) (*types.Mistake, error) {
	row, err := s.mistakes.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFoundf("mistake %s", id)
	}
	return row, nil
}

// Create persists the mistake and its full retest schedule in one
// transaction: one retest per policy offset for the chosen category.
func (s *mistakeService) Create(ctx context.Context, in MistakeInput) (*types.Mistake, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row := &types.Mistake{
		ID:                 uuid.New(),
		Title:              in.Title,
		Description:        in.Description,
		Category:           in.Category,
		RootCause:          in.RootCause,
		CorrectedPrinciple: in.CorrectedPrinciple,
		CreatedAt:          now,
		RetestCount:        0,
		Mastered:           false,
	}

	schedule := spacing.InitialSchedule(in.Category, now)
	retestRows := make([]*types.Retest, 0, len(schedule))
	for _, due := range schedule {
		retestRows = append(retestRows, &types.Retest{
			ID:            uuid.New(),
			MistakeID:     row.ID,
			ScheduledDate: due,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.mistakes.Create(ctx, tx, row); err != nil {
			return err
		}
		return s.retests.Create(ctx, tx, retestRows)
	})
	if err != nil {
		s.log.Error("Failed to create mistake", "error", err)
		return nil, err
	}

	s.log.Info("Mistake created", "mistake_id", row.ID, "category", row.Category, "retests_scheduled", len(retestRows))
	return row, nil
}

// Update replaces the user-editable fields only. Timestamps, retest count and
// the mastered flag never change here, and a category change does not
// regenerate the already-created retest schedule: scheduled retests are
// commitments made under the policy in force at creation time.
func (s *mistakeService) Update(ctx context.Context, id uuid.UUID, in MistakeInput) (*types.Mistake, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row *types.Mistake
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.mistakes.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFoundf("mistake %s", id)
		}
		existing.Title = in.Title
		existing.Description = in.Description
		existing.Category = in.Category
		existing.RootCause = in.RootCause
		existing.CorrectedPrinciple = in.CorrectedPrinciple
		if err := s.mistakes.Update(ctx, tx, existing); err != nil {
			return err
		}
		row = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes the mistake and cascades to every retest referencing it.
func (s *mistakeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existed, err := s.mistakes.DeleteByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !existed {
			return apperr.NotFoundf("mistake %s", id)
		}
		return s.retests.DeleteByMistakeID(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("Mistake deleted", "mistake_id", id)
	return nil
}

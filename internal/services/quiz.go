package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/repos"
	"github.com/relearnhq/relearn-backend/internal/types"
)

// quizLimit caps a quiz session at ten questions.
const quizLimit = 10

type QuizService interface {
	Questions(ctx context.Context) ([]types.QuizQuestion, error)
}

type quizService struct {
	db       *gorm.DB
	log      *logger.Logger
	mistakes repos.MistakeRepo
}

func NewQuizService(db *gorm.DB, baseLog *logger.Logger, mistakes repos.MistakeRepo) QuizService {
	return &quizService{
		db:       db,
		log:      baseLog.With("service", "QuizService"),
		mistakes: mistakes,
	}
}

// Questions derives a quiz from the newest non-mastered mistakes. Nothing is
// persisted; answering happens through retest completion.
func (s *quizService) Questions(ctx context.Context) ([]types.QuizQuestion, error) {
	mistakes, err := s.mistakes.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	questions := make([]types.QuizQuestion, 0, quizLimit)
	for _, m := range mistakes {
		if m.Mastered {
			continue
		}
		questions = append(questions, types.QuizQuestion{
			MistakeID:        m.ID,
			Question:         m.Description,
			Category:         m.Category,
			CorrectPrinciple: m.CorrectedPrinciple,
		})
		if len(questions) == quizLimit {
			break
		}
	}
	return questions, nil
}

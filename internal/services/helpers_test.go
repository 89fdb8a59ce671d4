package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/repos"
	"github.com/relearnhq/relearn-backend/internal/types"
)

type testEnv struct {
	db       *gorm.DB
	mistakes repos.MistakeRepo
	retests  repos.RetestRepo
}

// newTestEnv opens a fresh named in-memory sqlite database per test so tests
// stay isolated while the connection pool still sees one shared store.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&types.Mistake{}, &types.Retest{}))

	log := logger.NewNop()
	return testEnv{
		db:       db,
		mistakes: repos.NewMistakeRepo(db, log),
		retests:  repos.NewRetestRepo(db, log),
	}
}

func (e testEnv) mistakeService() MistakeService {
	return NewMistakeService(e.db, logger.NewNop(), e.mistakes, e.retests)
}

func (e testEnv) retestService() RetestService {
	return NewRetestService(e.db, logger.NewNop(), e.mistakes, e.retests)
}

func (e testEnv) quizService() QuizService {
	return NewQuizService(e.db, logger.NewNop(), e.mistakes)
}

func validInput(category types.Category) MistakeInput {
	return MistakeInput{
		Title:              "Mixed up integral bounds",
		Description:        "Swapped the limits of integration and kept the sign",
		Category:           category,
		RootCause:          "Rushed through setup",
		CorrectedPrinciple: "Swapping bounds flips the sign of the integral",
	}
}

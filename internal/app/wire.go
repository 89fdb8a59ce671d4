package app

import (
	"gorm.io/gorm"

	httppkg "github.com/relearnhq/relearn-backend/internal/http"
	httpH "github.com/relearnhq/relearn-backend/internal/http/handlers"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/repos"
	"github.com/relearnhq/relearn-backend/internal/services"
)

type Repos struct {
	Mistakes repos.MistakeRepo
	Retests  repos.RetestRepo
}

type Services struct {
	Mistakes services.MistakeService
	Retests  services.RetestService
	Stats    services.StatsService
	Quiz     services.QuizService
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Mistake  *httpH.MistakeHandler
	Retest   *httpH.RetestHandler
	Stats    *httpH.StatsHandler
	Quiz     *httpH.QuizHandler
	Category *httpH.CategoryHandler
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Mistakes: repos.NewMistakeRepo(db, log),
		Retests:  repos.NewRetestRepo(db, log),
	}
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Mistakes: services.NewMistakeService(db, log, r.Mistakes, r.Retests),
		Retests:  services.NewRetestService(db, log, r.Mistakes, r.Retests),
		Stats:    services.NewStatsService(db, log, r.Mistakes, r.Retests),
		Quiz:     services.NewQuizService(db, log, r.Mistakes),
	}
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Mistake:  httpH.NewMistakeHandler(log, s.Mistakes),
		Retest:   httpH.NewRetestHandler(log, s.Retests),
		Stats:    httpH.NewStatsHandler(log, s.Stats),
		Quiz:     httpH.NewQuizHandler(log, s.Quiz),
		Category: httpH.NewCategoryHandler(),
	}
}

func wireServer(log *logger.Logger, h Handlers, tracingService string) *httppkg.Server {
	return httppkg.NewServer(httppkg.RouterConfig{
		Log:             log,
		HealthHandler:   h.Health,
		MistakeHandler:  h.Mistake,
		RetestHandler:   h.Retest,
		StatsHandler:    h.Stats,
		QuizHandler:     h.Quiz,
		CategoryHandler: h.Category,
		TracingService:  tracingService,
	})
}

package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/relearnhq/relearn-backend/internal/http/handlers"
	httpMW "github.com/relearnhq/relearn-backend/internal/http/middleware"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler   *httpH.HealthHandler
	MistakeHandler  *httpH.MistakeHandler
	RetestHandler   *httpH.RetestHandler
	StatsHandler    *httpH.StatsHandler
	QuizHandler     *httpH.QuizHandler
	CategoryHandler *httpH.CategoryHandler

	// TracingService names the otelgin span source; tracing middleware is
	// skipped when empty.
	TracingService string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Mistakes
		if cfg.MistakeHandler != nil {
			api.GET("/mistakes", cfg.MistakeHandler.List)
			api.GET("/mistakes/:id", cfg.MistakeHandler.Get)
			api.POST("/mistakes", cfg.MistakeHandler.Create)
			api.PUT("/mistakes/:id", cfg.MistakeHandler.Update)
			api.DELETE("/mistakes/:id", cfg.MistakeHandler.Delete)
		}

		// Retests
		if cfg.RetestHandler != nil {
			api.GET("/retests", cfg.RetestHandler.List)
			api.PUT("/retests/:id/complete", cfg.RetestHandler.Complete)
		}

		// Stats
		if cfg.StatsHandler != nil {
			api.GET("/stats", cfg.StatsHandler.Weekly)
		}

		// Quiz
		if cfg.QuizHandler != nil {
			api.GET("/quiz", cfg.QuizHandler.Questions)
		}

		// Categories
		if cfg.CategoryHandler != nil {
			api.GET("/categories", cfg.CategoryHandler.List)
		}
	}

	return r
}

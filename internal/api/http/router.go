// Package http wires the gin router for the analysis API.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/poligap/poligap/internal/api/http/handler"
	"github.com/poligap/poligap/internal/api/http/middleware"
	"github.com/poligap/poligap/internal/app/service"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/internal/observability/metrics"
	"github.com/poligap/poligap/pkg/config"
	"github.com/poligap/poligap/pkg/validator"
)

// Router assembles the HTTP surface of the analysis service.
type Router struct {
	engine    *gin.Engine
	config    *config.Config
	logger    logging.Logger
	collector *metrics.Collector

	analysisHandler *handler.AnalysisHandler
	healthHandler   *handler.HealthHandler
}

// NewRouter creates the HTTP router with all middleware and routes installed.
func NewRouter(
	cfg *config.Config,
	logger logging.Logger,
	collector *metrics.Collector,
	analysisService service.AnalysisService,
	version string,
) *Router {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.UseJSONTagNames()

	router := &Router{
		engine:          gin.New(),
		config:          cfg,
		logger:          logger,
		collector:       collector,
		analysisHandler: handler.NewAnalysisHandler(analysisService, logger),
		healthHandler:   handler.NewHealthHandler(version),
	}

	router.setupMiddleware()
	router.setupRoutes()
	return router
}

func (r *Router) setupMiddleware() {
	r.engine.Use(gin.Recovery())

	if r.config.Server.EnableCORS {
		r.engine.Use(cors.New(cors.Config{
			AllowOrigins:  r.config.Server.CORSAllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.engine.Use(middleware.RequestLogging(r.logger))

	if r.config.Server.EnableMetrics && r.collector != nil {
		r.engine.Use(middleware.Metrics(r.collector))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/healthz", r.healthHandler.Healthz)

	if r.config.Server.EnableMetrics && r.collector != nil {
		r.engine.GET("/metrics", gin.WrapH(r.collector.Handler()))
	}

	v1 := r.engine.Group("/api/v1")
	{
		analysis := v1.Group("/analysis")
		{
			analysis.POST("", r.analysisHandler.Analyze)
			analysis.POST("/suggest", r.analysisHandler.Suggest)
			analysis.POST("/extract", r.analysisHandler.Extract)
			analysis.POST("/validate", r.analysisHandler.Validate)
			analysis.GET("", r.analysisHandler.ListAnalyses)
			analysis.GET("/:id", r.analysisHandler.GetAnalysis)
		}
	}
}

// Handler returns the underlying http.Handler for server wiring.
func (r *Router) Handler() http.Handler {
	return r.engine
}

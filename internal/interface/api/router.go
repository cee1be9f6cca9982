package api

import (
	"net/http"

	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries the handlers and cross-cutting dependencies of the HTTP surface
type RouterConfig struct {
	TourHandler     *TourHandler
	CruiseHandler   *CruiseHandler
	ActivityHandler *ActivityHandler
	MetricsHandler  http.Handler
	Metrics         *metrics.Metrics
	Logger          logger.Logger
}

// NewRouter builds the gin engine
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}
	r.Use(Metrics(cfg.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	v1 := r.Group("/api/v1")
	{
		if cfg.TourHandler != nil {
			v1.POST("/tours", cfg.TourHandler.Save)
			v1.GET("/tours/:id", cfg.TourHandler.Get)
			v1.DELETE("/tours/:id", cfg.TourHandler.Delete)
			v1.PATCH("/tours/:id/status", cfg.TourHandler.SetStatus)
		}

		if cfg.CruiseHandler != nil {
			v1.POST("/cruises", cfg.CruiseHandler.Save)
			v1.GET("/cruises/:id", cfg.CruiseHandler.Get)
			v1.DELETE("/cruises/:id", cfg.CruiseHandler.Delete)
			v1.PATCH("/cruises/:id/status", cfg.CruiseHandler.SetStatus)
		}

		if cfg.ActivityHandler != nil {
			v1.GET("/activity", cfg.ActivityHandler.List)
		}
	}

	return r
}

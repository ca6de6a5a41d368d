package api

import (
	"net/http"

	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires handlers and middleware onto router. gatherer may be nil
// to skip the /metrics endpoint.
func SetupRoutes(
	router *gin.Engine,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
	sessionService service.SessionService,
	coachService service.CoachService,
) {
	sessionHandler := NewSessionHandler(sessionService)
	coachHandler := NewCoachHandler(coachService)

	router.Use(RecoveryMiddleware(metricsManager))
	if metricsManager != nil {
		router.Use(MetricsMiddleware(metricsManager))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		// POST /api/v1/sessions
		apiV1.POST("/sessions", sessionHandler.StartSession)
	}

	coachGroup := apiV1.Group("/coach")
	coachGroup.Use(SessionMiddleware(sessionService))
	{
		coachGroup.POST("/plan", coachHandler.GetPlan)
		coachGroup.POST("/plan/swap", coachHandler.SwapPlan)
		coachGroup.POST("/plan/export", coachHandler.ExportPlan)
		coachGroup.POST("/feedback", coachHandler.SubmitFeedback)
		coachGroup.GET("/history", coachHandler.GetHistory)
	}
}

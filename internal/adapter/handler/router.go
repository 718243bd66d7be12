package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/transcrypt/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	captionHandler    *Caption
	transcriptHandler *Transcript
	paymentHandler    *Payment
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, captionHandler *Caption, transcriptHandler *Transcript, paymentHandler *Payment) *Router {
	return &Router{
		cfg:               cfg,
		captionHandler:    captionHandler,
		transcriptHandler: transcriptHandler,
		paymentHandler:    paymentHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupCaptionRoutes(v1)
	rt.setupTranscriptRoutes(v1)
	rt.setupPaymentRoutes(v1)
}

// setupCaptionRoutes configures the caption proxy
func (rt *Router) setupCaptionRoutes(g *echo.Group) {
	captionGroup := g.Group("/captions")

	if rt.captionHandler != nil {
		captionGroup.GET("", rt.captionHandler.ListTracks)
		captionGroup.GET("/track", rt.captionHandler.FetchTrack)
	} else {
		captionGroup.GET("", rt.notImplemented)
		captionGroup.GET("/track", rt.notImplemented)
	}
}

// setupTranscriptRoutes configures transcript sessions
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcriptGroup := g.Group("/transcripts")

	if rt.transcriptHandler == nil {
		transcriptGroup.Any("*", rt.notImplemented)
		return
	}
	requireID := RequireSessionID(rt.transcriptHandler.logger)

	transcriptGroup.POST("", rt.transcriptHandler.Create)
	transcriptGroup.GET("/:id", rt.transcriptHandler.Get, requireID)
	transcriptGroup.PUT("/:id/timestamps", rt.transcriptHandler.SetTimestamps, requireID)
	transcriptGroup.GET("/:id/export", rt.transcriptHandler.Export, requireID)
	transcriptGroup.DELETE("/:id", rt.transcriptHandler.Delete, requireID)
}

// setupPaymentRoutes configures donation payments
func (rt *Router) setupPaymentRoutes(g *echo.Group) {
	paymentGroup := g.Group("/payments")

	if rt.paymentHandler != nil {
		paymentGroup.GET("/options", rt.paymentHandler.Options)
		paymentGroup.POST("/intents", rt.paymentHandler.CreateIntent)
	} else {
		paymentGroup.GET("/options", rt.notImplemented)
		paymentGroup.POST("/intents", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "production"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}

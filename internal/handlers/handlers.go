// Package handlers exposes the feed service over HTTP. Each handler
// binds the request, pulls the session user from the gin context, calls
// into the domain layer, and maps domain errors to status codes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/logging"
	"github.com/lockehooper/fritter-fe/pkg/middleware"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// FeedMetrics bundles the business metrics the handlers record.
type FeedMetrics struct {
	TimelineRebuilds *prometheus.CounterVec
	EventFanout      *prometheus.HistogramVec
}

// Handlers holds the wired domain services plus ambient dependencies.
type Handlers struct {
	timelines       TimelineManager
	events          EventService
	classifications ClassificationGuard
	freets          FreetStore
	users           UserStore
	validationToken string
	logger          logging.Logger
	metrics         *FeedMetrics
}

// New wires the handler set.
func New(
	timelines TimelineManager,
	events EventService,
	classifications ClassificationGuard,
	freets FreetStore,
	users UserStore,
	validationToken string,
	logger logging.Logger,
	metrics *FeedMetrics,
) *Handlers {
	return &Handlers{
		timelines:       timelines,
		events:          events,
		classifications: classifications,
		freets:          freets,
		users:           users,
		validationToken: validationToken,
		logger:          logger,
		metrics:         metrics,
	}
}

// RegisterRoutes mounts the API. Everything except signup and user lookup
// requires a session user.
func (h *Handlers) RegisterRoutes(app *gin.Engine) {
	api := app.Group("/api")

	api.POST("/users", h.CreateUser)
	api.GET("/users/:username", h.GetUser)

	authed := api.Group("")
	authed.Use(middleware.RequireSessionUser())

	authed.GET("/timeline", h.GetTimeline)

	authed.GET("/freets", h.ListFreets)
	authed.POST("/freets", h.CreateFreet)
	authed.PUT("/freets/:freetId", h.UpdateFreet)
	authed.DELETE("/freets/:freetId", h.DeleteFreet)

	authed.POST("/follows/:username", h.Follow)
	authed.DELETE("/follows/:username", h.Unfollow)

	authed.GET("/events", h.ListEvents)
	authed.GET("/events/:eventId", h.GetEvent)
	authed.POST("/events", h.CreateEvent)
	authed.PUT("/events/:eventId", h.UpdateEvent)
	authed.DELETE("/events/:eventId", h.DeleteEvent)

	authed.GET("/classification", h.GetClassification)
	authed.POST("/classification", h.CreateClassification)
	authed.PUT("/classification", h.UpdateClassification)
	authed.DELETE("/classification", h.DeleteClassification)
}

// respondError maps a domain error to a status code and a safe message.
// Internal errors are logged with their cause and masked in the body.
func (h *Handlers) respondError(c *gin.Context, err error) {
	status := apierrors.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.WithFields(logging.Fields{
			"error":      err.Error(),
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
		}).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": apierrors.PublicMessage(err)})
}

func (h *Handlers) validationOK(req models.ClassificationRequest) bool {
	return req.Validation == h.validationToken
}

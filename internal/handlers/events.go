package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lockehooper/fritter-fe/pkg/middleware"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// ListEvents returns all events, or the events owned by ?owner=username.
func (h *Handlers) ListEvents(c *gin.Context) {
	var (
		events []models.Event
		err    error
	)
	if owner := c.Query("owner"); owner != "" {
		events, err = h.events.ListByOwner(c.Request.Context(), owner)
	} else {
		events, err = h.events.List(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent returns one event with the merged freets of its participants.
func (h *Handlers) GetEvent(c *gin.Context) {
	start := time.Now()
	resp, err := h.events.Get(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		if h.metrics != nil {
			h.metrics.EventFanout.WithLabelValues("error").Observe(time.Since(start).Seconds())
		}
		h.respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.EventFanout.WithLabelValues("success").Observe(time.Since(start).Seconds())
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEvent creates an event owned by the session user.
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	e, err := h.events.Create(c.Request.Context(), middleware.SessionUserID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UpdateEvent applies a partial update to an event the session user owns.
func (h *Handlers) UpdateEvent(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	e, err := h.events.Update(c.Request.Context(), middleware.SessionUserID(c), c.Param("eventId"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEvent removes an event the session user owns.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), middleware.SessionUserID(c), c.Param("eventId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

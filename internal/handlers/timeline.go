package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/middleware"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// GetTimeline rebuilds and returns the session user's timeline for the
// requested variant. The variant is taken verbatim from the query string;
// anything other than FEATURED or FOLLOWING is rejected downstream.
func (h *Handlers) GetTimeline(c *gin.Context) {
	userID := middleware.SessionUserID(c)
	variant := c.Query("variant")

	entry, freets, err := h.timelines.GetOrRefresh(c.Request.Context(), userID, variant)
	if err != nil {
		if h.metrics != nil {
			label := variant
			if apierrors.KindOf(err) == apierrors.KindInvalidVariant {
				label = "invalid"
			}
			h.metrics.TimelineRebuilds.WithLabelValues(label, "error").Inc()
		}
		h.respondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TimelineRebuilds.WithLabelValues(variant, "success").Inc()
	}

	c.JSON(http.StatusOK, models.TimelineResponse{
		ID:          entry.ID,
		Variant:     entry.Variant,
		Freets:      freets,
		RefreshedAt: entry.RefreshedAt,
	})
}

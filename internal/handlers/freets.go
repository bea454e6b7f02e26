package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/middleware"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// defaultFreetsLimit caps the unfiltered freet listing.
const defaultFreetsLimit = 100

// maxFreetLength is the classic short-post content cap.
const maxFreetLength = 140

// ListFreets returns recent freets, or all freets by ?author=username.
func (h *Handlers) ListFreets(c *gin.Context) {
	var (
		freets []models.Freet
		err    error
	)
	if author := c.Query("author"); author != "" {
		if _, err := h.users.UserByUsername(c.Request.Context(), author); err != nil {
			h.respondError(c, err)
			return
		}
		freets, err = h.freets.FreetsByAuthor(c.Request.Context(), author)
	} else {
		freets, err = h.freets.RecentFreets(c.Request.Context(), defaultFreetsLimit)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"freets": freets})
}

// CreateFreet posts a freet authored by the session user.
func (h *Handlers) CreateFreet(c *gin.Context) {
	var req models.CreateFreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if len(req.Content) > maxFreetLength {
		h.respondError(c, apierrors.New(apierrors.KindInvalidContent, "freets must be at most %d characters", maxFreetLength))
		return
	}

	user, err := h.users.UserByID(c.Request.Context(), middleware.SessionUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	f, err := h.freets.CreateFreet(c.Request.Context(), user.Username, req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateFreet edits a freet's content. Only the author may edit.
func (h *Handlers) UpdateFreet(c *gin.Context) {
	var req models.UpdateFreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if len(req.Content) > maxFreetLength {
		h.respondError(c, apierrors.New(apierrors.KindInvalidContent, "freets must be at most %d characters", maxFreetLength))
		return
	}

	f, err := h.authorizeFreet(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.freets.UpdateFreetContent(c.Request.Context(), f.ID, req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFreet removes a freet. Only the author may delete.
func (h *Handlers) DeleteFreet(c *gin.Context) {
	f, err := h.authorizeFreet(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.freets.DeleteFreet(c.Request.Context(), f.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Freet deleted"})
}

// authorizeFreet resolves the :freetId parameter and checks that the
// session user is its author.
func (h *Handlers) authorizeFreet(c *gin.Context) (models.Freet, error) {
	f, err := h.freets.FreetByID(c.Request.Context(), c.Param("freetId"))
	if err != nil {
		return models.Freet{}, err
	}
	user, err := h.users.UserByID(c.Request.Context(), middleware.SessionUserID(c))
	if err != nil {
		return models.Freet{}, err
	}
	if f.Author != user.Username {
		return models.Freet{}, apierrors.Forbidden("Cannot modify other users' freets")
	}
	return f, nil
}

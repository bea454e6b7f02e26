package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lockehooper/fritter-fe/pkg/middleware"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// GetClassification returns the session user's classification, with NONE
// standing in when no row exists.
func (h *Handlers) GetClassification(c *gin.Context) {
	resp, err := h.classifications.Get(c.Request.Context(), middleware.SessionUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateClassification assigns a classification to the session user. The
// validation token gates the write; a wrong token never reaches the guard.
func (h *Handlers) CreateClassification(c *gin.Context) {
	var req models.ClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !h.validationOK(req) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
		return
	}

	created, err := h.classifications.Create(c.Request.Context(), middleware.SessionUserID(c), req.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClassification changes the session user's stored classification.
func (h *Handlers) UpdateClassification(c *gin.Context) {
	var req models.ClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !h.validationOK(req) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
		return
	}

	updated, err := h.classifications.Update(c.Request.Context(), middleware.SessionUserID(c), req.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClassification removes the session user's classification. BOT
// rows are change-protected and come back 403.
func (h *Handlers) DeleteClassification(c *gin.Context) {
	if err := h.classifications.Delete(c.Request.Context(), middleware.SessionUserID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Classification removed"})
}

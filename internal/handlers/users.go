package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lockehooper/fritter-fe/pkg/middleware"
)

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// CreateUser registers a new account with an empty follow list.
func (h *Handlers) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	u, err := h.users.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GetUser returns a user profile by username.
func (h *Handlers) GetUser(c *gin.Context) {
	u, err := h.users.UserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Follow adds :username to the session user's follow list.
func (h *Handlers) Follow(c *gin.Context) {
	if err := h.users.Follow(c.Request.Context(), middleware.SessionUserID(c), c.Param("username")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Followed"})
}

// Unfollow removes :username from the session user's follow list.
func (h *Handlers) Unfollow(c *gin.Context) {
	if err := h.users.Unfollow(c.Request.Context(), middleware.SessionUserID(c), c.Param("username")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

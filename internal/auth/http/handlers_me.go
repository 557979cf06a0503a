package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/devjourney-backend/internal/auth"
)

// Me returns the identity attached to the request.
func (h *Handler) Me(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok || user.UID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/devjourney-backend/internal/auth/domain"
)

const DemoUserID = "demo-user"

// DevUser trusts identity headers without verification.
// - If X-User-Id is missing, it falls back to "demo-user".
// - Use this ONLY for development/testing.
func DevUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			uid = DemoUserID
		}

		SetUser(c, &domain.User{
			UID:         uid,
			Email:       strings.TrimSpace(c.GetHeader("X-User-Email")),
			DisplayName: strings.TrimSpace(c.GetHeader("X-User-Name")),
			Provider:    "dev",
		})

		c.Next()
	}
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	appauth "github.com/devjourney/devjourney-backend/internal/auth"
	"github.com/devjourney/devjourney-backend/internal/auth/domain"
	"github.com/devjourney/devjourney-backend/internal/logging"
)

// TokenVerifier checks a Firebase ID token. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuthMiddleware validates Firebase ID tokens and extracts user info
func FirebaseAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			return
		}

		decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			logging.FromContext(c.Request.Context()).
				WithField("operation", "verify_token").
				WithError(err).
				Warn("rejected id token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		appauth.SetUser(c, &domain.User{
			UID:         decoded.UID,
			Email:       claim(decoded, "email"),
			DisplayName: claim(decoded, "name"),
			AvatarURL:   claim(decoded, "picture"),
			Provider:    "firebase",
		})

		c.Next()
	}
}

func claim(t *auth.Token, key string) string {
	if v, ok := t.Claims[key].(string); ok {
		return v
	}
	return ""
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}

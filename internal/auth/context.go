package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/devjourney-backend/internal/auth/domain"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxUser   = "user"
)

// UserID returns the authenticated user's id set by one of the auth middlewares.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// CurrentUser returns the profile stored by the middleware, if any.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}

// SetUser stores u in the gin context under the well-known keys.
func SetUser(c *gin.Context, u *domain.User) {
	c.Set(CtxUserID, u.UID)
	if u.Email != "" {
		c.Set(CtxEmail, u.Email)
	}
	c.Set(CtxUser, u)
}

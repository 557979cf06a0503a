package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DevUser())
	r.GET("/", func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"uid": UserID(c), "email": u.Email, "provider": u.Provider})
	})

	t.Run("header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Id", "  u-42 ")
		req.Header.Set("X-User-Email", "dev@example.com")
		r.ServeHTTP(w, req)

		assert.JSONEq(t, `{"uid":"u-42","email":"dev@example.com","provider":"dev"}`, w.Body.String())
	})

	t.Run("fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.JSONEq(t, `{"uid":"demo-user","email":"","provider":"dev"}`, w.Body.String())
	})
}

func TestUserID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, UserID(c))
	assert.Empty(t, c.GetString(CtxEmail))
	_, ok := CurrentUser(c)
	assert.False(t, ok)
}

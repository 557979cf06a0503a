package bootstrap

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGinMode(t *testing.T) {
	cases := map[string]string{
		"production":   gin.ReleaseMode,
		" Production ": gin.ReleaseMode,
		"staging":      gin.ReleaseMode,
		"test":         gin.TestMode,
		"development":  gin.DebugMode,
		"":             gin.DebugMode,
	}
	for env, want := range cases {
		assert.Equal(t, want, GinMode(env), "env %q", env)
	}
}

func TestSetGinMode(t *testing.T) {
	prev := gin.Mode()
	t.Cleanup(func() { gin.SetMode(prev) })

	assert.Equal(t, gin.TestMode, SetGinMode("test"))
	assert.Equal(t, gin.TestMode, gin.Mode())
}

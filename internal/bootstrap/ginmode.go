package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GinMode maps APP_ENV onto a gin mode. Unknown environments keep debug
// output so local runs stay verbose.
func GinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "staging":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// SetGinMode applies GinMode(env) process-wide and returns the chosen mode.
func SetGinMode(env string) string {
	mode := GinMode(env)
	gin.SetMode(mode)
	return mode
}

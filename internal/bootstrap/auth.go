package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/devjourney-backend/config"
	"github.com/devjourney/devjourney-backend/internal/auth"
	authmw "github.com/devjourney/devjourney-backend/internal/auth/middleware"
	"github.com/devjourney/devjourney-backend/internal/logging"
)

// AuthMiddleware picks the identity middleware for cfg.Mode.
func AuthMiddleware(ctx context.Context, cfg *config.AuthConfig) (gin.HandlerFunc, error) {
	switch cfg.Mode {
	case config.AuthFirebase:
		client, err := auth.NewFirebaseVerifier(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return authmw.FirebaseAuthMiddleware(client), nil
	case config.AuthDev:
		logging.Logger().Warn("AUTH_MODE=dev: identity headers are trusted without verification")
		return auth.DevUser(), nil
	}
	return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
}

package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/devjourney/devjourney-backend/config"
)

// NewFirebaseVerifier builds the Admin SDK auth client used to verify ID
// tokens on the journal's write routes.
func NewFirebaseVerifier(ctx context.Context, cfg *config.AuthConfig) (*fbauth.Client, error) {
	appCfg, opts, err := firebaseSettings(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return client, nil
}

// firebaseSettings maps the auth config onto SDK settings. A nil app config
// lets the SDK read the project from the credentials file.
func firebaseSettings(cfg *config.AuthConfig) (*firebase.Config, []option.ClientOption, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, nil, fmt.Errorf("firebase auth needs FIREBASE_CREDENTIALS_PATH")
	}

	opts := []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}
	if cfg.ProjectID == "" {
		return nil, opts, nil
	}
	return &firebase.Config{ProjectID: cfg.ProjectID}, opts, nil
}

// Package identity connects the service to the Firebase project that owns
// shopper credentials and sessions.
package identity

import (
	"context"

	"storefront/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase clients
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewApp initializes the Firebase app. Application default credentials are
// used when no credentials file is configured.
func NewApp(params Params) (*firebase.App, error) {
	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewAuthClient returns the Firebase admin auth client.
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return client, nil
}

// NewFirestoreClient returns the Firestore client and closes it on shutdown.
func NewFirestoreClient(params Params, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewToolkitService returns the Identity Toolkit client used for password
// sign-in, authenticated with the project's web API key.
func NewToolkitService(params Params) (*identitytoolkit.Service, error) {
	if params.Config.Firebase.WebAPIKey == "" {
		return nil, errors.New("firebase.webApiKey is required for password sign-in (set FIREBASE_WEBAPIKEY)")
	}

	svc, err := identitytoolkit.NewService(context.Background(),
		option.WithAPIKey(params.Config.Firebase.WebAPIKey),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Identity Toolkit client")
	}

	return svc, nil
}

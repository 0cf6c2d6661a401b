package identity

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewToolkitService_RequiresWebAPIKey(t *testing.T) {
	params := Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Firebase: &config.FirebaseConfig{}},
	}

	_, err := NewToolkitService(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_WEBAPIKEY")

	params.Config.Firebase.WebAPIKey = "web-key"
	svc, err := NewToolkitService(params)
	require.NoError(t, err)
	assert.NotNil(t, svc.Relyingparty)
}

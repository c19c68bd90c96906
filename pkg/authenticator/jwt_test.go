package authenticator_test

import (
	"testing"
	"time"

	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[model.AccessToken]("secret", time.Minute)
	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", IsGM: true})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, model.AccessToken{ID: "user1", IsGM: true}, obj)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[model.AccessToken]("secret", -time.Minute)
	token, err := engine.Generate("user1", model.AccessToken{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := authenticator.NewTokenEngine[model.AccessToken]("secret", time.Minute).
		Generate("user1", model.AccessToken{ID: "user1"})
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine[model.AccessToken]("other", time.Minute).Verify(token)
	require.Error(t, err)
}

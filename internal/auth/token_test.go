package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestTokenFromEnv(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvToken, "env-token")

	token, err := Token()
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

func TestEnvWinsOverKeyring(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, StoreToken("keyring-token"))
	t.Setenv(EnvToken, "env-token")

	token, err := Token()
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

func TestTokenFromKeyring(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvToken, "")
	require.NoError(t, StoreToken("keyring-token"))

	token, err := Token()
	require.NoError(t, err)
	assert.Equal(t, "keyring-token", token)
}

func TestTokenMissing(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvToken, "")

	_, err := Token()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestStoreTokenRejectsEmpty(t *testing.T) {
	keyring.MockInit()
	assert.Error(t, StoreToken(""))
}

func TestClearToken(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvToken, "")
	require.NoError(t, StoreToken("keyring-token"))

	require.NoError(t, ClearToken())
	_, err := Token()
	assert.ErrorIs(t, err, ErrNoToken)

	// clearing an absent token is not an error
	assert.NoError(t, ClearToken())
}

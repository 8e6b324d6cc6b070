package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, jti, err := GenerateToken("secret", "user-1", "USER", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, jti)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Sub)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, jti, claims.ID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret", "user-1", "USER", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken("secret", "user-1", "USER", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

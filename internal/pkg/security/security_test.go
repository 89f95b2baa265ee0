package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPasswordHash("s3cret-pass", hash))
	assert.Error(t, CheckPasswordHash("wrong-pass", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(77, []string{"ANALYST"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), claims.UserID)
	assert.Equal(t, []string{"ANALYST"}, claims.Roles)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(1, []string{"ADMIN"})
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Equal(t, parts[2], sig)

	_, err = ExtractSignature("malformed")
	assert.Error(t, err)
}

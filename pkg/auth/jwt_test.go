package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestCheckPasswordPlain(t *testing.T) {
	require.True(t, CheckPassword("12345", "12345"))
	require.False(t, CheckPassword("12345", "wrong"))
	require.False(t, CheckPassword("", ""))
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	require.True(t, CheckPassword(hash, "s3cret"))
	require.False(t, CheckPassword(hash, "wrong"))
}

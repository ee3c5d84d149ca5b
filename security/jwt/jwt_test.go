package jwt

import (
	"testing"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.GenerateAccessToken("user-1")
	require.NoError(t, err)

	claims, err := tm.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", GetUserIDFromToken(claims))
	assert.True(t, IsAccessToken(claims))
	assert.Len(t, GetTokenIDFromToken(claims), 21)
	assert.WithinDuration(t, time.Now().Add(time.Hour), GetExpirationFromToken(claims), 5*time.Second)

	userID, err := tm.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestUniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager("secret", 0)
	a, err := tm.GenerateAccessToken("u")
	require.NoError(t, err)
	b, err := tm.GenerateAccessToken("u")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyRejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		token, err := tm.GenerateAccessTokenWithExpiry("u", -time.Minute)
		require.NoError(t, err)
		_, err = tm.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour)
		token, err := other.GenerateAccessToken("u")
		require.NoError(t, err)
		_, err = tm.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.VerifyAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong subject", func(t *testing.T) {
		token, err := tm.generateToken(&Token{
			JTI:     "x",
			Payload: map[string]any{"user_id": "u"},
			Subject: "refresh",
			Expire:  time.Hour,
		})
		require.NoError(t, err)
		_, err = tm.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user", func(t *testing.T) {
		token, err := tm.generateToken(&Token{JTI: "x", Subject: SubjectAccess, Expire: time.Hour})
		require.NoError(t, err)
		_, err = tm.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwtstd.NewWithClaims(jwtstd.SigningMethodNone, jwtstd.MapClaims{
			"sub":     SubjectAccess,
			"payload": map[string]any{"user_id": "u"},
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		token, err := unsigned.SignedString(jwtstd.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tm.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMissingKey(t *testing.T) {
	tm := NewTokenManager("", time.Hour)
	_, err := tm.GenerateAccessToken("u")
	assert.ErrorIs(t, err, ErrNeedTokenProvider)
}

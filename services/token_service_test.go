package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomToken_MissingCredentials(t *testing.T) {
	for _, ts := range []*TokenService{
		{},
		{APIKey: "key"},
		{APISecret: "secret"},
	} {
		token, err := ts.CreateRoomToken("user-1", "Asha", "match-abc")
		assert.ErrorIs(t, err, ErrMissingCredentials)
		assert.Empty(t, token)
	}
}

func TestCreateRoomToken_ClaimsRoundTrip(t *testing.T) {
	ts := &TokenService{APIKey: "devkey", APISecret: "devsecret"}

	signed, err := ts.CreateRoomToken("user-1", "Asha", "match-abc")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	var claims roomTokenClaims
	parsed, err := jwt.ParseWithClaims(signed, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("devsecret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "devkey", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "match-abc", claims.Video.Room)
	assert.True(t, claims.Video.RoomJoin)
	assert.True(t, claims.Video.CanPublish)
	assert.True(t, claims.Video.CanSubscribe)

	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 5*time.Hour)
	assert.LessOrEqual(t, ttl, 6*time.Hour)
}

func TestCreateRoomToken_WrongSecretRejected(t *testing.T) {
	ts := &TokenService{APIKey: "devkey", APISecret: "devsecret"}

	signed, err := ts.CreateRoomToken("user-1", "Asha", "match-abc")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

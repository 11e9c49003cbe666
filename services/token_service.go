package services

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// roomTokenTTL bounds how long an issued room token stays valid
const roomTokenTTL = 6 * time.Hour

// videoGrant scopes a token to a single room with join/publish/subscribe
// capability, matching the access-token format of the room provider.
type videoGrant struct {
	Room         string `json:"room"`
	RoomJoin     bool   `json:"roomJoin"`
	CanPublish   bool   `json:"canPublish"`
	CanSubscribe bool   `json:"canSubscribe"`
}

type roomTokenClaims struct {
	Name  string     `json:"name"`
	Video videoGrant `json:"video"`
	jwt.RegisteredClaims
}

// TokenService mints signed room access tokens for the realtime provider
type TokenService struct {
	APIKey    string
	APISecret string
}

// NewTokenServiceFromEnv reads the signing credentials from the environment.
// Missing credentials are only reported when a token is requested.
func NewTokenServiceFromEnv() *TokenService {
	return &TokenService{
		APIKey:    os.Getenv("LIVEKIT_API_KEY"),
		APISecret: os.Getenv("LIVEKIT_API_SECRET"),
	}
}

// CreateRoomToken issues a token binding the user's identity to exactly one
// room. The token grants no access to other rooms and no elevated
// capabilities.
func (ts *TokenService) CreateRoomToken(userID, name, room string) (string, error) {
	if ts.APIKey == "" || ts.APISecret == "" {
		return "", ErrMissingCredentials
	}

	now := time.Now()
	claims := &roomTokenClaims{
		Name: name,
		Video: videoGrant{
			Room:         room,
			RoomJoin:     true,
			CanPublish:   true,
			CanSubscribe: true,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.APIKey,
			Subject:   userID,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(roomTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ts.APISecret))
}

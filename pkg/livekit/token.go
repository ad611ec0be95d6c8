// Package livekit issues LiveKit room access tokens.
//
// A LiveKit access token is a JWT signed with the API secret (HS256) whose
// issuer is the API key and whose subject is the participant identity.
package livekit

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tendant/simple-meet/pkg/domain"
)

// DefaultTokenTTL matches the LiveKit server SDK default.
const DefaultTokenTTL = 6 * time.Hour

var (
	ErrMissingAPIKey    = errors.New("livekit: api key is required")
	ErrMissingAPISecret = errors.New("livekit: api secret is required")
)

// Config holds the LiveKit signing configuration.
type Config struct {
	APIKey    string
	APISecret string
	TokenTTL  time.Duration
}

// VideoGrant lists the room permissions carried by a token.
type VideoGrant struct {
	RoomJoin bool   `json:"roomJoin,omitempty"`
	Room     string `json:"room,omitempty"`
}

// AccessTokenClaims represents the claims in a LiveKit access token.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Video *VideoGrant `json:"video,omitempty"`
}

// TokenIssuer mints join tokens for meeting rooms. The room name is the
// meeting id.
type TokenIssuer struct {
	config Config
	now    func() time.Time
}

// NewTokenIssuer creates a new token issuer. Configuration errors surface
// when a token is requested.
func NewTokenIssuer(config Config) *TokenIssuer {
	if config.TokenTTL == 0 {
		config.TokenTTL = DefaultTokenTTL
	}
	return &TokenIssuer{
		config: config,
		now:    time.Now,
	}
}

// CreateToken mints a token allowing a fresh anonymous participant to join
// the room of the given meeting.
func (i *TokenIssuer) CreateToken(_ context.Context, meeting domain.MeetingID) (domain.RoomToken, error) {
	if i.config.APIKey == "" {
		return domain.RoomToken{}, ErrMissingAPIKey
	}
	if i.config.APISecret == "" {
		return domain.RoomToken{}, ErrMissingAPISecret
	}

	identity := uuid.New().String()
	room := meeting.String()
	now := i.now()

	claims := AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.config.APIKey,
			Subject:   identity,
			ID:        identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.config.TokenTTL)),
		},
		Video: &VideoGrant{
			RoomJoin: true,
			Room:     room,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.config.APISecret))
	if err != nil {
		return domain.RoomToken{}, err
	}

	return domain.RoomToken{
		Token:    signed,
		Room:     room,
		Identity: identity,
	}, nil
}

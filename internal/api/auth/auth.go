package auth // import "bookhaven/internal/api/auth"

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	issuer = "bookhaven"
	// KeyID is the identifier of the signing key carried in the token header.
	KeyID = "v1"
	// AccessTokenDuration is the lifetime of a regular access token.
	AccessTokenDuration = 7 * 24 * time.Hour
	// AccessTokenCookieName is the name of the session cookie.
	AccessTokenCookieName = "bookhaven.access-token"
)

// ClaimsMessage is the payload carried by access tokens.
type ClaimsMessage struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a signed access token for the given user.
// A zero expireTime produces a token without expiration.
func GenerateAccessToken(username string, userID int, expireTime time.Time, secret []byte) (string, error) {
	registeredClaims := jwt.RegisteredClaims{
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
		Subject:  fmt.Sprintf("%d", userID),
	}
	if !expireTime.IsZero() {
		registeredClaims.ExpiresAt = jwt.NewNumericDate(expireTime)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ClaimsMessage{
		Name:             username,
		RegisteredClaims: registeredClaims,
	})
	token.Header["kid"] = KeyID

	accessToken, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}
	return accessToken, nil
}

// ParseAccessToken validates an access token and returns its claims.
func ParseAccessToken(accessToken string, secret []byte) (*ClaimsMessage, error) {
	claims := &ClaimsMessage{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Name {
			return nil, errors.New("unexpected signing method")
		}
		if kid, ok := t.Header["kid"].(string); !ok || kid != KeyID {
			return nil, errors.New("unexpected key id")
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.New("invalid or expired access token")
	}
	return claims, nil
}

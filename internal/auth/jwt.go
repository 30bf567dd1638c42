package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

// Claims carries the authenticated user's id alongside the registered claims.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 identity token for userID valid for ttl.
func GenerateToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a token string and returns the user id it asserts.
// Malformed, expired and badly signed tokens all fail.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", shared.ErrUnauthenticated
	}
	return claims.UserID, nil
}

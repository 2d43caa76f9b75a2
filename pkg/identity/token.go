package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewToken mints a signed access token for the principal. The principal
// lands in the subject claim, which is all the server reads back out.
func NewToken(signingKey []byte, principal string, ttl time.Duration) (string, error) {
	if principal == "" {
		return "", fmt.Errorf("principal is required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   principal,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ParseToken validates a signed access token and returns the Identity it
// carries.
func ParseToken(signingKey []byte, tokenString string) (*Identity, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token is missing a subject")
	}

	return FromClaims(claims)
}

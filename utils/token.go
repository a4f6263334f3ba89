package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IssueToken signs a one-hour HS256 bearer token carrying the username as its
// subject. Issuer, audience and signing key come from the environment.
func IssueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iss": os.Getenv("JWT_ISSUER"),
		"aud": os.Getenv("JWT_AUDIENCE"),
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"appointment-api/utils"
)

func setTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("JWT_ISSUER", "appointment-api")
	t.Setenv("JWT_AUDIENCE", "appointment-clients")
}

func parseToken(t *testing.T, raw, secret string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tok.Method)
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}
	return token.Claims.(jwt.MapClaims)
}

func TestIssueToken(t *testing.T) {
	setTokenEnv(t)

	raw, err := utils.IssueToken("johndoe1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := parseToken(t, raw, "test-signing-secret")
	if claims["sub"] != "johndoe1" {
		t.Fatalf("sub = %v, want johndoe1", claims["sub"])
	}
	if !claims.VerifyIssuer("appointment-api", true) {
		t.Fatalf("iss = %v, want appointment-api", claims["iss"])
	}
	if !claims.VerifyAudience("appointment-clients", true) {
		t.Fatalf("aud = %v, want appointment-clients", claims["aud"])
	}

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	until := time.Until(exp)
	if until < 55*time.Minute || until > 65*time.Minute {
		t.Fatalf("expiry %v from now, want about one hour", until)
	}
}

func TestIssueTokenWrongSecretRejected(t *testing.T) {
	setTokenEnv(t)

	raw, err := utils.IssueToken("johndoe1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		return []byte("some-other-secret"), nil
	})
	if err == nil {
		t.Fatal("token signed with a different secret should not verify")
	}
}

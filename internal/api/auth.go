package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authKey int

const authTokenIssuer = "clrgen"

// authContextKey is the context key under which RequireAuth stashes
// whether the request's bearer token was valid.
const authContextKey authKey = 0

// HashAPIKey bcrypt-hashes a plaintext API key for storage in server
// configuration, mirroring the teacher's password-hashing convention.
func HashAPIKey(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash API key: %w", err)
	}
	return string(hash), nil
}

// IssueToken verifies plaintext against keyHash and, if it matches, signs
// and returns a short-lived JWT bearer token for use against write
// endpoints.
func IssueToken(plaintext, keyHash, secret string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(plaintext)); err != nil {
		return "", fmt.Errorf("invalid API key")
	}

	claims := jwt.MapClaims{
		"iss": authTokenIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString([]byte(secret))
}

// RequireAuth wraps next with middleware that rejects any request lacking
// a valid "Authorization: Bearer <token>" header signed with secret.
func RequireAuth(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		tok, err := bearerToken(req)
		if err != nil {
			Unauthorized("", err.Error()).Write(w, req)
			return
		}

		_, err = jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(authTokenIssuer), jwt.WithLeeway(time.Minute))
		if err != nil {
			Unauthorized("", err.Error()).Write(w, req)
			return
		}

		ctx := context.WithValue(req.Context(), authContextKey, true)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func bearerToken(req *http.Request) (string, error) {
	header := strings.TrimSpace(req.Header.Get("Authorization"))
	if header == "" {
		return "", fmt.Errorf("no authorization header present")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "bearer") {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	return strings.TrimSpace(parts[1]), nil
}

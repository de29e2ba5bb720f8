package panel

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are real HS256 JWTs signed with a fixed development secret so
// frontend code that decodes claims keeps working against the
// emulator. They are never validated server-side; the engine's session
// is the source of truth.
const tokenSecret = "panelmock-dev-secret"

const tokenTTL = 3600 // seconds

// TokenPair is the bearer token set returned by login-style endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func issueTokens(u *User, now time.Time) TokenPair {
	return TokenPair{
		AccessToken:  signToken(u, "access", now),
		RefreshToken: signToken(u, "refresh", now),
		ExpiresIn:    tokenTTL,
	}
}

func signToken(u *User, typ string, now time.Time) string {
	ttl := time.Duration(tokenTTL) * time.Second
	if typ == "refresh" {
		ttl = 30 * 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(u.ID, 10),
		"email": u.Email,
		"roles": u.Roles,
		"typ":   typ,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(tokenSecret))
	if err != nil {
		// HS256 signing of a map claim set cannot fail at runtime.
		panic(err)
	}
	return signed
}

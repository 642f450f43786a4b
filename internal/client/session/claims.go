package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The API issues JWTs, but the client cannot verify them. Claims are read
// unverified and only used for local decisions (expiry, display).
func parseClaims(token string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// expired reports whether token carries an exp claim at or before now.
// Opaque tokens never expire locally.
func expired(token string, now time.Time) bool {
	claims, ok := parseClaims(token)
	if !ok {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

func subject(token string) string {
	claims, ok := parseClaims(token)
	if !ok {
		return ""
	}
	sub, _ := claims.GetSubject()
	return sub
}

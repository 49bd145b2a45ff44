package handler

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "token"

// newSessionCookie builds the session cookie. SameSite=None allows the
// credentialed cross-site requests the frontend makes; browsers require
// Secure alongside it, so secure should be true outside local development.
// The max-age mirrors the token's own expiration claim.
func newSessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	}
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	}
}

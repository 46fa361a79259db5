// ABOUTME: Cookie-based session guard for the admin surface.
// ABOUTME: Issues HMAC-signed session tokens; the cookie never carries the admin password.
package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the admin session cookie.
const SessionCookieName = "admin_session"

// SessionMaxAge bounds both the cookie and the embedded expiry claim.
const SessionMaxAge = 7 * 24 * time.Hour

// Sessions validates the admin password and manages session tokens. Tokens
// are signed with a key derived from the configured secret, so rotating the
// admin password invalidates every outstanding session.
type Sessions struct {
	password string
	key      []byte
}

// NewSessions creates a session guard for the given admin password. When
// secret is empty the signing key is derived from the password itself.
func NewSessions(adminPassword, secret string) *Sessions {
	if secret == "" {
		secret = adminPassword
	}
	key := sha256.Sum256([]byte("familybond-session:" + secret))
	return &Sessions{password: adminPassword, key: key[:]}
}

// VerifyPassword compares the submitted password against the configured
// secret in constant time.
func (s *Sessions) VerifyPassword(password string) bool {
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}

// Issue creates a signed session token valid for SessionMaxAge.
func (s *Sessions) Issue(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionMaxAge)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify reports whether token is a currently valid session token.
func (s *Sessions) Verify(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return false
	}
	return parsed.Valid
}

// Authenticated reports whether the request carries a valid session cookie.
func (s *Sessions) Authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return false
	}
	return s.Verify(cookie.Value)
}

// SetCookie attaches a freshly issued session cookie to the response.
func (s *Sessions) SetCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie deletes the session cookie, returning to Unauthenticated.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth wraps next so unauthenticated browser requests are redirected
// to loginURL. Used for the admin HTML pages; JSON endpoints check the
// session inline and answer 401 instead.
func RequireAuth(next http.Handler, sessions *Sessions, loginURL string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessions.Authenticated(r) {
			http.Redirect(w, r, loginURL, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// SessionCookieName is the cookie carrying the session payload.
const SessionCookieName = "session"

var (
	// ErrInvalidSession indicates a missing, malformed, or tampered cookie.
	ErrInvalidSession = errors.New("invalid session")
	// ErrSessionExpired indicates the session expiry has passed.
	ErrSessionExpired = errors.New("session expired")
)

// SessionCodec encodes sessions into HMAC-signed cookie values and back.
// The cookie is the session of record; there is no server-side table, so a
// valid signed cookie is effectively a capability token until it expires.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewSessionCodec creates a codec. secure controls the cookie Secure flag
// and should be true in production.
func NewSessionCodec(secret string, ttl time.Duration, secure bool) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// TTL returns the configured session lifetime.
func (c *SessionCodec) TTL() time.Duration {
	return c.ttl
}

// NewSession builds a session for the given user with the configured expiry.
func (c *SessionCodec) NewSession(user model.SessionUser) model.Session {
	return model.Session{
		User:    user,
		Expires: time.Now().Add(c.ttl).UTC(),
	}
}

// Encode serializes and signs a session into a cookie value.
// Format: base64url(json payload) + "." + base64url(hmac-sha256 signature).
func (c *SessionCodec) Encode(session model.Session) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), nil
}

// Decode verifies the signature and parses the session. Any tampering,
// malformed value, or passed expiry yields an error; callers treat every
// decode failure as "no session".
func (c *SessionCodec) Decode(value string) (*model.Session, error) {
	encoded, sig, found := strings.Cut(value, ".")
	if !found {
		return nil, ErrInvalidSession
	}

	if !hmac.Equal([]byte(c.sign(encoded)), []byte(sig)) {
		return nil, ErrInvalidSession
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidSession
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, ErrInvalidSession
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// SetCookie writes the session cookie on the response.
func (c *SessionCodec) SetCookie(w http.ResponseWriter, session model.Session) error {
	value, err := c.Encode(session)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ClearCookie expires the session cookie on the response.
func (c *SessionCodec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionFromRequest extracts and validates the session from a request.
func (c *SessionCodec) SessionFromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return c.Decode(cookie.Value)
}

func (c *SessionCodec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

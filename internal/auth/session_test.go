package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

func testUser() model.SessionUser {
	return model.SessionUser{
		ID:       "01HWM5ZW1N4T9GQF0K3R8XBVJD",
		Email:    "wanjiku@example.co.ke",
		FullName: "Wanjiku Kamau",
	}
}

func TestSessionCodecRoundTrip(t *testing.T) {
	codec := NewSessionCodec("test-secret", 7*24*time.Hour, false)

	session := codec.NewSession(testUser())
	value, err := codec.Encode(session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := codec.Decode(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.User != session.User {
		t.Errorf("expected user %+v, got %+v", session.User, decoded.User)
	}
	if !decoded.Expires.Equal(session.Expires) {
		t.Errorf("expected expiry %v, got %v", session.Expires, decoded.Expires)
	}
}

func TestSessionCodecRejectsTampering(t *testing.T) {
	codec := NewSessionCodec("test-secret", time.Hour, false)

	value, err := codec.Encode(codec.NewSession(testUser()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"flipped_payload_byte", "x" + value[1:]},
		{"truncated_signature", value[:len(value)-2]},
		{"no_separator", strings.ReplaceAll(value, ".", "")},
		{"empty", ""},
		{"garbage", "not-a-session"},
		{"plain_json", `{"user":{"id":"1"},"expires":"2099-01-01T00:00:00Z"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := codec.Decode(test.value); !errors.Is(err, ErrInvalidSession) {
				t.Fatalf("expected ErrInvalidSession, got %v", err)
			}
		})
	}
}

func TestSessionCodecRejectsWrongSecret(t *testing.T) {
	codec := NewSessionCodec("secret-a", time.Hour, false)
	other := NewSessionCodec("secret-b", time.Hour, false)

	value, err := codec.Encode(codec.NewSession(testUser()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.Decode(value); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestSessionCodecRejectsExpired(t *testing.T) {
	codec := NewSessionCodec("test-secret", time.Hour, false)

	session := model.Session{
		User:    testUser(),
		Expires: time.Now().Add(-time.Minute).UTC(),
	}

	value, err := codec.Encode(session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := codec.Decode(value); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestSetAndClearCookie(t *testing.T) {
	codec := NewSessionCodec("test-secret", 7*24*time.Hour, false)

	rec := httptest.NewRecorder()
	if err := codec.SetCookie(rec, codec.NewSession(testUser())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if cookie.Name != SessionCookieName {
		t.Errorf("expected cookie name %q, got %q", SessionCookieName, cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("expected 7-day max age, got %d", cookie.MaxAge)
	}

	rec = httptest.NewRecorder()
	codec.ClearCookie(rec)
	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Error("expected clearing cookie with negative max age")
	}
}

func TestSessionFromRequest(t *testing.T) {
	codec := NewSessionCodec("test-secret", time.Hour, false)

	value, err := codec.Encode(codec.NewSession(testUser()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: value})

	session, err := codec.SessionFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.Email != "wanjiku@example.co.ke" {
		t.Errorf("unexpected user: %+v", session.User)
	}

	// No cookie at all.
	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := codec.SessionFromRequest(bare); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

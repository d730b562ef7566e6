package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"animal-shelter-api/internal/ports/auth"
)

type fakeVerifier struct {
	tokens map[string]auth.Claims
}

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	c, ok := f.tokens[token]
	if !ok {
		return auth.Claims{}, errors.New("bad token")
	}
	return c, nil
}

func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("X-User", c.UserID)
		w.Header().Set("X-Token", GetToken(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthContext(t *testing.T) {
	v := fakeVerifier{tokens: map[string]auth.Claims{
		"abc": {UserID: "u-1", Role: "shelterstaff"},
	}}

	tests := []struct {
		name     string
		debug    bool
		headers  map[string]string
		wantUser string
	}{
		{"token scheme", false, map[string]string{"Authorization": "Token abc"}, "u-1"},
		{"bearer scheme", false, map[string]string{"Authorization": "bearer abc"}, "u-1"},
		{"unknown token", false, map[string]string{"Authorization": "Token nope"}, ""},
		{"basic scheme ignored", false, map[string]string{"Authorization": "Basic abc"}, ""},
		{"debug header disabled", false, map[string]string{"X-Debug-User-ID": "dev"}, ""},
		{"debug header enabled", true, map[string]string{"X-Debug-User-ID": "dev"}, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AuthContext(v, tt.debug)(echoClaims())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, val := range tt.headers {
				req.Header.Set(k, val)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("X-User"); got != tt.wantUser {
				t.Fatalf("expected user %q, got %q (status %d)", tt.wantUser, got, rec.Code)
			}
		})
	}
}

func TestAuthContext_ExposesToken(t *testing.T) {
	v := fakeVerifier{tokens: map[string]auth.Claims{"abc": {UserID: "u-1"}}}
	h := AuthContext(v, false)(echoClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Token") != "abc" {
		t.Fatalf("expected token in context, got %q", rec.Header().Get("X-Token"))
	}
}

func TestRequireRoles(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RequireRoles("admin", "shelterstaff")(ok)

	cases := []struct {
		name   string
		claims *auth.Claims
		want   int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"volunteer", &auth.Claims{UserID: "u", Role: "volunteer"}, http.StatusForbidden},
		{"staff", &auth.Claims{UserID: "u", Role: "shelterstaff"}, http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if c.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), *c.claims))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != c.want {
				t.Fatalf("expected %d, got %d", c.want, rec.Code)
			}
		})
	}
}

func TestRateLimit_ThrottlesPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	frozen := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	h := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if do("10.0.0.1:1111") != http.StatusOK || do("10.0.0.1:2222") != http.StatusOK {
		t.Fatalf("expected burst of 2 to pass")
	}
	if got := do("10.0.0.1:3333"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", got)
	}
	if got := do("10.0.0.2:1111"); got != http.StatusOK {
		t.Fatalf("other ip should not be throttled, got %d", got)
	}

	frozen = frozen.Add(2 * time.Second)
	if got := do("10.0.0.1:4444"); got != http.StatusOK {
		t.Fatalf("expected refill after 2s, got %d", got)
	}
}

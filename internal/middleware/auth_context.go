package middleware

import (
	"context"
	"net/http"
	"strings"

	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	tokenKey  ctxKey = "token"
)

// AuthContext:
// - Si viene "Authorization: Token <key>" (o Bearer) => intenta Verify() y setea claims.
// - Si allowDebugHeader => modo dev: X-Debug-User-ID (+ X-Debug-User-Role) setea claims sin verificar.
// - Si no hay claims, el request sigue igual; RequireAuth/RequireRoles deciden 401/403.
func AuthContext(verifier auth.AuthVerifier, allowDebugHeader bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := credentialFromHeader(r.Header.Get("Authorization"))
			if token != "" && verifier != nil {
				claims, err := verifier.Verify(r.Context(), token)
				if err == nil {
					ctx := context.WithValue(r.Context(), claimsKey, claims)
					ctx = context.WithValue(ctx, tokenKey, token)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				// Token inválido: seguimos sin claims, el handler decide.
			}

			if allowDebugHeader {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					claims := auth.Claims{
						UserID: uid,
						Role:   strings.TrimSpace(r.Header.Get("X-Debug-User-Role")),
					}
					ctx := context.WithValue(r.Context(), claimsKey, claims)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	if !ok || strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, false
	}
	return c, true
}

// GetToken devuelve el token con el que se autenticó el request (vacío en modo dev).
func GetToken(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey).(string)
	return v
}

// WithClaims inyecta claims en un contexto. Útil en tests de handlers.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// RequireAuth corta con 401 si no hay claims.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			httpjson.WriteError(w, nil, apperr.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles exige claims y que el rol esté en la lista (401 sin claims, 403 rol incorrecto).
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				httpjson.WriteError(w, nil, apperr.ErrUnauthorized)
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				httpjson.WriteError(w, nil, apperr.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// credentialFromHeader acepta "Token <key>" y "Bearer <key>".
func credentialFromHeader(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Token") && !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

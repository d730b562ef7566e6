package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/logger"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testUsers struct {
	byID    map[string]users.User
	byEmail map[string]string
}

func (r *testUsers) Create(ctx context.Context, u users.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return apperr.Conflict("email")
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *testUsers) GetByID(ctx context.Context, id string) (users.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *testUsers) GetByEmail(ctx context.Context, email string) (users.User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return r.byID[id], nil
}

type testTokens struct {
	byKey  map[string]Token
	byUser map[string]string
}

func (r *testTokens) Create(ctx context.Context, t Token) error {
	if _, ok := r.byKey[t.Key]; ok {
		return apperr.Conflict("token")
	}
	if _, ok := r.byUser[t.UserID]; ok {
		return apperr.Conflict("token")
	}
	r.byKey[t.Key] = t
	r.byUser[t.UserID] = t.Key
	return nil
}

func (r *testTokens) GetByKey(ctx context.Context, key string) (Token, error) {
	t, ok := r.byKey[key]
	if !ok {
		return Token{}, apperr.ErrNotFound
	}
	return t, nil
}

func (r *testTokens) GetByUser(ctx context.Context, userID string) (Token, error) {
	key, ok := r.byUser[userID]
	if !ok {
		return Token{}, apperr.ErrNotFound
	}
	return r.byKey[key], nil
}

func (r *testTokens) DeleteByKey(ctx context.Context, key string) error {
	t, ok := r.byKey[key]
	if !ok {
		return apperr.ErrNotFound
	}
	delete(r.byKey, key)
	delete(r.byUser, t.UserID)
	return nil
}

func newTestService() (*Service, *testTokens) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens := &testTokens{byKey: map[string]Token{}, byUser: map[string]string{}}
	usersSvc := users.NewService(&testUsers{byID: map[string]users.User{}, byEmail: map[string]string{}}, hasher)
	return NewService(usersSvc, tokens, hasher, logger.Nop()), tokens
}

func signupInput() users.RegisterInput {
	return users.RegisterInput{Email: "ana@shelter.org", Name: "Ana", Password: "supersecret"}
}

func TestSignupLoginReuseToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tok, u, err := svc.Signup(ctx, signupInput())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if len(tok.Key) != 40 || tok.UserID != u.ID {
		t.Fatalf("unexpected token %+v", tok)
	}

	again, err := svc.Login(ctx, "ana@shelter.org", "supersecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if again.Key != tok.Key {
		t.Fatalf("expected token reuse, got %q want %q", again.Key, tok.Key)
	}

	claims, err := svc.Verify(ctx, tok.Key)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != string(users.RoleShelterStaff) {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestSignup_StoresBcryptHash(t *testing.T) {
	svc, _ := newTestService()

	_, u, err := svc.Signup(context.Background(), signupInput())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "supersecret" {
		t.Fatalf("password stored in plaintext: %q", u.PasswordHash)
	}
	cost, err := bcrypt.Cost([]byte(u.PasswordHash))
	if err != nil {
		t.Fatalf("stored hash is not bcrypt: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost, cost)
	}
}

func TestSignupLogin_LongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := signupInput()
	in.Password = strings.Repeat("a", 73)
	tok, _, err := svc.Signup(ctx, in)
	if err != nil {
		t.Fatalf("signup with 73-byte password: %v", err)
	}

	got, err := svc.Login(ctx, in.Email, in.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Key != tok.Key {
		t.Fatalf("expected token reuse, got %q want %q", got.Key, tok.Key)
	}

	// Solo difiere después del byte 72.
	if _, err := svc.Login(ctx, in.Email, strings.Repeat("a", 72)+"b"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	if _, _, err := svc.Signup(ctx, signupInput()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(ctx, "ana@shelter.org", "wrong-pass"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@shelter.org", "supersecret"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestLogout_RevokesAndIsIdempotent(t *testing.T) {
	svc, tokens := newTestService()
	ctx := context.Background()

	tok, _, err := svc.Signup(ctx, signupInput())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.Logout(ctx, tok.Key); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(ctx, tok.Key); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
	if len(tokens.byKey) != 0 {
		t.Fatalf("expected token removed")
	}
	if _, err := svc.Verify(ctx, tok.Key); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after logout, got %v", err)
	}

	fresh, err := svc.Login(ctx, "ana@shelter.org", "supersecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if fresh.Key == tok.Key {
		t.Fatalf("expected a new key after logout")
	}
}

func TestIssue_KeyCollisionSurfacesConflict(t *testing.T) {
	svc, _ := newTestService()
	svc.newKey = func() (string, error) { return "fixed-key", nil }
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, signupInput()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	in := signupInput()
	in.Email = "otro@shelter.org"
	// La key ya existe para otro usuario.
	if _, _, err := svc.Signup(ctx, in); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected failure on key collision, got %v", err)
	}
}

func TestVerify_EmptyKey(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Verify(context.Background(), "  "); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/logger"
	portauth "animal-shelter-api/internal/ports/auth"
)

// keyBytes: 20 bytes => 40 caracteres hex.
const keyBytes = 20

type Service struct {
	users  *users.Service
	tokens TokenRepository
	hasher *BcryptHasher
	log    logger.Logger
	now    func() time.Time
	newKey func() (string, error)
}

func NewService(usersSvc *users.Service, tokens TokenRepository, hasher *BcryptHasher, log logger.Logger) *Service {
	return &Service{
		users:  usersSvc,
		tokens: tokens,
		hasher: hasher,
		log:    log,
		now:    time.Now,
		newKey: generateKey,
	}
}

// Signup crea el usuario y le emite su token.
func (s *Service) Signup(ctx context.Context, in users.RegisterInput) (Token, users.User, error) {
	u, err := s.users.Register(ctx, in)
	if err != nil {
		return Token{}, users.User{}, err
	}

	t, err := s.issue(ctx, u.ID)
	if err != nil {
		return Token{}, users.User{}, err
	}

	s.log.Info("user signed up", map[string]any{"user_id": u.ID, "role": string(u.Role)})
	return t, u, nil
}

// Login devuelve el token existente (o uno nuevo si hizo logout).
// Email desconocido y password incorrecto devuelven el mismo error.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return Token{}, err
		}
		s.hasher.Burn(password)
		return Token{}, apperr.ErrUnauthorized
	}

	if !s.hasher.Check(u.PasswordHash, password) {
		s.log.Warn("login failed", map[string]any{"user_id": u.ID})
		return Token{}, apperr.ErrUnauthorized
	}

	return s.issue(ctx, u.ID)
}

// Logout elimina el token. Idempotente.
func (s *Service) Logout(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperr.ErrUnauthorized
	}
	if err := s.tokens.DeleteByKey(ctx, key); err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	return nil
}

// Verify implementa ports/auth.AuthVerifier.
func (s *Service) Verify(ctx context.Context, key string) (portauth.Claims, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return portauth.Claims{}, apperr.ErrUnauthorized
	}

	t, err := s.tokens.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return portauth.Claims{}, apperr.ErrUnauthorized
		}
		return portauth.Claims{}, err
	}

	u, err := s.users.GetByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return portauth.Claims{}, apperr.ErrUnauthorized
		}
		return portauth.Claims{}, err
	}

	return portauth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
	}, nil
}

// issue devuelve el token del usuario, creándolo si no existe.
func (s *Service) issue(ctx context.Context, userID string) (Token, error) {
	t, err := s.tokens.GetByUser(ctx, userID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return Token{}, err
	}

	key, err := s.newKey()
	if err != nil {
		return Token{}, fmt.Errorf("generate token: %w", err)
	}
	t = Token{Key: key, UserID: userID, CreatedAt: s.now()}

	if err := s.tokens.Create(ctx, t); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			// Otro request creó el token del usuario primero: usamos ese.
			// Si no existe, el conflicto fue de key.
			if existing, gerr := s.tokens.GetByUser(ctx, userID); gerr == nil {
				return existing, nil
			}
		}
		return Token{}, err
	}
	return t, nil
}

func generateKey() (string, error) {
	b := make([]byte, keyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

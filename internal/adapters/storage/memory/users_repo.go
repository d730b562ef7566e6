package memory

import (
	"context"
	"errors"
	"strings"

	"animal-shelter-api/internal/domain/auth"
	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/platform/apperr"
)

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.s.userByEmail[u.Email]; exists {
		return apperr.Conflict("user email")
	}
	if _, exists := r.s.users[u.ID]; exists {
		return apperr.Conflict("user")
	}
	r.s.users[u.ID] = u
	r.s.userByEmail[u.Email] = u.ID
	return nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.userByEmail[email]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return r.s.users[id], nil
}

type tokenRepo struct{ s *Store }

func (r tokenRepo) Create(ctx context.Context, t auth.Token) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(t.Key) == "" {
		return errors.New("token key required")
	}
	if _, exists := r.s.tokens[t.Key]; exists {
		return apperr.Conflict("token")
	}
	if _, exists := r.s.tokenByUser[t.UserID]; exists {
		return apperr.Conflict("token")
	}
	r.s.tokens[t.Key] = t
	r.s.tokenByUser[t.UserID] = t.Key
	return nil
}

func (r tokenRepo) GetByKey(ctx context.Context, key string) (auth.Token, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tokens[key]
	if !ok {
		return auth.Token{}, apperr.ErrNotFound
	}
	return t, nil
}

func (r tokenRepo) GetByUser(ctx context.Context, userID string) (auth.Token, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key, ok := r.s.tokenByUser[userID]
	if !ok {
		return auth.Token{}, apperr.ErrNotFound
	}
	return r.s.tokens[key], nil
}

func (r tokenRepo) DeleteByKey(ctx context.Context, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tokens[key]
	if !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.tokens, key)
	delete(r.s.tokenByUser, t.UserID)
	return nil
}

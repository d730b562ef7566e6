package auth

import "context"

// TokenRepository: Create debe fallar con apperr.ErrConflict si el usuario ya tiene token
// o si la key ya existe.
type TokenRepository interface {
	Create(ctx context.Context, t Token) error
	GetByKey(ctx context.Context, key string) (Token, error)
	GetByUser(ctx context.Context, userID string) (Token, error)
	DeleteByKey(ctx context.Context, key string) error
}

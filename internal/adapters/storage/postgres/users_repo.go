package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/domain/auth"
	"animal-shelter-api/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, password_hash,
			name, role, phone_number, location,
			is_staff, new_user,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Role,
		u.PhoneNumber,
		u.Location,
		u.IsStaff,
		u.NewUser,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapErr(err, "user email")
}

const selectUser = `
	SELECT
		id, email, password_hash,
		name, role, phone_number, location,
		is_staff, new_user,
		created_at, updated_at
	FROM users
`

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.PhoneNumber,
		&u.Location,
		&u.IsStaff,
		&u.NewUser,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, mapErr(err, "user")
	}
	return u, nil
}

type TokensRepo struct {
	db *sql.DB
}

func NewTokensRepo(db *sql.DB) *TokensRepo {
	return &TokensRepo{db: db}
}

func (r *TokensRepo) Create(ctx context.Context, t auth.Token) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_tokens (key, user_id, created_at) VALUES ($1,$2,$3)
	`, t.Key, t.UserID, t.CreatedAt)
	return mapErr(err, "token")
}

func (r *TokensRepo) GetByKey(ctx context.Context, key string) (auth.Token, error) {
	return scanToken(r.db.QueryRowContext(ctx, `
		SELECT key, user_id, created_at FROM auth_tokens WHERE key = $1
	`, key))
}

func (r *TokensRepo) GetByUser(ctx context.Context, userID string) (auth.Token, error) {
	return scanToken(r.db.QueryRowContext(ctx, `
		SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1
	`, userID))
}

func (r *TokensRepo) DeleteByKey(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE key = $1`, key)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanToken(row *sql.Row) (auth.Token, error) {
	var t auth.Token
	if err := row.Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		return auth.Token{}, mapErr(err, "token")
	}
	return t, nil
}

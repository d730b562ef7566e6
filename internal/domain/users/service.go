package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"animal-shelter-api/internal/platform/apperr"
)

const MinPasswordLength = 8

// PasswordHasher lo implementa auth (bcrypt). Se inyecta para no acoplar users a auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Email       string
	Name        string
	Password    string
	Role        Role
	PhoneNumber string
	Location    string
}

// Register valida, hashea el password y persiste el usuario.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return User{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return User{}, apperr.Invalid("name", "This field may not be blank.")
	}
	if utf8.RuneCountInString(name) > 50 {
		return User{}, apperr.Invalid("name", "Ensure this field has no more than 50 characters.")
	}

	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return User{}, apperr.Invalid("password", fmt.Sprintf("Ensure this field has at least %d characters.", MinPasswordLength))
	}

	role := in.Role
	if role == "" {
		role = RoleShelterStaff
	}
	if !role.Valid() {
		return User{}, apperr.Invalid("usertype", fmt.Sprintf("%q is not a valid choice.", role))
	}
	if role == RoleAdmin {
		return User{}, apperr.Invalid("usertype", "admin accounts cannot be created through signup.")
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	if utf8.RuneCountInString(phone) > 10 {
		return User{}, apperr.Invalid("phone_number", "Ensure this field has no more than 10 characters.")
	}
	location := strings.TrimSpace(in.Location)
	if utf8.RuneCountInString(location) > 20 {
		return User{}, apperr.Invalid("location", "Ensure this field has no more than 20 characters.")
	}

	// Chequeo previo para un error claro; la constraint unique del repo sigue siendo la garantía.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, apperr.Invalid("email", "shelter user with this email already exists.")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return User{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		PhoneNumber:  phone,
		Location:     location,
		IsStaff:      role.IsStaff(),
		NewUser:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return User{}, apperr.Invalid("email", "shelter user with this email already exists.")
		}
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, apperr.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetByEmail normaliza antes de buscar. Email inválido => ErrNotFound.
func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return User{}, apperr.ErrNotFound
	}
	return s.repo.GetByEmail(ctx, normalized)
}

// NormalizeEmail valida el formato y pasa el dominio a minúsculas (la parte local se respeta).
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperr.Invalid("email", "This field may not be blank.")
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", apperr.Invalid("email", "Enter a valid email address.")
	}
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return "", apperr.Invalid("email", "Enter a valid email address.")
	}
	return raw[:at] + "@" + strings.ToLower(raw[at+1:]), nil
}

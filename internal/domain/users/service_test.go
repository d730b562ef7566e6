package users

import (
	"context"
	"errors"
	"strings"
	"testing"

	"animal-shelter-api/internal/platform/apperr"
)

type testRepo struct {
	byID    map[string]User
	byEmail map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}, byEmail: map[string]string{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return apperr.Conflict("email")
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return r.byID[id], nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func validInput() RegisterInput {
	return RegisterInput{Email: "Ana@Shelter.ORG", Name: "Ana", Password: "supersecret"}
}

func TestRegister_DefaultsAndNormalization(t *testing.T) {
	svc := NewService(newTestRepo(), plainHasher{})

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "Ana@shelter.org" {
		t.Fatalf("expected domain lowercased, got %q", u.Email)
	}
	if u.Role != RoleShelterStaff || !u.IsStaff {
		t.Fatalf("expected default shelterstaff, got %q staff=%v", u.Role, u.IsStaff)
	}
	if u.PasswordHash != "hashed:supersecret" {
		t.Fatalf("password not hashed: %q", u.PasswordHash)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*RegisterInput)
		field string
	}{
		{"blank email", func(in *RegisterInput) { in.Email = " " }, "email"},
		{"invalid email", func(in *RegisterInput) { in.Email = "ana" }, "email"},
		{"blank name", func(in *RegisterInput) { in.Name = "" }, "name"},
		{"short password", func(in *RegisterInput) { in.Password = "1234567" }, "password"},
		{"unknown role", func(in *RegisterInput) { in.Role = "vet" }, "usertype"},
		{"admin role", func(in *RegisterInput) { in.Role = RoleAdmin }, "usertype"},
		{"long phone", func(in *RegisterInput) { in.PhoneNumber = "12345678901" }, "phone_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newTestRepo(), plainHasher{})
			in := validInput()
			tt.edit(&in)

			_, err := svc.Register(context.Background(), in)
			ve, ok := apperr.AsValidation(err)
			if !ok || ve.Field != tt.field {
				t.Fatalf("expected validation error on %q, got %v", tt.field, err)
			}
		})
	}
}

func TestRegister_LongPasswordAccepted(t *testing.T) {
	svc := NewService(newTestRepo(), plainHasher{})
	in := validInput()
	in.Password = strings.Repeat("p", 200)

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("long password must be accepted, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo(), plainHasher{})
	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), validInput())
	if ve, ok := apperr.AsValidation(err); !ok || ve.Field != "email" {
		t.Fatalf("expected email validation error, got %v", err)
	}
}

func TestGetByEmail_InvalidIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), plainHasher{})
	if _, err := svc.GetByEmail(context.Background(), "nope"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

package users

import "time"

// Role define el tipo de usuario del refugio.
// @Enum admin, shelterstaff, adopter_or_foster, volunteer
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleShelterStaff    Role = "shelterstaff"
	RoleAdopterOrFoster Role = "adopter_or_foster"
	RoleVolunteer       Role = "volunteer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShelterStaff, RoleAdopterOrFoster, RoleVolunteer:
		return true
	}
	return false
}

// IsStaff: admin y personal del refugio pueden registrar animales y sus fichas.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleShelterStaff
}

// User es un usuario registrado. PasswordHash nunca sale por la API.
type User struct {
	ID           string
	Email        string
	PasswordHash string

	Name        string
	Role        Role
	PhoneNumber string
	Location    string

	IsStaff bool
	NewUser bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffRoles para middleware.RequireRoles.
func StaffRoles() []string {
	return []string{string(RoleAdmin), string(RoleShelterStaff)}
}

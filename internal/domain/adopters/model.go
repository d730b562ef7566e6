package adopters

import "time"

// @Enum house, apartment, condo, other
type HomeType string

const (
	HomeHouse     HomeType = "house"
	HomeApartment HomeType = "apartment"
	HomeCondo     HomeType = "condo"
	HomeOther     HomeType = "other"
)

// Adopter: perfil de adopción/acogida de un usuario.
// AnimalID queda vacío si el animal asociado se elimina.
type Adopter struct {
	ID       string
	UserID   string
	AnimalID string // opcional, animals.Animal.ID

	HomeType           HomeType
	HasYard            bool
	HouseholdSize      int
	HasOtherPets       bool
	OtherPetsDetails   string
	ExperienceWithPets string
	Notes              string

	CreatedAt time.Time
}

// Viewer: quién consulta el perfil.
type Viewer struct {
	UserID string
	Role   string
}

package animals

import "time"

// Species define las especies admitidas.
// @Enum dog, cat, bird, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesBird  Species = "bird"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesOther:
		return true
	}
	return false
}

// Gender define el sexo del animal.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// IntakeType es el contexto en que el animal entró al refugio. Opcional.
type IntakeType string

const (
	IntakeStray             IntakeType = "stray"
	IntakeOwnerSurrender    IntakeType = "owner_surrender"
	IntakePublicAssist      IntakeType = "public_assist"
	IntakeAbandoned         IntakeType = "abandoned"
	IntakeEuthanasiaRequest IntakeType = "euthanasia_request"
	IntakeWildlife          IntakeType = "wildlife"
	IntakeOther             IntakeType = "other"
)

func (t IntakeType) Valid() bool {
	switch t {
	case "", IntakeStray, IntakeOwnerSurrender, IntakePublicAssist, IntakeAbandoned,
		IntakeEuthanasiaRequest, IntakeWildlife, IntakeOther:
		return true
	}
	return false
}

// Animal es la ficha de onboarding. AnimalID se asigna una sola vez en Create y no cambia.
type Animal struct {
	ID       string
	AnimalID string

	Species Species
	Breed   string
	Gender  Gender
	Colour  string

	AgeInYears  float64
	WeightInKgs float64

	DistinctiveFeatures string
	MicroChipped        bool
	IsMix               bool

	IntakeType    IntakeType
	MonthOfIntake int // 1..12, 0 = no informado

	RegisteredBy string // users.User.ID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListResult es una página de animales más el total.
type ListResult struct {
	Items    []Animal
	Total    int
	Page     int
	PageSize int
}

// HasNext indica si existe una página siguiente.
func (r ListResult) HasNext() bool {
	return r.Page*r.PageSize < r.Total
}

// HasPrevious indica si existe una página anterior.
func (r ListResult) HasPrevious() bool {
	return r.Page > 1
}

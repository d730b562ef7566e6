package memory

import (
	"sync"

	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/assessments"
	"animal-shelter-api/internal/domain/auth"
	"animal-shelter-api/internal/domain/health"
	"animal-shelter-api/internal/domain/inspections"
	"animal-shelter-api/internal/domain/outcomes"
	"animal-shelter-api/internal/domain/owners"
	"animal-shelter-api/internal/domain/users"
)

// Store guarda todo en memoria detrás de un único mutex, así las cascadas
// (animal -> fichas, adoptante -> inspecciones) son atómicas.
// Solo para dev y tests: se pierde al reiniciar.
type Store struct {
	mu sync.RWMutex

	users        map[string]users.User
	userByEmail  map[string]string
	tokens       map[string]auth.Token
	tokenByUser  map[string]string
	animals      map[string]animals.Animal
	animalByCode map[string]string
	animalOrder  []string

	health      map[string][]health.Record
	owners      map[string][]owners.PreviousOwner
	assessments map[string][]assessments.Assessment
	outcomes    map[string][]outcomes.Prediction

	adopters    map[string]adopters.Adopter
	inspections map[string][]inspections.Inspection
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]users.User),
		userByEmail:  make(map[string]string),
		tokens:       make(map[string]auth.Token),
		tokenByUser:  make(map[string]string),
		animals:      make(map[string]animals.Animal),
		animalByCode: make(map[string]string),
		health:       make(map[string][]health.Record),
		owners:       make(map[string][]owners.PreviousOwner),
		assessments:  make(map[string][]assessments.Assessment),
		outcomes:     make(map[string][]outcomes.Prediction),
		adopters:     make(map[string]adopters.Adopter),
		inspections:  make(map[string][]inspections.Inspection),
	}
}

func (s *Store) Users() users.Repository             { return userRepo{s} }
func (s *Store) Tokens() auth.TokenRepository        { return tokenRepo{s} }
func (s *Store) Animals() animals.Repository         { return animalRepo{s} }
func (s *Store) Health() health.Repository           { return healthRepo{s} }
func (s *Store) Owners() owners.Repository           { return ownerRepo{s} }
func (s *Store) Assessments() assessments.Repository { return assessmentRepo{s} }
func (s *Store) Outcomes() outcomes.Repository       { return outcomeRepo{s} }
func (s *Store) Adopters() adopters.Repository       { return adopterRepo{s} }
func (s *Store) Inspections() inspections.Repository { return inspectionRepo{s} }

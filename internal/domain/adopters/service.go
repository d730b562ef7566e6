package adopters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/platform/validate"
)

type Service struct {
	repo    Repository
	animals *animals.Service
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, animalsSvc *animals.Service, log logger.Logger) *Service {
	return &Service{
		repo:    repo,
		animals: animalsSvc,
		log:     log,
		now:     time.Now,
	}
}

type CreateInput struct {
	AnimalRef          string // uuid o identificador generado, opcional
	HomeType           HomeType
	HasYard            bool
	HouseholdSize      int
	HasOtherPets       bool
	OtherPetsDetails   string
	ExperienceWithPets string
	Notes              string
}

// Create registra el perfil a nombre de userID (siempre el usuario autenticado).
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Adopter, error) {
	if strings.TrimSpace(userID) == "" {
		return Adopter{}, apperr.ErrUnauthorized
	}

	if err := validate.First(
		validate.OneOf("home_type", in.HomeType, HomeHouse, HomeApartment, HomeCondo, HomeOther),
		validate.MaxLen("other_pets_details", in.OtherPetsDetails, 200),
		validate.MaxLen("experience_with_pets", in.ExperienceWithPets, 200),
		validate.MaxLen("notes", in.Notes, 500),
	); err != nil {
		return Adopter{}, err
	}
	if in.HouseholdSize < 1 {
		return Adopter{}, apperr.Invalid("household_size", "Ensure this value is greater than or equal to 1.")
	}

	var animalID string
	if ref := strings.TrimSpace(in.AnimalRef); ref != "" {
		a, err := s.animals.Get(ctx, ref)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return Adopter{}, apperr.Invalid("animal", "Animal does not exist.")
			}
			return Adopter{}, err
		}
		animalID = a.ID
	}

	details := strings.TrimSpace(in.OtherPetsDetails)
	if !in.HasOtherPets {
		details = ""
	}

	a := Adopter{
		ID:                 uuid.NewString(),
		UserID:             userID,
		AnimalID:           animalID,
		HomeType:           in.HomeType,
		HasYard:            in.HasYard,
		HouseholdSize:      in.HouseholdSize,
		HasOtherPets:       in.HasOtherPets,
		OtherPetsDetails:   details,
		ExperienceWithPets: strings.TrimSpace(in.ExperienceWithPets),
		Notes:              strings.TrimSpace(in.Notes),
		CreatedAt:          s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adopter{}, err
	}

	s.log.Info("adopter profile created", map[string]any{"id": a.ID, "user_id": userID})
	return a, nil
}

// Get devuelve el perfil si el viewer es el dueño o personal del refugio.
func (s *Service) Get(ctx context.Context, id string, v Viewer) (Adopter, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Adopter{}, err
	}
	if a.UserID != v.UserID && !users.Role(v.Role).IsStaff() {
		return Adopter{}, apperr.ErrForbidden
	}
	return a, nil
}

// GetByID sin chequeo de acceso (uso interno).
func (s *Service) GetByID(ctx context.Context, id string) (Adopter, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return Adopter{}, apperr.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Delete con el mismo control de acceso que Get.
func (s *Service) Delete(ctx context.Context, id string, v Viewer) error {
	a, err := s.Get(ctx, id, v)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return err
	}
	s.log.Info("adopter profile deleted", map[string]any{"id": a.ID, "by": v.UserID})
	return nil
}

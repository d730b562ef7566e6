package health

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/platform/validate"
)

type Service struct {
	repo    Repository
	animals *animals.Service
	now     func() time.Time
}

func NewService(repo Repository, animalsSvc *animals.Service) *Service {
	return &Service{
		repo:    repo,
		animals: animalsSvc,
		now:     time.Now,
	}
}

type CreateInput struct {
	HealthStatus           Status
	VaccinationStatus      VaccinationStatus
	ParasiteControl        ParasiteControl
	Temperament            Temperament
	CurrentMedications     string
	KnownMedicalConditions string
	Allergies              string
	AnyAggressiveIncidents bool
	IsNeutered             bool
	IsInjured              bool
	IsRabid                bool
	OtherObservations      string
}

// Create agrega una ficha de salud al animal (uuid o identificador generado).
func (s *Service) Create(ctx context.Context, animalRef, recordedBy string, in CreateInput) (Record, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return Record{}, err
	}

	if err := validate.First(
		validate.OneOf("health_status", in.HealthStatus,
			StatusNormal, StatusInjured, StatusAged, StatusSick, StatusFeral, StatusPregnant, StatusNursing),
		validate.OneOf("vaccination_status", in.VaccinationStatus,
			VaccinationUpToDate, VaccinationIncomplete, VaccinationUnknown),
		validate.OneOf("parasite_control", in.ParasiteControl,
			ParasiteFleaTick, ParasiteDeworming, ParasiteNone),
		validate.OneOf("temperament", in.Temperament,
			TemperamentFriendly, TemperamentShy, TemperamentAggressive),
		validate.MaxLen("current_medications", in.CurrentMedications, 30),
		validate.MaxLen("known_medical_conditions", in.KnownMedicalConditions, 30),
		validate.MaxLen("allergies", in.Allergies, 50),
		validate.MaxLen("other_observations", in.OtherObservations, 200),
	); err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:                     uuid.NewString(),
		AnimalID:               a.ID,
		HealthStatus:           in.HealthStatus,
		VaccinationStatus:      in.VaccinationStatus,
		ParasiteControl:        in.ParasiteControl,
		Temperament:            in.Temperament,
		CurrentMedications:     strings.TrimSpace(in.CurrentMedications),
		KnownMedicalConditions: strings.TrimSpace(in.KnownMedicalConditions),
		Allergies:              strings.TrimSpace(in.Allergies),
		AnyAggressiveIncidents: in.AnyAggressiveIncidents,
		IsNeutered:             in.IsNeutered,
		// Un estado "injured" implica herido aunque no venga el flag.
		IsInjured:         in.IsInjured || in.HealthStatus == StatusInjured,
		IsRabid:           in.IsRabid,
		OtherObservations: strings.TrimSpace(in.OtherObservations),
		RecordedBy:        recordedBy,
		CreatedAt:         s.now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListByAnimal devuelve el historial en orden de creación.
func (s *Service) ListByAnimal(ctx context.Context, animalRef string) ([]Record, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAnimal(ctx, a.ID)
}

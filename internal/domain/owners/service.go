package owners

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/platform/apperr"
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
	PreviousOwnerKnown       bool
	Name                     string
	ReasonForIntake          IntakeReason
	LengthOfStayYears        float64
	PreviousVeterinaryClinic string
}

func (s *Service) Create(ctx context.Context, animalRef string, in CreateInput) (PreviousOwner, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return PreviousOwner{}, err
	}

	name := strings.TrimSpace(in.Name)
	if in.PreviousOwnerKnown && name == "" {
		return PreviousOwner{}, apperr.Invalid("name_of_previous_owner", "Required when previous_owner_known is true.")
	}
	if !in.PreviousOwnerKnown {
		name = ""
	}
	if in.LengthOfStayYears < 0 {
		return PreviousOwner{}, apperr.Invalid("los_with_owners_in_years", "Ensure this value is greater than or equal to 0.")
	}
	if err := validate.First(
		validate.OneOf("reason_for_intake", in.ReasonForIntake,
			ReasonAbandoned, ReasonOwnersMoving, ReasonHypoallergens, ReasonUnableToCareFor),
		validate.MaxLen("name_of_previous_owner", name, 50),
		validate.MaxLen("previous_veterinary_clinic", in.PreviousVeterinaryClinic, 200),
	); err != nil {
		return PreviousOwner{}, err
	}

	p := PreviousOwner{
		ID:                       uuid.NewString(),
		AnimalID:                 a.ID,
		PreviousOwnerKnown:       in.PreviousOwnerKnown,
		Name:                     name,
		ReasonForIntake:          in.ReasonForIntake,
		LengthOfStayYears:        in.LengthOfStayYears,
		PreviousVeterinaryClinic: strings.TrimSpace(in.PreviousVeterinaryClinic),
		CreatedAt:                s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return PreviousOwner{}, err
	}
	return p, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalRef string) ([]PreviousOwner, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAnimal(ctx, a.ID)
}

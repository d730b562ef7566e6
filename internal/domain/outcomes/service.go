package outcomes

import (
	"context"
	"math"
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
	Outcome     Outcome
	Probability float64
}

func (s *Service) Create(ctx context.Context, animalRef, predictedBy string, in CreateInput) (Prediction, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return Prediction{}, err
	}

	if err := validate.OneOf("outcome", in.Outcome,
		OutcomeAdoption, OutcomeTransfer, OutcomeReturnToOwner,
		OutcomeEuthanasia, OutcomeDied, OutcomeFoster,
	); err != nil {
		return Prediction{}, err
	}
	if math.IsNaN(in.Probability) || in.Probability < 0 || in.Probability > 1 {
		return Prediction{}, apperr.Invalid("probability", "Ensure this value is between 0 and 1.")
	}

	p := Prediction{
		ID:          uuid.NewString(),
		AnimalID:    a.ID,
		Outcome:     in.Outcome,
		Probability: in.Probability,
		PredictedBy: predictedBy,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Prediction{}, err
	}
	return p, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalRef string) ([]Prediction, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAnimal(ctx, a.ID)
}

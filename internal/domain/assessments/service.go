package assessments

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
	CageID               string
	RecommendedNextSteps NextStep
	Notes                string
}

func (s *Service) Create(ctx context.Context, animalRef, assessedBy string, in CreateInput) (Assessment, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return Assessment{}, err
	}

	if err := validate.First(
		validate.OneOf("recommended_next_steps", in.RecommendedNextSteps,
			NextMedicalEvaluation, NextBehaviourAnalysis),
		validate.MaxLen("cage_id", strings.TrimSpace(in.CageID), 20),
		validate.MaxLen("notes", in.Notes, 500),
	); err != nil {
		return Assessment{}, err
	}

	as := Assessment{
		ID:                   uuid.NewString(),
		AnimalID:             a.ID,
		AssessedBy:           assessedBy,
		CageID:               strings.TrimSpace(in.CageID),
		RecommendedNextSteps: in.RecommendedNextSteps,
		Notes:                strings.TrimSpace(in.Notes),
		CreatedAt:            s.now(),
	}
	if err := s.repo.Create(ctx, as); err != nil {
		return Assessment{}, err
	}
	return as, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalRef string) ([]Assessment, error) {
	a, err := s.animals.Get(ctx, animalRef)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAnimal(ctx, a.ID)
}

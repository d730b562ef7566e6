package inspections

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/validate"
)

type Service struct {
	repo     Repository
	adopters *adopters.Service
	now      func() time.Time
}

func NewService(repo Repository, adoptersSvc *adopters.Service) *Service {
	return &Service{
		repo:     repo,
		adopters: adoptersSvc,
		now:      time.Now,
	}
}

type CreateInput struct {
	ScheduledFor time.Time
	Result       Result // vacío => pending
	Notes        string
}

func (s *Service) Create(ctx context.Context, adopterID, inspectorID string, in CreateInput) (Inspection, error) {
	ad, err := s.adopters.GetByID(ctx, adopterID)
	if err != nil {
		return Inspection{}, err
	}

	if in.ScheduledFor.IsZero() {
		return Inspection{}, apperr.Invalid("scheduled_for", "This field is required.")
	}
	if in.Result == "" {
		in.Result = ResultPending
	}
	if err := validate.First(
		validate.OneOf("result", in.Result, ResultPending, ResultPassed, ResultFailed),
		validate.MaxLen("notes", in.Notes, 500),
	); err != nil {
		return Inspection{}, err
	}

	insp := Inspection{
		ID:           uuid.NewString(),
		AdopterID:    ad.ID,
		InspectorID:  inspectorID,
		ScheduledFor: in.ScheduledFor.UTC(),
		Result:       in.Result,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, insp); err != nil {
		return Inspection{}, err
	}
	return insp, nil
}

// ListByAdopter aplica el mismo control de acceso que el perfil.
func (s *Service) ListByAdopter(ctx context.Context, adopterID string, v adopters.Viewer) ([]Inspection, error) {
	ad, err := s.adopters.Get(ctx, adopterID, v)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAdopter(ctx, ad.ID)
}

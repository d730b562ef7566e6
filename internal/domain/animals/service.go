package animals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/logger"
)

var (
	// ErrInvalidPage: página fuera de rango o no numérica.
	ErrInvalidPage = errors.New("invalid page")
)

type ListOptions struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Service struct {
	repo  Repository
	users *users.Service
	log   logger.Logger
	opts  ListOptions
	now   func() time.Time
	genID IDGenerator
}

func NewService(repo Repository, usersSvc *users.Service, log logger.Logger, opts ListOptions) *Service {
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 1000
	}
	if opts.DefaultPageSize <= 0 || opts.DefaultPageSize > opts.MaxPageSize {
		opts.DefaultPageSize = min(100, opts.MaxPageSize)
	}
	return &Service{
		repo:  repo,
		users: usersSvc,
		log:   log,
		opts:  opts,
		now:   time.Now,
		genID: NewAnimalID,
	}
}

type CreateInput struct {
	Species             Species
	Breed               string
	Gender              Gender
	Colour              string
	AgeInYears          float64
	WeightInKgs         float64
	DistinctiveFeatures string
	MicroChipped        bool
	IsMix               bool
	IntakeType          IntakeType
	MonthOfIntake       int
}

// Create registra (onboarding) un animal. El identificador se genera acá, una sola vez,
// antes de persistir. Una colisión devuelve apperr.ErrConflict; no se reintenta.
func (s *Service) Create(ctx context.Context, registrantID string, in CreateInput) (Animal, error) {
	if err := validateCreate(in); err != nil {
		return Animal{}, err
	}

	if _, err := s.users.GetByID(ctx, registrantID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Animal{}, apperr.Invalid("registered_by", "registrant user does not exist.")
		}
		return Animal{}, err
	}

	now := s.now()
	a := Animal{
		ID:                  uuid.NewString(),
		Species:             in.Species,
		Breed:               strings.TrimSpace(in.Breed),
		Gender:              in.Gender,
		Colour:              strings.TrimSpace(in.Colour),
		AgeInYears:          in.AgeInYears,
		WeightInKgs:         in.WeightInKgs,
		DistinctiveFeatures: strings.TrimSpace(in.DistinctiveFeatures),
		MicroChipped:        in.MicroChipped,
		IsMix:               in.IsMix,
		IntakeType:          in.IntakeType,
		MonthOfIntake:       in.MonthOfIntake,
		RegisteredBy:        registrantID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	a, err := assignAnimalID(a, s.genID)
	if err != nil {
		return Animal{}, fmt.Errorf("generate animal id: %w", err)
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.log.Warn("animal id collision", map[string]any{"animal_id": a.AnimalID})
		}
		return Animal{}, err
	}

	s.log.Info("animal onboarded", map[string]any{
		"id":            a.ID,
		"animal_id":     a.AnimalID,
		"species":       string(a.Species),
		"registered_by": registrantID,
	})
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, apperr.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Get acepta el uuid interno o el identificador generado (ej. "dog_Ab3dE9xZ").
func (s *Service) Get(ctx context.Context, ref string) (Animal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Animal{}, apperr.ErrNotFound
	}
	if _, err := uuid.Parse(ref); err == nil {
		return s.repo.GetByID(ctx, ref)
	}
	return s.repo.GetByAnimalID(ctx, ref)
}

// NormalizePageSize aplica default y tope.
func (s *Service) NormalizePageSize(size int) int {
	if size <= 0 {
		return s.opts.DefaultPageSize
	}
	if size > s.opts.MaxPageSize {
		return s.opts.MaxPageSize
	}
	return size
}

// List pagina por número de página (1-based). Página 1 siempre es válida aunque no haya datos.
func (s *Service) List(ctx context.Context, page, pageSize int) (ListResult, error) {
	if page < 1 {
		return ListResult{}, ErrInvalidPage
	}
	pageSize = s.NormalizePageSize(pageSize)
	// El offset no puede desbordar: una página así está fuera de rango seguro.
	if page-1 > math.MaxInt/pageSize {
		return ListResult{}, ErrInvalidPage
	}

	items, total, err := s.repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return ListResult{}, err
	}

	lastPage := max(1, int(math.Ceil(float64(total)/float64(pageSize))))
	if page > lastPage {
		return ListResult{}, ErrInvalidPage
	}

	return ListResult{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Delete borra el animal y, en cascada, sus fichas dependientes.
func (s *Service) Delete(ctx context.Context, ref string) error {
	a, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return err
	}
	s.log.Info("animal deleted", map[string]any{"id": a.ID, "animal_id": a.AnimalID})
	return nil
}

func validateCreate(in CreateInput) error {
	if in.Species == "" {
		return apperr.Invalid("species", "This field is required.")
	}
	if !in.Species.Valid() {
		return apperr.Invalid("species", fmt.Sprintf("%q is not a valid choice.", in.Species))
	}
	if in.Gender == "" {
		return apperr.Invalid("gender", "This field is required.")
	}
	if !in.Gender.Valid() {
		return apperr.Invalid("gender", fmt.Sprintf("%q is not a valid choice.", in.Gender))
	}
	if in.AgeInYears < 0 || math.IsNaN(in.AgeInYears) {
		return apperr.Invalid("age_in_years", "The age must be greater than 0.")
	}
	if in.WeightInKgs < 0 || math.IsNaN(in.WeightInKgs) {
		return apperr.Invalid("weight_in_kgs", "The weight must be greater than 0.")
	}
	if !in.IntakeType.Valid() {
		return apperr.Invalid("intake_type", fmt.Sprintf("%q is not a valid choice.", in.IntakeType))
	}
	if in.MonthOfIntake < 0 || in.MonthOfIntake > 12 {
		return apperr.Invalid("month_of_intake", "Ensure this value is between 1 and 12.")
	}
	if utf8.RuneCountInString(in.Breed) > 30 {
		return apperr.Invalid("breed", "Ensure this field has no more than 30 characters.")
	}
	if utf8.RuneCountInString(in.Colour) > 30 {
		return apperr.Invalid("colour", "Ensure this field has no more than 30 characters.")
	}
	if utf8.RuneCountInString(in.DistinctiveFeatures) > 50 {
		return apperr.Invalid("distinctive_features", "Ensure this field has no more than 50 characters.")
	}
	return nil
}

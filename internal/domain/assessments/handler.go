package assessments

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.With(middleware.RequireRoles(users.StaffRoles()...)).Post("/animals/{animalID}/assessments", createAssessmentHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/animals/{animalID}/assessments", listAssessmentsHandler(svc, log))
}

type createAssessmentRequest struct {
	CageID               string   `json:"cage_id"`
	RecommendedNextSteps NextStep `json:"recommended_next_steps" enums:"medical_evaluation,behaviour_analysis"`
	Notes                string   `json:"notes"`
}

type assessmentResponse struct {
	ID                   string    `json:"id"`
	Animal               string    `json:"animal"`
	AssessedBy           string    `json:"assessed_by"`
	CageID               string    `json:"cage_id,omitempty"`
	RecommendedNextSteps NextStep  `json:"recommended_next_steps"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
}

// createAssessmentHandler godoc
// @Summary Registrar evaluación inicial
// @Tags assessments
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Param payload body createAssessmentRequest true "Evaluación"
// @Success 201 {object} assessmentResponse
// @Failure 400 {object} map[string][]string
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/assessments [post]
func createAssessmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		var req createAssessmentRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		a, err := svc.Create(r.Context(), chi.URLParam(r, "animalID"), claims.UserID, CreateInput{
			CageID:               req.CageID,
			RecommendedNextSteps: req.RecommendedNextSteps,
			Notes:                req.Notes,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(a))
	}
}

// listAssessmentsHandler godoc
// @Summary Evaluaciones de un animal
// @Tags assessments
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Success 200 {array} assessmentResponse
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/assessments [get]
func listAssessmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		out := make([]assessmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toResponse(a Assessment) assessmentResponse {
	return assessmentResponse{
		ID:                   a.ID,
		Animal:               a.AnimalID,
		AssessedBy:           a.AssessedBy,
		CageID:               a.CageID,
		RecommendedNextSteps: a.RecommendedNextSteps,
		Notes:                a.Notes,
		CreatedAt:            a.CreatedAt,
	}
}

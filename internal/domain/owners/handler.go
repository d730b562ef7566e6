package owners

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.With(middleware.RequireRoles(users.StaffRoles()...)).Post("/animals/{animalID}/previous-owners", createOwnerHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/animals/{animalID}/previous-owners", listOwnersHandler(svc, log))
}

type createOwnerRequest struct {
	PreviousOwnerKnown       *bool        `json:"previous_owner_known"` // default true
	Name                     string       `json:"name_of_previous_owner"`
	ReasonForIntake          IntakeReason `json:"reason_for_intake" enums:"abandoned,owners_moving_away,hypoallergens,unable_to_care_for"`
	LengthOfStayYears        float64      `json:"los_with_owners_in_years"`
	PreviousVeterinaryClinic string       `json:"previous_veterinary_clinic"`
}

type ownerResponse struct {
	ID                       string       `json:"id"`
	Animal                   string       `json:"animal"`
	PreviousOwnerKnown       bool         `json:"previous_owner_known"`
	Name                     string       `json:"name_of_previous_owner"`
	ReasonForIntake          IntakeReason `json:"reason_for_intake"`
	LengthOfStayYears        float64      `json:"los_with_owners_in_years"`
	PreviousVeterinaryClinic string       `json:"previous_veterinary_clinic"`
	CreatedAt                time.Time    `json:"created_at"`
}

// createOwnerHandler godoc
// @Summary Registrar dueño anterior
// @Tags previous-owners
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Param payload body createOwnerRequest true "Dueño anterior"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/previous-owners [post]
func createOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		known := true
		if req.PreviousOwnerKnown != nil {
			known = *req.PreviousOwnerKnown
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "animalID"), CreateInput{
			PreviousOwnerKnown:       known,
			Name:                     req.Name,
			ReasonForIntake:          req.ReasonForIntake,
			LengthOfStayYears:        req.LengthOfStayYears,
			PreviousVeterinaryClinic: req.PreviousVeterinaryClinic,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(p))
	}
}

// listOwnersHandler godoc
// @Summary Dueños anteriores de un animal
// @Tags previous-owners
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Success 200 {array} ownerResponse
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/previous-owners [get]
func listOwnersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		out := make([]ownerResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toResponse(p PreviousOwner) ownerResponse {
	return ownerResponse{
		ID:                       p.ID,
		Animal:                   p.AnimalID,
		PreviousOwnerKnown:       p.PreviousOwnerKnown,
		Name:                     p.Name,
		ReasonForIntake:          p.ReasonForIntake,
		LengthOfStayYears:        p.LengthOfStayYears,
		PreviousVeterinaryClinic: p.PreviousVeterinaryClinic,
		CreatedAt:                p.CreatedAt,
	}
}

package adopters

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.With(middleware.RequireAuth).Post("/adopters", createAdopterHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/adopters/{adopterID}", getAdopterHandler(svc, log))
	r.With(middleware.RequireAuth).Delete("/adopters/{adopterID}", deleteAdopterHandler(svc, log))
}

type createAdopterRequest struct {
	Animal             string   `json:"animal"`
	HomeType           HomeType `json:"home_type" enums:"house,apartment,condo,other"`
	HasYard            bool     `json:"has_yard"`
	HouseholdSize      int      `json:"household_size"`
	HasOtherPets       bool     `json:"has_other_pets"`
	OtherPetsDetails   string   `json:"other_pets_details"`
	ExperienceWithPets string   `json:"experience_with_pets"`
	Notes              string   `json:"notes"`
}

type adopterResponse struct {
	ID                 string    `json:"id"`
	User               string    `json:"user"`
	Animal             *string   `json:"animal"`
	HomeType           HomeType  `json:"home_type"`
	HasYard            bool      `json:"has_yard"`
	HouseholdSize      int       `json:"household_size"`
	HasOtherPets       bool      `json:"has_other_pets"`
	OtherPetsDetails   string    `json:"other_pets_details"`
	ExperienceWithPets string    `json:"experience_with_pets"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
}

// createAdopterHandler godoc
// @Summary Crear perfil de adoptante
// @Description El perfil queda a nombre del usuario autenticado.
// @Tags adopters
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param payload body createAdopterRequest true "Perfil"
// @Success 201 {object} adopterResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} httpjson.Detail
// @Router /adopters [post]
func createAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		var req createAdopterRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalRef:          req.Animal,
			HomeType:           req.HomeType,
			HasYard:            req.HasYard,
			HouseholdSize:      req.HouseholdSize,
			HasOtherPets:       req.HasOtherPets,
			OtherPetsDetails:   req.OtherPetsDetails,
			ExperienceWithPets: req.ExperienceWithPets,
			Notes:              req.Notes,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(a))
	}
}

// getAdopterHandler godoc
// @Summary Obtener perfil de adoptante
// @Description Solo el dueño del perfil o personal del refugio.
// @Tags adopters
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param adopterID path string true "Adopter ID"
// @Success 200 {object} adopterResponse
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /adopters/{adopterID} [get]
func getAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		a, err := svc.Get(r.Context(), chi.URLParam(r, "adopterID"), Viewer{UserID: claims.UserID, Role: claims.Role})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(a))
	}
}

// deleteAdopterHandler godoc
// @Summary Eliminar perfil de adoptante
// @Description Borra también sus inspecciones. Solo el dueño del perfil o personal del refugio.
// @Tags adopters
// @Param Authorization header string true "Token <key>"
// @Param adopterID path string true "Adopter ID"
// @Success 204
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /adopters/{adopterID} [delete]
func deleteAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "adopterID"), Viewer{UserID: claims.UserID, Role: claims.Role}); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(a Adopter) adopterResponse {
	out := adopterResponse{
		ID:                 a.ID,
		User:               a.UserID,
		HomeType:           a.HomeType,
		HasYard:            a.HasYard,
		HouseholdSize:      a.HouseholdSize,
		HasOtherPets:       a.HasOtherPets,
		OtherPetsDetails:   a.OtherPetsDetails,
		ExperienceWithPets: a.ExperienceWithPets,
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
	}
	if a.AnimalID != "" {
		id := a.AnimalID
		out.Animal = &id
	}
	return out
}

package outcomes

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
	r.With(middleware.RequireRoles(users.StaffRoles()...)).Post("/animals/{animalID}/outcomes", createPredictionHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/animals/{animalID}/outcomes", listPredictionsHandler(svc, log))
}

type createPredictionRequest struct {
	Outcome     Outcome `json:"outcome" enums:"adoption,transfer,return_to_owner,euthanasia,died,foster"`
	Probability float64 `json:"probability"`
}

type predictionResponse struct {
	ID          string    `json:"id"`
	Animal      string    `json:"animal"`
	Outcome     Outcome   `json:"outcome"`
	Probability float64   `json:"probability"`
	PredictedBy string    `json:"predicted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// createPredictionHandler godoc
// @Summary Registrar predicción de desenlace
// @Tags outcomes
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Param payload body createPredictionRequest true "Predicción"
// @Success 201 {object} predictionResponse
// @Failure 400 {object} map[string][]string
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/outcomes [post]
func createPredictionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		var req createPredictionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "animalID"), claims.UserID, CreateInput{
			Outcome:     req.Outcome,
			Probability: req.Probability,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(p))
	}
}

// listPredictionsHandler godoc
// @Summary Predicciones de un animal
// @Tags outcomes
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Success 200 {array} predictionResponse
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/outcomes [get]
func listPredictionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		out := make([]predictionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toResponse(p Prediction) predictionResponse {
	return predictionResponse{
		ID:          p.ID,
		Animal:      p.AnimalID,
		Outcome:     p.Outcome,
		Probability: p.Probability,
		PredictedBy: p.PredictedBy,
		CreatedAt:   p.CreatedAt,
	}
}

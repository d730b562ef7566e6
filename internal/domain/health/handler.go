package health

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
	r.With(middleware.RequireRoles(users.StaffRoles()...)).Post("/animals/{animalID}/health", createHealthHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/animals/{animalID}/health", listHealthHandler(svc, log))
}

type createHealthRequest struct {
	HealthStatus           Status            `json:"health_status" enums:"normal,injured,aged,sick,feral,pregnant,nursing"`
	VaccinationStatus      VaccinationStatus `json:"vaccination_status" enums:"upto_date,incomplete,unknown"`
	ParasiteControl        ParasiteControl   `json:"parasite_control" enums:"flea_tick_prevention,deworming,none"`
	Temperament            Temperament       `json:"temperament" enums:"friendly,shy,aggressive"`
	CurrentMedications     string            `json:"current_medications"`
	KnownMedicalConditions string            `json:"known_medical_conditions"`
	Allergies              string            `json:"allergies"`
	AnyAggressiveIncidents bool              `json:"any_aggressive_incidents"`
	IsNeutered             bool              `json:"is_neutered"`
	IsInjured              bool              `json:"is_injured"`
	IsRabid                bool              `json:"is_rabid"`
	OtherObservations      string            `json:"other_observations"`
}

type healthResponse struct {
	ID                     string            `json:"id"`
	Animal                 string            `json:"animal"`
	HealthStatus           Status            `json:"health_status"`
	VaccinationStatus      VaccinationStatus `json:"vaccination_status"`
	ParasiteControl        ParasiteControl   `json:"parasite_control"`
	Temperament            Temperament       `json:"temperament"`
	CurrentMedications     string            `json:"current_medications"`
	KnownMedicalConditions string            `json:"known_medical_conditions"`
	Allergies              string            `json:"allergies"`
	AnyAggressiveIncidents bool              `json:"any_aggressive_incidents"`
	IsNeutered             bool              `json:"is_neutered"`
	IsInjured              bool              `json:"is_injured"`
	IsRabid                bool              `json:"is_rabid"`
	OtherObservations      string            `json:"other_observations"`
	RecordedBy             string            `json:"recorded_by"`
	CreatedAt              time.Time         `json:"created_at"`
}

// createHealthHandler godoc
// @Summary Registrar ficha de salud
// @Tags health
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Param payload body createHealthRequest true "Ficha de salud"
// @Success 201 {object} healthResponse
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/health [post]
func createHealthHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		var req createHealthRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		rec, err := svc.Create(r.Context(), chi.URLParam(r, "animalID"), claims.UserID, CreateInput{
			HealthStatus:           req.HealthStatus,
			VaccinationStatus:      req.VaccinationStatus,
			ParasiteControl:        req.ParasiteControl,
			Temperament:            req.Temperament,
			CurrentMedications:     req.CurrentMedications,
			KnownMedicalConditions: req.KnownMedicalConditions,
			Allergies:              req.Allergies,
			AnyAggressiveIncidents: req.AnyAggressiveIncidents,
			IsNeutered:             req.IsNeutered,
			IsInjured:              req.IsInjured,
			IsRabid:                req.IsRabid,
			OtherObservations:      req.OtherObservations,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(rec))
	}
}

// listHealthHandler godoc
// @Summary Historial de salud de un animal
// @Tags health
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Success 200 {array} healthResponse
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID}/health [get]
func listHealthHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		out := make([]healthResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toResponse(rec))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toResponse(rec Record) healthResponse {
	return healthResponse{
		ID:                     rec.ID,
		Animal:                 rec.AnimalID,
		HealthStatus:           rec.HealthStatus,
		VaccinationStatus:      rec.VaccinationStatus,
		ParasiteControl:        rec.ParasiteControl,
		Temperament:            rec.Temperament,
		CurrentMedications:     rec.CurrentMedications,
		KnownMedicalConditions: rec.KnownMedicalConditions,
		Allergies:              rec.Allergies,
		AnyAggressiveIncidents: rec.AnyAggressiveIncidents,
		IsNeutered:             rec.IsNeutered,
		IsInjured:              rec.IsInjured,
		IsRabid:                rec.IsRabid,
		OtherObservations:      rec.OtherObservations,
		RecordedBy:             rec.RecordedBy,
		CreatedAt:              rec.CreatedAt,
	}
}

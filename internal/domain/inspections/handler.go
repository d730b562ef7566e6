package inspections

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.With(middleware.RequireRoles(users.StaffRoles()...)).Post("/adopters/{adopterID}/inspections", createInspectionHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/adopters/{adopterID}/inspections", listInspectionsHandler(svc, log))
}

type createInspectionRequest struct {
	ScheduledFor time.Time `json:"scheduled_for" example:"2026-01-15T10:00:00Z"`
	Result       Result    `json:"result" enums:"pending,passed,failed"`
	Notes        string    `json:"notes"`
}

type inspectionResponse struct {
	ID           string    `json:"id"`
	Adopter      string    `json:"adopter"`
	Inspector    string    `json:"inspector"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Result       Result    `json:"result"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// createInspectionHandler godoc
// @Summary Agendar inspección del hogar
// @Tags inspections
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param adopterID path string true "Adopter ID"
// @Param payload body createInspectionRequest true "Inspección"
// @Success 201 {object} inspectionResponse
// @Failure 400 {object} map[string][]string
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /adopters/{adopterID}/inspections [post]
func createInspectionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		var req createInspectionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		insp, err := svc.Create(r.Context(), chi.URLParam(r, "adopterID"), claims.UserID, CreateInput{
			ScheduledFor: req.ScheduledFor,
			Result:       req.Result,
			Notes:        req.Notes,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toResponse(insp))
	}
}

// listInspectionsHandler godoc
// @Summary Inspecciones de un adoptante
// @Tags inspections
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param adopterID path string true "Adopter ID"
// @Success 200 {array} inspectionResponse
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /adopters/{adopterID}/inspections [get]
func listInspectionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		items, err := svc.ListByAdopter(r.Context(), chi.URLParam(r, "adopterID"),
			adopters.Viewer{UserID: claims.UserID, Role: claims.Role})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		out := make([]inspectionResponse, 0, len(items))
		for _, in := range items {
			out = append(out, toResponse(in))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func toResponse(in Inspection) inspectionResponse {
	return inspectionResponse{
		ID:           in.ID,
		Adopter:      in.AdopterID,
		Inspector:    in.InspectorID,
		ScheduledFor: in.ScheduledFor,
		Result:       in.Result,
		Notes:        in.Notes,
		CreatedAt:    in.CreatedAt,
	}
}

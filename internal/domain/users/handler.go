package users

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
	r.With(middleware.RequireAuth).Get("/users/me", meHandler(svc, log))
}

// UserResponse lista explícitamente los campos expuestos (nunca el hash).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        Role      `json:"usertype"`
	PhoneNumber string    `json:"phone_number"`
	Location    string    `json:"location"`
	IsStaff     bool      `json:"is_staff"`
	NewUser     bool      `json:"new_user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// meHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags users
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Success 200 {object} UserResponse
// @Failure 401 {object} httpjson.Detail
// @Router /users/me [get]
func meHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusOK, ToResponse(u))
	}
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		Location:    u.Location,
		IsStaff:     u.IsStaff,
		NewUser:     u.NewUser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

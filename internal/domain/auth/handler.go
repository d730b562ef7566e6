package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

// RegisterRoutes monta signup/login/logout. limiter puede ser nil.
func RegisterRoutes(r chi.Router, svc *Service, limiter *middleware.RateLimiter, log logger.Logger) {
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RateLimit(limiter))
		pr.Post("/signup", signupHandler(svc, log))
		pr.Post("/login", loginHandler(svc, log))
	})

	r.With(middleware.RequireAuth).Post("/logout", logoutHandler(svc, log))
}

// signupRequest es el cuerpo de alta de usuario.
type signupRequest struct {
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Password    string     `json:"password"`
	Role        users.Role `json:"usertype" enums:"shelterstaff,adopter_or_foster,volunteer"`
	PhoneNumber string     `json:"phone_number"`
	Location    string     `json:"location"`
}

type signupResponse struct {
	Token string `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type loginError struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// signupHandler godoc
// @Summary Registrar usuario
// @Description Crea un usuario y devuelve su token. Password mínimo 8 caracteres.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Datos del usuario"
// @Success 200 {object} signupResponse
// @Failure 400 {object} map[string][]string "errores por campo"
// @Failure 429 {object} httpjson.Detail
// @Router /signup [post]
func signupHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		t, _, err := svc.Signup(r.Context(), users.RegisterInput{
			Email:       req.Email,
			Name:        req.Name,
			Password:    req.Password,
			Role:        req.Role,
			PhoneNumber: req.PhoneNumber,
			Location:    req.Location,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusOK, signupResponse{Token: t.Key})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Devuelve el token del usuario. 401 genérico si el email no existe o el password no coincide.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {object} loginError
// @Failure 429 {object} httpjson.Detail
// @Router /login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		t, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, apperr.ErrUnauthorized) {
				httpjson.Write(w, http.StatusUnauthorized, loginError{Error: "Invalid credentials."})
				return
			}
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusOK, loginResponse{Message: "Logged in successfully.", Token: t.Key})
	}
}

// logoutHandler godoc
// @Summary Logout
// @Description Elimina el token del usuario. El próximo login emite uno nuevo.
// @Tags auth
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Success 200 {object} messageResponse
// @Failure 401 {object} httpjson.Detail
// @Router /logout [post]
func logoutHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middleware.GetToken(r.Context())); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, messageResponse{Message: "Logged out successfully."})
	}
}

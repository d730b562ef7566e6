package animals

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	staff := middleware.RequireRoles(users.StaffRoles()...)

	// Listado público, sin auth.
	r.Get("/animals/list", listAnimalsHandler(svc, log))

	r.With(staff).Post("/animals", createAnimalHandler(svc, log))
	r.With(middleware.RequireAuth).Get("/animals/{animalID}", getAnimalHandler(svc, log))
	r.With(staff).Delete("/animals/{animalID}", deleteAnimalHandler(svc, log))
}

// createAnimalRequest: el identificador nunca lo manda el cliente.
type createAnimalRequest struct {
	Species             Species    `json:"species" enums:"dog,cat,bird,other"`
	Breed               string     `json:"breed"`
	Gender              Gender     `json:"gender" enums:"male,female,unknown"`
	Colour              string     `json:"colour"`
	AgeInYears          float64    `json:"age_in_years"`
	WeightInKgs         float64    `json:"weight_in_kgs"`
	DistinctiveFeatures string     `json:"distinctive_features"`
	MicroChipped        bool       `json:"micro_chipped"`
	IsMix               bool       `json:"is_mix"`
	IntakeType          IntakeType `json:"intake_type"`
	MonthOfIntake       int        `json:"month_of_intake"`
}

// AnimalResponse: lista explícita de campos expuestos.
type AnimalResponse struct {
	ID                  string     `json:"id"`
	AnimalID            string     `json:"animal_id"`
	Species             Species    `json:"species"`
	Breed               string     `json:"breed"`
	Gender              Gender     `json:"gender"`
	Colour              string     `json:"colour"`
	AgeInYears          float64    `json:"age_in_years"`
	WeightInKgs         float64    `json:"weight_in_kgs"`
	DistinctiveFeatures string     `json:"distinctive_features"`
	MicroChipped        bool       `json:"micro_chipped"`
	IsMix               bool       `json:"is_mix"`
	IntakeType          IntakeType `json:"intake_type"`
	MonthOfIntake       int        `json:"month_of_intake"`
	RegisteredBy        string     `json:"registered_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// pageResponse sigue el formato de paginación por número de página: count/next/previous/results.
type pageResponse struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []AnimalResponse `json:"results"`
}

// createAnimalHandler godoc
// @Summary Onboarding de animal
// @Description Registra un animal. El identificador (prefijo de especie + sufijo aleatorio) lo genera el servidor. Requiere rol admin o shelterstaff.
// @Tags animals
// @Accept json
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} AnimalResponse
// @Failure 400 {object} map[string][]string "errores por campo"
// @Failure 401 {object} httpjson.Detail
// @Failure 403 {object} httpjson.Detail
// @Failure 409 {object} httpjson.Detail "colisión de identificador, reintentar"
// @Router /animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpjson.WriteError(w, log, apperr.ErrUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Species:             req.Species,
			Breed:               req.Breed,
			Gender:              req.Gender,
			Colour:              req.Colour,
			AgeInYears:          req.AgeInYears,
			WeightInKgs:         req.WeightInKgs,
			DistinctiveFeatures: req.DistinctiveFeatures,
			MicroChipped:        req.MicroChipped,
			IsMix:               req.IsMix,
			IntakeType:          req.IntakeType,
			MonthOfIntake:       req.MonthOfIntake,
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, ToResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista paginada en orden de inserción. page_size por defecto 100, máximo 1000.
// @Tags animals
// @Produce json
// @Param page query int false "Número de página (desde 1)"
// @Param page_size query int false "Tamaño de página (máx. 1000)"
// @Success 200 {object} pageResponse
// @Failure 404 {object} httpjson.Detail "Invalid page."
// @Router /animals/list [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page := 1
		if v := strings.TrimSpace(q.Get("page")); v != "" && v != "last" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpjson.Write(w, http.StatusNotFound, httpjson.Detail{Detail: "Invalid page."})
				return
			}
			page = n
		}

		// page_size inválido => default (no es error).
		pageSize := 0
		if v := strings.TrimSpace(q.Get("page_size")); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				pageSize = n
			}
		}

		if q.Get("page") == "last" {
			// "last" resuelve a la última página con el tamaño efectivo.
			first, err := svc.List(r.Context(), 1, pageSize)
			if err != nil {
				writeListError(w, log, err)
				return
			}
			page = max(1, (first.Total+first.PageSize-1)/first.PageSize)
		}

		res, err := svc.List(r.Context(), page, pageSize)
		if err != nil {
			writeListError(w, log, err)
			return
		}

		out := pageResponse{
			Count:   res.Total,
			Results: make([]AnimalResponse, 0, len(res.Items)),
		}
		for _, a := range res.Items {
			out.Results = append(out.Results, ToResponse(a))
		}
		if res.HasNext() {
			u := pageURL(r, res.Page+1)
			out.Next = &u
		}
		if res.HasPrevious() {
			u := pageURL(r, res.Page-1)
			out.Previous = &u
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Description Acepta el id interno (uuid) o el identificador generado.
// @Tags animals
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Success 200 {object} AnimalResponse
// @Failure 401 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Description Elimina el animal y en cascada sus fichas de salud, dueños previos, evaluaciones y predicciones.
// @Tags animals
// @Param Authorization header string true "Token <key>"
// @Param animalID path string true "uuid o animal_id"
// @Success 204
// @Failure 401 {object} httpjson.Detail
// @Failure 403 {object} httpjson.Detail
// @Failure 404 {object} httpjson.Detail
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeListError(w http.ResponseWriter, log logger.Logger, err error) {
	if errors.Is(err, ErrInvalidPage) {
		httpjson.Write(w, http.StatusNotFound, httpjson.Detail{Detail: "Invalid page."})
		return
	}
	httpjson.WriteError(w, log, err)
}

// pageURL arma la URL absoluta de otra página conservando el resto de la query.
// La página 1 se representa sin el parámetro page.
func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = p
	}

	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func ToResponse(a Animal) AnimalResponse {
	return AnimalResponse{
		ID:                  a.ID,
		AnimalID:            a.AnimalID,
		Species:             a.Species,
		Breed:               a.Breed,
		Gender:              a.Gender,
		Colour:              a.Colour,
		AgeInYears:          a.AgeInYears,
		WeightInKgs:         a.WeightInKgs,
		DistinctiveFeatures: a.DistinctiveFeatures,
		MicroChipped:        a.MicroChipped,
		IsMix:               a.IsMix,
		IntakeType:          a.IntakeType,
		MonthOfIntake:       a.MonthOfIntake,
		RegisteredBy:        a.RegisteredBy,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "animal-shelter-api/docs"
	mem "animal-shelter-api/internal/adapters/storage/memory"
	pg "animal-shelter-api/internal/adapters/storage/postgres"
	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/assessments"
	"animal-shelter-api/internal/domain/auth"
	"animal-shelter-api/internal/domain/health"
	"animal-shelter-api/internal/domain/inspections"
	"animal-shelter-api/internal/domain/outcomes"
	"animal-shelter-api/internal/domain/owners"
	"animal-shelter-api/internal/domain/users"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/httpjson"
	"animal-shelter-api/internal/platform/logger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// DevAuth habilita X-Debug-User-ID / X-Debug-User-Role.
	DevAuth bool

	List animals.ListOptions

	// AuthRateRPS <= 0 desactiva el rate limit de signup/login.
	AuthRateRPS   float64
	AuthRateBurst int

	// BcryptCost 0 => bcrypt.DefaultCost. Los tests usan bcrypt.MinCost.
	BcryptCost int
}

type repos struct {
	users       users.Repository
	tokens      auth.TokenRepository
	animals     animals.Repository
	health      health.Repository
	owners      owners.Repository
	assessments assessments.Repository
	outcomes    outcomes.Repository
	adopters    adopters.Repository
	inspections inspections.Repository
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			users:       pg.NewUsersRepo(db),
			tokens:      pg.NewTokensRepo(db),
			animals:     pg.NewAnimalsRepo(db),
			health:      pg.NewHealthRepo(db),
			owners:      pg.NewOwnersRepo(db),
			assessments: pg.NewAssessmentsRepo(db),
			outcomes:    pg.NewOutcomesRepo(db),
			adopters:    pg.NewAdoptersRepo(db),
			inspections: pg.NewInspectionsRepo(db),
		}
	}

	st := mem.NewStore()
	return repos{
		users:       st.Users(),
		tokens:      st.Tokens(),
		animals:     st.Animals(),
		health:      st.Health(),
		owners:      st.Owners(),
		assessments: st.Assessments(),
		outcomes:    st.Outcomes(),
		adopters:    st.Adopters(),
		inspections: st.Inspections(),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	rp := newRepos(opts.DB)

	// Services por módulo
	hasher := auth.NewBcryptHasher(opts.BcryptCost)
	usersSvc := users.NewService(rp.users, hasher)
	authSvc := auth.NewService(usersSvc, rp.tokens, hasher, log)
	animalsSvc := animals.NewService(rp.animals, usersSvc, log, opts.List)
	healthSvc := health.NewService(rp.health, animalsSvc)
	ownersSvc := owners.NewService(rp.owners, animalsSvc)
	assessmentsSvc := assessments.NewService(rp.assessments, animalsSvc)
	outcomesSvc := outcomes.NewService(rp.outcomes, animalsSvc)
	adoptersSvc := adopters.NewService(rp.adopters, animalsSvc, log)
	inspectionsSvc := inspections.NewService(rp.inspections, adoptersSvc)

	var limiter *middleware.RateLimiter
	if opts.AuthRateRPS > 0 {
		limiter = middleware.NewRateLimiter(opts.AuthRateRPS, opts.AuthRateBurst)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(authSvc, opts.DevAuth))
	// Después de AuthContext para poder loguear el user_id.
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", healthzHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	auth.RegisterRoutes(r, authSvc, limiter, log)
	users.RegisterRoutes(r, usersSvc, log)
	animals.RegisterRoutes(r, animalsSvc, log)
	health.RegisterRoutes(r, healthSvc, log)
	owners.RegisterRoutes(r, ownersSvc, log)
	assessments.RegisterRoutes(r, assessmentsSvc, log)
	outcomes.RegisterRoutes(r, outcomesSvc, log)
	adopters.RegisterRoutes(r, adoptersSvc, log)
	inspections.RegisterRoutes(r, inspectionsSvc, log)

	return r
}

// healthzHandler godoc
// @Summary Liveness
// @Tags ops
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {object} httpjson.Detail
// @Router /health [get]
func healthzHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				httpjson.Write(w, http.StatusServiceUnavailable, httpjson.Detail{Detail: "database unavailable"})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

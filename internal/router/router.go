package router

import (
	"database/sql"
	"net/http"
	"time"

	"pet-adoptions/internal/adapters/auth/token"
	mem "pet-adoptions/internal/adapters/storage/memory"
	pg "pet-adoptions/internal/adapters/storage/postgres"
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/mocks"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/sessions"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/middleware"
	"pet-adoptions/internal/platform/kv"
	"pet-adoptions/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoptions/docs"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: sin manager usa el default de dev (secreto fijo, TTL 1h).
	Tokens *token.Manager

	// Opcional: sin limiter el login queda sin rate limit.
	Limiter *kv.RateLimiter

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = token.NewManager("dev-secret-change-me", time.Hour)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.AuthContext(tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		userRepo     users.Repository
		petRepo      pets.Repository
		adoptionRepo adoptions.Repository
	)

	// La conexión la abre (y cierra) el caller; acá solo se decide el
	// adapter: con DB postgres, sin DB in-memory.
	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		adoptionRepo = pg.NewAdoptionsRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		adoptionRepo = mem.NewAdoptionRepo()
	}

	// Services por módulo
	userSvc := users.NewService(userRepo)
	petSvc := pets.NewService(petRepo)
	adoptionSvc := adoptions.NewService(adoptionRepo, userRepo, petRepo, log)
	sessionSvc := sessions.NewService(userSvc, tokens, opts.Limiter, log)

	// Rutas por módulo
	users.RegisterRoutes(r, userSvc)
	pets.RegisterRoutes(r, petSvc)
	adoptions.RegisterRoutes(r, adoptionSvc)
	sessions.RegisterRoutes(r, sessionSvc)

	if gen, err := mocks.NewGenerator(); err == nil {
		mocks.RegisterRoutes(r, mocks.NewService(gen, userRepo, petRepo))
	} else {
		log.Error("mock generator disabled", map[string]any{"error": err.Error()})
	}

	r.Get("/api-docs/*", httpSwagger.Handler())

	return r
}

package router

import (
	"net/http"
	"os"
	"path/filepath"

	_ "bordoodles-api/docs"
	"bordoodles-api/internal/adapters/blob/localfs"
	mem "bordoodles-api/internal/adapters/storage/memory"
	"bordoodles-api/internal/domain/messages"
	"bordoodles-api/internal/domain/parents"
	"bordoodles-api/internal/domain/puppies"
	"bordoodles-api/internal/domain/uploads"
	"bordoodles-api/internal/middleware"
	"bordoodles-api/internal/platform/logger"
	"bordoodles-api/internal/platform/metrics"
	"bordoodles-api/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

const healthMessage = "API is running! 🐶"

type Options struct {
	Logger logger.Logger // puede ser nil (no loguea)

	// Gateways inyectados. Si vienen nil, se usan repos in-memory (modo dev/tests).
	Parents parents.Repository
	Puppies puppies.Repository

	// Blobs recibe los uploads. Si es nil, se usa un directorio temporal local.
	Blobs blob.Store
	// Static sirve los uploads locales en "/"; nil = no se monta.
	Static http.Handler

	MaxUploadBytes int64
	CORSOrigins    []string
	ContactLimiter *rate.Limiter

	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New("bordoodles")
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)
	r.Use(cors.Handler(corsOptions(opts.CORSOrigins)))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(healthMessage))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	parentRepo := opts.Parents
	if parentRepo == nil {
		parentRepo = mem.NewParentRepo()
	}
	puppyRepo := opts.Puppies
	if puppyRepo == nil {
		puppyRepo = mem.NewPuppyRepo()
	}

	blobs := opts.Blobs
	if blobs == nil {
		fallback, err := localfs.New(filepath.Join(os.TempDir(), "bordoodles-uploads"), "/")
		if err != nil {
			log.Error("upload dir unavailable", map[string]any{"error": err})
		} else {
			blobs = fallback
		}
	}

	// Services por módulo, cada uno con su gateway (sin store global)
	parentsSvc := parents.NewService(parentRepo)
	puppiesSvc := puppies.NewService(puppyRepo)

	// Rutas por módulo
	parents.RegisterRoutes(r, parentsSvc, log)
	puppies.RegisterRoutes(r, puppiesSvc, log)
	if blobs != nil {
		uploads.RegisterRoutes(r, blobs, log, opts.MaxUploadBytes)
	}
	messages.RegisterRoutes(r, log, middleware.RateLimit(opts.ContactLimiter))

	if opts.Static != nil {
		r.Handle("/*", opts.Static)
	}

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}
}

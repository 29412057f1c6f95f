package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/metrics"
)

// RouterConfig holds the cross-cutting settings of the HTTP router.
type RouterConfig struct {
	APIKeys        []string
	AllowedOrigins []string
	// MCP, when set, is mounted at /mcp behind the same auth.
	MCP http.Handler
	// Metrics serves /metrics. Defaults to the global Prometheus registry.
	Metrics http.Handler
}

// NewRouter assembles middleware and routes around s.
func NewRouter(s *Server, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Mcp-Session-Id"},
			ExposedHeaders: []string{"X-Request-ID", "Location", "Mcp-Session-Id"},
			MaxAge:         300,
		}))
	}
	r.Use(BearerAuthMiddleware(cfg.APIKeys))
	r.Use(metrics.Middleware())

	metricsHandler := cfg.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Post("/match", s.CalculateMatch)

	if s.resumes != nil {
		r.Route("/resumes", func(r chi.Router) {
			r.Get("/", s.ListResumes)
			r.Post("/", s.CreateResume)
			r.Get("/{id}", s.GetResume)
			r.Put("/{id}", s.PutResume)
			r.Delete("/{id}", s.DeleteResume)
			r.Post("/{id}/match", s.MatchStoredResume)
		})
	}

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	return r
}

package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/reyes-code/football-stats-service/internal/http/handlers"
	"github.com/reyes-code/football-stats-service/internal/http/middleware"
	"github.com/reyes-code/football-stats-service/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces the router wires around handlers.
type RouterOptions struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
	// MCP is mounted at MCPPath when non-nil.
	MCP     nethttp.Handler
	MCPPath string
}

// NewRouter registers every route on a chi mux.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware(opts.Logger, opts.Recorder))
	r.NotFound(h.NotFound)

	r.Get("/health", h.Health)
	r.Get("/", h.TeamsPage)
	r.Get("/team-stats/", h.StatisticsPage)
	r.Get("/team-stats/{"+handlers.TeamIDParam+"}", h.StatisticsPage)

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(corsOptions(opts.AllowedOrigins)))
		api.Get("/teams", h.APITeams)
		api.Get("/team-stats/", h.APITeamStatistics)
		api.Get("/team-stats/{"+handlers.TeamIDParam+"}", h.APITeamStatistics)
	})

	if opts.MCP != nil {
		path := opts.MCPPath
		if path == "" {
			path = "/mcp"
		}
		r.Handle(path, opts.MCP)
		r.Handle(path+"/*", opts.MCP)
	}
	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}
}

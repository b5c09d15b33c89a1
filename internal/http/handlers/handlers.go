package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reyes-code/football-stats-service/internal/app/statistics"
	"github.com/reyes-code/football-stats-service/internal/app/teams"
	"github.com/reyes-code/football-stats-service/internal/http/requestutil"
	"github.com/reyes-code/football-stats-service/internal/viewmodel"
	"github.com/reyes-code/football-stats-service/internal/web"
)

// TeamIDParam is the chi URL parameter holding the team id.
const TeamIDParam = "teamId"

// Handler serves the HTML screens, the JSON API and health.
type Handler struct {
	loader   *teams.Loader
	fetcher  *statistics.Fetcher
	renderer *web.Renderer
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(loader *teams.Loader, fetcher *statistics.Fetcher, renderer *web.Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		loader:   loader,
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger,
	}
}

// Health reports ok, or 503 once the request context is already done.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// TeamsPage renders the team grid. Upstream failures render an empty grid.
func (h *Handler) TeamsPage(w http.ResponseWriter, r *http.Request) {
	roster := h.loader.Load(r.Context())
	writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.Teams(buf, web.TeamsPage{Roster: roster})
	}, h.logger)
}

// StatisticsPage renders the dashboard for {teamId}, or the failed panel.
func (h *Handler) StatisticsPage(w http.ResponseWriter, r *http.Request) {
	state := h.fetcher.Fetch(r.Context(), chi.URLParam(r, TeamIDParam))
	if r.Context().Err() != nil {
		return
	}

	if state.Phase == statistics.PhaseLoaded {
		page := web.StatisticsPage{Dashboard: viewmodel.Build(state.Stats, h.fetcher.Season())}
		writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
			return h.renderer.Statistics(buf, page)
		}, h.logger)
		return
	}

	page := web.FailedPage{Message: state.Message, RequestID: requestutil.RequestID(r)}
	writeHTML(w, r, failureStatus(state.Err), func(buf *bytes.Buffer) error {
		return h.renderer.Failed(buf, page)
	}, h.logger)
}

// APITeams returns the roster as JSON; upstream failures yield an empty list.
func (h *Handler) APITeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.loader.Load(r.Context()), h.logger)
}

type statisticsResponse struct {
	State     statistics.Phase     `json:"state"`
	Dashboard *viewmodel.Dashboard `json:"dashboard,omitempty"`
	Error     string               `json:"error,omitempty"`
	RequestID string               `json:"requestId,omitempty"`
}

// APITeamStatistics returns the derived dashboard as JSON.
func (h *Handler) APITeamStatistics(w http.ResponseWriter, r *http.Request) {
	state := h.fetcher.Fetch(r.Context(), chi.URLParam(r, TeamIDParam))
	if r.Context().Err() != nil {
		return
	}

	if state.Phase == statistics.PhaseLoaded {
		d := viewmodel.Build(state.Stats, h.fetcher.Season())
		writeJSON(w, http.StatusOK, statisticsResponse{State: state.Phase, Dashboard: &d}, h.logger)
		return
	}
	writeJSON(w, failureStatus(state.Err), statisticsResponse{
		State:     state.Phase,
		Error:     state.Message,
		RequestID: requestutil.RequestID(r),
	}, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func failureStatus(err error) int {
	if errors.Is(err, statistics.ErrMissingTeam) || errors.Is(err, statistics.ErrInvalidTeam) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/reyes-code/football-stats-service/internal/app/statistics"
	"github.com/reyes-code/football-stats-service/internal/app/teams"
	"github.com/reyes-code/football-stats-service/internal/http/requestutil"
	"github.com/reyes-code/football-stats-service/internal/providers"
	"github.com/reyes-code/football-stats-service/internal/teststubs"
	"github.com/reyes-code/football-stats-service/internal/testutil"
	"github.com/reyes-code/football-stats-service/internal/web"
)

func newTestHandler(stub *teststubs.StubProvider) *Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(
		teams.NewLoader(stub, 239, 2023, logger, nil),
		statistics.NewFetcher(stub, 239, 2023, logger, nil),
		web.MustNewRenderer(),
		logger,
	)
}

// withTeamID attaches a chi route context carrying teamId.
func withTeamID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(TeamIDParam, id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&teststubs.StubProvider{})

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&teststubs.StubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestTeamsPageRendersRoster(t *testing.T) {
	h := newTestHandler(&teststubs.StubProvider{Teams: testutil.SampleRoster()})

	rr := testutil.Serve(http.HandlerFunc(h.TeamsPage), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	testutil.AssertBodyContains(t, rr, "Millonarios", "/team-stats/1135", web.Attribution)
}

func TestTeamsPageUpstream500RendersEmptyGrid(t *testing.T) {
	stub := &teststubs.StubProvider{Err: &providers.StatusError{Provider: "apifootball", StatusCode: 500}}
	h := newTestHandler(stub)

	rr := testutil.Serve(http.HandlerFunc(h.TeamsPage), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "No teams available")
}

func TestStatisticsPageLoaded(t *testing.T) {
	stub := &teststubs.StubProvider{Stats: testutil.SampleStatistics(1127, "Millonarios")}
	h := newTestHandler(stub)

	req := withTeamID(httptest.NewRequest(http.MethodGet, "/team-stats/1127", nil), "1127")
	rr := testutil.ServeRequest(http.HandlerFunc(h.StatisticsPage), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Millonarios", "Win rate 60%", "Difference: 15", "4-3-3")
	if stub.LastTeamID() != 1127 {
		t.Fatalf("expected fetch for team 1127, got %d", stub.LastTeamID())
	}
}

func TestStatisticsPageMissingTeam(t *testing.T) {
	stub := &teststubs.StubProvider{}
	h := newTestHandler(stub)

	rr := testutil.Serve(http.HandlerFunc(h.StatisticsPage), http.MethodGet, "/team-stats/", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertBodyContains(t, rr, statistics.MessageMissingTeam, "Back to teams")
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", stub.Calls.Load())
	}
}

func TestStatisticsPageUpstreamFailure(t *testing.T) {
	stub := &teststubs.StubProvider{Err: &providers.StatusError{Provider: "apifootball", StatusCode: 503}}
	h := newTestHandler(stub)

	req := withTeamID(httptest.NewRequest(http.MethodGet, "/team-stats/9", nil), "9")
	req = req.WithContext(requestutil.WithRequestID(req.Context(), "req-42"))
	rr := testutil.ServeRequest(http.HandlerFunc(h.StatisticsPage), req)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	testutil.AssertBodyContains(t, rr, statistics.MessageLoadFailed, "req-42")
}

func TestAPITeamsEmptyOnFailure(t *testing.T) {
	h := newTestHandler(&teststubs.StubProvider{Err: providers.ErrProviderUnavailable})

	rr := testutil.Serve(http.HandlerFunc(h.APITeams), http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp teams.Roster
	testutil.DecodeJSON(t, rr, &resp)
	if resp.League != 239 || resp.Season != 2023 || resp.Teams == nil || len(resp.Teams) != 0 {
		t.Fatalf("unexpected roster %+v", resp)
	}
}

func TestAPITeamStatisticsLoaded(t *testing.T) {
	h := newTestHandler(&teststubs.StubProvider{Stats: testutil.SampleStatistics(1127, "Millonarios")})

	req := withTeamID(httptest.NewRequest(http.MethodGet, "/api/team-stats/1127", nil), "1127")
	rr := testutil.ServeRequest(http.HandlerFunc(h.APITeamStatistics), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		State     string `json:"state"`
		Dashboard struct {
			Goals struct {
				Differential int `json:"differential"`
			} `json:"goals"`
			Form []struct {
				Kind string `json:"kind"`
			} `json:"form"`
		} `json:"dashboard"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.State != "loaded" || resp.Dashboard.Goals.Differential != 15 || len(resp.Dashboard.Form) != 10 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAPITeamStatisticsInvalidID(t *testing.T) {
	stub := &teststubs.StubProvider{}
	h := newTestHandler(stub)

	req := withTeamID(httptest.NewRequest(http.MethodGet, "/api/team-stats/abc", nil), "abc")
	req = req.WithContext(requestutil.WithRequestID(req.Context(), "req-7"))
	rr := testutil.ServeRequest(http.HandlerFunc(h.APITeamStatistics), req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["state"] != "failed" || resp["error"] != statistics.MessageInvalidTeam || resp["requestId"] != "req-7" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(&teststubs.StubProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/reyes-code/football-stats-service/internal/app/statistics"
	"github.com/reyes-code/football-stats-service/internal/app/teams"
	"github.com/reyes-code/football-stats-service/internal/http/handlers"
	"github.com/reyes-code/football-stats-service/internal/http/requestutil"
	"github.com/reyes-code/football-stats-service/internal/teststubs"
	"github.com/reyes-code/football-stats-service/internal/testutil"
	"github.com/reyes-code/football-stats-service/internal/web"
)

func newTestRouter(stub *teststubs.StubProvider, opts RouterOptions) nethttp.Handler {
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(
		teams.NewLoader(stub, 239, 2023, logger, nil),
		statistics.NewFetcher(stub, 239, 2023, logger, nil),
		web.MustNewRenderer(),
		logger,
	)
	opts.Logger = logger
	return NewRouter(h, opts)
}

func TestRouterServesStatisticsByPath(t *testing.T) {
	stub := &teststubs.StubProvider{Stats: testutil.SampleStatistics(1137, "Atletico Nacional")}
	router := newTestRouter(stub, RouterOptions{})

	rr := testutil.Serve(router, nethttp.MethodGet, "/team-stats/1137", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	testutil.AssertBodyContains(t, rr, "Atletico Nacional")
	if stub.LastTeamID() != 1137 {
		t.Fatalf("expected fetch for 1137, got %d", stub.LastTeamID())
	}
	if rr.Header().Get(requestutil.HeaderRequestID) == "" {
		t.Fatalf("expected request id header from middleware")
	}
}

func TestRouterMissingTeamSegment(t *testing.T) {
	stub := &teststubs.StubProvider{}
	router := newTestRouter(stub, RouterOptions{})

	rr := testutil.Serve(router, nethttp.MethodGet, "/team-stats/", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
	testutil.AssertBodyContains(t, rr, statistics.MessageMissingTeam)
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestRouterNotFoundIsJSON(t *testing.T) {
	router := newTestRouter(&teststubs.StubProvider{}, RouterOptions{})

	rr := testutil.Serve(router, nethttp.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "not found" || body["requestId"] == "" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRouterAPICORS(t *testing.T) {
	router := newTestRouter(&teststubs.StubProvider{Teams: testutil.SampleRoster()}, RouterOptions{
		AllowedOrigins: []string{"https://stats.example.com"},
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/teams", nil)
	req.Header.Set("Origin", "https://stats.example.com")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://stats.example.com" {
		t.Fatalf("expected CORS origin header, got %q", got)
	}

	var roster teams.Roster
	testutil.DecodeJSON(t, rr, &roster)
	if len(roster.Teams) != len(testutil.SampleRoster()) {
		t.Fatalf("unexpected roster size %d", len(roster.Teams))
	}
}

func TestRouterAPIRejectsUnknownOrigin(t *testing.T) {
	router := newTestRouter(&teststubs.StubProvider{}, RouterOptions{
		AllowedOrigins: []string{"https://stats.example.com"},
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/teams", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := testutil.ServeRequest(router, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestRouterMountsMCP(t *testing.T) {
	var hits int
	mcp := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		hits++
		w.WriteHeader(nethttp.StatusAccepted)
	})
	router := newTestRouter(&teststubs.StubProvider{}, RouterOptions{MCP: mcp, MCPPath: "/mcp"})

	rr := testutil.Serve(router, nethttp.MethodPost, "/mcp", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusAccepted)
	rr = testutil.Serve(router, nethttp.MethodGet, "/mcp/session", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusAccepted)
	if hits != 2 {
		t.Fatalf("expected 2 MCP hits, got %d", hits)
	}
}

func TestCORSOptionsDefaultsToWildcard(t *testing.T) {
	opts := corsOptions(nil)
	if len(opts.AllowedOrigins) != 1 || opts.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard origin, got %v", opts.AllowedOrigins)
	}
}

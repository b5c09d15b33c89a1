package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/reyes-code/football-stats-service/internal/config"
	"github.com/reyes-code/football-stats-service/internal/metrics"
	"github.com/reyes-code/football-stats-service/internal/providers"
	"github.com/reyes-code/football-stats-service/internal/teststubs"
	"github.com/reyes-code/football-stats-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		APIFootball: config.APIFootballConfig{
			LeagueID: 239,
			Season:   2023,
		},
		HTTP: config.HTTPConfig{
			AllowedOrigins: []string{"*"},
			MCPEnabled:     true,
			MCPPath:        "/mcp",
		},
	}
}

func TestServerServesScreensAndAPI(t *testing.T) {
	stub := &teststubs.StubProvider{
		Teams: testutil.SampleRoster(),
		Stats: testutil.SampleStatistics(1127, "Millonarios"),
	}
	rec := metrics.NewRecorder()
	srv := newServerWithProvider(testConfig(), nil, "test", stub, rec)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Millonarios")

	rr = testutil.Serve(router, http.MethodGet, "/team-stats/1127", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Win rate 60%")

	rr = testutil.Serve(router, http.MethodGet, "/api/team-stats/1127", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got := rec.ProviderCalls("fixture"); got != 3 {
		t.Fatalf("expected 3 instrumented provider calls, got %d", got)
	}
	if got := rec.ScreenLoads(metrics.ScreenStatistics, metrics.OutcomeLoaded); got != 2 {
		t.Fatalf("expected 2 loaded statistics screens, got %d", got)
	}
}

func TestServerUpstreamFailureIsRecorded(t *testing.T) {
	stub := &teststubs.StubProvider{Err: &providers.StatusError{Provider: "fixture", StatusCode: 500}}
	rec := metrics.NewRecorder()
	srv := newServerWithProvider(testConfig(), nil, "test", stub, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/team-stats/1127", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	if got := rec.ProviderErrors("fixture"); got != 1 {
		t.Fatalf("expected provider error recorded, got %d", got)
	}
}

func TestServerMCPDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.MCPEnabled = false
	srv := newServerWithProvider(cfg, nil, "test", &teststubs.StubProvider{}, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/mcp", strings.NewReader("{}"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestServerMCPMounted(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, "test", &teststubs.StubProvider{}, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/mcp", strings.NewReader("{}"))
	if rr.Code == http.StatusNotFound {
		t.Fatalf("expected MCP endpoint to be mounted")
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: false}
	srv := New(cfg, nil, "dev")
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder even with metrics disabled")
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopped := false

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return errors.New("exporter failed")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected both servers shut down, got %d/%d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls)
	}
	if !stopped {
		t.Fatalf("expected metrics shutdown to run")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
	if !strings.Contains(buf.String(), "graceful shutdown failed") {
		t.Fatalf("expected shutdown failure to be logged")
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}

package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/reyes-code/football-stats-service/internal/config"
	"github.com/reyes-code/football-stats-service/internal/metrics"
	"github.com/reyes-code/football-stats-service/internal/teststubs"
	"github.com/reyes-code/football-stats-service/internal/testutil"
)

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	logger, _ := testutil.NewBufferLogger()
	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, logger, nil)
	if rec == nil {
		t.Fatalf("expected fallback recorder on setup failure")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server on setup failure")
	}
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		if cfg.Port != "9999" || cfg.ServiceName != "svc" {
			t.Errorf("unexpected telemetry config %+v", cfg)
		}
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999", ServiceName: "svc"},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %s", srv.Addr())
	}
}

func TestBuildMetricsDisabledSkipsServer(t *testing.T) {
	rec, srv, _ := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: false}}, nil, nil)
	if rec == nil {
		t.Fatalf("expected recorder when metrics disabled")
	}
	if srv != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	defer func() { _ = shutdown(context.Background()) }()

	srv := newServerWithProvider(testConfig(), nil, "test", &teststubs.StubProvider{}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil || srv.metricsServer != nil {
		t.Fatalf("expected no owned telemetry with an injected recorder")
	}
}

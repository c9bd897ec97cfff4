package telemetry

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewMetricsServer(t *testing.T) {
	srv := newMetricsServer("9464")

	if srv.Addr != ":9464" {
		t.Errorf("Addr = %q, want :9464", srv.Addr)
	}

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /metrics = %d, want %d", rr.Code, http.StatusOK)
	}

	rr = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("GET /other = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRegisterDBStats_NoopProvider(t *testing.T) {
	// The global provider is a no-op until Init runs, so the pool is never read.
	var db *sql.DB

	if err := RegisterDBStats(db); err != nil {
		t.Errorf("RegisterDBStats() error = %v", err)
	}
}

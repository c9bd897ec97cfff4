package http

import (
	"net/http"
	"testing"
)

func TestRouter_HealthCheck(t *testing.T) {
	router := NewRouter(newTestHandlers(testServices{}), "/api")

	rr := serve(t, router, http.MethodGet, "/api/health-check", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rr.Body.String())
	}
}

func TestRouter_Prefix(t *testing.T) {
	tests := []struct {
		name           string
		prefix         string
		path           string
		expectedStatus int
	}{
		{"Prefixed", "/api", "/api/businesses", http.StatusOK},
		{"Missing Prefix", "/api", "/businesses", http.StatusNotFound},
		{"Custom Prefix", "/v1", "/v1/health-check", http.StatusOK},
		{"No Prefix", "", "/businesses", http.StatusOK},
		{"Unknown Route", "/api", "/api/ledgers", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(newTestHandlers(testServices{}), tt.prefix)

			rr := serve(t, router, http.MethodGet, tt.path, "")

			if rr.Code != tt.expectedStatus {
				t.Errorf("GET %s = %d, want %d", tt.path, rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := NewRouter(newTestHandlers(testServices{}), "/api")

	rr := serve(t, router, http.MethodPut, "/api/businesses", "")

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_TrailingSlash(t *testing.T) {
	router := NewRouter(newTestHandlers(testServices{}), "/api")

	rr := serve(t, router, http.MethodGet, "/api/businesses/4/accounts/", "")

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

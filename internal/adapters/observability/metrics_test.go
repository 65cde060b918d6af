package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel_records/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so the vectors show up in the output
	observability.ObserveHTTP("/api/hotels", "GET", 200, 12*time.Millisecond)
	observability.ObserveStore("file", "get", "not_found", time.Millisecond)
	observability.ObserveImages(2)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"hotels_http_requests_total",
		"hotels_store_operations_total",
		"hotels_images_attached_total",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestResultLabel(t *testing.T) {
	if got := observability.ResultLabel(nil, false); got != "ok" {
		t.Fatalf("nil err: %s", got)
	}
	if got := observability.ResultLabel(io.EOF, true); got != "not_found" {
		t.Fatalf("not found: %s", got)
	}
	if got := observability.ResultLabel(io.EOF, false); got != "error" {
		t.Fatalf("error: %s", got)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// sequenceSource returns the given values in order, repeating the last one.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[min(s.next, len(s.values)-1)]
	s.next++
	return v
}

func TestBandedDelay_APIBands(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
		want  time.Duration
	}{
		{"long band", []float64{0.1, 0.5}, 15 * time.Second},
		{"long band upper edge", []float64{0.2499, 0}, 0},
		{"no delay lower edge", []float64{0.25, 0.9}, 0},
		{"no delay middle", []float64{0.5, 0.9}, 0},
		{"no delay upper edge", []float64{0.75, 0.9}, 0},
		{"short band", []float64{0.8, 0.5}, 2500 * time.Millisecond},
		{"short band max draw", []float64{0.99, 0.999}, time.Duration(0.999 * float64(5*time.Second))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewBandedDelay(APIBands, &sequenceSource{values: tt.draws})

			if got := d.Delay(); got != tt.want {
				t.Errorf("Delay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBandedDelay_AssetBands(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
		want  time.Duration
	}{
		{"long band", []float64{0.2, 0.5}, 2500 * time.Millisecond},
		{"short band edge", []float64{0.33, 0.5}, time.Second},
		{"short band", []float64{0.9, 0.25}, 500 * time.Millisecond},
		{"zero draw", []float64{0.9, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewBandedDelay(AssetBands, &sequenceSource{values: tt.draws})

			if got := d.Delay(); got != tt.want {
				t.Errorf("Delay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBandedDelay_Bounds(t *testing.T) {
	api := NewBandedDelay(APIBands, nil)
	asset := NewBandedDelay(AssetBands, nil)

	for i := 0; i < 1000; i++ {
		if d := api.Delay(); d < 0 || d >= 30*time.Second {
			t.Fatalf("api delay %v out of [0, 30s)", d)
		}
		if d := asset.Delay(); d < 0 || d >= 5*time.Second {
			t.Fatalf("asset delay %v out of [0, 5s)", d)
		}
	}
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Test", "yes")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func TestLatencyInjector_PreservesResponse(t *testing.T) {
	strategies := []struct {
		name     string
		strategy DelayStrategy
	}{
		{"no delay", NoDelay{}},
		{"fixed delay", FixedDelay(5 * time.Millisecond)},
		{"banded zero draws", NewBandedDelay(APIBands, &sequenceSource{values: []float64{0.5}})},
	}

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			h := LatencyInjector(s.strategy, "test")(http.HandlerFunc(testHandler))

			for i := 0; i < 3; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
				w := httptest.NewRecorder()

				h.ServeHTTP(w, req)

				if w.Code != http.StatusCreated {
					t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
				}
				if w.Body.String() != `{"ok":true}` {
					t.Errorf("body = %s, want {\"ok\":true}", w.Body.String())
				}
				if w.Header().Get("X-Test") != "yes" {
					t.Errorf("X-Test header = %q, want yes", w.Header().Get("X-Test"))
				}
			}
		})
	}
}

func TestLatencyInjector_DefaultStatus(t *testing.T) {
	h := LatencyInjector(NoDelay{}, "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "plain" {
		t.Errorf("body = %q, want plain", w.Body.String())
	}
}

func TestLatencyInjector_DelaysDelivery(t *testing.T) {
	const delay = 80 * time.Millisecond

	var handledAfter time.Duration
	start := time.Now()
	h := LatencyInjector(FixedDelay(delay), "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handledAfter = time.Since(start)
		testHandler(w, r)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	elapsed := time.Since(start)

	if handledAfter >= delay {
		t.Errorf("handler ran after %v, expected it to run before the delay", handledAfter)
	}
	if elapsed < delay {
		t.Errorf("response delivered after %v, want at least %v", elapsed, delay)
	}
}

func TestLatencyInjector_Timeout(t *testing.T) {
	h := chimiddleware.Timeout(20 * time.Millisecond)(
		LatencyInjector(FixedDelay(5*time.Second), "test")(http.HandlerFunc(testHandler)),
	)

	start := time.Now()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", w.Code, http.StatusGatewayTimeout)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected no partial body, got %q", w.Body.String())
	}
	if time.Since(start) >= time.Second {
		t.Error("injected delay was not abandoned on timeout")
	}
}

package middleware

import (
	"bytes"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/metrics"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// DelayStrategy decides how long to hold back a single response.
type DelayStrategy interface {
	Delay() time.Duration
}

// Band is one probability band of a BandedDelay. A draw p falls into the
// first band with p < Until; the delay is then uniform in [0, Max).
type Band struct {
	Until float64
	Max   time.Duration
}

var (
	// APIBands: 25% up to 30s, 50% none, 25% up to 5s.
	// The no-delay band is closed at 0.75.
	APIBands = []Band{
		{Until: 0.25, Max: 30 * time.Second},
		{Until: math.Nextafter(0.75, 1), Max: 0},
		{Until: 1, Max: 5 * time.Second},
	}

	// AssetBands: 33% up to 5s, otherwise up to 2s.
	AssetBands = []Band{
		{Until: 0.33, Max: 5 * time.Second},
		{Until: 1, Max: 2 * time.Second},
	}
)

// BandedDelay draws a delay from a set of probability bands.
type BandedDelay struct {
	bands []Band
	rnd   RandomSource
}

// NewBandedDelay creates a BandedDelay. A nil rnd uses the process-wide
// generator from math/rand.
func NewBandedDelay(bands []Band, rnd RandomSource) *BandedDelay {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &BandedDelay{bands: bands, rnd: rnd}
}

// Delay implements DelayStrategy.
func (d *BandedDelay) Delay() time.Duration {
	p := d.rnd.Float64()
	for _, b := range d.bands {
		if p < b.Until {
			if b.Max <= 0 {
				return 0
			}
			return time.Duration(d.rnd.Float64() * float64(b.Max))
		}
	}
	return 0
}

// NoDelay never delays a response.
type NoDelay struct{}

// Delay implements DelayStrategy.
func (NoDelay) Delay() time.Duration { return 0 }

// FixedDelay always delays a response by the same duration.
type FixedDelay time.Duration

// Delay implements DelayStrategy.
func (d FixedDelay) Delay() time.Duration { return time.Duration(d) }

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// LatencyInjector holds back each response by a delay drawn from strategy.
// The downstream handler runs to completion first; its status, headers and
// body are buffered and delivered unchanged once the delay elapses. If the
// request context ends while waiting, nothing is written and the timeout
// middleware answers instead.
func LatencyInjector(strategy DelayStrategy, profile string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := newBufferedResponse()
			next.ServeHTTP(buf, r)

			delay := strategy.Delay()
			metrics.InjectedDelay.WithLabelValues(profile).Observe(delay.Seconds())

			if delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
				case <-r.Context().Done():
					timer.Stop()
					return
				}
			}

			if r.Context().Err() != nil {
				return
			}

			buf.flushTo(w)
		})
	}
}

// bufferedResponse collects a response so it can be delivered later.
// The whole body is held in memory until the delay ends, which is fine for
// JSON payloads and the small files under public/ but not for large
// downloads.
type bufferedResponse struct {
	header      http.Header
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header), statusCode: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.statusCode = code
	b.wroteHeader = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) flushTo(w http.ResponseWriter) {
	dst := w.Header()
	for k, v := range b.header {
		dst[k] = v
	}
	w.WriteHeader(b.statusCode)
	_, _ = w.Write(b.body.Bytes())
}

package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurashiworks/kurashi/internal/pkg/circuitbreaker"
	httppkg "github.com/kurashiworks/kurashi/internal/pkg/http"
	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/services/matching"
)

func newFetchGW(serverURL string) *geocoderGW {
	return &geocoderGW{
		client: httppkg.NewClient(serverURL, 2*time.Second),
	}
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		assert.Equal(t, "Tokyo Chiyoda 1-1", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat": 35.6812, "lng": 139.7671}`))
	}))
	defer server.Close()

	gw := newFetchGW(server.URL)

	point, err := gw.fetch(context.Background(), "Tokyo Chiyoda 1-1")

	require.NoError(t, err)
	assert.Equal(t, 35.6812, point.Latitude)
	assert.Equal(t, 139.7671, point.Longitude)
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := newFetchGW(server.URL)

	_, err := gw.fetch(context.Background(), "Nowhere")

	assert.ErrorIs(t, err, matching.ErrGeoNotFound)
}

func TestFetch_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	gw := newFetchGW(server.URL)

	_, err := gw.fetch(context.Background(), "Tokyo")

	assert.ErrorIs(t, err, matching.ErrGeoRateLimited)
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := newFetchGW(server.URL)

	_, err := gw.fetch(context.Background(), "Tokyo")

	assert.ErrorIs(t, err, matching.ErrGeoUnavailable)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := newFetchGW(server.URL)

	_, err := gw.fetch(context.Background(), "Tokyo")

	assert.ErrorIs(t, err, matching.ErrGeoUnavailable)
}

func TestGeocoderBreaker_NotFoundBurstKeepsBreakerClosed(t *testing.T) {
	breaker := circuitbreaker.New(geocoderBreakerConfig(), logger.GetGlobalLogger())

	for i := 0; i < 10; i++ {
		err := breaker.Execute(context.Background(), func(ctx context.Context) error {
			return matching.ErrGeoNotFound
		})
		assert.ErrorIs(t, err, matching.ErrGeoNotFound)
	}

	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
}

func TestGeocoderBreaker_UnavailableStillOpensBreaker(t *testing.T) {
	cfg := geocoderBreakerConfig()
	breaker := circuitbreaker.New(cfg, logger.GetGlobalLogger())

	for i := uint32(0); i < cfg.FailureThreshold; i++ {
		breaker.Execute(context.Background(), func(ctx context.Context) error {
			return matching.ErrGeoUnavailable
		})
	}

	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())
}

func TestFetch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	gw := newFetchGW(server.URL)

	_, err := gw.fetch(context.Background(), "Tokyo")

	assert.Error(t, err)
}

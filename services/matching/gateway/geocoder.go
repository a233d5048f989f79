package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kurashiworks/kurashi/internal/pkg/circuitbreaker"
	"github.com/kurashiworks/kurashi/internal/pkg/constants"
	"github.com/kurashiworks/kurashi/internal/pkg/database"
	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/internal/pkg/retry"
	"github.com/kurashiworks/kurashi/internal/utils"
	"github.com/kurashiworks/kurashi/services/matching"

	httppkg "github.com/kurashiworks/kurashi/internal/pkg/http"
)

// geocoderGW resolves addresses through the external geocoding service,
// with a Redis coordinate cache in front and retry plus circuit breaker
// around the outbound calls
type geocoderGW struct {
	client      *httppkg.Client
	redisClient *database.RedisClient
	retrier     *retry.Retrier
	breaker     *circuitbreaker.CircuitBreaker
	cacheTTL    time.Duration
}

// NewGeocoderGW creates a new geocoder gateway
func NewGeocoderGW(cfg *models.Config, redisClient *database.RedisClient, zapLogger *logger.ZapLogger) matching.GeocoderGW {
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = cfg.Geocoder.MaxRetries
	retryConfig.RetryableFunc = func(err error) bool {
		// NotFound is authoritative; retrying cannot change it
		return err != nil && !errors.Is(err, matching.ErrGeoNotFound)
	}

	return &geocoderGW{
		client:      httppkg.NewClient(cfg.Geocoder.BaseURL, time.Duration(cfg.Geocoder.TimeoutSeconds)*time.Second),
		redisClient: redisClient,
		retrier:     retry.New(retryConfig, zapLogger),
		breaker:     circuitbreaker.New(geocoderBreakerConfig(), zapLogger),
		cacheTTL:    time.Duration(cfg.Geocoder.CacheTTLHours) * time.Hour,
	}
}

// geocoderBreakerConfig classifies upstream health the same way the retrier
// does: NotFound is a valid answer about the address, not a service failure,
// so a burst of bad addresses must not open the breaker
func geocoderBreakerConfig() circuitbreaker.Config {
	cfg := circuitbreaker.DefaultConfig("geocoder")
	cfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, matching.ErrGeoNotFound)
	}
	return cfg
}

// Geocode resolves an address to coordinates
func (g *geocoderGW) Geocode(ctx context.Context, address string) (models.Point, error) {
	cacheKey := fmt.Sprintf(constants.KeyGeocodeCache, utils.NormalizeAddress(address))

	if cached, err := g.redisClient.Get(ctx, cacheKey); err == nil {
		var point models.Point
		if err := json.Unmarshal([]byte(cached), &point); err == nil {
			return point, nil
		}
	}

	var point models.Point
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			p, err := g.fetch(ctx, address)
			if err != nil {
				return err
			}
			point = p
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpenState) {
			return models.Point{}, matching.ErrGeoUnavailable
		}
		return models.Point{}, err
	}

	if data, err := json.Marshal(point); err == nil {
		if err := g.redisClient.Set(ctx, cacheKey, data, g.cacheTTL); err != nil {
			logger.Debug("Failed to cache geocode result", logger.Err(err))
		}
	}

	return point, nil
}

type geocodeResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// fetch performs one geocoding request
func (g *geocoderGW) fetch(ctx context.Context, address string) (models.Point, error) {
	endpoint := fmt.Sprintf("%s/geocode?q=%s", g.client.BaseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Point{}, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return models.Point{}, fmt.Errorf("%w: %v", matching.ErrGeoUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.Point{}, matching.ErrGeoNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return models.Point{}, matching.ErrGeoRateLimited
	case resp.StatusCode != http.StatusOK:
		return models.Point{}, fmt.Errorf("%w: status %d", matching.ErrGeoUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Point{}, fmt.Errorf("%w: %v", matching.ErrGeoUnavailable, err)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return models.Point{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	return models.Point{Latitude: decoded.Lat, Longitude: decoded.Lng}, nil
}

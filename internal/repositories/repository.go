package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-dashboard/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRepository fetches one location's forecast from an upstream
// provider and returns it reshaped.
type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, location string, units models.Units) (models.Forecast, error)
}

// NewHTTPClient returns the client used for upstream calls. Every call is
// bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

package weather_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

var supportedLocations = []string{"New York", "Los Angeles", "London", "Tokyo"}

// MockRepository implements ForecastRepository for testing
type MockRepository struct {
	mu          sync.Mutex
	failFor     map[string]bool
	shouldDelay bool
	calls       []string
	units       []models.Units
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) FetchForecast(ctx context.Context, location string, units models.Units) (models.Forecast, error) {
	m.mu.Lock()
	m.calls = append(m.calls, location)
	m.units = append(m.units, units)
	m.mu.Unlock()

	if m.shouldDelay {
		select {
		case <-ctx.Done():
			return models.Forecast{}, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}

	if m.failFor[location] {
		return models.Forecast{}, repositories.ErrUpstream
	}

	return models.Forecast{City: location}, nil
}

func TestWeatherService_Locations(t *testing.T) {
	service := weather.NewWeatherService(&MockRepository{}, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	locations := service.Locations()
	assert.Equal(t, []string{"New York", "Los Angeles", "London", "Tokyo"}, locations)

	locations[0] = "Paris"
	assert.Equal(t, "New York", service.Locations()[0])
}

func TestWeatherService_Forecast_Success(t *testing.T) {
	repo := &MockRepository{}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	forecast, err := service.Forecast(context.Background(), "Reykjavik", "")
	require.NoError(t, err)
	assert.Equal(t, "Reykjavik", forecast.City)
	assert.Equal(t, []models.Units{models.UnitsMetric}, repo.units)
}

func TestWeatherService_Forecast_ExplicitUnits(t *testing.T) {
	repo := &MockRepository{}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	_, err := service.Forecast(context.Background(), "London", models.UnitsImperial)
	require.NoError(t, err)
	assert.Equal(t, []models.Units{models.UnitsImperial}, repo.units)
}

func TestWeatherService_Forecast_WrapsUpstreamError(t *testing.T) {
	repo := &MockRepository{failFor: map[string]bool{"London": true}}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	_, err := service.Forecast(context.Background(), "London", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrUpstream))
	assert.Contains(t, err.Error(), "London")
}

func TestWeatherService_Dashboard_KeepsOrder(t *testing.T) {
	repo := &MockRepository{}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	forecasts := service.Dashboard(context.Background())

	require.Len(t, forecasts, 4)
	for i, location := range supportedLocations {
		assert.Equal(t, location, forecasts[i].City)
	}
	assert.ElementsMatch(t, supportedLocations, repo.calls)
}

func TestWeatherService_Dashboard_SkipsFailures(t *testing.T) {
	repo := &MockRepository{failFor: map[string]bool{"Los Angeles": true, "Tokyo": true}}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	forecasts := service.Dashboard(context.Background())

	require.Len(t, forecasts, 2)
	assert.Equal(t, "New York", forecasts[0].City)
	assert.Equal(t, "London", forecasts[1].City)
}

func TestWeatherService_Dashboard_AllFailures(t *testing.T) {
	repo := &MockRepository{failFor: map[string]bool{"New York": true, "Los Angeles": true, "London": true, "Tokyo": true}}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	forecasts := service.Dashboard(context.Background())

	assert.NotNil(t, forecasts)
	assert.Empty(t, forecasts)
}

func TestWeatherService_Dashboard_ConcurrentExecution(t *testing.T) {
	repo := &MockRepository{shouldDelay: true}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	start := time.Now()
	forecasts := service.Dashboard(context.Background())
	duration := time.Since(start)

	assert.Len(t, forecasts, 4)
	// Sequential fetches would take at least 400ms.
	assert.Less(t, duration, 300*time.Millisecond)
}

func TestWeatherService_Dashboard_ContextCancellation(t *testing.T) {
	repo := &MockRepository{shouldDelay: true}
	service := weather.NewWeatherService(repo, supportedLocations, models.UnitsMetric, logger.NewZapLogger("test-app"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, service.Dashboard(ctx))
}

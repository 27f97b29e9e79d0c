package weather

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

// WeatherService serves simplified forecasts for single locations and for
// the configured list of supported locations.
type WeatherService struct {
	repo      repositories.ForecastRepository
	locations []string
	units     models.Units
	l         *logger.Logger
}

func NewWeatherService(
	repo repositories.ForecastRepository,
	locations []string,
	units models.Units,
	l *logger.Logger,
) *WeatherService {
	return &WeatherService{
		repo:      repo,
		locations: append([]string(nil), locations...),
		units:     units,
		l:         l,
	}
}

// Locations returns a copy of the supported locations in configured order.
func (s *WeatherService) Locations() []string {
	return append([]string(nil), s.locations...)
}

func (s *WeatherService) DefaultUnits() models.Units {
	return s.units
}

// Forecast fetches a fresh forecast for any location, supported or not.
// Empty units fall back to the service default.
func (s *WeatherService) Forecast(ctx context.Context, location string, units models.Units) (models.Forecast, error) {
	if units == "" {
		units = s.units
	}

	forecast, err := s.repo.FetchForecast(ctx, location, units)
	if err != nil {
		return models.Forecast{}, errors.Wrapf(err, "fetch forecast from %s for %q", s.repo.Name(), location)
	}

	s.l.Info("successfully fetched forecast", map[string]any{
		"repo":     s.repo.Name(),
		"location": location,
		"units":    units,
		"entries":  len(forecast.Forecast),
	})

	return forecast, nil
}

// Dashboard fetches every supported location concurrently with the default
// units. Locations that fail are logged and left out; the rest keep their
// configured order.
func (s *WeatherService) Dashboard(ctx context.Context) []models.Forecast {
	results := make([]*models.Forecast, len(s.locations))

	wg := sync.WaitGroup{}

	for i, location := range s.locations {
		wg.Add(1)

		go func(i int, location string) {
			defer wg.Done()

			forecast, err := s.Forecast(ctx, location, s.units)
			if err != nil {
				s.l.Warning("failed to fetch forecast", map[string]any{
					"repo":     s.repo.Name(),
					"location": location,
					"err":      err.Error(),
				})
				return
			}

			results[i] = &forecast
		}(i, location)
	}

	wg.Wait()

	forecasts := make([]models.Forecast, 0, len(results))
	for _, forecast := range results {
		if forecast != nil {
			forecasts = append(forecasts, *forecast)
		}
	}

	s.l.Info("completed dashboard fetch", map[string]any{
		"locations":  len(s.locations),
		"successful": len(forecasts),
	})

	return forecasts
}

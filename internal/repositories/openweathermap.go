package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "http://api.openweathermap.org/data/2.5/forecast"
	OpenWeatherMapIconURL = "http://openweathermap.org/img/w/%s.png"

	// upcomingEntries is how many entries after the first make up the short forecast.
	upcomingEntries = 3
)

var (
	ErrUpstream         = errors.New("upstream fetch failed")
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	IconURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapRepository(cfg config.WeatherConfig, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	repo := &OpenWeatherMapRepository{
		BaseURL:    cfg.BaseURL,
		IconURL:    cfg.IconURL,
		APIKey:     cfg.APIKey,
		httpClient: httpClient,
		l:          l,
	}
	if repo.BaseURL == "" {
		repo.BaseURL = OpenWeatherMapBaseURL
	}
	if repo.IconURL == "" {
		repo.IconURL = OpenWeatherMapIconURL
	}

	return repo, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

// The upstream schema is only trusted for field presence, so every field
// read by simplifyForecast is a pointer.
type owmResponse struct {
	City *owmCity   `json:"city"`
	List []owmEntry `json:"list"`
}

type owmCity struct {
	Name *string `json:"name"`
}

type owmEntry struct {
	DtTxt   *string      `json:"dt_txt"`
	Main    *owmMain     `json:"main"`
	Weather []owmWeather `json:"weather"`
	Wind    *owmWind     `json:"wind"`
}

type owmMain struct {
	Temp     *float64 `json:"temp"`
	TempMin  *float64 `json:"temp_min"`
	TempMax  *float64 `json:"temp_max"`
	Humidity *float64 `json:"humidity"`
}

type owmWeather struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type owmWind struct {
	Speed *float64 `json:"speed"`
}

func (w *OpenWeatherMapRepository) FetchForecast(ctx context.Context, location string, units models.Units) (models.Forecast, error) {
	if strings.TrimSpace(w.APIKey) == "" {
		return models.Forecast{}, errors.New("API key cannot be empty")
	}

	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", w.APIKey)
	if units != "" {
		values.Set("units", string(units))
	}

	w.l.Debug("making openweathermap API request", map[string]any{
		"location": location,
		"units":    units,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+values.Encode(), nil)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("failed to create request: %w", scrubURL(err))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("%w: %w", ErrUpstream, scrubURL(err))
	}
	defer resp.Body.Close()

	w.l.Debug("received openweathermap API response", map[string]any{
		"location":   location,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.Forecast{}, fmt.Errorf("%w: HTTP error (status %d)", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("%w: failed to read response body: %w", ErrUpstream, err)
	}

	var response owmResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Forecast{}, fmt.Errorf("%w: failed to parse JSON response: %w", ErrMalformedPayload, err)
	}

	return simplifyForecast(response, w.IconURL)
}

// simplifyForecast keeps the city name, the conditions of the first entry and
// the temperatures of the next upcomingEntries entries.
func simplifyForecast(response owmResponse, iconURL string) (models.Forecast, error) {
	if response.City == nil || response.City.Name == nil {
		return models.Forecast{}, malformed("city.name")
	}
	if len(response.List) == 0 {
		return models.Forecast{}, malformed("list[0]")
	}

	first := response.List[0]
	if first.Main == nil || first.Main.Temp == nil || first.Main.Humidity == nil {
		return models.Forecast{}, malformed("list[0].main")
	}
	if len(first.Weather) == 0 || first.Weather[0].Description == nil || first.Weather[0].Icon == nil {
		return models.Forecast{}, malformed("list[0].weather[0]")
	}
	if first.Wind == nil || first.Wind.Speed == nil {
		return models.Forecast{}, malformed("list[0].wind.speed")
	}

	forecast := models.Forecast{
		City: *response.City.Name,
		Today: models.Today{
			Temperature: *first.Main.Temp,
			Description: *first.Weather[0].Description,
			Icon:        iconLink(iconURL, *first.Weather[0].Icon),
			Humidity:    *first.Main.Humidity,
			WindSpeed:   *first.Wind.Speed,
		},
		Forecast: make([]models.ForecastDay, 0, upcomingEntries),
	}

	end := min(len(response.List), 1+upcomingEntries)
	for i := 1; i < end; i++ {
		entry := response.List[i]
		field := fmt.Sprintf("list[%d]", i)

		if entry.DtTxt == nil {
			return models.Forecast{}, malformed(field + ".dt_txt")
		}
		if entry.Main == nil || entry.Main.TempMax == nil || entry.Main.TempMin == nil {
			return models.Forecast{}, malformed(field + ".main")
		}
		if len(entry.Weather) == 0 || entry.Weather[0].Icon == nil {
			return models.Forecast{}, malformed(field + ".weather[0].icon")
		}

		forecast.Forecast = append(forecast.Forecast, models.ForecastDay{
			Date:    *entry.DtTxt,
			Icon:    iconLink(iconURL, *entry.Weather[0].Icon),
			TempMax: *entry.Main.TempMax,
			TempMin: *entry.Main.TempMin,
		})
	}

	return forecast, nil
}

func iconLink(template, code string) string {
	return fmt.Sprintf(template, code)
}

func malformed(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedPayload, field)
}

// scrubURL drops the request URL from transport errors, it carries the API key.
func scrubURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

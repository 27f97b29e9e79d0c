package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/views"
	"weather-dashboard/pkg/httpserver"
)

// handleIndex renders the HTML dashboard for every supported location.
func (r *routes) handleIndex(c *fiber.Ctx) error {
	forecasts := r.service.Dashboard(c.Context())

	c.Type("html", "utf-8")
	return views.RenderIndex(c, views.IndexData{
		Title:     r.title,
		Forecasts: forecasts,
	})
}

// GetWeatherForecast godoc
// @Summary Get weather forecast
// @Description Fetches a fresh forecast for a location from the upstream provider and returns it simplified: current conditions plus the next three forecast entries.
// @Tags Weather
// @Produce json
// @Param location query string true "Location name" example(Tokyo)
// @Param units query string false "Unit system" Enums(metric, imperial)
// @Success 200 {object} models.Forecast "Successful response"
// @Failure 400 {object} httpserver.ErrorResponse "Bad request - missing or invalid parameters"
// @Failure 500 {object} httpserver.ErrorResponse "Upstream provider failure"
// @Router /api/weather [get]
//
//	curl -X GET "http://localhost:8080/api/weather?location=Tokyo"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{
			Error: "Location parameter is required",
		})
	}

	units := models.Units(c.Query("units"))
	if units != "" && !units.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{
			Error: "Units must be metric or imperial",
		})
	}

	forecast, err := r.service.Forecast(c.Context(), location, units)
	if err != nil {
		r.l.Error(err, map[string]any{
			"location":   location,
			"request_id": httpserver.RequestID(c),
		})

		return c.Status(fiber.StatusInternalServerError).JSON(httpserver.ErrorResponse{
			Error: "Error fetching weather data",
		})
	}

	return c.JSON(forecast)
}

// GetLocations godoc
// @Summary List supported locations
// @Description Returns the locations shown on the dashboard, in display order.
// @Tags Weather
// @Produce json
// @Success 200 {array} string
// @Router /api/locations [get]
func (r *routes) handleLocations(c *fiber.Ctx) error {
	return c.JSON(r.service.Locations())
}

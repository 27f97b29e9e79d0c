package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	service     *weather.WeatherService
	preferences *repositories.PreferenceStore
	validate    *validator.Validate
	strictUnits bool
	title       string
	l           *logger.Logger
}

type RouterOptions struct {
	// Title is shown on the HTML dashboard.
	Title string
	// StrictUnits limits stored preference units to metric and imperial.
	StrictUnits bool
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	preferences *repositories.PreferenceStore,
	opts RouterOptions,
	l *logger.Logger,
) {
	r := &routes{
		service:     weatherService,
		preferences: preferences,
		validate:    validator.New(),
		strictUnits: opts.StrictUnits,
		title:       opts.Title,
		l:           l,
	}
	if r.title == "" {
		r.title = "Weather Forecast"
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	app.Get("/", r.handleIndex)

	// /weather is kept next to /api/weather for older clients.
	app.Get("/weather", r.handleWeatherCall)

	api := app.Group("/api")
	api.Get("/weather", r.handleWeatherCall)
	api.Get("/locations", r.handleLocations)
	api.Get("/user/preferences", r.handleGetPreferences)
	api.Post("/user/preferences", r.handleSetPreferences)
}

package views

import (
	"embed"
	"html/template"
	"io"

	"weather-dashboard/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type IndexData struct {
	Title     string
	Forecasts []models.Forecast
}

// RenderIndex writes the dashboard page listing one card per forecast.
func RenderIndex(w io.Writer, data IndexData) error {
	return indexTmpl.ExecuteTemplate(w, "index.html", data)
}

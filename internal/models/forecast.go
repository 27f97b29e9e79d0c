package models

// Forecast is the simplified forecast returned to clients.
type Forecast struct {
	City     string        `json:"city" example:"Tokyo"`
	Today    Today         `json:"today"`
	Forecast []ForecastDay `json:"forecast"`
}

// Today holds the conditions of the first upstream entry.
type Today struct {
	Temperature float64 `json:"temperature" example:"21.4"`
	Description string  `json:"description" example:"light rain"`
	Icon        string  `json:"icon" example:"http://openweathermap.org/img/w/10d.png"`
	Humidity    float64 `json:"humidity" example:"78"`
	WindSpeed   float64 `json:"wind_speed" example:"3.6"`
}

type ForecastDay struct {
	Date    string  `json:"date" example:"2025-07-25 18:00:00"`
	Icon    string  `json:"icon" example:"http://openweathermap.org/img/w/04n.png"`
	TempMax float64 `json:"temp_max" example:"22.5"`
	TempMin float64 `json:"temp_min" example:"19.9"`
}

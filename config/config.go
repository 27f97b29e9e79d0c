package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"

	defaultForecastURL = "http://api.openweathermap.org/data/2.5/forecast"
	defaultIconURL     = "http://openweathermap.org/img/w/%s.png"
)

// DefaultLocations is the supported location list used when none is configured.
var DefaultLocations = []string{"New York", "Los Angeles", "London", "Tokyo"}

type Config struct {
	App         AppConfig         `yaml:"app"`
	Server      ServerConfig      `yaml:"server"`
	Weather     WeatherConfig     `yaml:"weather"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Log         LogConfig         `yaml:"log"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

// WeatherConfig describes the upstream forecast provider. IconURL is a
// fmt template taking the icon code. Timeout is in seconds.
type WeatherConfig struct {
	BaseURL   string   `yaml:"base_url" envconfig:"WEATHER_BASE_URL"`
	APIKey    string   `yaml:"api_key,omitempty" envconfig:"OPENWEATHER_API_KEY"`
	IconURL   string   `yaml:"icon_url" envconfig:"WEATHER_ICON_URL"`
	Units     string   `yaml:"units" envconfig:"WEATHER_UNITS"`
	Timeout   int      `yaml:"timeout" envconfig:"WEATHER_TIMEOUT"`
	Locations []string `yaml:"locations" envconfig:"WEATHER_LOCATIONS"`
}

type PreferencesConfig struct {
	// StrictUnits rejects preference writes whose units are not metric or imperial.
	StrictUnits bool `yaml:"strict_units" envconfig:"PREFERENCES_STRICT_UNITS"`
}

type LogConfig struct {
	Level     string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format    string `yaml:"format" envconfig:"LOG_FORMAT"`
	SentryDSN string `yaml:"sentry_dsn,omitempty" envconfig:"SENTRY_DSN"`
}

type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file, an optional .env file and
// the process environment, in that order.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path, envFile: ".env"}
}

func NewConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			BaseURL:   defaultForecastURL,
			IconURL:   defaultIconURL,
			Units:     "metric",
			Timeout:   10,
			Locations: append([]string(nil), DefaultLocations...),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// A missing .env file is normal outside local development.
	if p.envFile != "" {
		if err := godotenv.Load(p.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", p.envFile, err)
		}
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var errs []error

	if strings.TrimSpace(config.App.Name) == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	if strings.TrimSpace(config.Weather.APIKey) == "" {
		errs = append(errs, errors.New("weather.api_key is required (set OPENWEATHER_API_KEY)"))
	}
	if strings.TrimSpace(config.Weather.BaseURL) == "" {
		errs = append(errs, errors.New("weather.base_url is required"))
	}
	if !strings.Contains(config.Weather.IconURL, "%s") {
		errs = append(errs, errors.New("weather.icon_url must contain %s"))
	}
	if config.Weather.Units != "metric" && config.Weather.Units != "imperial" {
		errs = append(errs, fmt.Errorf("weather.units must be metric or imperial, got %q", config.Weather.Units))
	}
	if config.Weather.Timeout <= 0 {
		errs = append(errs, errors.New("weather.timeout must be positive"))
	}
	if len(config.Weather.Locations) == 0 {
		errs = append(errs, errors.New("weather.locations must not be empty"))
	}
	for _, loc := range config.Weather.Locations {
		if strings.TrimSpace(loc) == "" {
			errs = append(errs, errors.New("weather.locations must not contain empty names"))
			break
		}
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeout) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeout) * time.Second
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeout) * time.Second
}

func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Weather.Timeout) * time.Second
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения с путём к файлу конфигурации
const EnvConfigPath = "BOOKING_CONFIG"

// DefaultPath путь к конфигурации по умолчанию
const DefaultPath = "config.toml"

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	App     AppConfig     `toml:"app"`
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	CORS    CORSConfig    `toml:"cors"`
}

// AppConfig общие настройки приложения
type AppConfig struct {
	Name          string `toml:"name"`
	CurrentUserID string `toml:"current_user_id"` // пользователь по умолчанию, если нет заголовка X-User-ID
	Timezone      string `toml:"timezone"`        // IANA зона офиса, например "Europe/Berlin"
	SeedFile      string `toml:"seed_file"`       // пусто - встроенные данные
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто - только stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig настройки CORS для браузерного клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:          "SMC-DeskBooking",
			CurrentUserID: "u1",
			Timezone:      "UTC",
		},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "desk_booking",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

// Path возвращает путь к конфигурации с учётом BOOKING_CONFIG
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return DefaultPath
}

// Load читает конфигурацию из toml файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	return Parse(string(data))
}

// Parse разбирает toml конфигурацию поверх значений по умолчанию
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.App.CurrentUserID == "" {
		return fmt.Errorf("%w: app.current_user_id is required", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("%w: app.timezone %q: %v", ErrInvalidConfig, c.App.Timezone, err)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	return nil
}

// Location возвращает часовую зону офиса
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

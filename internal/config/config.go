package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrLoadConfig возвращается, когда файл конфигурации не прочитан
	ErrLoadConfig = errors.New("config: failed to load config")

	// ErrInvalidConfig возвращается, когда значения конфигурации недопустимы
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Upload    UploadConfig    `toml:"upload"`
	Venue     VenueConfig     `toml:"venue"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig подключение к Redis для ограничения частоты запросов
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig ограничение отправки подтверждений оплаты
type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	Limit         int    `toml:"limit"`
	WindowSeconds int    `toml:"window_seconds"`
	Prefix        string `toml:"prefix"`
	FailOpen      bool   `toml:"fail_open"`
	// TrustProxy брать адрес клиента из X-Forwarded-For (сервис за reverse proxy)
	TrustProxy bool `toml:"trust_proxy"`
}

// Window окно ограничения
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// UploadConfig хранилище скриншотов оплаты
type UploadConfig struct {
	Dir           string `toml:"dir"`             // корень хранилища на диске
	PublicBaseURL string `toml:"public_base_url"` // префикс публичных ссылок
	MaxBytes      int64  `toml:"max_bytes"`
}

// VenueConfig сведения о площадке для подтверждения бронирования
type VenueConfig struct {
	Name          string   `toml:"name"`
	Address       string   `toml:"address"`
	Coordinates   string   `toml:"coordinates"`
	ContactName   string   `toml:"contact_name"`
	ContactPhones []string `toml:"contact_phones"`
	SupportPhone  string   `toml:"support_phone"`
	Timezone      string   `toml:"timezone"` // IANA зона, в которой считаются даты и время слотов
}

// Location зона площадки, пустая строка - локальная зона процесса
func (v VenueConfig) Location() (*time.Location, error) {
	if v.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(v.Timezone)
}

// MapsURL ссылка на поиск адреса площадки в Google Maps
func (v VenueConfig) MapsURL() string {
	if v.Address == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(v.Address)
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "box-booking"
	}

	if c.RateLimit.Limit == 0 {
		c.RateLimit.Limit = 5
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.RateLimit.Prefix == "" {
		c.RateLimit.Prefix = "rl:bookings"
	}

	if c.Upload.Dir == "" {
		c.Upload.Dir = "./data/blobs"
	}
	if c.Upload.PublicBaseURL == "" {
		c.Upload.PublicBaseURL = fmt.Sprintf("http://localhost:%d", c.Server.HTTPPort)
	}
	if c.Upload.MaxBytes == 0 {
		c.Upload.MaxBytes = 5 << 20
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if strings.TrimSpace(c.Database.Host) == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Database.DBName) == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("%w: redis.addr is required when rate_limit is enabled", ErrInvalidConfig)
	}
	if c.RateLimit.Limit < 0 || c.RateLimit.WindowSeconds < 0 {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	if c.Upload.MaxBytes < 0 {
		return fmt.Errorf("%w: upload.max_bytes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Venue.Location(); err != nil {
		return fmt.Errorf("%w: venue.timezone: %v", ErrInvalidConfig, err)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// Драйверы хранилища документов
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Catalog  CatalogConfig  `toml:"catalog"`
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
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища документов
type StorageConfig struct {
	Driver   string `toml:"driver"`    // memory | file | postgres
	FilePath string `toml:"file_path"` // для driver = "file"
}

// DatabaseConfig настройки PostgreSQL (driver = "postgres")
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

// BookingConfig поведение операций с бронированиями
type BookingConfig struct {
	// AtomicEdit=true: редактирование не удаляет бронирование, отправка черновика заменяет его на месте
	AtomicEdit bool `toml:"atomic_edit"`
}

// CatalogConfig переопределение прайс-листа. Пустые значения берутся из встроенного каталога
type CatalogConfig struct {
	PerHead  *int                      `toml:"per_head"`
	StyleFee *int                      `toml:"style_fee"`
	Styles   []string                  `toml:"styles"`
	Items    map[string]map[string]int `toml:"items"` // категория -> позиция -> цена
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
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
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "catering_service"
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageFile
	}
	if c.Storage.FilePath == "" {
		c.Storage.FilePath = "data/store.json"
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
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StorageFile:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Catalog.PerHead != nil && *c.Catalog.PerHead < 0 {
		return fmt.Errorf("%w: catalog.per_head must not be negative", ErrInvalidConfig)
	}
	if c.Catalog.StyleFee != nil && *c.Catalog.StyleFee < 0 {
		return fmt.Errorf("%w: catalog.style_fee must not be negative", ErrInvalidConfig)
	}
	for category, items := range c.Catalog.Items {
		if !isCategory(category) {
			return fmt.Errorf("%w: unknown catalog category %q", ErrInvalidConfig, category)
		}
		for item, price := range items {
			if price < 0 {
				return fmt.Errorf("%w: negative price for %s/%s", ErrInvalidConfig, category, item)
			}
		}
	}

	return nil
}

// BuildCatalog возвращает встроенный каталог с применёнными переопределениями
// Категория из конфигурации заменяет встроенную целиком
func (c *Config) BuildCatalog() *domain.Catalog {
	catalog := domain.DefaultCatalog()

	if c.Catalog.PerHead != nil {
		catalog.PerHead = *c.Catalog.PerHead
	}
	if c.Catalog.StyleFee != nil {
		catalog.StyleFee = *c.Catalog.StyleFee
	}
	if c.Catalog.Styles != nil {
		catalog.Styles = append([]string{}, c.Catalog.Styles...)
	}
	for category, items := range c.Catalog.Items {
		prices := make(map[string]int, len(items))
		for item, price := range items {
			prices[item] = price
		}
		catalog.Items[domain.Category(category)] = prices
	}

	return catalog
}

func isCategory(name string) bool {
	for _, c := range domain.Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML-файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
	Worker   WorkerConfig   `toml:"worker"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// WhatsAppConfig настройки провайдера WhatsApp
type WhatsAppConfig struct {
	Provider string `toml:"provider"` // "evolution" или "meta"
	Timeout  int    `toml:"timeout"`  // секунды

	EvolutionBaseURL  string `toml:"evolution_base_url"`
	EvolutionInstance string `toml:"evolution_instance"`
	EvolutionAPIKey   string `toml:"evolution_api_key"`

	MetaPhoneNumberID string `toml:"meta_phone_number_id"`
	MetaAccessToken   string `toml:"meta_access_token"`
}

// WorkerConfig настройки фонового воркера уведомлений
type WorkerConfig struct {
	ImmediatePollInterval int `toml:"immediate_poll_interval"` // секунды
	ReminderPollInterval  int `toml:"reminder_poll_interval"`  // секунды
	BatchSize             int `toml:"batch_size"`
	Concurrency           int `toml:"concurrency"`
	AutoCompleteInterval  int `toml:"auto_complete_interval"` // секунды
	ReconcileInterval     int `toml:"reconcile_interval"`     // секунды
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "appointment-service"
	}

	if cfg.Worker.ImmediatePollInterval == 0 {
		cfg.Worker.ImmediatePollInterval = 5
	}
	if cfg.Worker.ReminderPollInterval == 0 {
		cfg.Worker.ReminderPollInterval = 300
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 5
	}
	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = 3
	}
	if cfg.Worker.AutoCompleteInterval == 0 {
		cfg.Worker.AutoCompleteInterval = 60
	}
	if cfg.Worker.ReconcileInterval == 0 {
		cfg.Worker.ReconcileInterval = 900
	}

	return &cfg, nil
}

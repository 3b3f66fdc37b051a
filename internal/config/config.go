package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"villabook/internal/storage"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		Backend string `yaml:"backend"` // "file" or "sqlite"
		Path    string `yaml:"path"`
	} `yaml:"storage"`

	Backup storage.BackupConfig `yaml:"backup"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Backend != BackendFile && cfg.Storage.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path == "" {
		switch cfg.Storage.Backend {
		case BackendSQLite:
			cfg.Storage.Path = "data/villabook.db"
		default:
			cfg.Storage.Path = "data/bookings.json"
		}
	}

	if cfg.Backup.Enabled {
		if cfg.Backup.IntervalHours == 0 {
			cfg.Backup.IntervalHours = 24
		}
		if cfg.Backup.Path == "" {
			cfg.Backup.Path = "data/backups"
		}
		if cfg.Backup.RetentionDays == 0 {
			cfg.Backup.RetentionDays = 30
		}
	}

	return &cfg, nil
}

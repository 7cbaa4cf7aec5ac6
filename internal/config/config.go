package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix 环境变量前缀，例如 LCS_SERVER_PORT
const EnvPrefix = "LCS"

// Config 应用配置，优先级：默认值 < YAML 文件 < 环境变量
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Database   DatabaseConfig   `yaml:"database" envconfig:"DATABASE"`
	Auth       AuthConfig       `yaml:"auth" envconfig:"AUTH"`
	Compliance ComplianceConfig `yaml:"compliance" envconfig:"COMPLIANCE"`
	Sheets     SheetsConfig     `yaml:"sheets" envconfig:"SHEETS"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

type ServerConfig struct {
	Port           int           `yaml:"port" envconfig:"PORT"`
	AllowedOrigins string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	ReadTimeout    time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR"`
	FileName   string `yaml:"file_name" envconfig:"FILE_NAME"`
	LogQueries bool   `yaml:"log_queries" envconfig:"LOG_QUERIES"`
}

type AuthConfig struct {
	JWTSecret            string        `yaml:"jwt_secret" envconfig:"JWT_SECRET"`
	TokenTTL             time.Duration `yaml:"token_ttl" envconfig:"TOKEN_TTL"`
	DefaultAdminPassword string        `yaml:"default_admin_password" envconfig:"DEFAULT_ADMIN_PASSWORD"`
}

type ComplianceConfig struct {
	// Workers 并行评估许可证的协程数
	Workers int `yaml:"workers" envconfig:"WORKERS"`
}

// SheetsConfig Google Sheet 报表同步
type SheetsConfig struct {
	Enabled         bool   `yaml:"enabled" envconfig:"ENABLED"`
	CredentialsPath string `yaml:"credentials_path" envconfig:"CREDENTIALS_PATH"`
	SpreadsheetID   string `yaml:"spreadsheet_id" envconfig:"SPREADSHEET_ID"`
	SheetName       string `yaml:"sheet_name" envconfig:"SHEET_NAME"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"` // json, text
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           80,
			AllowedOrigins: "http://localhost:5173",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
		},
		Database: DatabaseConfig{
			DataDir:  "data",
			FileName: "license.db",
		},
		Auth: AuthConfig{
			TokenTTL:             24 * time.Hour,
			DefaultAdminPassword: "admin",
		},
		Compliance: ComplianceConfig{
			Workers: 4,
		},
		Sheets: SheetsConfig{
			SheetName: "Compliance",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load 读取配置。path 为空时依次尝试 LCS_CONFIG_FILE 与 ./config.yaml，文件不存在不视为错误。
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG_FILE")
	}
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	if err := loadFromFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.DataDir == "" || c.Database.FileName == "" {
		return errors.New("database data_dir and file_name are required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth token_ttl must be positive")
	}
	if c.Compliance.Workers < 1 {
		c.Compliance.Workers = 1
	}
	if c.Sheets.Enabled && (c.Sheets.CredentialsPath == "" || c.Sheets.SpreadsheetID == "") {
		return errors.New("sheets credentials_path and spreadsheet_id are required when sync is enabled")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	return nil
}

// Origins 以逗号分隔的 CORS 来源
func (c *ServerConfig) Origins() string {
	return strings.ReplaceAll(c.AllowedOrigins, " ", "")
}

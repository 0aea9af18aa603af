// Package config provides configuration loading for InventoryPro.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// AppConfig is the complete application configuration.
type AppConfig struct {
	System    SysConfig       `yaml:"system"`
	Web       WebConfig       `yaml:"web"`
	Storage   StorageConfig   `yaml:"storage"`
	Assistant AssistantConfig `yaml:"assistant"`
	Alert     AlertConfig     `yaml:"alert"`
	Logger    LogConfig       `yaml:"logger"`
}

type SysConfig struct {
	// Workdir holds the embedded database and metrics data.
	Workdir  string `yaml:"workdir"`
	Location string `yaml:"location"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Secret signs the session tokens issued by the login endpoint.
	Secret string `yaml:"secret"`
	Debug  bool   `yaml:"debug"`
}

type StorageConfig struct {
	// Filename of the bbolt database, relative to Workdir unless absolute.
	Filename string `yaml:"filename"`
}

// AssistantConfig configures the description assistant. An empty APIKey
// disables remote calls entirely; the assistant then answers with fixed
// fallback text.
type AssistantConfig struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

// AlertConfig configures the low-stock alert mail. Alerts are skipped when
// SMTPHost or To is empty.
type AlertConfig struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// DefaultAppConfig returns the configuration used when no file is given.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Workdir:  "/var/inventorypro",
			Location: "Asia/Shanghai",
		},
		Web: WebConfig{
			Host:   "0.0.0.0",
			Port:   1816,
			Secret: "9b6de5cc-0001-1203-xxtt-0f568ac9da37",
		},
		Storage: StorageConfig{
			Filename: "inventory.db",
		},
		Assistant: AssistantConfig{
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
		Alert: AlertConfig{
			SMTPPort: 25,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: true,
			Filename:   "/var/inventorypro/inventorypro.log",
		},
	}
}

// LoadConfig reads the YAML file at path (when it exists) over the defaults
// and then applies environment overrides.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values from the environment.
func (c *AppConfig) applyEnv() {
	setString(&c.System.Workdir, "INVENTORYPRO_SYSTEM_WORKDIR")
	setString(&c.System.Location, "INVENTORYPRO_SYSTEM_LOCATION")
	setString(&c.Web.Host, "INVENTORYPRO_WEB_HOST")
	setInt(&c.Web.Port, "INVENTORYPRO_WEB_PORT")
	setString(&c.Web.Secret, "INVENTORYPRO_WEB_SECRET")
	setBool(&c.Web.Debug, "INVENTORYPRO_WEB_DEBUG")
	setString(&c.Storage.Filename, "INVENTORYPRO_STORAGE_FILENAME")
	setString(&c.Assistant.Endpoint, "INVENTORYPRO_ASSISTANT_ENDPOINT")
	setString(&c.Assistant.APIKey, "INVENTORYPRO_ASSISTANT_APIKEY")
	setString(&c.Assistant.Model, "INVENTORYPRO_ASSISTANT_MODEL")
	setString(&c.Alert.SMTPHost, "INVENTORYPRO_ALERT_SMTP_HOST")
	setInt(&c.Alert.SMTPPort, "INVENTORYPRO_ALERT_SMTP_PORT")
	setString(&c.Alert.Username, "INVENTORYPRO_ALERT_USERNAME")
	setString(&c.Alert.Password, "INVENTORYPRO_ALERT_PASSWORD")
	setString(&c.Alert.From, "INVENTORYPRO_ALERT_FROM")
	setString(&c.Alert.To, "INVENTORYPRO_ALERT_TO")
	setString(&c.Logger.Mode, "INVENTORYPRO_LOGGER_MODE")
	setBool(&c.Logger.FileEnable, "INVENTORYPRO_LOGGER_FILE_ENABLE")
	setString(&c.Logger.Filename, "INVENTORYPRO_LOGGER_FILENAME")
}

// StoragePath resolves the database filename against the workdir.
func (c *AppConfig) StoragePath() string {
	if filepath.IsAbs(c.Storage.Filename) {
		return c.Storage.Filename
	}
	return filepath.Join(c.System.Workdir, c.Storage.Filename)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = cast.ToInt(v)
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = cast.ToBool(v)
	}
}

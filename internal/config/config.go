package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the key=value connection string used by the GORM driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DatabaseURL returns the postgres:// URL used by the migration runner.
func (c DatabaseConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// KafkaConfig holds Kafka producer settings.
type KafkaConfig struct {
	Brokers []string
}

// ServiceConfig holds all configuration shared by the gateway and server
// binaries.
type ServiceConfig struct {
	AppEnv      string
	ServerPort  string
	GatewayPort string
	// ServerURL is the base URL the gateway forwards requests to.
	ServerURL   string
	DBConfig    DatabaseConfig
	KafkaConfig KafkaConfig
}

// Load reads configuration from SHAREIT_-prefixed environment variables with
// development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SHAREIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_env", "development")
	v.SetDefault("server_port", ":9090")
	v.SetDefault("gateway_port", ":8080")
	v.SetDefault("server_url", "http://localhost:9090")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "shareit")
	v.SetDefault("db_password", "shareit")
	v.SetDefault("db_name", "shareit")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_brokers", "localhost:9092")

	cfg := &ServiceConfig{
		AppEnv:      v.GetString("app_env"),
		ServerPort:  normalizePort(v.GetString("server_port")),
		GatewayPort: normalizePort(v.GetString("gateway_port")),
		ServerURL:   strings.TrimRight(v.GetString("server_url"), "/"),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: strings.Split(v.GetString("kafka_brokers"), ","),
		},
	}

	if cfg.DBConfig.DBName == "" {
		return nil, fmt.Errorf("database name must not be empty")
	}
	return cfg, nil
}

func normalizePort(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

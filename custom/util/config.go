package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/romana/rlog"
	"gopkg.in/yaml.v3"
)

type DbConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	SslMode         string        `yaml:"sslmode"`
	Replicas        []string      `yaml:"replicas"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type HttpConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	AllowOrigins []string      `yaml:"allow_origins"`
}

type ServerConfig struct {
	Postgres DbConfig   `yaml:"postgres"`
	Http     HttpConfig `yaml:"http"`
	GinMode  string     `yaml:"gin_mode"`
}

// DefaultServerConfig is used for every value the yaml file and the environment leave unset.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Postgres: DbConfig{
			Host:            "localhost",
			Port:            5432,
			Username:        "postgres",
			Password:        "password",
			Database:        "order_management",
			SslMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Http: HttpConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			AllowOrigins: []string{"*"},
		},
		GinMode: "release",
	}
}

// GetConf reads the yaml file, then a .env file if any, then environment overrides.
// A missing yaml file is not an error; a malformed one is.
func (c *ServerConfig) GetConf(fileName string) (*ServerConfig, error) {
	*c = DefaultServerConfig()

	yamlFile, err := os.ReadFile(fileName)
	if err != nil {
		rlog.Warnf("Read yaml file %s failed: %s", fileName, err.Error())
	} else if err = yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", fileName, err)
	}

	if err = godotenv.Load(); err != nil {
		rlog.Debug("No .env file found, using system environment variables")
	}
	c.applyEnv()

	return c, nil
}

func (c *ServerConfig) applyEnv() {
	c.Postgres.Host = getEnv("DATABASE_HOST", c.Postgres.Host)
	c.Postgres.Port = getEnvInt("DATABASE_PORT", c.Postgres.Port)
	c.Postgres.Username = getEnv("DATABASE_USER", c.Postgres.Username)
	c.Postgres.Password = getEnv("DATABASE_PASSWORD", c.Postgres.Password)
	c.Postgres.Database = getEnv("DATABASE_NAME", c.Postgres.Database)
	c.Postgres.SslMode = getEnv("DATABASE_SSLMODE", c.Postgres.SslMode)
	if replicas := os.Getenv("DATABASE_REPLICAS"); replicas != "" {
		c.Postgres.Replicas = strings.Split(replicas, ",")
	}
	c.Http.Port = getEnvInt("HTTP_PORT", c.Http.Port)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
}

// DSN builds the libpq connection string of the primary database.
func (c DbConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SslMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		rlog.Warnf("Invalid integer for %s, using default", key)
	}
	return defaultValue
}

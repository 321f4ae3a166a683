// Package config loads the application configuration from a TOML file,
// with optional environment overrides for secrets.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// MainConfig holds basic server settings.
type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Mode    string `toml:"mode"` // "dev" or "release"
	// TlsRedirect enables the HTTPS redirect middleware; leave off when
	// TLS terminates at a fronting proxy.
	TlsRedirect bool `toml:"tlsRedirect"`
}

// MysqlConfig holds MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// LogConfig controls zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"`
	Level      string `toml:"level"`
}

// JWTConfig holds the token verification settings. The secret is shared
// with the user service that issues the tokens.
type JWTConfig struct {
	Secret            string `toml:"secret"`
	AccessTokenExpiry int    `toml:"accessTokenExpiry"` // minutes
}

// UserServiceConfig points at the external user-identity service.
type UserServiceConfig struct {
	BaseURL        string `toml:"baseUrl"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
}

// Config aggregates all sections.
type Config struct {
	MainConfig        `toml:"mainConfig"`
	MysqlConfig       `toml:"mysqlConfig"`
	LogConfig         `toml:"logConfig"`
	JWTConfig         `toml:"jwtConfig"`
	UserServiceConfig `toml:"userServiceConfig"`
}

var config *Config

// LoadConfig tries the candidate paths in order and keeps the first file
// that parses. A .env file, when present, overrides the secret-bearing
// fields afterwards.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	loaded := false
	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			loaded = true
			break
		}
	}
	if !loaded {
		return fmt.Errorf("could not find configuration file in any of the search paths")
	}

	applyEnvOverrides()
	return nil
}

// applyEnvOverrides lets deployments keep secrets out of the TOML file.
func applyEnvOverrides() {
	_ = godotenv.Load()

	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		config.MysqlConfig.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTConfig.Secret = v
	}
	if v := os.Getenv("USER_SERVICE_BASE_URL"); v != "" {
		config.UserServiceConfig.BaseURL = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.MainConfig.Port = port
		}
	}
}

// GetConfig returns the config singleton, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}

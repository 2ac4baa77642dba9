// Package config provides runtime configuration from environment variables and
// loading of tool configuration files.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/logging"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// Config holds the runtime configuration shared by all commands.
type Config struct {
	HTTPTimeout          time.Duration // OGC_HTTP_TIMEOUT_MS, default 30000ms (30s)
	UserAgent            string        // OGC_USER_AGENT, default client.DefaultUserAgent
	ProcessCacheMaxItems int           // PROCESS_CACHE_MAX_ITEMS, default 256

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFormat     string // LOG_FORMAT, default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		HTTPTimeout:          getEnvDurationMs("OGC_HTTP_TIMEOUT_MS", 30000),
		UserAgent:            getEnvString("OGC_USER_AGENT", client.DefaultUserAgent),
		ProcessCacheMaxItems: getEnvInt("PROCESS_CACHE_MAX_ITEMS", 256),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// Logging returns the logging section of the configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		FilePath:   c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
		Compress:   c.LogCompress,
	}
}

// ClientOptions returns the HTTP client options for OGC API requests.
func (c *Config) ClientOptions() []client.Option {
	return []client.Option{
		client.WithTimeout(c.HTTPTimeout),
		client.WithUserAgent(c.UserAgent),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}

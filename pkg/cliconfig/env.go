package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvAPIURL    = "MCPCONSOLE_API_URL"
	EnvToken     = "MCPCONSOLE_TOKEN"
	EnvTimeout   = "MCPCONSOLE_TIMEOUT"
	EnvLogLevel  = "MCPCONSOLE_LOG_LEVEL"
	EnvLogFormat = "MCPCONSOLE_LOG_FORMAT"
	EnvConfig    = "MCPCONSOLE_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
		cfg.Sources["apiUrl"] = SourceEnv
	}

	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
		cfg.Sources["token"] = SourceEnv
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = timeout
			cfg.Sources["timeout"] = SourceEnv
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}

// GetAPIURL returns the backend URL from the environment, or the default.
// Used for flag defaults before the full config is loaded.
func GetAPIURL() string {
	if v := os.Getenv(EnvAPIURL); v != "" {
		return v
	}
	return DefaultAPIURL
}

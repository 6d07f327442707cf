package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	portEnvVar    = "PORT"
	appNameVar    = "APP_NAME"
	baseURLVar    = "ADMIN_API_URL"
	configDirVar  = "ADMIN_CONFIG_DIR"
	timeoutVar    = "HTTP_TIMEOUT_SECONDS"
	jwtSecretVar  = "JWT_SECRET"
	adminEmailVar = "ADMIN_EMAIL"
	adminPassVar  = "ADMIN_PASSWORD"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "BiziWit Admin")
}

// GetBaseURL returns the backend root the gateway talks to.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:4000")
}

// GetConfigDir is where the bearer token is persisted between runs.
func (EnvVars) GetConfigDir() string {
	if dir := os.Getenv(configDirVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".biziwit-admin"
	}
	return filepath.Join(home, ".biziwit-admin")
}

func (EnvVars) GetHTTPTimeoutSeconds() int {
	raw := GetEnv(timeoutVar, "30")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 30
	}
	return seconds
}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "4000")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetJWTSecret() string {
	return GetEnv(jwtSecretVar, "dev-only-secret")
}

func (EnvVars) GetAdminEmail() string {
	return GetEnv(adminEmailVar, "admin@biziwit.local")
}

func (EnvVars) GetAdminPassword() string {
	return GetEnv(adminPassVar, "changeme")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

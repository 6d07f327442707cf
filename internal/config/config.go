package config

type Config interface {
	EnvConfig
}

// EnvConfig exposes the environment-driven settings shared by the CLI and
// the mock backend.
type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetConfigDir() string
	GetHTTPTimeoutSeconds() int
	GetPort() string
	GetJWTSecret() string
	GetAdminEmail() string
	GetAdminPassword() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}

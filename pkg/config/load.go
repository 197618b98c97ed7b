package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When envFile paths are
// given, the first one that loads wins; a missing .env is not an error since
// deployments usually configure through the process environment.
func Load(envFile ...string) (*App, error) {
	logger := slog.Default()

	if len(envFile) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using system environment")
		}
		return loadFromEnv()
	}

	for _, path := range envFile {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		break
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	slog.Default().Info("app config loaded",
		"env", cfg.Env,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

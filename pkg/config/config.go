// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import "time"

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Log holds the logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankledger]"`
}

// RateLimit holds the per-IP request limiter settings.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// App is the root configuration.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}

package logger

import (
	"go.uber.org/zap"
)

// New builds a zap logger for the given application environment.
// "development" gets the human-readable console encoder, everything else a
// production JSON logger.
func New(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// NewNamed builds a logger tagged with a service name.
func NewNamed(appEnv, service string) (*zap.Logger, error) {
	log, err := New(appEnv)
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}

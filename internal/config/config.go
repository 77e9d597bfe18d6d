package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults de las variables opcionales.
const (
	defaultPort            = 8080
	defaultLogLevel        = logrus.InfoLevel
	defaultShutdownSeconds = 10
)

// MissingVarError indica que falta una variable de entorno obligatoria.
type MissingVarError struct {
	Name string
}

func (err MissingVarError) Error() string {
	return fmt.Sprintf("missing required env var: %s", err.Name)
}

// InvalidVarError indica que una variable vino con un valor no parseable.
type InvalidVarError struct {
	Name  string
	Value string
}

func (err InvalidVarError) Error() string {
	return fmt.Sprintf("invalid value for env var %s: %q", err.Name, err.Value)
}

// Config agrupa la configuración necesaria para correr la aplicación.
// Se construye una sola vez al arranque y no se muta después.
type Config struct {
	DatabaseURL     string
	Port            int
	LogLevel        logrus.Level
	ShutdownTimeout time.Duration
}

// Load lee variables de entorno y valida lo mínimo indispensable.
// Cualquier error acá es fatal: preferimos no arrancar antes que arrancar mal configurados.
func Load() (Config, error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return Config{}, MissingVarError{Name: "DATABASE_URL"}
	}

	port := defaultPort
	if raw := strings.TrimSpace(os.Getenv("APP_PORT")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 65535 {
			return Config{}, InvalidVarError{Name: "APP_PORT", Value: raw}
		}
		port = parsed
	}

	level, err := loadLogLevel()
	if err != nil {
		return Config{}, err
	}

	shutdownSeconds := defaultShutdownSeconds
	if raw := strings.TrimSpace(os.Getenv("GRACEFUL_SHUTDOWN_TIMEOUT")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return Config{}, InvalidVarError{Name: "GRACEFUL_SHUTDOWN_TIMEOUT", Value: raw}
		}
		shutdownSeconds = parsed
	}

	return Config{
		DatabaseURL:     databaseURL,
		Port:            port,
		LogLevel:        level,
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
	}, nil
}

// loadLogLevel acepta solo los cinco niveles documentados.
// logrus también parsea "fatal"/"panic", pero no son parte del contrato de LOG_LEVEL.
func loadLogLevel() (logrus.Level, error) {
	raw := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if raw == "" {
		return defaultLogLevel, nil
	}

	switch strings.ToLower(raw) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return defaultLogLevel, InvalidVarError{Name: "LOG_LEVEL", Value: raw}
	}

	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return defaultLogLevel, InvalidVarError{Name: "LOG_LEVEL", Value: raw}
	}
	return level, nil
}

package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type AuthMode string

const (
	AuthModeCredentials  AuthMode = "credentials"
	AuthModeSharedSecret AuthMode = "shared_secret"
)

// Config se carga completo desde env. Nada de credenciales hardcodeadas:
// el secreto compartido viene sí o sí por STAFF_SHARED_SECRET.
type Config struct {
	AppPort int `env:"APP_PORT" envDefault:"8080"`

	// Si DB_DSN viene, el server usa Postgres (modo vivo).
	// Si no, carga el snapshot CSV de DATA_DIR (modo demo, escrituras en memoria).
	DBDSN   string `env:"DB_DSN"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	ImagesDir string `env:"IMAGES_DIR" envDefault:"./images"`

	AuthMode          AuthMode `env:"AUTH_MODE" envDefault:"credentials"`
	StaffSharedSecret string   `env:"STAFF_SHARED_SECRET"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

var ErrInvalidConfig = errors.New("invalid config")

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}

	switch c.AuthMode {
	case AuthModeCredentials, AuthModeSharedSecret:
	default:
		return Config{}, ErrInvalidConfig
	}

	// En modo shared_secret el valor es obligatorio; en credentials no se usa.
	if c.AuthMode == AuthModeSharedSecret && strings.TrimSpace(c.StaffSharedSecret) == "" {
		return Config{}, ErrInvalidConfig
	}

	return c, nil
}

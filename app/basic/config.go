package basic

import (
	"github.com/dmitrymomot/bindkit/core/server"
)

// Config is the demo application configuration, loaded from the environment.
type Config struct {
	Server server.Config

	AppName     string `env:"APP_NAME" envDefault:"bindkit-basic"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	MaxBodySize int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Server:      server.DefaultConfig(),
		AppName:     "bindkit-basic",
		Env:         "development",
		LogLevel:    "info",
		LogFormat:   "text",
		MaxBodySize: 1 << 20,
	}
}

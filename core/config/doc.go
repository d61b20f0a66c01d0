// Package config loads environment variables into typed structs with
// github.com/caarlos0/env. A .env file in the working directory is read
// once, before the first Load, when it exists.
//
//	type Config struct {
//		Server   server.Config
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each type is parsed once; later loads of the same type copy the cached
// value, so changes to the environment after the first Load are not seen.
// MustLoad panics instead of returning an error and suits main packages.
package config

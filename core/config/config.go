package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrNilTarget = errors.New("config: nil target")

var (
	// cache holds one loaded value per configuration type
	cache   = make(map[reflect.Type]any)
	cacheMu sync.Mutex

	dotenvOnce sync.Once
	dotenvErr  error
	// dotenvFiles are read on first Load; missing files are skipped.
	dotenvFiles = []string{".env"}
)

// Load fills v from the environment. The first Load of a type parses
// the environment; later calls copy the cached value.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilTarget
	}

	if err := loadDotenv(); err != nil {
		return err
	}

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	cache[key] = cfg
	*v = cfg
	return nil
}

// MustLoad is like Load but panics on error. Use it during startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}

// loadDotenv reads dotenvFiles once. A file that exists but cannot be
// parsed fails every Load until the process restarts.
func loadDotenv() error {
	dotenvOnce.Do(func() {
		for _, file := range dotenvFiles {
			if _, err := os.Stat(file); err != nil {
				continue
			}
			// Existing variables win over .env entries
			if err := godotenv.Load(file); err != nil {
				dotenvErr = fmt.Errorf("config: load %s: %w", file, err)
				return
			}
		}
	})
	return dotenvErr
}

package basic

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/bindkit/core/config"
	"github.com/dmitrymomot/bindkit/core/logger"
	"github.com/dmitrymomot/bindkit/core/response"
	"github.com/dmitrymomot/bindkit/core/router"
	"github.com/dmitrymomot/bindkit/core/server"
	"github.com/dmitrymomot/bindkit/core/view"
	"github.com/dmitrymomot/bindkit/middleware"
)

// App wires the demo controllers to a router and an HTTP server.
type App struct {
	config     Config
	configured bool
	router     router.Router[*Context]
	server     *server.Server
	views      *view.Registry
	logger     *slog.Logger
	logOutput  io.Writer
}

type AppOption func(*App) error

// NewApp builds the application. Without WithConfig the configuration
// is loaded from the environment.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.configured {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		log, err := newLogger(app.config, app.logOutput)
		if err != nil {
			return nil, err
		}
		app.logger = log
	}

	if app.views == nil {
		app.views = NewViews()
	}

	if app.router == nil {
		app.router = router.New(
			router.WithContextFactory(contextFactory(app.logger)),
			router.WithErrorHandler(response.NegotiatingErrorHandler[*Context]),
			router.WithLogger[*Context](app.logger),
			router.WithMiddleware(
				middleware.RequestID[*Context](),
				middleware.LoggingWithLogger[*Context](app.logger),
				middleware.BodyLimitWithSize[*Context](app.config.MaxBodySize),
			),
		)
	}
	registerRoutes(app.router, app.views)

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// Handler returns the application's HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Addr returns the server address, the bound one once running.
func (a *App) Addr() string {
	return a.server.Addr()
}

// Run serves until ctx is cancelled. It fits errgroup.Group.Go.
func (a *App) Run(ctx context.Context) func() error {
	return a.server.Run(ctx, a.router)
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithOutput(out),
		logger.WithAttr(slog.String("service", cfg.AppName), slog.String("env", cfg.Env)),
		logger.WithContextValue("request_id", middleware.RequestIDKey{}),
	}
	if strings.EqualFold(cfg.LogFormat, "json") {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...), nil
}

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.configured = true
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

// WithLogOutput redirects the default logger, os.Stdout otherwise.
func WithLogOutput(w io.Writer) AppOption {
	return func(app *App) error {
		if w == nil {
			return errors.New("log output cannot be nil")
		}
		app.logOutput = w
		return nil
	}
}

func WithRouter(router router.Router[*Context]) AppOption {
	return func(app *App) error {
		if router == nil {
			return errors.New("router cannot be nil")
		}
		app.router = router
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func WithViews(views *view.Registry) AppOption {
	return func(app *App) error {
		if views == nil {
			return errors.New("view registry cannot be nil")
		}
		app.views = views
		return nil
	}
}

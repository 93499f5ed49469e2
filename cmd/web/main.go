package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/myrjola/ironlog/internal/envstruct"
	"github.com/myrjola/ironlog/internal/errors"
	"github.com/myrjola/ironlog/internal/flightrecorder"
	"github.com/myrjola/ironlog/internal/genai"
	"github.com/myrjola/ironlog/internal/logging"
	"github.com/myrjola/ironlog/internal/plan"
	"github.com/myrjola/ironlog/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	planService    *plan.Service
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"IRONLOG_ADDR" envDefault:"localhost:8082"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"IRONLOG_SQLITE_URL" envDefault:"./ironlog.sqlite3"`
	// OpenAIAPIKey enables workout generation when set.
	OpenAIAPIKey string `env:"IRONLOG_OPENAI_API_KEY" envDefault:""`
	// TracesDir is the optional directory for flight recorder traces captured on request timeouts.
	TracesDir string `env:"IRONLOG_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	var generator plan.Generator
	if cfg.OpenAIAPIKey != "" {
		generator = genai.NewClient(cfg.OpenAIAPIKey, logger)
	} else {
		logger.LogAttrs(ctx, slog.LevelInfo, "workout generation disabled, no API key configured")
	}

	planService, err := plan.NewService(ctx, plan.NewRepository(db, logger), generator, logger)
	if err != nil {
		return errors.Wrap(err, "initialize plan service")
	}

	// Reconcile with the calendar before serving, so a restart after a
	// week boundary archives the stale week right away.
	rollover, err := planService.Activate(ctx)
	if err != nil {
		return errors.Wrap(err, "activate week")
	}
	if rollover.Archived {
		logger.LogAttrs(ctx, slog.LevelInfo, "previous week archived on startup",
			slog.String("weekLabel", rollover.Entry.WeekLabel))
	}

	app := application{
		logger:         logger,
		planService:    planService,
		flightRecorder: nil,
	}

	if cfg.TracesDir != "" {
		if app.flightRecorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = app.flightRecorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer app.flightRecorder.Stop(ctx)
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliverychecker/cmd"
	postgresadapter "deliverychecker/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv(".env")

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = serve(ctx, config); err != nil {
		log.Errorf("Server stopped: %v", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already ran
	}
}

// loadDotEnv loads path into the environment when it exists. Variables that
// are already set win.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading %s file: %v", path, err)
	}
}

func serve(ctx context.Context, config cmd.Config) error {
	logger := cmd.NewLogger(os.Stderr, config.LogLevel)

	gormDB, err := openHistoryDB(config)
	if err != nil {
		return err
	}
	if gormDB != nil {
		sqlDB, dbErr := gormDB.DB()
		if dbErr != nil {
			return dbErr
		}
		defer sqlDB.Close()
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	e, err := app.CreateEcho(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
	logger.InfoContext(ctx, "Starting HTTP server",
		"address", address, "history", app.HistoryEnabled(), "jobs", jobManager.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if startErr := e.Start(address); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openHistoryDB returns nil when history is disabled.
func openHistoryDB(config cmd.Config) (*gorm.DB, error) {
	if !config.HistoryEnabled {
		return nil, nil //nolint:nilnil // history is optional
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = postgresadapter.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return gormDB, nil
}

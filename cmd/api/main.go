package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-scheduler",
		Short: "Clinic visit scheduling API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(config.Load())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg)
			defer log.Sync() //nolint:errcheck

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			log.Info("schema migrated")
			return nil
		},
	}
}

func runServer(cfg *config.Config) error {
	log := logger.New(cfg)
	defer log.Sync() //nolint:errcheck

	if !timezone.IsValid(cfg.ClinicTimezone) {
		log.Warn("unknown clinic timezone, using default",
			zap.String("timezone", cfg.ClinicTimezone),
			zap.String("default", timezone.DefaultTimezone),
		)
	}

	deps := routes.Deps{
		Clock:    timezone.NewClock(cfg.ClinicTimezone),
		Location: timezone.Location(cfg.ClinicTimezone),
		Log:      log,
		Checks:   map[string]handlers.Check{},
	}

	// ======================================================
	// STORE
	// ======================================================
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		deps.Visits, deps.Patients, deps.Doctors = store, store, store

	case config.StoreDriverPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
		deps.Visits = infraRepo.NewVisitGormRepository(db)
		deps.Patients = infraRepo.NewPatientGormDirectory(db)
		deps.Doctors = infraRepo.NewDoctorGormDirectory(db)
		deps.Checks["database"] = dbpkg.Ping(db)

	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	// ======================================================
	// RATE LIMIT
	// ======================================================
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		deps.Limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitRPS, cfg.RateLimitBurst)
		deps.Checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	} else if cfg.RateLimitRPS > 0 {
		deps.Limiter = middleware.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, deps); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("timezone", deps.Location.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

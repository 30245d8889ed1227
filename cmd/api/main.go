package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tour-optimizer-api/internal/config"
	"tour-optimizer-api/internal/dataset"
	"tour-optimizer-api/internal/geo"
	"tour-optimizer-api/internal/handler"
	"tour-optimizer-api/internal/models"
	"tour-optimizer-api/internal/repository"
	"tour-optimizer-api/internal/routing"
	"tour-optimizer-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid LOG_LEVEL")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	repo, closeRepo := openRepository(ctx, config)
	defer closeRepo()

	formula, err := geo.ParseFormula(config.DistanceFormula)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DISTANCE_FORMULA")
	}
	strategy, err := routing.ParseFirstSolutionStrategy(config.FirstSolutionStrategy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid FIRST_SOLUTION_STRATEGY")
	}

	// Initialize layers
	tourService := service.NewTourService(repo, service.TourConfig{
		DepotMode:             models.DepotMode(config.DepotMode),
		Formula:               formula,
		TimeLimit:             config.SolverTimeLimit,
		FirstSolutionStrategy: strategy,
	})
	locationService := service.NewLocationService(repo)

	router := handler.NewRouter(
		handler.NewTourHandler(tourService),
		handler.NewLocationHandler(locationService),
		handler.NewSolveLimiter(config.SolveRateLimit, config.SolveBurst),
	)

	waitGroup, ctx := errgroup.WithContext(ctx)
	runGinServer(ctx, waitGroup, config, router)

	if err := waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// openRepository returns the delivery point source selected by DATASET_SOURCE.
func openRepository(ctx context.Context, cfg config.Config) (service.LocationStore, func()) {
	if cfg.DatasetSource != config.DatasetPostgres {
		ds, err := dataset.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load embedded dataset")
		}
		log.Info().Int("locations", ds.Len()).Msg("using embedded dataset")
		return ds, func() {}
	}

	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	if err := conn.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	repo := repository.NewRepository(conn)
	count, err := repo.CountLocations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read delivery points; run the importer first")
	}
	log.Info().Int("locations", count).Msg("using postgres dataset")

	return repo, conn.Close
}

// runGinServer serves router until ctx is done, then shuts down gracefully.
func runGinServer(ctx context.Context, waitGroup *errgroup.Group, cfg config.Config, router http.Handler) {
	httpServer := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// a page load blocks for up to the solver time limit
		WriteTimeout: cfg.SolverTimeLimit + 30*time.Second,
		IdleTimeout:  120 * time.Second,
		// in-flight solves stop when the server shuts down
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", cfg.ServerAddress)
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}

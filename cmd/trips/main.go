package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/trailyn/transport/internal/pkg/config"
	"github.com/trailyn/transport/internal/pkg/database"
	"github.com/trailyn/transport/internal/pkg/health"
	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/nats"
	nrpkg "github.com/trailyn/transport/internal/pkg/newrelic"
	"github.com/trailyn/transport/internal/pkg/server"

	confirmationsHandler "github.com/trailyn/transport/services/confirmations/handler/http"
	confirmationsRepo "github.com/trailyn/transport/services/confirmations/repository"
	confirmationsUC "github.com/trailyn/transport/services/confirmations/usecase"
	stopsHandler "github.com/trailyn/transport/services/stops/handler/http"
	stopsRepo "github.com/trailyn/transport/services/stops/repository"
	stopsUC "github.com/trailyn/transport/services/stops/usecase"
	trackingHandler "github.com/trailyn/transport/services/tracking/handler/http"
	trackingRepo "github.com/trailyn/transport/services/tracking/repository"
	trackingUC "github.com/trailyn/transport/services/tracking/usecase"
	tripsGateway "github.com/trailyn/transport/services/trips/gateway"
	tripsHandler "github.com/trailyn/transport/services/trips/handler/http"
	tripsRepo "github.com/trailyn/transport/services/trips/repository"
	tripsUC "github.com/trailyn/transport/services/trips/usecase"

	confirmationsGateway "github.com/trailyn/transport/services/confirmations/gateway"
	stopsGateway "github.com/trailyn/transport/services/stops/gateway"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	producer := nats.NewProducer(natsClient)

	// Repositories
	tripRepository := tripsRepo.NewTripRepository(configs, postgresClient.GetDB())
	confirmationRepository := confirmationsRepo.NewConfirmationRepository(configs, postgresClient.GetDB())
	stopRepository := stopsRepo.NewStopRepository(configs, postgresClient.GetDB())
	locationRepository := trackingRepo.NewLocationRepository(configs, redisClient)

	// Tracking first: it is the location source every gate depends on.
	trackingUsecase := trackingUC.NewTrackingUC(configs, locationRepository, producer)

	// Gateways
	tripEventGW := tripsGateway.NewTripGW(producer)
	routingGW := tripsGateway.NewRoutingGW(configs.Services.RoutingEngineURL)
	vitalsGW := tripsGateway.NewVitalsBridgeGW(configs.Services.VitalsBridgeURL)
	tripLockGW := tripsGateway.NewTripLockGW(redisClient)
	confirmationEventGW := confirmationsGateway.NewConfirmationGW(producer)
	stopEventGW := stopsGateway.NewStopGW(producer)

	// Use cases
	tripUsecase := tripsUC.NewTripUC(configs, tripRepository, routingGW, tripEventGW,
		vitalsGW, trackingUsecase, tripLockGW, confirmationRepository)
	confirmationUsecase := confirmationsUC.NewConfirmationUC(configs, confirmationRepository,
		tripRepository, confirmationEventGW)
	stopUsecase := stopsUC.NewStopUC(configs, stopRepository, tripRepository,
		trackingUsecase, vitalsGW, stopEventGW, zapLogger)

	// HTTP layer
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recovery())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestLogger())

	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Ping: func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		}},
		health.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return redisClient.GetClient().Ping(ctx).Err()
		}},
	)

	tripsHandler.NewTripsHandler(tripUsecase).RegisterRoutes(e, configs.JWT)
	confirmationsHandler.NewConfirmationsHandler(confirmationUsecase).RegisterRoutes(e, configs.JWT)
	stopsHandler.NewStopsHandler(stopUsecase).RegisterRoutes(e, configs.JWT)
	trackingHandler.NewTrackingHandler(trackingUsecase).RegisterRoutes(e, configs.JWT)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error { return postgresClient.Close() })
	shutdown.Register(func(ctx context.Context) error { return redisClient.Close() })
	shutdown.Register(func(ctx context.Context) error { natsClient.Close(); return nil })
	if nrApp != nil {
		shutdown.Register(func(ctx context.Context) error { nrApp.Shutdown(10 * time.Second); return nil })
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during component shutdown", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
}

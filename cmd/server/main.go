package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hapsay-service/config"
	"hapsay-service/internal/announcement"
	"hapsay-service/internal/api"
	"hapsay-service/internal/auth"
	"hapsay-service/internal/blotter"
	"hapsay-service/internal/clearance"
	"hapsay-service/internal/health"
	"hapsay-service/internal/metrics"
	"hapsay-service/internal/officer"
	"hapsay-service/internal/realtime"
	"hapsay-service/internal/sos"
	"hapsay-service/internal/station"
	"hapsay-service/internal/store"
	"hapsay-service/internal/user"
	"hapsay-service/pkg/constants"
	"hapsay-service/pkg/consul"
	"hapsay-service/pkg/idgen"
	"hapsay-service/pkg/token"
	"hapsay-service/pkg/zap"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := zap.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	mongoClient, err := store.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logger.Info("Successfully connected to MongoDB")

	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error(err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB)
	userRepository := user.NewUserRepository(db.Collection(constants.UsersCollection))
	officerRepository := officer.NewOfficerRepository(db.Collection(constants.OfficersCollection))
	stationRepository := station.NewStationRepository(db.Collection(constants.StationsCollection))
	blotterRepository := blotter.NewBlotterRepository(db.Collection(constants.BlottersCollection))
	clearanceRepository := clearance.NewClearanceRepository(db.Collection(constants.ClearancesCollection))
	sosRepository := sos.NewSOSRepository(db.Collection(constants.SOSRequestsCollection))
	announcementRepository := announcement.NewAnnouncementRepository(db.Collection(constants.AnnouncementsCollection))

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authService := auth.NewAuthService(userRepository, officerRepository, issuer)
	userService := user.NewUserService(userRepository)
	officerService := officer.NewOfficerService(officerRepository, stationRepository)
	stationService := station.NewStationService(stationRepository, officerRepository, idgen.NewAssigner(), logger)
	blotterService := blotter.NewBlotterService(blotterRepository, userRepository, officerRepository)
	clearanceService := clearance.NewClearanceService(clearanceRepository, userRepository, stationRepository)
	sosService := sos.NewSOSService(sosRepository, userRepository, stationRepository)
	announcementService := announcement.NewAnnouncementService(announcementRepository, stationRepository)

	router := api.NewRouter(api.Deps{
		Config:  cfg,
		Logger:  logger,
		Issuer:  issuer,
		Hub:     realtime.NewHub(logger, cfg.AllowedOrigins),
		Metrics: metrics.New(),
		Handlers: api.Handlers{
			Auth:          auth.NewAuthHandler(authService),
			Users:         user.NewUserHandler(userService),
			Officers:      officer.NewOfficerHandler(officerService),
			Stations:      station.NewStationHandler(stationService),
			Blotter:       blotter.NewBlotterHandler(blotterService),
			Clearance:     clearance.NewClearanceHandler(clearanceService),
			SOS:           sos.NewSOSHandler(sosService),
			Announcements: announcement.NewAnnouncementHandler(announcementService),
			Health: health.NewHandler(health.PingerFunc(func(ctx context.Context) error {
				return store.Ping(ctx, mongoClient)
			}), version),
		},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	consulConn := consul.NewConsulConn(logger, cfg)
	if _, err := consulConn.Connect(); err != nil {
		logger.Warnf("Consul registration failed: %v", err)
	}
	defer consulConn.Deregister()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
	logger.Info("Server stopped")
}

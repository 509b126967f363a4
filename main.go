package main

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"

	"github.com/triplogue/triplogue-backend/config"
	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/handlers"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/router"
	"github.com/triplogue/triplogue-backend/services"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/store/memory"
	"github.com/triplogue/triplogue-backend/store/postgres"
	"github.com/triplogue/triplogue-backend/store/redis"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		docStore    store.DocumentStore
		redisClient *redislib.Client
	)

	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		if err := postgres.RunMigrations(cfg.Database.URL()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL())
		if err != nil {
			log.Fatalf("Failed to parse database config: %v", err)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
		if cfg.Server.Environment == config.EnvProduction {
			poolConfig.ConnConfig.TLSConfig = &tls.Config{
				ServerName: cfg.Database.Host,
				MinVersion: tls.VersionTLS12,
			}
		}

		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		docStore = postgres.NewDocumentStore(pool)

	case config.StorageBackendMemory:
		log.Warn("Using in-memory document store, data will not survive a restart")
		docStore = memory.NewDocumentStore()

	default: // redis
		redisOptions := &redislib.Options{
			Addr:         cfg.Redis.Address,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		}
		if cfg.Redis.UseTLS {
			redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		redisClient = redislib.NewClient(redisOptions)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warnw("Failed to close Redis client", "error", err)
			}
		}()
		docStore = redis.NewDocumentStore(redisClient)
	}

	// Repositories
	tripDB := db.NewTripDB(docStore)
	itineraryDB := db.NewItineraryDB(docStore)
	flightDB := db.NewFlightDB(docStore)
	hotelDB := db.NewHotelDB(docStore)
	transportDB := db.NewTransportDB(docStore)
	placeDB := db.NewPlaceDB(docStore)
	packingDB := db.NewPackingDB(docStore)
	shoppingDB := db.NewShoppingDB(docStore)
	expenseDB := db.NewExpenseDB(docStore)
	limitsDB := db.NewBudgetLimitsDB(docStore)
	photoDB := db.NewPhotoDB(docStore)
	scrapbookDB := db.NewScrapbookDB(docStore)
	userDB := db.NewUserDB(docStore)

	// Services
	resolver := services.NewUserResolver(userDB, redisClient)
	healthService := services.NewHealthService(docStore, cfg.Server.Version)
	var emailSender models.InvitationEmailSender
	if emailService := services.NewEmailService(&cfg.Email, cfg.Server.FrontendURL); emailService != nil {
		emailSender = emailService
	}

	// Models
	tripModel := models.NewTripModel(tripDB, userDB, emailSender)
	itineraryModel := models.NewItineraryModel(tripDB, itineraryDB)
	bookingModel := models.NewBookingModel(flightDB, hotelDB, transportDB, placeDB, itineraryModel)
	checklistModel := models.NewChecklistModel(packingDB, shoppingDB, expenseDB)
	budgetModel := models.NewBudgetModel(flightDB, hotelDB, transportDB, placeDB, shoppingDB, expenseDB, limitsDB)
	memoryModel := models.NewMemoryModel(photoDB, scrapbookDB)

	r := router.SetupRouter(router.Dependencies{
		Config:           &cfg.Server,
		TripHandler:      handlers.NewTripHandler(tripModel, resolver),
		ItineraryHandler: handlers.NewItineraryHandler(tripModel, itineraryModel),
		BookingHandler:   handlers.NewBookingHandler(tripModel, bookingModel),
		PlaceHandler:     handlers.NewPlaceHandler(tripModel, bookingModel),
		ChecklistHandler: handlers.NewChecklistHandler(tripModel, checklistModel),
		BudgetHandler:    handlers.NewBudgetHandler(tripModel, budgetModel),
		MemoryHandler:    handlers.NewMemoryHandler(tripModel, memoryModel),
		UserHandler:      handlers.NewUserHandler(userDB, resolver),
		HealthHandler:    handlers.NewHealthHandler(healthService),
	})

	log.Infof("Starting server on port %s with %s storage", cfg.Server.Port, cfg.Storage.Backend)
	if err := r.Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

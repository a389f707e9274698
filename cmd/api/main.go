package main

import (
	"context"
	"net/http"
	"os"

	"github.com/ers220/component-compass/api/controllers"
	"github.com/ers220/component-compass/api/routes"
	"github.com/ers220/component-compass/internal/auth"
	"github.com/ers220/component-compass/internal/cart"
	"github.com/ers220/component-compass/internal/catalog"
	"github.com/ers220/component-compass/internal/feedback"
	"github.com/ers220/component-compass/internal/receipts"
	"github.com/ers220/component-compass/internal/users"
	"github.com/ers220/component-compass/pkg/auth/session"
	"github.com/ers220/component-compass/pkg/config"
	"github.com/ers220/component-compass/pkg/db"
	"github.com/ers220/component-compass/pkg/logger"
	"github.com/ers220/component-compass/pkg/migrate"
	"github.com/ers220/component-compass/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// sessions live in redis when configured, otherwise in process memory
	var sessionStore session.Store
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		sessionStore = redisClient
	} else {
		logg.Warn(context.Background(), "no redis configured, using in-process session store")
		sessionStore = session.NewMemoryStore()
	}

	sessionManager := session.NewManager(sessionStore, cfg.JWT.SessionTTL())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		Login:          authService,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo: catalog.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{Sessions: sessionManager})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	feedbackService, err := feedback.NewService(feedback.ServiceParams{Config: cfg.Feedback})
	if err != nil {
		logg.Error(context.Background(), "failed to create feedback service", err)
		os.Exit(1)
	}

	receiptsService, err := receipts.NewService(receipts.ServiceParams{
		Config: cfg.Receipts,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create receipts service", err)
		os.Exit(1)
	}

	pages, err := controllers.NewPages(cartService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to parse page templates", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Sessions:        sessionManager,
			Pages:           pages,
			AuthService:     authService,
			RegisterService: registerService,
			CatalogService:  catalogService,
			CartService:     cartService,
			FeedbackService: feedbackService,
			ReceiptsService: receiptsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

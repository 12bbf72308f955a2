package main

import (
	"context"
	"io"
	"log"

	"careerguide/config"
	"careerguide/controllers"
	"careerguide/jobs"
	"careerguide/routes"
	"careerguide/services"
	"careerguide/services/logger"
)

func newLogger(cfg config.Config) (logger.Logger, io.Closer) {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		return logger.NewDefaultLogger(level), nil
	}
	l, closer, err := logger.NewFileLogger(level, cfg.LogFile)
	if err != nil {
		log.Printf("Warning: cannot open log file %s, logging to stdout: %v", cfg.LogFile, err)
		return logger.NewDefaultLogger(level), nil
	}
	return l, closer
}

func newChatModel(ctx context.Context, cfg config.Config, appLogger logger.Logger) services.ChatModel {
	switch cfg.AIProvider {
	case "gemini":
		client, err := services.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			appLogger.Warn("gemini provider disabled, every request will use fallback data: %v", err)
			return nil
		}
		return client
	default:
		client := services.NewGPTClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		if !client.Configured() {
			appLogger.Warn("OPENAI_API_KEY is not set, every request will use fallback data")
		}
		return client
	}
}

func main() {
	ctx := context.Background()

	config.LoadEnv()
	cfg := config.Load()

	appLogger, closer := newLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}

	router, m, c := config.InitApp(cfg)

	var (
		storage  services.Storage = services.NewMemoryStorage()
		sessions services.SessionStore
		checkers []services.Checker
	)

	if cfg.HasDatabase() {
		db, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to db: %v", err)
		}
		gormStorage := services.NewGormStorage(db)
		if err := gormStorage.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate tables: %v", err)
		}
		storage = gormStorage
		checkers = append(checkers, services.NewDatabaseChecker(db))
	} else {
		appLogger.Warn("no database configured, using in-memory storage")
	}

	if cfg.HasRedis() {
		rdb, err := config.ConnectRedis(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		sessions = services.NewRedisSessionStore(rdb, services.SessionTTL)
		checkers = append(checkers, services.NewRedisChecker(rdb))
	} else {
		appLogger.Warn("no redis configured, chat sessions are kept in memory")
		sessions = services.NewMemorySessionStore(services.SessionTTL)
	}

	inference := services.NewInferenceClient(newChatModel(ctx, cfg, appLogger), cfg.InferenceTimeout)

	careerService := services.NewCareerService(services.CareerServiceOptions{
		Inference: inference,
		Storage:   storage,
		Logger:    appLogger,
	})
	chatService := services.NewChatService(services.ChatServiceOptions{
		Inference: inference,
		Sessions:  sessions,
		Storage:   storage,
		Logger:    appLogger,
	})
	userService := services.NewUserService(services.UserServiceOptions{
		Storage: storage,
		Logger:  appLogger,
	})

	prober := services.NewProber(services.ProberOptions{
		Provider:  cfg.AIProvider,
		Inference: inference,
		Live:      cfg.ProbeEnabled,
		Logger:    appLogger,
	})
	go prober.Run(ctx)
	if err := jobs.InitCronJobs(c, prober, cfg.ProbeSchedule); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, routes.Controllers{
		Career: controllers.NewCareerController(controllers.CareerControllerOptions{
			Service: careerService,
			Logger:  appLogger,
		}),
		Chat: controllers.NewChatController(controllers.ChatControllerOptions{
			Service: chatService,
			Socket:  services.NewChatSocket(m, chatService, appLogger),
			Logger:  appLogger,
		}),
		User:   controllers.NewUserController(userService),
		Health: controllers.NewHealthController(services.NewReadiness(checkers...), prober),
	})

	appLogger.Info("Server starting on port %s with provider %s (%s)", cfg.Port, cfg.AIProvider, inference.ModelName())
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

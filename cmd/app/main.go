package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/bohemiyan/hraccess"
	"github.com/bohemiyan/hraccess/internal/config"
	"github.com/bohemiyan/hraccess/internal/db"
	"github.com/bohemiyan/hraccess/internal/routes"
	"github.com/bohemiyan/hraccess/zapLogger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile := zapLogger.Init(cfg.LogFile)

	pgDB, err := db.NewPostgresDB(cfg)
	if err != nil {
		zapLogger.Log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	zapLogger.Log.Info("Successfully connected to PostgreSQL database")
	defer pgDB.Close()

	redisDB, err := db.NewRedisClient(cfg)
	if err != nil {
		zapLogger.Log.Fatalf("Failed to initialize Redis: %v", err)
	}
	zapLogger.Log.Info("Successfully connected to Redis")
	defer redisDB.Close()

	svc, err := hraccess.New(hraccess.Config{
		DB:          pgDB.GormDB,
		RedisClient: redisDB,
		Logger:      zapLogger.Log,
		CacheTTL:    cfg.CacheTTL,
		CachePrefix: "hraccess:",
		AutoMigrate: true,
	})
	if err != nil {
		zapLogger.Log.Fatalf("Failed to initialize access service: %v", err)
	}

	app := fiber.New()
	app.Use(zapLogger.FiberLoggingMiddleware(logFile))

	routes.Setup(app, svc, cfg, pgDB.DB)

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	zapLogger.Log.Infof("Server started on port %d", cfg.AppPort)
	log.Fatal(app.Listen(addr))
}

package main

import (
	"log"
	"os"

	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/server"
	"github.com/streamflix/streamflix-server/pkg/db/postgres"
	"github.com/streamflix/streamflix-server/pkg/db/redis"
	"github.com/streamflix/streamflix-server/pkg/logger"
)

func main() {
	log.Println("Starting server")

	configFile := "config.yml"
	if v := os.Getenv("CONFIG_FILE"); v != "" {
		configFile = v
	}
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	appLogger.Infof("db connected, status: %#v", psqlDB.Stats())
	defer psqlDB.Close()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	s := server.NewServer(cfg, psqlDB, redisClient, appLogger)
	if err = s.Run(); err != nil {
		appLogger.Fatalf("could not start server: %s", err)
	}
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ISLASKRIGA/IMony3/internal/config"
	"github.com/ISLASKRIGA/IMony3/pkg/log"
	"github.com/ISLASKRIGA/IMony3/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	if err := server.SeedCategories(); err != nil {
		logger.Fatalf("Error seeding default categories: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}

// cmd/songcatalog/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"songcatalog/config"
	"songcatalog/internal/api"
	"songcatalog/internal/api/handlers/songs"
	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/migrations"
	"songcatalog/internal/service"
	"songcatalog/internal/storage/mongodb"
	_ "songcatalog/swagger"
)

// @title Song Catalog API
// @version 1.0
// @description Catalog of music tracks with statistics.

// @host localhost:5000
// @BasePath /api/songs
// @schemes http

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	if err := utils.InitLogger(cfg.IsDevelopment()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Song Catalog API", zap.String("env", cfg.Env))
	utils.Logger.Debug("Configuration loaded", zap.String("db_name", cfg.DBName), zap.Int("port", cfg.ServerPort), zap.String("cors_origin", cfg.CORSOrigin))

	client, err := mongodb.Connect(context.Background(), cfg.DBURI, cfg.ConnectTimeout)
	if err != nil {
		utils.Logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	utils.Logger.Info("Database connected")

	if cfg.MigrationsEnabled {
		if err := migrations.Up(cfg.DatabaseURL()); err != nil {
			utils.Logger.Fatal("Database migration failed", zap.Error(err))
		}
		utils.Logger.Info("Database migrations completed successfully")
	}

	songStorage := mongodb.NewMongoStorage(client.Database(cfg.DBName))
	songService := service.NewSongService(songStorage)
	songHandlers := songs.NewSongHandlers(songService, cfg.IsDevelopment())

	router := api.NewRouter(songHandlers, api.RouterOptions{
		CORSOrigin:  cfg.CORSOrigin,
		ExposeStack: cfg.IsDevelopment(),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		utils.Logger.Info("Server starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Error("Server shutdown failed", zap.Error(err))
	}
}

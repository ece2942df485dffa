package main

import (
	"context"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"

	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	logger.Info("connected to mongodb", zap.String("db", cfg.DBName))

	hub := services.NewRealtimeHub()
	foodSvc := services.NewFoodService(db, hub)
	noteSvc := services.NewNoteService(db)

	r := routes.SetupRouter(
		logger,
		controllers.NewFoodController(foodSvc),
		controllers.NewNoteController(noteSvc),
		controllers.NewRealtimeController(hub),
	)

	logger.Info("freshrack server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

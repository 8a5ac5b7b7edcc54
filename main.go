package main

import (
	"context"

	"listkit/api/router"
	"listkit/config"
	"listkit/db"
	"listkit/logging"
)

// @title           listkit demo API
// @version         1.0
// @description     JSON API of the listkit demo site
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logging.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logging.Log.Errorf("failed to initialize MongoDB: %v", err)
		return
	}

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	r := router.New()
	logging.Log.Infof("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logging.Log.Errorf("server stopped: %v", err)
	}
}

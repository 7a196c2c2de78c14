package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hackmatch/hackmatch/internal/config"
	"github.com/hackmatch/hackmatch/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win either way
	godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	svc := bootstrap(cfg)
	defer svc.shutdown()

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	registerRoutes(r, svc)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"log"

	_ "obsydia_retail/docs"
	"obsydia_retail/internal/adapter/http/routes"
	"obsydia_retail/internal/config"
	"obsydia_retail/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Obsydia Retail API
// @version         1.0
// @description     Order intake and admin quoting for Obsydia Retail home-server builds.

// @contact.name   Obsydia Retail
// @contact.email  hello@obsydia.example

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /admin/login.

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := routes.Run(cfg); err != nil {
		logging.L().Fatalf("Failed to startup the application: %v", err)
	}
}

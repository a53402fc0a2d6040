package main

import (
	"github.com/gofiber/fiber/v2/log"

	"replate-backend/cmd/config"
	"replate-backend/internal/utils"
	"replate-backend/pkg/demostore"
)

func main() {
	utils.LoadConfig()

	store := demostore.New()

	app, err := config.NewApp(store)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

package main

import (
	"log"
	"venue_manager/cache"
	"venue_manager/database"
	"venue_manager/handler"
	"venue_manager/helper"
	"venue_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	cache.Init()

	helper.StartCatalogScheduler(handler.WarmCatalogCache)
	defer helper.StopCatalogScheduler()
	helper.StartSummaryScheduler()
	defer helper.StopSummaryScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}

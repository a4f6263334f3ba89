package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"appointment-api/db"
	"appointment-api/routes"
)

func main() {
	db.Init()
	db.Migrate()

	for _, key := range []string{"JWT_SECRET", "JWT_ISSUER", "JWT_AUDIENCE"} {
		if os.Getenv(key) == "" {
			log.Fatalf("%s is not set", key)
		}
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupAppointmentRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

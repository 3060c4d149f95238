package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/harshkathrotiya/fixlyweb-sub001/cron"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/redis"
	"github.com/harshkathrotiya/fixlyweb-sub001/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Fixly API is running")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupListingRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupProviderRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}

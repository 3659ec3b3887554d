package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/brandzone/brand-zone-server/auth"
	"github.com/brandzone/brand-zone-server/database"
	"github.com/brandzone/brand-zone-server/models"
	"github.com/brandzone/brand-zone-server/router"
)

func main() {
	_ = database.GetDB()

	// Run migrations
	err := database.MigrateModels(
		&models.User{},
		&models.Group{},
		&models.Tag{},
		&models.Image{},
		&models.Palette{},
		&models.TagsOnImages{},
		&models.TagsOnPalettes{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	auth.SetupAuthService()

	app := fiber.New()
	router.SetupRoutes(app)

	// close the database connection
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Fatal(err)
		}
	}()

	fmt.Println("Server is listening at the port 3000")
	log.Fatal(app.Listen(":3000"))
}

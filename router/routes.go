package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	handler "github.com/brandzone/brand-zone-server/handlers"
	"github.com/brandzone/brand-zone-server/middleware"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	api.Get("/hello", handler.Hello)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	// User
	user := api.Group("/user")
	user.Post("/", handler.CreateUser)
	user.Get("/:id", middleware.AuthMiddleware(), handler.GetUser)
	user.Put("/:id", middleware.AuthMiddleware(), handler.UpdateUser)
	user.Delete("/:id", middleware.AuthMiddleware(), handler.DeleteUser)

	// Images
	images := api.Group("/images", middleware.AuthMiddleware())
	images.Get("/", handler.GetImages)
	images.Post("/", handler.CreateImage)
	images.Post("/upload", handler.UploadImage)
	images.Get("/upload-url", handler.GetUploadURL)
	images.Post("/generate", handler.GenerateImage)
	images.Put("/:id", handler.UpdateImage)
	images.Delete("/:id", handler.DeleteImage)

	// Palettes
	palettes := api.Group("/palettes", middleware.AuthMiddleware())
	palettes.Get("/", handler.GetPalettes)
	palettes.Post("/", handler.CreatePalette)
	palettes.Put("/:id", handler.UpdatePalette)
	palettes.Delete("/:id", handler.DeletePalette)

	// Groups and tags
	api.Get("/groups", middleware.AuthMiddleware(), handler.GetGroups)
	api.Get("/tags", middleware.AuthMiddleware(), handler.GetTags)

	// Statistics
	stats := api.Group("/statistics", middleware.AuthMiddleware())
	stats.Get("/groups", handler.GetGroupStatistics)
	stats.Get("/tags", handler.GetTagStatistics)
	stats.Get("/summary", handler.GetStatisticsSummary)
}

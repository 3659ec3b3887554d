package handler

import (
	"github.com/brandzone/brand-zone-server/middleware"
	"github.com/brandzone/brand-zone-server/store"
	"github.com/gofiber/fiber/v2"
)

func GetPalettes(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	etag := listETag(store.ViewPalettes, Catalog().ViewVersion(userID, store.ViewPalettes))
	if c.Get("If-None-Match") == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	filter := store.FilterFromQuery(c.Queries())
	palettes, err := Catalog().ListPalettes(userID, filter)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Set("ETag", etag)
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Palettes found",
		"data":    palettes,
	})
}

func CreatePalette(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	var input store.CreatePaletteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	palette, err := Catalog().CreatePalette(userID, input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Palette created",
		"data":    palette,
	})
}

func UpdatePalette(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	var input store.UpdatePaletteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
			"data":    nil,
		})
	}
	input.ID = c.Params("id")

	palette, err := Catalog().UpdatePalette(userID, input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Palette updated",
		"data":    palette,
	})
}

func DeletePalette(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := Catalog().DeletePalette(userID, c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Palette deleted",
		"data":    nil,
	})
}

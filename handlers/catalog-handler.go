package handler

import (
	"github.com/brandzone/brand-zone-server/middleware"
	"github.com/gofiber/fiber/v2"
)

func GetGroups(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	groups, err := Catalog().ListGroups(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Groups found",
		"data":    groups,
	})
}

func GetTags(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	tags, err := Catalog().ListTags(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Tags found",
		"data":    tags,
	})
}

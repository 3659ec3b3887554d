package handler

import (
	"github.com/brandzone/brand-zone-server/middleware"
	"github.com/gofiber/fiber/v2"
)

func GetGroupStatistics(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := Catalog().GroupStats(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Group statistics computed",
		"data":    stats,
	})
}

func GetTagStatistics(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := Catalog().TagStats(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Tag statistics computed",
		"data":    stats,
	})
}

func GetStatisticsSummary(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	summary, err := Catalog().Summary(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Statistics summary computed",
		"data":    summary,
	})
}

package handler

import (
	"fmt"

	"github.com/brandzone/brand-zone-server/middleware"
	"github.com/brandzone/brand-zone-server/store"
	"github.com/gofiber/fiber/v2"
)

// listETag turns a view version into a weak ETag so clients can skip
// refetching a list that has not changed since their last mutation.
func listETag(view string, version uint64) string {
	return fmt.Sprintf(`W/"%s-%d"`, view, version)
}

func GetImages(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	etag := listETag(store.ViewImages, Catalog().ViewVersion(userID, store.ViewImages))
	if c.Get("If-None-Match") == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	filter := store.FilterFromQuery(c.Queries())
	images, err := Catalog().ListImages(userID, filter)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Set("ETag", etag)
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Images found",
		"data":    images,
	})
}

func CreateImage(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	var input store.CreateImageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	image, err := Catalog().CreateImage(userID, input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Image created",
		"data":    image,
	})
}

func UpdateImage(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	var input store.UpdateImageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
			"data":    nil,
		})
	}
	input.ID = c.Params("id")

	image, err := Catalog().UpdateImage(userID, input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Image updated",
		"data":    image,
	})
}

func DeleteImage(c *fiber.Ctx) error {
	userID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := Catalog().DeleteImage(userID, c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Image deleted",
		"data":    nil,
	})
}

package handler

import (
	"errors"
	"sync"

	"github.com/brandzone/brand-zone-server/database"
	"github.com/brandzone/brand-zone-server/store"
	"github.com/gofiber/fiber/v2"
)

var (
	catalog     *store.Store
	catalogOnce sync.Once
)

// Catalog returns the shared catalog store, opening the database
// connection on first use.
func Catalog() *store.Store {
	catalogOnce.Do(func() {
		catalog = store.New(database.GetDB())
	})
	return catalog
}

func Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Brand Zone API",
		"data":    nil,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  "error",
		"message": "Authentication required",
		"data":    nil,
	})
}

// errorResponse maps store errors onto the response envelope. Raw
// persistence errors are never surfaced to clients.
func errorResponse(c *fiber.Ctx, err error) error {
	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	var upstreamErr *store.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": validationErr.Message,
			"data":    nil,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": notFoundErr.Error(),
			"data":    nil,
		})
	case errors.As(err, &upstreamErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Upstream service failed",
			"data":    nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Something went wrong",
			"data":    nil,
		})
	}
}

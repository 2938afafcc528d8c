package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mfalcone/okrdeck-api/internal/services"
	"github.com/mfalcone/okrdeck-api/internal/store"
)

type Handler struct {
	store *store.DB
	okrs  *services.OKRService
}

func New(st *store.DB, okrs *services.OKRService) *Handler {
	return &Handler{store: st, okrs: okrs}
}

// fail maps service and store errors onto HTTP statuses: validation → 400,
// missing record → 404, store rejection → 500 with the error surfaced
// verbatim.
func fail(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound})
	case services.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

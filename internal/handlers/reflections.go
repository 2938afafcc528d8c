package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

func (h *Handler) ListReflections(c *fiber.Ctx) error {
	reflections, err := h.store.Reflections(c.Context(), c.Query("quarter"))
	if err != nil {
		return fail(c, err, "Reflections not found")
	}
	return c.JSON(reflections)
}

func (h *Handler) CreateReflection(c *fiber.Ctx) error {
	var req models.CreateReflectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reflection, err := h.okrs.CreateReflection(c.Context(), req, time.Now())
	if err != nil {
		return fail(c, err, "Reflection not found")
	}
	return c.Status(fiber.StatusCreated).JSON(reflection)
}

func (h *Handler) VoteReflection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reflection ID",
		})
	}

	reflection, err := h.okrs.VoteReflection(c.Context(), id, c.Query("author"), time.Now())
	if err != nil {
		return fail(c, err, "Reflection not found")
	}
	return c.JSON(reflection)
}

func (h *Handler) TogglePinReflection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reflection ID",
		})
	}

	reflection, err := h.okrs.TogglePinReflection(c.Context(), id, c.Query("author"), time.Now())
	if err != nil {
		return fail(c, err, "Reflection not found")
	}
	return c.JSON(reflection)
}

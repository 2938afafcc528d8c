package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

func (h *Handler) ListActivities(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	activities, err := h.store.Activities(c.Context(), limit)
	if err != nil {
		return fail(c, err, "Activities not found")
	}
	return c.JSON(activities)
}

func (h *Handler) AddNote(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid activity ID",
		})
	}

	var req models.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	note, err := h.okrs.AddNote(c.Context(), activityID, req, time.Now())
	if err != nil {
		return fail(c, err, "Activity not found")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

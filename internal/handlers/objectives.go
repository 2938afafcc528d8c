package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

func (h *Handler) CreateObjective(c *fiber.Ctx) error {
	var req models.CreateObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	now := time.Now()
	if req.TargetDate.IsZero() {
		// Default mission window: 90 days.
		req.TargetDate = now.AddDate(0, 0, 90)
	}

	obj, err := h.okrs.CreateObjective(c.Context(), req, now)
	if err != nil {
		return fail(c, err, "Objective not found")
	}
	return c.Status(fiber.StatusCreated).JSON(newObjectiveView(*obj, now))
}

func (h *Handler) ListObjectives(c *fiber.Ctx) error {
	quarter := c.Query("quarter")
	var statuses []string
	if s := c.Query("status"); s != "" {
		statuses = strings.Split(s, ",")
	}

	objectives, err := h.store.Objectives(c.Context(), quarter, statuses)
	if err != nil {
		return fail(c, err, "Objectives not found")
	}

	now := time.Now()
	views := make([]ObjectiveView, 0, len(objectives))
	for _, obj := range objectives {
		views = append(views, newObjectiveView(obj, now))
	}
	return c.JSON(views)
}

func (h *Handler) GetObjective(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid objective ID",
		})
	}

	obj, err := h.store.ObjectiveWithKeyResults(c.Context(), id)
	if err != nil {
		return fail(c, err, "Objective not found")
	}
	return c.JSON(newObjectiveView(*obj, time.Now()))
}

func (h *Handler) UpdateObjective(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid objective ID",
		})
	}

	var req models.UpdateObjectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	now := time.Now()
	if err := h.okrs.UpdateObjective(c.Context(), id, req, now); err != nil {
		return fail(c, err, "Objective not found")
	}

	obj, err := h.store.ObjectiveWithKeyResults(c.Context(), id)
	if err != nil {
		return fail(c, err, "Objective not found")
	}
	return c.JSON(newObjectiveView(*obj, now))
}

func (h *Handler) DeleteObjective(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid objective ID",
		})
	}

	if err := h.okrs.DeleteObjective(c.Context(), id, c.Query("author"), time.Now()); err != nil {
		return fail(c, err, "Objective not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CompleteObjective(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid objective ID",
		})
	}

	now := time.Now()
	if err := h.okrs.CompleteObjective(c.Context(), id, c.Query("author"), now); err != nil {
		return fail(c, err, "Objective not found")
	}

	obj, err := h.store.ObjectiveWithKeyResults(c.Context(), id)
	if err != nil {
		return fail(c, err, "Objective not found")
	}
	return c.JSON(newObjectiveView(*obj, now))
}

func (h *Handler) AddKeyResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid objective ID",
		})
	}

	var req struct {
		models.KeyResultInput
		Author string `json:"author"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	kr, err := h.okrs.AddKeyResult(c.Context(), id, req.KeyResultInput, req.Author, time.Now())
	if err != nil {
		return fail(c, err, "Objective not found")
	}
	return c.Status(fiber.StatusCreated).JSON(kr)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
	"github.com/mfalcone/okrdeck-api/internal/progress"
)

// KeyResultView flattens a key result with its parent objective's label and
// stored health, the shape the key-results list renders.
type KeyResultView struct {
	models.KeyResult
	Progress  int    `json:"progress"`
	OKRTitle  string `json:"okrTitle"`
	OKRHealth string `json:"okrHealth"`
}

func (h *Handler) ListKeyResults(c *fiber.Ctx) error {
	objectives, err := h.store.Objectives(c.Context(), c.Query("quarter"), nil)
	if err != nil {
		return fail(c, err, "Key results not found")
	}

	owner := c.Query("owner")
	views := []KeyResultView{}
	for _, obj := range objectives {
		for _, kr := range obj.KeyResults {
			if owner != "" && kr.Owner != owner {
				continue
			}
			views = append(views, KeyResultView{
				KeyResult: kr,
				Progress:  progress.PercentComplete(kr.Current, kr.Target),
				OKRTitle:  obj.Title,
				OKRHealth: obj.Health,
			})
		}
	}
	return c.JSON(views)
}

func (h *Handler) UpdateKeyResultProgress(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid key result ID",
		})
	}

	var req models.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil || req.Current == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Current value is required",
		})
	}

	if err := h.okrs.UpdateKeyResultProgress(c.Context(), id, *req.Current, req.Author, time.Now()); err != nil {
		return fail(c, err, "Key result not found")
	}

	kr, err := h.store.KeyResult(c.Context(), id)
	if err != nil {
		return fail(c, err, "Key result not found")
	}
	return c.JSON(kr)
}

func (h *Handler) UpdateKeyResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid key result ID",
		})
	}

	var req models.UpdateKeyResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.okrs.UpdateKeyResult(c.Context(), id, req, time.Now()); err != nil {
		return fail(c, err, "Key result not found")
	}

	kr, err := h.store.KeyResult(c.Context(), id)
	if err != nil {
		return fail(c, err, "Key result not found")
	}
	return c.JSON(kr)
}

func (h *Handler) DeleteKeyResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid key result ID",
		})
	}

	if err := h.okrs.DeleteKeyResult(c.Context(), id, c.Query("author"), time.Now()); err != nil {
		return fail(c, err, "Key result not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
	"github.com/mfalcone/okrdeck-api/internal/progress"
)

// MemberView decorates a member with the average progress of the key
// results they own, computed live.
type MemberView struct {
	models.Member
	KRCount  int `json:"krCount"`
	Progress int `json:"progress"`
}

func (h *Handler) ListMembers(c *fiber.Ctx) error {
	members, err := h.store.Members(c.Context())
	if err != nil {
		return fail(c, err, "Members not found")
	}
	keyResults, err := h.store.KeyResults(c.Context())
	if err != nil {
		return fail(c, err, "Members not found")
	}

	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		var owned []models.KeyResult
		for _, kr := range keyResults {
			if kr.Owner == m.Name {
				owned = append(owned, kr)
			}
		}
		views = append(views, MemberView{
			Member:   m,
			KRCount:  len(owned),
			Progress: progress.ObjectiveProgress(owned),
		})
	}
	return c.JSON(views)
}

func (h *Handler) AddMember(c *fiber.Ctx) error {
	var req models.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member, err := h.okrs.AddMember(c.Context(), req, time.Now())
	if err != nil {
		return fail(c, err, "Member not found")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *Handler) ToggleMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	member, err := h.okrs.ToggleMemberActive(c.Context(), id, c.Query("author"), time.Now())
	if err != nil {
		return fail(c, err, "Member not found")
	}
	return c.JSON(member)
}

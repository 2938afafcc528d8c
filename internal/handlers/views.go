package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mfalcone/okrdeck-api/internal/models"
	"github.com/mfalcone/okrdeck-api/internal/progress"
)

// ObjectiveView is an objective with its derived numbers. Stored health is
// returned as-is; liveHealth is re-evaluated at read time since stored
// values can be stale between progress edits.
type ObjectiveView struct {
	models.Objective
	Progress      int    `json:"progress"`
	TimeProgress  int    `json:"timeProgress"`
	LiveHealth    string `json:"liveHealth"`
	Done          bool   `json:"done"`
	DaysRemaining int    `json:"daysRemaining"`
}

func newObjectiveView(obj models.Objective, now time.Time) ObjectiveView {
	pct := progress.ObjectiveProgress(obj.KeyResults)
	return ObjectiveView{
		Objective:     obj,
		Progress:      pct,
		TimeProgress:  progress.TimeProgress(obj.CreatedAt, obj.TargetDate, now),
		LiveHealth:    string(progress.EvaluateHealth(obj.CreatedAt, obj.TargetDate, pct, now)),
		Done:          progress.AllComplete(obj.KeyResults),
		DaysRemaining: progress.DaysRemaining(obj.TargetDate, now),
	}
}

// GetDashboard returns the command-center view: active objectives for the
// current quarter with live derivations.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	now := time.Now()
	quarter := progress.Quarter(now)

	objectives, err := h.store.Objectives(c.Context(), quarter, []string{models.StatusActive})
	if err != nil {
		return fail(c, err, "Objectives not found")
	}

	views := make([]ObjectiveView, 0, len(objectives))
	for _, obj := range objectives {
		views = append(views, newObjectiveView(obj, now))
	}

	return c.JSON(fiber.Map{
		"quarter": quarter,
		"wave":    progress.Wave(now),
		"okrs":    views,
	})
}

// Canonical crew ordering for the overview roster. Unknown roles sort last.
var crewRoleOrder = []string{
	"Captain",
	"Executive Officer (XO)",
	"Pilot",
	"Engineer",
	"Tactical Officer",
	"Communications Officer",
	"Science Officer",
	"Medical Officer",
	"Navigator",
	"Operations Officer",
	"Security Chief",
	"Deck Chief",
	"Janitor",
}

func roleRank(role string) int {
	for i, r := range crewRoleOrder {
		if r == role {
			return i
		}
	}
	return len(crewRoleOrder)
}

// GetOverview returns fleet-level stats: overall progress across active
// objectives, stored-health tallies, and per-crew-member progress.
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	now := time.Now()
	quarter := progress.Quarter(now)

	objectives, err := h.store.Objectives(c.Context(), quarter, []string{models.StatusActive})
	if err != nil {
		return fail(c, err, "Objectives not found")
	}
	members, err := h.store.Members(c.Context())
	if err != nil {
		return fail(c, err, "Members not found")
	}

	totalKRs := 0
	overall := 0
	health := map[string]int{}
	var allKRs []models.KeyResult
	for _, obj := range objectives {
		totalKRs += len(obj.KeyResults)
		overall += progress.ObjectiveProgress(obj.KeyResults)
		health[obj.Health]++
		allKRs = append(allKRs, obj.KeyResults...)
	}
	if len(objectives) > 0 {
		overall = (overall + len(objectives)/2) / len(objectives)
	}

	crew := []MemberView{}
	for _, m := range members {
		if !m.IsActive {
			continue
		}
		var owned []models.KeyResult
		for _, kr := range allKRs {
			if kr.Owner == m.Name {
				owned = append(owned, kr)
			}
		}
		crew = append(crew, MemberView{
			Member:   m,
			KRCount:  len(owned),
			Progress: progress.ObjectiveProgress(owned),
		})
	}
	sort.SliceStable(crew, func(i, j int) bool {
		return roleRank(crew[i].CrewRole) < roleRank(crew[j].CrewRole)
	})

	return c.JSON(fiber.Map{
		"quarter":         quarter,
		"wave":            progress.Wave(now),
		"objectiveCount":  len(objectives),
		"keyResultCount":  totalKRs,
		"overallProgress": overall,
		"health": fiber.Map{
			"onTrack": health[string(progress.HealthOnTrack)],
			"atRisk":  health[string(progress.HealthAtRisk)],
			"blocked": health[string(progress.HealthBlocked)],
		},
		"crew": crew,
	})
}

// GetArchive returns completed and archived objectives across all quarters.
func (h *Handler) GetArchive(c *fiber.Ctx) error {
	objectives, err := h.store.Objectives(c.Context(), "",
		[]string{models.StatusCompleted, models.StatusArchived})
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

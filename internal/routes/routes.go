package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mfalcone/okrdeck-api/internal/handlers"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	okrs := api.Group("/okrs")
	okrs.Get("/", h.ListObjectives)
	okrs.Post("/", h.CreateObjective)
	okrs.Get("/:id", h.GetObjective)
	okrs.Put("/:id", h.UpdateObjective)
	okrs.Delete("/:id", h.DeleteObjective)
	okrs.Post("/:id/complete", h.CompleteObjective)
	okrs.Post("/:id/key-results", h.AddKeyResult)

	keyResults := api.Group("/key-results")
	keyResults.Get("/", h.ListKeyResults)
	keyResults.Put("/:id", h.UpdateKeyResult)
	keyResults.Put("/:id/progress", h.UpdateKeyResultProgress)
	keyResults.Delete("/:id", h.DeleteKeyResult)

	members := api.Group("/members")
	members.Get("/", h.ListMembers)
	members.Post("/", h.AddMember)
	members.Post("/:id/toggle", h.ToggleMember)

	activities := api.Group("/activities")
	activities.Get("/", h.ListActivities)
	activities.Post("/:id/notes", h.AddNote)

	reflections := api.Group("/reflections")
	reflections.Get("/", h.ListReflections)
	reflections.Post("/", h.CreateReflection)
	reflections.Post("/:id/vote", h.VoteReflection)
	reflections.Post("/:id/pin", h.TogglePinReflection)

	// Themed dashboard views
	api.Get("/dashboard", h.GetDashboard)
	api.Get("/overview", h.GetOverview)
	api.Get("/archive", h.GetArchive)
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("", handler.Calendar)

	activities := api.Group("/activities", handler.AuthRequired)
	activities.Get("", handler.ListActivities)
	activities.Get("/:id", handler.GetActivity)
	activities.Post("", handler.OwnerOnly, handler.CreateActivity)
	activities.Put("/:id", handler.OwnerOnly, handler.UpdateActivity)
	activities.Delete("/:id", handler.OwnerOnly, handler.DeleteActivity)

	plantings := api.Group("/plantings", handler.AuthRequired)
	plantings.Get("", handler.ListPlantings)
	plantings.Get("/:id", handler.GetPlanting)
	plantings.Get("/:id/events", handler.ListPlantingEvents)
	plantings.Post("", handler.OwnerOnly, handler.CreatePlanting)
	plantings.Post("/:id/events", handler.OwnerOnly, handler.RecordPlantingEvent)
	plantings.Put("/:id", handler.OwnerOnly, handler.UpdatePlanting)
	plantings.Delete("/:id", handler.OwnerOnly, handler.DeletePlanting)

	locations := api.Group("/locations", handler.AuthRequired)
	locations.Get("", handler.ListLocations)
	locations.Get("/:id", handler.GetLocation)
	locations.Get("/:id/beds", handler.ListBeds)
	locations.Post("", handler.OwnerOnly, handler.CreateLocation)
	locations.Post("/:id/beds", handler.OwnerOnly, handler.CreateBed)
	locations.Put("/:id", handler.OwnerOnly, handler.UpdateLocation)
	locations.Delete("/:id", handler.OwnerOnly, handler.DeleteLocation)
	locations.Delete("/beds/:bedID", handler.OwnerOnly, handler.DeleteBed)

	crops := api.Group("/crops", handler.AuthRequired)
	crops.Get("", handler.ListCrops)
	crops.Get("/:id", handler.GetCrop)
	crops.Post("", handler.OwnerOnly, handler.CreateCrop)
	crops.Put("/:id", handler.OwnerOnly, handler.UpdateCrop)
	crops.Delete("/:id", handler.OwnerOnly, handler.DeleteCrop)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/ics", handler.ExportICS)
	export.Get("/csv", handler.ExportCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/services"
)

// ExportICS streams every aggregated event, logged and predicted, as an
// iCalendar feed. The whole record is exported, not just the visible grid, so
// subscribing calendar apps get history and predictions in one feed.
func (handler *Handler) ExportICS(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	events, err := handler.exportEvents(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="furrow.ics"`)
	return c.SendString(services.BuildCalendarICS(events, now))
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	events, err := handler.exportEvents(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	output, err := services.BuildCalendarCSV(events)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="furrow.csv"`)
	return c.SendString(output)
}

func (handler *Handler) exportEvents(now time.Time) ([]services.CalendarEvent, error) {
	activities, err := handler.repos.Activities.ListAll()
	if err != nil {
		return nil, err
	}
	lifecycle, err := handler.repos.PlantingEvents.ListLifecycle()
	if err != nil {
		return nil, err
	}
	plantings, err := handler.repos.Plantings.ListAll()
	if err != nil {
		return nil, err
	}

	return services.BuildCalendarEvents(activities, lifecycle, plantings, services.CivilDate(now)), nil
}

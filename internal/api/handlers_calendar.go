package api

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/services"
)

// Calendar resolves GET /api/calendar into a dated grid of aggregated events.
// Query parameters: view (month|week|day), anchor (YYYY-MM-DD), shift (signed
// view units applied to the anchor before resolving).
//
// When only the planting side of the store fails the response is served with
// degraded=true instead of a 500, so logged activities stay visible.
func (handler *Handler) Calendar(c *fiber.Ctx) error {
	view := services.ParseViewMode(c.Query("view"))
	now := time.Now().In(handler.location)

	anchor := services.ParseCivilDateOrToday(c.Query("anchor"), now)
	if rawShift := c.Query("shift"); rawShift != "" {
		shift, err := strconv.Atoi(rawShift)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid shift")
		}
		anchor = services.ShiftAnchor(view, anchor, shift)
	}

	result, err := handler.calendar.BuildCalendar(view, anchor, now)
	if err != nil {
		if errors.Is(err, services.ErrPlantingDataUnavailable) {
			log.Printf("calendar degraded: %v", err)
			return c.JSON(result)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	return c.JSON(result)
}

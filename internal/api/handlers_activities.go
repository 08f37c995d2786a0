package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/models"
	"github.com/terraincognita07/furrow/internal/services"
)

var activitySubtypes = map[string]bool{
	models.ActivityWatered:     true,
	models.ActivityWeeded:      true,
	models.ActivityAmended:     true,
	models.ActivityPruned:      true,
	models.ActivityScouted:     true,
	models.ActivityMowed:       true,
	models.ActivityHarvestNote: true,
}

func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" && to == "" {
		activities, err := handler.repos.Activities.ListAll()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to list activities")
		}
		return c.JSON(activities)
	}

	if !services.IsValidCivilDate(from) || !services.IsValidCivilDate(to) {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}
	fromStart, _ := services.CivilDateTime(from)
	toEnd, _ := services.CivilDateTime(services.AddDays(to, 1))

	activities, err := handler.repos.Activities.ListByRange(fromStart, toEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list activities")
	}
	return c.JSON(activities)
}

func (handler *Handler) GetActivity(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	activity, found, err := handler.repos.Activities.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load activity")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}
	return c.JSON(activity)
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	var payload activityPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	activity, errMessage := activityFromPayload(payload)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	if err := handler.repos.Activities.Create(&activity); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save activity")
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

func (handler *Handler) UpdateActivity(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	existing, found, err := handler.repos.Activities.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load activity")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "activity not found")
	}

	var payload activityPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	updated, errMessage := activityFromPayload(payload)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := handler.repos.Activities.Save(&updated); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save activity")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.repos.Activities.DeleteByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete activity")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func activityFromPayload(payload activityPayload) (models.Activity, string) {
	subtype := strings.TrimSpace(payload.Subtype)
	if !activitySubtypes[subtype] {
		return models.Activity{}, "unknown activity subtype"
	}
	if !services.IsValidCivilDate(payload.Date) {
		return models.Activity{}, "invalid date"
	}
	startedAt, _ := services.CivilDateTime(payload.Date)

	var endedAt *time.Time
	if payload.EndDate != "" {
		if !services.IsValidCivilDate(payload.EndDate) || payload.EndDate < payload.Date {
			return models.Activity{}, "invalid end date"
		}
		ended, _ := services.CivilDateTime(payload.EndDate)
		endedAt = &ended
	}

	return models.Activity{
		Subtype:    subtype,
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Crop:       strings.TrimSpace(payload.Crop),
		AssetName:  strings.TrimSpace(payload.AssetName),
		Amendments: payload.Amendments,
		Notes:      payload.Notes,
	}, ""
}

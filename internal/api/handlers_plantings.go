package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/models"
	"github.com/terraincognita07/furrow/internal/services"
)

func (handler *Handler) ListPlantings(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))

	var plantings []models.Planting
	var err error
	if status == "" {
		plantings, err = handler.repos.Plantings.ListAll()
	} else {
		plantings, err = handler.repos.Plantings.ListByStatus(status)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list plantings")
	}
	return c.JSON(plantings)
}

func (handler *Handler) GetPlanting(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	planting, found, err := handler.repos.Plantings.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load planting")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "planting not found")
	}
	return c.JSON(planting)
}

func (handler *Handler) CreatePlanting(c *fiber.Ctx) error {
	var payload plantingPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.PlantedDate != "" && !services.IsValidCivilDate(payload.PlantedDate) {
		return apiError(c, fiber.StatusBadRequest, "invalid planted date")
	}
	if payload.NurseryStartedDate != "" && !services.IsValidCivilDate(payload.NurseryStartedDate) {
		return apiError(c, fiber.StatusBadRequest, "invalid nursery start date")
	}

	planting, err := handler.plantings.CreatePlanting(services.PlantingInput{
		Crop:               payload.Crop,
		Variety:            payload.Variety,
		BedLabel:           payload.BedLabel,
		Quantity:           payload.Quantity,
		DTMDirectSeedMin:   payload.DTMDirectSeedMin,
		DTMDirectSeedMax:   payload.DTMDirectSeedMax,
		DTMTransplantMin:   payload.DTMTransplantMin,
		DTMTransplantMax:   payload.DTMTransplantMax,
		PlantedDate:        payload.PlantedDate,
		NurseryStartedDate: payload.NurseryStartedDate,
		Notes:              payload.Notes,
	}, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrCropNameRequired) {
			return apiError(c, fiber.StatusBadRequest, "crop name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save planting")
	}
	return c.Status(fiber.StatusCreated).JSON(planting)
}

func (handler *Handler) UpdatePlanting(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	planting, found, err := handler.repos.Plantings.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load planting")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "planting not found")
	}

	var payload plantingPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	crop := strings.TrimSpace(payload.Crop)
	if crop == "" {
		return apiError(c, fiber.StatusBadRequest, "crop name is required")
	}

	maturity := services.NormalizeMaturityRange(
		payload.DTMDirectSeedMin,
		payload.DTMDirectSeedMax,
		payload.DTMTransplantMin,
		payload.DTMTransplantMax,
	)

	planting.Crop = crop
	planting.Variety = strings.TrimSpace(payload.Variety)
	planting.BedLabel = strings.TrimSpace(payload.BedLabel)
	planting.Quantity = payload.Quantity
	planting.DTMDirectSeedMin = maturity.DirectSeedMin
	planting.DTMDirectSeedMax = maturity.DirectSeedMax
	planting.DTMTransplantMin = maturity.TransplantMin
	planting.DTMTransplantMax = maturity.TransplantMax
	planting.Notes = payload.Notes

	if payload.PlantedDate != "" {
		if !services.IsValidCivilDate(payload.PlantedDate) {
			return apiError(c, fiber.StatusBadRequest, "invalid planted date")
		}
		planted, _ := services.CivilDateTime(payload.PlantedDate)
		planting.PlantedDate = &planted
	} else {
		planting.PlantedDate = nil
	}
	if payload.NurseryStartedDate != "" {
		if !services.IsValidCivilDate(payload.NurseryStartedDate) {
			return apiError(c, fiber.StatusBadRequest, "invalid nursery start date")
		}
		nursery, _ := services.CivilDateTime(payload.NurseryStartedDate)
		planting.NurseryStartedDate = &nursery
	} else {
		planting.NurseryStartedDate = nil
	}

	if err := handler.repos.Plantings.Save(&planting); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save planting")
	}
	return c.JSON(planting)
}

func (handler *Handler) DeletePlanting(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.repos.Plantings.DeleteByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete planting")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// RecordPlantingEvent appends a lifecycle row and lets the planting service
// advance the status.
func (handler *Handler) RecordPlantingEvent(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload lifecycleEventPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.EventDate != "" && !services.IsValidCivilDate(payload.EventDate) {
		return apiError(c, fiber.StatusBadRequest, "invalid event date")
	}

	event, err := handler.plantings.RecordLifecycleEvent(id, services.LifecycleEventInput{
		EventType:   payload.EventType,
		EventDate:   payload.EventDate,
		Qty:         payload.Qty,
		WeightGrams: payload.WeightGrams,
		BedLabel:    payload.BedLabel,
	}, time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEventType):
			return apiError(c, fiber.StatusBadRequest, "unknown event type")
		case errors.Is(err, services.ErrPlantingNotFound):
			return apiError(c, fiber.StatusNotFound, "planting not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to record event")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (handler *Handler) ListPlantingEvents(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if _, found, err := handler.repos.Plantings.FindByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load planting")
	} else if !found {
		return apiError(c, fiber.StatusNotFound, "planting not found")
	}

	events, err := handler.repos.PlantingEvents.ListByPlanting(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list events")
	}
	return c.JSON(events)
}

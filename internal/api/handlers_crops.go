package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/models"
	"github.com/terraincognita07/furrow/internal/services"
)

func (handler *Handler) ListCrops(c *fiber.Ctx) error {
	crops, err := handler.repos.Crops.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list crops")
	}
	return c.JSON(crops)
}

func (handler *Handler) GetCrop(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	crop, found, err := handler.repos.Crops.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load crop")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "crop not found")
	}
	return c.JSON(crop)
}

func (handler *Handler) CreateCrop(c *fiber.Ctx) error {
	var payload cropPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	crop, errMessage := cropFromPayload(payload)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	if err := handler.repos.Crops.Create(&crop); err != nil {
		return apiError(c, fiber.StatusConflict, "crop already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(crop)
}

func (handler *Handler) UpdateCrop(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	existing, found, err := handler.repos.Crops.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load crop")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "crop not found")
	}

	var payload cropPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	updated, errMessage := cropFromPayload(payload)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := handler.repos.Crops.Save(&updated); err != nil {
		return apiError(c, fiber.StatusConflict, "crop already exists")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteCrop(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.repos.Crops.DeleteByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete crop")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func cropFromPayload(payload cropPayload) (models.Crop, string) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return models.Crop{}, "name is required"
	}

	maturity := services.NormalizeMaturityRange(
		payload.DTMDirectSeedMin,
		payload.DTMDirectSeedMax,
		payload.DTMTransplantMin,
		payload.DTMTransplantMax,
	)

	return models.Crop{
		Name:             name,
		Variety:          strings.TrimSpace(payload.Variety),
		DTMDirectSeedMin: maturity.DirectSeedMin,
		DTMDirectSeedMax: maturity.DirectSeedMax,
		DTMTransplantMin: maturity.TransplantMin,
		DTMTransplantMax: maturity.TransplantMax,
		Notes:            payload.Notes,
	}, ""
}

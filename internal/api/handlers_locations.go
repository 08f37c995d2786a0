package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/models"
)

func (handler *Handler) ListLocations(c *fiber.Ctx) error {
	locations, err := handler.repos.Locations.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list locations")
	}
	return c.JSON(locations)
}

func (handler *Handler) GetLocation(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	location, found, err := handler.repos.Locations.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load location")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}
	return c.JSON(location)
}

func (handler *Handler) CreateLocation(c *fiber.Ctx) error {
	var payload locationPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	location := models.Location{
		Name:      name,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		Notes:     payload.Notes,
	}
	if err := handler.repos.Locations.Create(&location); err != nil {
		return apiError(c, fiber.StatusConflict, "location already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (handler *Handler) UpdateLocation(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	location, found, err := handler.repos.Locations.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load location")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}

	var payload locationPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	location.Name = name
	location.Latitude = payload.Latitude
	location.Longitude = payload.Longitude
	location.Notes = payload.Notes
	if err := handler.repos.Locations.Save(&location); err != nil {
		return apiError(c, fiber.StatusConflict, "location already exists")
	}
	return c.JSON(location)
}

func (handler *Handler) DeleteLocation(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.repos.Locations.DeleteByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete location")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListBeds(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if _, found, err := handler.repos.Locations.FindByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load location")
	} else if !found {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}

	beds, err := handler.repos.Locations.ListBeds(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list beds")
	}
	return c.JSON(beds)
}

func (handler *Handler) CreateBed(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if _, found, err := handler.repos.Locations.FindByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load location")
	} else if !found {
		return apiError(c, fiber.StatusNotFound, "location not found")
	}

	var payload bedPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	label := strings.TrimSpace(payload.Label)
	if label == "" {
		return apiError(c, fiber.StatusBadRequest, "label is required")
	}

	bed := models.Bed{LocationID: id, Label: label}
	if err := handler.repos.Locations.CreateBed(&bed); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save bed")
	}
	return c.Status(fiber.StatusCreated).JSON(bed)
}

func (handler *Handler) DeleteBed(c *fiber.Ctx) error {
	bedID, ok := parseIDParam(c, "bedID")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.repos.Locations.DeleteBedByID(bedID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete bed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

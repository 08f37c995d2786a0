package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/furrow/internal/models"
)

var (
	ErrPlantingNotFound    = errors.New("planting not found")
	ErrUnknownEventType    = errors.New("unknown lifecycle event type")
	ErrCropNameRequired    = errors.New("crop name is required")
	ErrPlantingSaveFailed  = errors.New("save planting failed")
	ErrLifecycleSaveFailed = errors.New("record lifecycle event failed")
)

type PlantingStore interface {
	FindByID(id uint) (models.Planting, bool, error)
	Create(planting *models.Planting) error
	Save(planting *models.Planting) error
}

type PlantingEventStore interface {
	Create(event *models.PlantingEvent) error
}

type CropCatalog interface {
	FindByNameVariety(name string, variety string) (models.Crop, bool, error)
}

type PlantingService struct {
	plantings PlantingStore
	events    PlantingEventStore
	crops     CropCatalog
}

func NewPlantingService(plantings PlantingStore, events PlantingEventStore, crops CropCatalog) *PlantingService {
	return &PlantingService{
		plantings: plantings,
		events:    events,
		crops:     crops,
	}
}

type PlantingInput struct {
	Crop               string
	Variety            string
	BedLabel           string
	Quantity           int
	DTMDirectSeedMin   int
	DTMDirectSeedMax   int
	DTMTransplantMin   int
	DTMTransplantMax   int
	PlantedDate        string
	NurseryStartedDate string
	Notes              string
}

// CreatePlanting normalizes the maturity input and, when the input carries no
// maturity data at all, seeds it from the crop catalog entry matching
// crop/variety. Fallback date columns are parsed leniently: a malformed date
// becomes today, which the date layer logs.
func (service *PlantingService) CreatePlanting(input PlantingInput, now time.Time) (models.Planting, error) {
	crop := strings.TrimSpace(input.Crop)
	if crop == "" {
		return models.Planting{}, ErrCropNameRequired
	}

	maturity := NormalizeMaturityRange(
		input.DTMDirectSeedMin,
		input.DTMDirectSeedMax,
		input.DTMTransplantMin,
		input.DTMTransplantMax,
	)
	if maturity == (MaturityRange{}) && service.crops != nil {
		catalogEntry, found, err := service.crops.FindByNameVariety(crop, strings.TrimSpace(input.Variety))
		if err == nil && found {
			maturity = NormalizeMaturityRange(
				catalogEntry.DTMDirectSeedMin,
				catalogEntry.DTMDirectSeedMax,
				catalogEntry.DTMTransplantMin,
				catalogEntry.DTMTransplantMax,
			)
		}
	}

	planting := models.Planting{
		Status:           models.PlantingStatusPlanned,
		Crop:             crop,
		Variety:          strings.TrimSpace(input.Variety),
		BedLabel:         strings.TrimSpace(input.BedLabel),
		Quantity:         input.Quantity,
		DTMDirectSeedMin: maturity.DirectSeedMin,
		DTMDirectSeedMax: maturity.DirectSeedMax,
		DTMTransplantMin: maturity.TransplantMin,
		DTMTransplantMax: maturity.TransplantMax,
		Notes:            input.Notes,
	}
	if input.PlantedDate != "" {
		planted := civilDateValue(input.PlantedDate, now)
		planting.PlantedDate = &planted
		planting.Status = models.PlantingStatusGrowing
	}
	if input.NurseryStartedDate != "" {
		nursery := civilDateValue(input.NurseryStartedDate, now)
		planting.NurseryStartedDate = &nursery
		if planting.PlantedDate == nil {
			planting.Status = models.PlantingStatusNursery
		}
	}

	if err := service.plantings.Create(&planting); err != nil {
		return models.Planting{}, ErrPlantingSaveFailed
	}
	return planting, nil
}

type LifecycleEventInput struct {
	EventType   string
	EventDate   string
	Qty         int
	WeightGrams int
	BedLabel    string
}

// RecordLifecycleEvent persists a lifecycle row and advances the planting
// status to match. The write path validates the event type even though the
// read-side engine would ignore unknown types: bad rows should be rejected
// at the door, not archived.
func (service *PlantingService) RecordLifecycleEvent(plantingID uint, input LifecycleEventInput, now time.Time) (models.PlantingEvent, error) {
	if !isLifecycleEventType(input.EventType) {
		return models.PlantingEvent{}, ErrUnknownEventType
	}

	planting, found, err := service.plantings.FindByID(plantingID)
	if err != nil {
		return models.PlantingEvent{}, fmt.Errorf("load planting %d: %w", plantingID, err)
	}
	if !found {
		return models.PlantingEvent{}, ErrPlantingNotFound
	}

	event := models.PlantingEvent{
		PlantingID:  planting.ID,
		EventType:   input.EventType,
		EventDate:   civilDateValue(input.EventDate, now),
		Qty:         input.Qty,
		WeightGrams: input.WeightGrams,
		BedLabel:    strings.TrimSpace(input.BedLabel),
	}
	if err := service.events.Create(&event); err != nil {
		return models.PlantingEvent{}, ErrLifecycleSaveFailed
	}

	if next := statusAfterEvent(planting.Status, input.EventType); next != planting.Status {
		planting.Status = next
		if err := service.plantings.Save(&planting); err != nil {
			return models.PlantingEvent{}, ErrPlantingSaveFailed
		}
	}
	return event, nil
}

func isLifecycleEventType(eventType string) bool {
	for _, known := range models.LifecycleEventTypes {
		if eventType == known {
			return true
		}
	}
	return false
}

func statusAfterEvent(current string, eventType string) string {
	switch eventType {
	case models.EventNurserySeeded:
		if current == models.PlantingStatusPlanned {
			return models.PlantingStatusNursery
		}
	case models.EventDirectSeeded, models.EventTransplanted:
		if current == models.PlantingStatusPlanned || current == models.PlantingStatusNursery {
			return models.PlantingStatusGrowing
		}
	case models.EventHarvested:
		if current != models.PlantingStatusFinished {
			return models.PlantingStatusHarvested
		}
	}
	return current
}

func civilDateValue(value string, now time.Time) time.Time {
	canonical := ParseCivilDateOrToday(value, now)
	parsed, _ := parseCivilDate(canonical)
	return parsed
}

package services

import "github.com/terraincognita07/furrow/internal/models"

// PlantingTimeline records the earliest observed date for each lifecycle
// event type of one planting. Empty string means the event never happened.
type PlantingTimeline struct {
	DirectSeeded  string
	NurserySeeded string
	Transplanted  string
	Harvested     string
}

// BuildPlantingTimelines groups raw lifecycle rows by planting id, keeping
// the earliest date per event type. Unknown event types are a no-op so that
// historical or future row types never break the calendar.
func BuildPlantingTimelines(events []models.PlantingEvent) map[uint]PlantingTimeline {
	timelines := make(map[uint]PlantingTimeline)
	for _, event := range events {
		date := CivilDate(event.EventDate)
		timeline := timelines[event.PlantingID]
		switch event.EventType {
		case models.EventDirectSeeded:
			timeline.DirectSeeded = earliestCivilDate(timeline.DirectSeeded, date)
		case models.EventNurserySeeded:
			timeline.NurserySeeded = earliestCivilDate(timeline.NurserySeeded, date)
		case models.EventTransplanted:
			timeline.Transplanted = earliestCivilDate(timeline.Transplanted, date)
		case models.EventHarvested:
			timeline.Harvested = earliestCivilDate(timeline.Harvested, date)
		default:
			continue
		}
		timelines[event.PlantingID] = timeline
	}
	return timelines
}

func earliestCivilDate(current string, candidate string) string {
	if current == "" || candidate < current {
		return candidate
	}
	return current
}

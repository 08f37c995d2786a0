package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/furrow/internal/models"
)

func lifecycleRow(plantingID uint, eventType string, date string) models.PlantingEvent {
	parsed, ok := parseCivilDate(date)
	if !ok {
		panic("bad test date " + date)
	}
	return models.PlantingEvent{PlantingID: plantingID, EventType: eventType, EventDate: parsed}
}

func TestBuildPlantingTimelinesEarliestWins(t *testing.T) {
	rows := []models.PlantingEvent{
		lifecycleRow(1, models.EventDirectSeeded, "2024-03-10"),
		lifecycleRow(1, models.EventDirectSeeded, "2024-03-01"),
		lifecycleRow(1, models.EventDirectSeeded, "2024-03-05"),
		lifecycleRow(1, models.EventTransplanted, "2024-04-02"),
		lifecycleRow(2, models.EventNurserySeeded, "2024-02-20"),
	}

	timelines := BuildPlantingTimelines(rows)

	first := timelines[1]
	if first.DirectSeeded != "2024-03-01" {
		t.Fatalf("expected earliest direct seed date 2024-03-01, got %q", first.DirectSeeded)
	}
	if first.Transplanted != "2024-04-02" {
		t.Fatalf("expected transplant date 2024-04-02, got %q", first.Transplanted)
	}
	if first.NurserySeeded != "" || first.Harvested != "" {
		t.Fatalf("unexpected extra timeline entries: %+v", first)
	}

	second := timelines[2]
	if second.NurserySeeded != "2024-02-20" {
		t.Fatalf("expected nursery seed date 2024-02-20, got %q", second.NurserySeeded)
	}
}

func TestBuildPlantingTimelinesIgnoresUnknownEventTypes(t *testing.T) {
	rows := []models.PlantingEvent{
		lifecycleRow(7, "thinned", "2024-03-02"),
		lifecycleRow(7, models.EventHarvested, "2024-06-01"),
	}

	timelines := BuildPlantingTimelines(rows)
	if len(timelines) != 1 {
		t.Fatalf("expected one timeline, got %d", len(timelines))
	}
	timeline := timelines[7]
	if timeline.Harvested != "2024-06-01" {
		t.Fatalf("expected harvested date 2024-06-01, got %q", timeline.Harvested)
	}
	if timeline.DirectSeeded != "" || timeline.NurserySeeded != "" || timeline.Transplanted != "" {
		t.Fatalf("unknown event type leaked into timeline: %+v", timeline)
	}
}

func TestBuildPlantingTimelinesTruncatesEventInstants(t *testing.T) {
	rows := []models.PlantingEvent{
		{
			PlantingID: 3,
			EventType:  models.EventDirectSeeded,
			EventDate:  time.Date(2024, time.March, 1, 18, 30, 0, 0, time.UTC),
		},
	}

	timelines := BuildPlantingTimelines(rows)
	if timelines[3].DirectSeeded != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %q", timelines[3].DirectSeeded)
	}
}

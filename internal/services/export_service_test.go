package services

import (
	"strings"
	"testing"
	"time"
)

func exportFixtureEvents() []CalendarEvent {
	return []CalendarEvent{
		{
			ID:    "h:1",
			Kind:  EventKindHarvest,
			Title: "Harvest Carrot Nantes",
			Start: "2024-05-14",
			End:   "2024-05-24",
			Harvest: &HarvestAttributes{
				Crop:        "Carrot",
				Variety:     "Nantes",
				WindowStart: "2024-05-14",
				WindowEnd:   "2024-05-24",
				Source:      EventSourcePredicted,
			},
		},
		{
			ID:    "a:3",
			Kind:  EventKindActivity,
			Title: "Amended: Bed A",
			Start: "2024-05-01",
			Activity: &ActivityAttributes{
				Subtype:    "amended",
				AssetName:  "Bed A",
				Amendments: []string{"compost", "lime"},
			},
		},
	}
}

func TestBuildCalendarICS(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	serialized := BuildCalendarICS(exportFixtureEvents(), now)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:h:1@furrow",
		"SUMMARY:Harvest Carrot Nantes",
		"CATEGORIES:HARVEST",
		"UID:a:3@furrow",
		"END:VCALENDAR",
	} {
		if !strings.Contains(serialized, want) {
			t.Fatalf("ICS output missing %q:\n%s", want, serialized)
		}
	}
}

func TestBuildCalendarCSV(t *testing.T) {
	output, err := BuildCalendarCSV(exportFixtureEvents())
	if err != nil {
		t.Fatalf("BuildCalendarCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %d lines", len(lines))
	}
	if lines[0] != "id,kind,title,start,end,crop,detail" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(output, "predicted window 2024-05-14..2024-05-24") {
		t.Fatalf("harvest detail missing:\n%s", output)
	}
	if !strings.Contains(output, "amended (compost; lime)") {
		t.Fatalf("amendment detail missing:\n%s", output)
	}
}

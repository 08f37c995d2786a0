package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/terraincognita07/furrow/internal/models"
)

type EventKind string

const (
	EventKindActivity EventKind = "activity"
	EventKindPlanting EventKind = "planting"
	EventKindHarvest  EventKind = "harvest"
)

const (
	EventSourceActual    = "actual"
	EventSourcePredicted = "predicted"
)

type ActivityAttributes struct {
	Subtype    string   `json:"subtype"`
	Crop       string   `json:"crop,omitempty"`
	AssetName  string   `json:"asset_name,omitempty"`
	Amendments []string `json:"amendments,omitempty"`
}

type PlantingAttributes struct {
	EventType   string `json:"event_type"`
	Crop        string `json:"crop"`
	Variety     string `json:"variety,omitempty"`
	BedLabel    string `json:"bed_label,omitempty"`
	Qty         int    `json:"qty,omitempty"`
	WeightGrams int    `json:"weight_grams,omitempty"`
}

type HarvestAttributes struct {
	Crop        string `json:"crop"`
	Variety     string `json:"variety,omitempty"`
	BedLabel    string `json:"bed_label,omitempty"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Source      string `json:"source"`
}

// CalendarEvent is the unit the calendar engine produces. Exactly one of the
// attribute pointers is set, matching Kind, so renderers can switch on Kind
// without consulting an untyped bag.
type CalendarEvent struct {
	ID       string              `json:"id"`
	Kind     EventKind           `json:"kind"`
	Title    string              `json:"title"`
	Start    string              `json:"start"`
	End      string              `json:"end,omitempty"`
	Activity *ActivityAttributes `json:"activity,omitempty"`
	Planting *PlantingAttributes `json:"planting,omitempty"`
	Harvest  *HarvestAttributes  `json:"harvest,omitempty"`
}

// BuildCalendarEvents merges activities, planting lifecycle rows, and
// predicted harvests into one flat event list. Event ids encode the source
// record, so re-running over the same snapshot yields the same set. Harvest
// predictions are emitted by iterating plantings once, which makes the
// at-most-one-per-planting invariant structural rather than bookkeeping.
func BuildCalendarEvents(activities []models.Activity, lifecycle []models.PlantingEvent, plantings []models.Planting, today string) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(activities)+len(lifecycle)+len(plantings))

	for _, activity := range activities {
		events = append(events, activityCalendarEvent(activity))
	}

	plantingsByID := make(map[uint]models.Planting, len(plantings))
	for _, planting := range plantings {
		plantingsByID[planting.ID] = planting
	}

	for _, row := range lifecycle {
		// Planting deletes remove their rows transactionally, so a row
		// without a master record is drift; skip it rather than emit an
		// event with no crop.
		planting, known := plantingsByID[row.PlantingID]
		if !known {
			continue
		}
		event, ok := plantingCalendarEvent(row, planting)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	timelines := BuildPlantingTimelines(lifecycle)
	for _, planting := range plantings {
		window, ok := PredictHarvestWindow(planting, timelines[planting.ID], today)
		if !ok {
			continue
		}
		events = append(events, harvestCalendarEvent(planting, window))
	}

	return events
}

func activityCalendarEvent(activity models.Activity) CalendarEvent {
	end := ""
	if activity.EndedAt != nil && !activity.EndedAt.IsZero() {
		end = CivilDate(*activity.EndedAt)
	}
	return CalendarEvent{
		ID:    fmt.Sprintf("a:%d", activity.ID),
		Kind:  EventKindActivity,
		Title: activityTitle(activity),
		Start: CivilDate(activity.StartedAt),
		End:   end,
		Activity: &ActivityAttributes{
			Subtype:    activity.Subtype,
			Crop:       activity.Crop,
			AssetName:  activity.AssetName,
			Amendments: activity.Amendments,
		},
	}
}

func plantingCalendarEvent(row models.PlantingEvent, planting models.Planting) (CalendarEvent, bool) {
	switch row.EventType {
	case models.EventDirectSeeded, models.EventNurserySeeded, models.EventTransplanted:
	default:
		return CalendarEvent{}, false
	}

	bedLabel := row.BedLabel
	if bedLabel == "" {
		bedLabel = planting.BedLabel
	}
	return CalendarEvent{
		ID:    fmt.Sprintf("p:%d", row.ID),
		Kind:  EventKindPlanting,
		Title: plantingTitle(row.EventType, planting),
		Start: CivilDate(row.EventDate),
		Planting: &PlantingAttributes{
			EventType:   row.EventType,
			Crop:        planting.Crop,
			Variety:     planting.Variety,
			BedLabel:    bedLabel,
			Qty:         row.Qty,
			WeightGrams: row.WeightGrams,
		},
	}, true
}

func harvestCalendarEvent(planting models.Planting, window HarvestWindow) CalendarEvent {
	return CalendarEvent{
		ID:    fmt.Sprintf("h:%d", planting.ID),
		Kind:  EventKindHarvest,
		Title: "Harvest " + cropLabel(planting),
		Start: window.Start,
		End:   window.End,
		Harvest: &HarvestAttributes{
			Crop:        planting.Crop,
			Variety:     planting.Variety,
			BedLabel:    planting.BedLabel,
			WindowStart: window.Start,
			WindowEnd:   window.End,
			Source:      EventSourcePredicted,
		},
	}
}

func activityTitle(activity models.Activity) string {
	label := subtypeLabel(activity.Subtype)
	switch {
	case activity.AssetName != "":
		return label + ": " + activity.AssetName
	case activity.Crop != "":
		return label + ": " + activity.Crop
	default:
		return label
	}
}

func plantingTitle(eventType string, planting models.Planting) string {
	return eventTypeLabel(eventType) + " " + cropLabel(planting)
}

func cropLabel(planting models.Planting) string {
	if planting.Variety == "" {
		return planting.Crop
	}
	return planting.Crop + " " + planting.Variety
}

func eventTypeLabel(eventType string) string {
	switch eventType {
	case models.EventDirectSeeded:
		return "Direct seeded"
	case models.EventNurserySeeded:
		return "Nursery seeded"
	case models.EventTransplanted:
		return "Transplanted"
	case models.EventHarvested:
		return "Harvested"
	default:
		return subtypeLabel(eventType)
	}
}

func subtypeLabel(subtype string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(subtype), "_", " ")
	if cleaned == "" {
		return "Activity"
	}
	first, size := utf8.DecodeRuneInString(cleaned)
	return string(unicode.ToUpper(first)) + cleaned[size:]
}

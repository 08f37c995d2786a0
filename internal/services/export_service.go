package services

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// BuildCalendarICS renders aggregated events as an iCalendar feed of all-day
// VEVENTs. Harvest windows span their whole range; DTEND is exclusive per
// RFC 5545, so one day past the window end.
func BuildCalendarICS(events []CalendarEvent, now time.Time) string {
	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//furrow//calendar//EN")

	for _, event := range events {
		start, ok := parseCivilDate(event.Start)
		if !ok {
			continue
		}
		end := event.End
		if end == "" || end < event.Start {
			end = event.Start
		}
		endExclusive, _ := parseCivilDate(AddDays(end, 1))

		vevent := calendar.AddEvent(event.ID + "@furrow")
		vevent.SetDtStampTime(now.In(time.UTC))
		vevent.SetAllDayStartAt(start)
		vevent.SetAllDayEndAt(endExclusive)
		vevent.SetSummary(event.Title)
		vevent.SetProperty(ics.ComponentPropertyCategories, strings.ToUpper(string(event.Kind)))
	}

	return calendar.Serialize()
}

// BuildCalendarCSV renders aggregated events as a flat CSV with one row per
// event. Kind-specific attributes collapse into the detail column.
func BuildCalendarCSV(events []CalendarEvent) (string, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)

	if err := writer.Write([]string{"id", "kind", "title", "start", "end", "crop", "detail"}); err != nil {
		return "", err
	}
	for _, event := range events {
		crop, detail := eventExportColumns(event)
		record := []string{event.ID, string(event.Kind), event.Title, event.Start, event.End, crop, detail}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return output.String(), nil
}

func eventExportColumns(event CalendarEvent) (string, string) {
	switch {
	case event.Activity != nil:
		detail := event.Activity.Subtype
		if len(event.Activity.Amendments) > 0 {
			detail += " (" + strings.Join(event.Activity.Amendments, "; ") + ")"
		}
		return event.Activity.Crop, detail
	case event.Planting != nil:
		detail := event.Planting.EventType
		if event.Planting.Qty > 0 {
			detail += fmt.Sprintf(" qty=%d", event.Planting.Qty)
		}
		if event.Planting.WeightGrams > 0 {
			detail += fmt.Sprintf(" weight=%dg", event.Planting.WeightGrams)
		}
		return event.Planting.Crop, detail
	case event.Harvest != nil:
		detail := fmt.Sprintf("%s window %s..%s", event.Harvest.Source, event.Harvest.WindowStart, event.Harvest.WindowEnd)
		return event.Harvest.Crop, detail
	default:
		return "", ""
	}
}

package services

import (
	"sort"
	"time"
)

type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

const monthGridCells = 42

// GridCell projects one calendar date plus its bucketed events. InPeriod
// marks membership in the focused period: the anchor's month in month view,
// the focused week or day otherwise.
type GridCell struct {
	Date     string          `json:"date"`
	Day      int             `json:"day"`
	InPeriod bool            `json:"in_period"`
	IsToday  bool            `json:"is_today"`
	Events   []CalendarEvent `json:"events"`
}

func ParseViewMode(value string) ViewMode {
	switch ViewMode(value) {
	case ViewWeek:
		return ViewWeek
	case ViewDay:
		return ViewDay
	default:
		return ViewMonth
	}
}

// GridDates returns the ordered cell dates for a view: 42 consecutive dates
// from the month grid anchor, 7 from the Sunday of the anchor's week, or the
// anchor itself.
func GridDates(view ViewMode, anchor string) []string {
	switch view {
	case ViewWeek:
		return consecutiveDates(StartOfWeek(anchor), 7)
	case ViewDay:
		return []string{anchor}
	default:
		parsed, ok := parseCivilDate(anchor)
		if !ok {
			return nil
		}
		return consecutiveDates(MonthGridStart(parsed.Year(), parsed.Month()), monthGridCells)
	}
}

func BuildCalendarGrid(view ViewMode, anchor string, events []CalendarEvent, today string) []GridCell {
	dates := GridDates(view, anchor)
	buckets := BucketEventsByDate(events)

	anchorMonth := ""
	if len(anchor) >= 7 {
		anchorMonth = anchor[:7]
	}

	cells := make([]GridCell, 0, len(dates))
	for _, date := range dates {
		inPeriod := true
		if view == ViewMonth {
			inPeriod = len(date) >= 7 && date[:7] == anchorMonth
		}

		day := 0
		if parsed, ok := parseCivilDate(date); ok {
			day = parsed.Day()
		}

		cells = append(cells, GridCell{
			Date:     date,
			Day:      day,
			InPeriod: inPeriod,
			IsToday:  date == today,
			Events:   buckets[date],
		})
	}
	return cells
}

// BucketEventsByDate groups events by their start date. Ranged events are
// placed on their start only; the window end is metadata. Within a bucket,
// harvest sorts before planting before activity, ties broken by title, so
// the same input set always renders in the same order.
func BucketEventsByDate(events []CalendarEvent) map[string][]CalendarEvent {
	buckets := make(map[string][]CalendarEvent)
	for _, event := range events {
		buckets[event.Start] = append(buckets[event.Start], event)
	}
	for date, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			left, right := eventKindRank(bucket[i].Kind), eventKindRank(bucket[j].Kind)
			if left != right {
				return left < right
			}
			return bucket[i].Title < bucket[j].Title
		})
		buckets[date] = bucket
	}
	return buckets
}

// ShiftAnchor moves the anchor by delta view units. Month navigation
// re-anchors to the first of the month so repeated shifts never drift on
// short months.
func ShiftAnchor(view ViewMode, anchor string, delta int) string {
	parsed, ok := parseCivilDate(anchor)
	if !ok {
		return anchor
	}
	switch view {
	case ViewWeek:
		return AddDays(anchor, 7*delta)
	case ViewDay:
		return AddDays(anchor, delta)
	default:
		first := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first.AddDate(0, delta, 0).Format(civilDateLayout)
	}
}

func consecutiveDates(start string, count int) []string {
	dates := make([]string, 0, count)
	for offset := 0; offset < count; offset++ {
		dates = append(dates, AddDays(start, offset))
	}
	return dates
}

func eventKindRank(kind EventKind) int {
	switch kind {
	case EventKindHarvest:
		return 0
	case EventKindPlanting:
		return 1
	default:
		return 2
	}
}

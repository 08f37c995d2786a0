package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/furrow/internal/models"
)

// ErrPlantingDataUnavailable wraps planting-side fetch failures so callers
// can choose to degrade (calendar without plantings and predictions) instead
// of failing the whole request. Activity fetch failures are returned as-is:
// without activities there is no calendar worth rendering.
var ErrPlantingDataUnavailable = errors.New("planting data unavailable")

type CalendarActivityReader interface {
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.Activity, error)
}

type CalendarPlantingReader interface {
	ListAll() ([]models.Planting, error)
}

type CalendarLifecycleReader interface {
	ListLifecycle() ([]models.PlantingEvent, error)
}

type CalendarService struct {
	activities CalendarActivityReader
	plantings  CalendarPlantingReader
	lifecycle  CalendarLifecycleReader
}

func NewCalendarService(activities CalendarActivityReader, plantings CalendarPlantingReader, lifecycle CalendarLifecycleReader) *CalendarService {
	return &CalendarService{
		activities: activities,
		plantings:  plantings,
		lifecycle:  lifecycle,
	}
}

type CalendarView struct {
	View     ViewMode        `json:"view"`
	Anchor   string          `json:"anchor"`
	Today    string          `json:"today"`
	Degraded bool            `json:"degraded,omitempty"`
	Events   []CalendarEvent `json:"events"`
	Cells    []GridCell      `json:"cells"`
}

// BuildCalendar resolves the requested view into dated cells with bucketed
// events. Activities are fetched for the visible grid range only; lifecycle
// rows and planting masters are fetched in full because timelines need the
// earliest event of each planting, which may predate the visible window.
//
// On planting-side fetch failure the returned view is usable but degraded
// and the error wraps ErrPlantingDataUnavailable.
func (service *CalendarService) BuildCalendar(view ViewMode, anchorValue string, now time.Time) (CalendarView, error) {
	today := CivilDate(now)
	anchor := ParseCivilDateOrToday(anchorValue, now)
	dates := GridDates(view, anchor)
	if len(dates) == 0 {
		return CalendarView{}, fmt.Errorf("no grid dates for view %q anchor %q", view, anchor)
	}

	fromStart, _ := parseCivilDate(dates[0])
	lastDate, _ := parseCivilDate(dates[len(dates)-1])
	toEnd := lastDate.AddDate(0, 0, 1)

	activities, err := service.activities.ListByRange(fromStart, toEnd)
	if err != nil {
		return CalendarView{}, fmt.Errorf("list activities: %w", err)
	}

	result := CalendarView{
		View:   view,
		Anchor: anchor,
		Today:  today,
	}

	lifecycle, lifecycleErr := service.lifecycle.ListLifecycle()
	plantings, plantingsErr := service.plantings.ListAll()
	if lifecycleErr != nil || plantingsErr != nil {
		result.Degraded = true
		result.Events = BuildCalendarEvents(activities, nil, nil, today)
		result.Cells = BuildCalendarGrid(view, anchor, result.Events, today)
		failure := lifecycleErr
		if failure == nil {
			failure = plantingsErr
		}
		return result, fmt.Errorf("%w: %v", ErrPlantingDataUnavailable, failure)
	}

	result.Events = BuildCalendarEvents(activities, lifecycle, plantings, today)
	result.Cells = BuildCalendarGrid(view, anchor, result.Events, today)
	return result, nil
}

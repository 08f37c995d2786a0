package models

import "time"

const (
	PlantingStatusPlanned   = "planned"
	PlantingStatusNursery   = "nursery"
	PlantingStatusGrowing   = "growing"
	PlantingStatusHarvested = "harvested"
	PlantingStatusFinished  = "finished"
)

const (
	EventDirectSeeded  = "direct_seeded"
	EventNurserySeeded = "nursery_seeded"
	EventTransplanted  = "transplanted"
	EventHarvested     = "harvested"
)

// LifecycleEventTypes is the closed set of planting event types the calendar
// engine understands. Rows with other types are ignored, not rejected.
var LifecycleEventTypes = []string{
	EventDirectSeeded,
	EventNurserySeeded,
	EventTransplanted,
	EventHarvested,
}

type Planting struct {
	ID                 uint       `gorm:"primaryKey"`
	Status             string     `gorm:"not null;default:planned"`
	Crop               string     `gorm:"not null"`
	Variety            string
	BedLabel           string
	Quantity           int        `gorm:"not null;default:0"`
	DTMDirectSeedMin   int        `gorm:"not null;default:0"`
	DTMDirectSeedMax   int        `gorm:"not null;default:0"`
	DTMTransplantMin   int        `gorm:"not null;default:0"`
	DTMTransplantMax   int        `gorm:"not null;default:0"`
	PlantedDate        *time.Time `gorm:"type:date"`
	NurseryStartedDate *time.Time `gorm:"type:date"`
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type PlantingEvent struct {
	ID          uint      `gorm:"primaryKey"`
	PlantingID  uint      `gorm:"not null;index"`
	EventType   string    `gorm:"not null;index"`
	EventDate   time.Time `gorm:"type:date;not null"`
	Qty         int       `gorm:"not null;default:0"`
	WeightGrams int       `gorm:"not null;default:0"`
	BedLabel    string
	CreatedAt   time.Time
}
